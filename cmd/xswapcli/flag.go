package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/coin"
)

// flAddress returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *xswap.Address {
	var a xswap.Address
	if defaultVal != "" {
		var err error
		a, err = xswap.ParseAddress(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q xswap.Address flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var((*flagaddress)(&a), name, usage)
	return &a
}

type flagaddress xswap.Address

func (a flagaddress) String() string {
	return xswap.Address(a).String()
}

func (a *flagaddress) Set(raw string) error {
	addr, err := xswap.ParseAddress(raw)
	if err != nil {
		return err
	}
	*a = flagaddress(addr)
	return nil
}

// flCoin returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided.
// Human format is expected, for example "100 APT".
func flCoin(fl *flag.FlagSet, name, defaultVal, usage string) *coin.Coin {
	var c coin.Coin
	if defaultVal != "" {
		var err error
		c, err = coin.ParseHumanFormat(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q coin.Coin flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var((*flagcoin)(&c), name, usage)
	return &c
}

type flagcoin coin.Coin

func (c flagcoin) String() string {
	return coin.Coin(c).String()
}

func (c *flagcoin) Set(raw string) error {
	val, err := coin.ParseHumanFormat(raw)
	if err != nil {
		return err
	}
	*c = flagcoin(val)
	return nil
}

// flHex returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided.
func flHex(fl *flag.FlagSet, name, defaultVal, usage string) *[]byte {
	var b []byte
	if defaultVal != "" {
		var err error
		b, err = hex.DecodeString(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q hex encoded flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var((*flagbytes)(&b), name, usage)
	return &b
}

type flagbytes []byte

func (b flagbytes) String() string {
	return hex.EncodeToString(b)
}

func (b *flagbytes) Set(raw string) error {
	val, err := hex.DecodeString(raw)
	if err != nil {
		return err
	}
	*b = val
	return nil
}

// flTime returns a unix time value. Both an RFC 3339 formatted time and
// a duration relative to now (for example "+3h") are accepted.
func flTime(fl *flag.FlagSet, name string, defaultVal time.Duration, usage string) *xswap.UnixTime {
	t := xswap.AsUnixTime(time.Now().Add(defaultVal))
	fl.Var((*flagtime)(&t), name, usage)
	return &t
}

type flagtime xswap.UnixTime

func (t flagtime) String() string {
	return xswap.UnixTime(t).String()
}

func (t *flagtime) Set(raw string) error {
	if len(raw) > 0 && raw[0] == '+' {
		d, err := time.ParseDuration(raw[1:])
		if err != nil {
			return err
		}
		*t = flagtime(xswap.AsUnixTime(time.Now().Add(d)))
		return nil
	}
	v, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return err
	}
	*t = flagtime(xswap.AsUnixTime(v))
	return nil
}
