package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/x/sigs"
)

func cmdSignTransaction(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Sign given transaction. This is decoding a transaction data from standard
input, adds a signature and writes back to standard output signed transaction
content.

Chain ID and the signer sequence are fetched from the node unless both are
provided, which allows signing offline.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", env("XSWAPCLI_TM_ADDR", "http://localhost:26657"),
			"Tendermint node address. You can use XSWAPCLI_TM_ADDR environment variable to set it.")
		keyPathFl = fl.String("key", defaultKeyPath(),
			"Path to the private key file that transaction should be signed with. You can use XSWAPCLI_PRIV_KEY environment variable to set it.")
		chainFl = fl.String("chain", "", "Chain ID. Fetched from the node if not provided.")
		seqFl   = fl.Int64("seq", -1, "Sequence of the signer. Fetched from the node if not provided.")
	)
	fl.Parse(args)

	key, err := decodePrivateKey(*keyPathFl)
	if err != nil {
		return fmt.Errorf("cannot load private key: %s", err)
	}

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction: %s", err)
	}

	chainID, seq := *chainFl, *seqFl
	if chainID == "" || seq < 0 {
		c := newClient(*tmAddrFl)
		if chainID == "" {
			if chainID, err = c.ChainID(); err != nil {
				return fmt.Errorf("cannot fetch chain ID: %s", err)
			}
		}
		if seq < 0 {
			if seq, err = nextSequence(c, key.PublicKey().Address()); err != nil {
				return fmt.Errorf("cannot get the next sequence number: %s", err)
			}
		}
	}

	sig, err := sigs.SignTx(key, tx, chainID, seq)
	if err != nil {
		return fmt.Errorf("cannot sign transaction: %s", err)
	}
	tx.Signatures = append(tx.Signatures, sig)

	_, err = writeTx(output, tx)
	return err
}

// nextSequence returns the sequence that the next signature of given
// address must use. Accounts that never signed start at zero.
func nextSequence(c *tmClient, addr xswap.Address) (int64, error) {
	models, err := c.Query("/auth", addr)
	if err != nil {
		return 0, err
	}
	if len(models) == 0 {
		return 0, nil
	}
	var user sigs.UserData
	if err := user.Unmarshal(models[0].Value); err != nil {
		return 0, fmt.Errorf("cannot decode user: %s", err)
	}
	return user.Sequence, nil
}
