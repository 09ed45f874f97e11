package main

import (
	"crypto/rand"
	"crypto/sha256"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/x/aswap"
)

func cmdHashlock(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print a secret and its sha256 hashlock, both hex encoded and separated by a
space. A new random secret is created unless one is provided.

Keep the secret private until the counterparty locked their funds.
`)
		fl.PrintDefaults()
	}
	var (
		secretFl = flHex(fl, "secret", "", "Optional hex encoded secret to compute the hashlock of.")
	)
	fl.Parse(args)

	secret := *secretFl
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return fmt.Errorf("cannot generate secret: %s", err)
		}
	}
	hash := sha256.Sum256(secret)
	_, err := fmt.Fprintf(output, "%s %s\n", hexString(secret), hexString(hash[:]))
	return err
}

func cmdSwapInitiate(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction that locks funds of the source account for the recipient
under a hashlock. The recipient can claim them by revealing the secret before
the timelock. After the timelock the source can take them back.
`)
		fl.PrintDefaults()
	}
	var (
		srcFl      = flAddress(fl, "src", "", "Address of the account that funds are locked from. It must sign the transaction.")
		dstFl      = flAddress(fl, "dst", "", "Address of the recipient that can claim the funds.")
		hashlockFl = flHex(fl, "hashlock", "", "Hex encoded sha256 hash of the secret.")
		amountFl   = flCoin(fl, "amount", "", "Amount to lock, for example \"100 APT\".")
		timelockFl = flTime(fl, "timelock", 24*time.Hour, "Time after which the swap can be refunded. RFC 3339 or a duration like \"+3h\".")
		refFl      = flHex(fl, "ref", "", "Optional hex encoded external reference.")
	)
	fl.Parse(args)

	msg := &aswap.CreateMsg{
		Metadata:  &xswap.Metadata{Schema: 1},
		SwapRef:   *refFl,
		Source:    *srcFl,
		Recipient: *dstFl,
		Hashlock:  *hashlockFl,
		Amount:    amountFl,
		Timelock:  *timelockFl,
	}
	return writeMsg(output, msg)
}

func cmdSwapComplete(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction that releases the funds of a swap to its recipient by
revealing the secret. Anyone can sign this transaction.
`)
		fl.PrintDefaults()
	}
	var (
		idFl     = flHex(fl, "swap", "", "Hex encoded swap ID.")
		secretFl = flHex(fl, "secret", "", "Hex encoded secret that hashes to the swap hashlock.")
	)
	fl.Parse(args)

	msg := &aswap.ReleaseMsg{
		Metadata: &xswap.Metadata{Schema: 1},
		SwapID:   *idFl,
		Secret:   *secretFl,
	}
	return writeMsg(output, msg)
}

func cmdSwapRefund(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction that returns the funds of an expired swap to its
initiator. It must be signed by the initiator.
`)
		fl.PrintDefaults()
	}
	var (
		idFl = flHex(fl, "swap", "", "Hex encoded swap ID.")
	)
	fl.Parse(args)

	msg := &aswap.ReturnMsg{
		Metadata: &xswap.Metadata{Schema: 1},
		SwapID:   *idFl,
	}
	return writeMsg(output, msg)
}
