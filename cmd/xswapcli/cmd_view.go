package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/noxlabs/xswap"
)

func cmdTransactionView(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Decode and display transaction summary. This command is helpful when receiving
a binary representation of a transaction. Before signing you should check what
kind of operation are you authorizing.
`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction: %s", err)
	}
	msg, err := tx.GetMsg()
	if err != nil {
		return fmt.Errorf("cannot decode message: %s", err)
	}

	signers := make([]xswap.Address, 0, len(tx.Signatures))
	for _, s := range tx.Signatures {
		signers = append(signers, s.Pubkey.Address())
	}
	summary := struct {
		Route   string          `json:"route"`
		Msg     xswap.Msg       `json:"msg"`
		Signers []xswap.Address `json:"signers"`
	}{
		Route:   tx.Route,
		Msg:     msg,
		Signers: signers,
	}
	pretty, err := json.MarshalIndent(summary, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot JSON serialize: %s", err)
	}
	_, err = fmt.Fprintln(output, string(pretty))
	return err
}
