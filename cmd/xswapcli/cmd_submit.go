package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/noxlabs/xswap/x/aswap"
	"github.com/noxlabs/xswap/x/bridge"
)

func cmdSubmitTransaction(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read binary serialized transaction from standard input and submit it.

For transactions creating an entity its ID is written out.

Make sure to collect enough signatures before submitting the transaction.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", env("XSWAPCLI_TM_ADDR", "http://localhost:26657"),
			"Tendermint node address. You can use XSWAPCLI_TM_ADDR environment variable to set it.")
	)
	fl.Parse(args)

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction from input: %s", err)
	}

	res, err := newClient(*tmAddrFl).BroadcastTx(tx)
	if err != nil {
		return fmt.Errorf("cannot broadcast transaction: %s", err)
	}

	if format, ok := formatters[tx.Route]; ok && len(res.DeliverTx.Data) != 0 {
		fmt.Fprintln(output, format(res.DeliverTx.Data))
	}
	return nil
}

// formatters contains a mapping of a message path to response formatter.
// Do not register a message if its response should not be printed.
var formatters = map[string]func([]byte) string{
	aswap.CreateMsg{}.Path():   hexString,
	bridge.DepositMsg{}.Path(): hexString,
}
