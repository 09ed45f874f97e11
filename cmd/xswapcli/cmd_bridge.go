package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/x/aswap"
	"github.com/noxlabs/xswap/x/bridge"
)

func cmdBridgeDeposit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction that moves funds of the user into the bridge pool to be
paid out on the destination chain. A bridge fee is deducted.
`)
		fl.PrintDefaults()
	}
	var (
		userFl    = flAddress(fl, "user", "", "Address of the depositing account. It must sign the transaction.")
		amountFl  = flCoin(fl, "amount", "", "Amount to deposit, for example \"100 APT\".")
		chainFl   = fl.String("chain", "", "Name of the destination chain.")
		addressFl = fl.String("to", "", "Address on the destination chain, as understood by that chain.")
	)
	fl.Parse(args)

	msg := &bridge.DepositMsg{
		Metadata:           &xswap.Metadata{Schema: 1},
		User:               *userFl,
		Amount:             amountFl,
		DestinationChain:   *chainFl,
		DestinationAddress: *addressFl,
	}
	return writeMsg(output, msg)
}

func cmdBridgeRelease(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction that pays out a request observed on the source chain
from the bridge reserves. It must be signed by a relayer. Each request can be
released only once.
`)
		fl.PrintDefaults()
	}
	var (
		requestFl = flHex(fl, "request", "", "Hex encoded ID of the request on the source chain.")
		userFl    = flAddress(fl, "user", "", "Address of the account receiving the funds.")
		amountFl  = flCoin(fl, "amount", "", "Amount to pay out, for example \"100 APT\".")
	)
	fl.Parse(args)

	msg := &bridge.ReleaseMsg{
		Metadata:  &xswap.Metadata{Schema: 1},
		RequestID: *requestFl,
		User:      *userFl,
		Amount:    amountFl,
	}
	return writeMsg(output, msg)
}

func cmdBridgeAddReserves(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction that funds the bridge reserves from the owner account.
It must be signed by the bridge owner.
`)
		fl.PrintDefaults()
	}
	var (
		amountFl = flCoin(fl, "amount", "", "Amount to add, for example \"100 APT\".")
	)
	fl.Parse(args)

	msg := &bridge.AddReservesMsg{
		Metadata: &xswap.Metadata{Schema: 1},
		Amount:   amountFl,
	}
	return writeMsg(output, msg)
}

func cmdBridgeAddRelayer(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction that authorizes an address to release bridge requests.
It must be signed by the bridge owner. Use -remove to revoke the
authorization instead.
`)
		fl.PrintDefaults()
	}
	var (
		relayerFl = flAddress(fl, "relayer", "", "Address of the relayer.")
		removeFl  = fl.Bool("remove", false, "Remove the relayer instead of adding it.")
	)
	fl.Parse(args)

	var msg xswap.Msg = &bridge.AddRelayerMsg{
		Metadata: &xswap.Metadata{Schema: 1},
		Relayer:  *relayerFl,
	}
	if *removeFl {
		msg = &bridge.RemoveRelayerMsg{
			Metadata: &xswap.Metadata{Schema: 1},
			Relayer:  *relayerFl,
		}
	}
	return writeMsg(output, msg)
}

func cmdPause(input io.Reader, output io.Writer, args []string) error {
	return pauseCmd(input, output, args, true)
}

func cmdUnpause(input io.Reader, output io.Writer, args []string) error {
	return pauseCmd(input, output, args, false)
}

func pauseCmd(input io.Reader, output io.Writer, args []string, pause bool) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction that stops or resumes user operations of an extension.
It must be signed by the extension owner.
`)
		fl.PrintDefaults()
	}
	var (
		moduleFl = fl.String("module", "", `Extension to pause or unpause, either "aswap" or "bridge".`)
	)
	fl.Parse(args)

	meta := &xswap.Metadata{Schema: 1}
	var msg xswap.Msg
	switch {
	case *moduleFl == "aswap" && pause:
		msg = &aswap.PauseMsg{Metadata: meta}
	case *moduleFl == "aswap":
		msg = &aswap.UnpauseMsg{Metadata: meta}
	case *moduleFl == "bridge" && pause:
		msg = &bridge.PauseMsg{Metadata: meta}
	case *moduleFl == "bridge":
		msg = &bridge.UnpauseMsg{Metadata: meta}
	default:
		return fmt.Errorf("unknown module %q", *moduleFl)
	}
	return writeMsg(output, msg)
}
