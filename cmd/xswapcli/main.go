package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/noxlabs/xswap"
)

// commands is a register of all available commands that can be executed by
// this program. The name is used to match with the first argument given.
//
// When a cmd function is called it is given stdin, stdout and command line
// arguments except the program name and this command name. It is the
// responsibility of the command function to parse the arguments. Use
// os.Stderr to write error messages.
//
// Keep a command function simple. A unix pipe can be used to construct a
// pipeline. For example, there are 3 separate functions for creating a
// transaction, signing and submitting:
//
//	$ xswapcli swap-initiate -src $ALICE -dst $BOB -hashlock $H -amount "100 APT" \
//	    | xswapcli sign \
//	    | xswapcli submit
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"bridge-add-relayer":  cmdBridgeAddRelayer,
	"bridge-add-reserves": cmdBridgeAddReserves,
	"bridge-deposit":      cmdBridgeDeposit,
	"bridge-release":      cmdBridgeRelease,
	"events":              cmdEvents,
	"hashlock":            cmdHashlock,
	"keyaddr":             cmdKeyaddr,
	"keygen":              cmdKeygen,
	"pause":               cmdPause,
	"sign":                cmdSignTransaction,
	"submit":              cmdSubmitTransaction,
	"swap-complete":       cmdSwapComplete,
	"swap-initiate":       cmdSwapInitiate,
	"swap-refund":         cmdSwapRefund,
	"unpause":             cmdUnpause,
	"version":             cmdVersion,
	"view":                cmdTransactionView,
}

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s is a command line client for the xswap application.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	// Skip two first arguments. Second argument is the command name that
	// we just consumed.
	if err := run(os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	_, err := fmt.Fprintln(out, xswap.Version())
	return err
}
