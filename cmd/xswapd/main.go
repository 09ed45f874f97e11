package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/noxlabs/xswap"
	xswapd "github.com/noxlabs/xswap/cmd/xswapd/app"
	"github.com/noxlabs/xswap/commands/server"
	"github.com/tendermint/tendermint/libs/cli/flags"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	flagHome     = "home"
	flagLogLevel = "log_level"
	varHome      *string
	varLogLevel  *string
)

func init() {
	defaultHome := os.Getenv("XSWAP_HOME")
	if defaultHome == "" {
		defaultHome = filepath.Join(os.ExpandEnv("$HOME"), ".xswap")
	}
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")
	varLogLevel = flag.String(flagLogLevel, "info", `log level, for example "debug" or "aswap:debug,*:info"`)

	flag.CommandLine.Usage = helpMessage
}

func helpMessage() {
	fmt.Println("xswapd")
	fmt.Println("          Hashlock swap and bridge node")
	fmt.Println("")
	fmt.Println("help      Print this message")
	fmt.Println("init      Initialize app options in genesis file")
	fmt.Println("start     Run the abci server")
	fmt.Println("validate  Check that the app state of genesis files can be loaded")
	fmt.Println("version   Print the app version")
	fmt.Println(`
  -home string
        directory to store files under (default "$XSWAP_HOME" or "$HOME/.xswap")
  -log_level string
        log level (default "info")`)
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	logger, err := flags.ParseLogLevel(*varLogLevel,
		log.NewTMLogger(log.NewSyncWriter(os.Stdout)), "info")
	if err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		os.Exit(1)
	}
	logger = logger.With("module", "xswap")

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(xswapd.GenInitOptions, logger, *varHome, rest)
	case "start":
		err = server.StartCmd(xswapd.GenerateApp, logger, *varHome, rest)
	case "validate":
		err = server.ValidateGenesis(xswapd.GenesisInitializer(), rest)
	case "version":
		fmt.Println(xswap.Version())
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	if err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		helpMessage()
		os.Exit(1)
	}
}
