package app

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/coin"
	"github.com/noxlabs/xswap/crypto"
	"github.com/noxlabs/xswap/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// DefaultTicker is the asset funded in the generated genesis.
const DefaultTicker = "XSW"

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode. The same account owns both extensions
// and is the only bridge relayer.
//
// Accepted arguments are [ticker] [hex address].
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := DefaultTicker
	if len(args) > 0 {
		ticker = args[0]
		if !coin.IsCC(ticker) {
			return nil, errors.Wrapf(errors.ErrCurrency, "invalid ticker %s", ticker)
		}
	}

	var addr string
	if len(args) > 1 {
		a, err := xswap.ParseAddress(args[1])
		if err != nil {
			return nil, err
		}
		addr = a.String()
	} else {
		// if no address provided, auto-generate one
		// and print out the keys
		a, keys, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = a.String()
		fmt.Println(keys)
	}

	opts := fmt.Sprintf(`
          {
            "cash": [
              {
                "address": "%[1]s",
                "coins": [
                  {"ticker": "%[2]s", "amount": 123456789000}
                ]
              }
            ],
            "currencies": [
              {"ticker": "%[2]s", "name": "xswap dev token"}
            ],
            "conf": {
              "aswap": {
                "owner": "%[1]s",
                "fee_recipient": "%[1]s"
              },
              "bridge": {
                "owner": "%[1]s"
              }
            },
            "bridge_relayers": ["%[1]s"]
          }
	`, addr, ticker)
	return []byte(opts), nil
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "xswap.db")
	}

	stack := Stack(nil)
	application, err := Application("xswapd", stack, TxDecoder, dbPath, debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(GenesisInitializer())

	// set the logger and return
	application.WithLogger(logger)
	return application, nil
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key,
// along with a json representation of the keys.
// You can give coins to this address and
// import the keys in the client to use them
func GenerateCoinKey() (xswap.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", err
	}
	return addr, string(keys), nil
}
