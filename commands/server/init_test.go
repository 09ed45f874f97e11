package server

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

func setupHome(t *testing.T) (string, func()) {
	t.Helper()
	home, err := ioutil.TempDir("", "xswapd-home")
	require.NoError(t, err)
	return home, func() { os.RemoveAll(home) }
}

func genTestOptions(args []string) (json.RawMessage, error) {
	ticker := "XSW"
	if len(args) > 0 {
		ticker = args[0]
	}
	return json.RawMessage(`{"currencies": [{"ticker": "` + ticker + `", "name": "test token"}]}`), nil
}

func TestInit(t *testing.T) {
	home, cleanup := setupHome(t)
	defer cleanup()

	logger := log.NewNopLogger()
	require.NoError(t, InitCmd(genTestOptions, logger, home, []string{"ABC"}))

	genFile := filepath.Join(home, "config", "genesis.json")
	bz, err := ioutil.ReadFile(genFile)
	require.NoError(t, err)

	var doc genesisDoc
	require.NoError(t, json.Unmarshal(bz, &doc))

	var chainID string
	require.NoError(t, json.Unmarshal(doc["chain_id"], &chainID))
	assert.True(t, strings.HasPrefix(chainID, "test-chain-"))
	assert.NotEmpty(t, doc["validators"])
	assert.Contains(t, string(doc[appStateKey]), `"ABC"`)

	// keys are reused and existing app state is never overwritten
	err = InitCmd(genTestOptions, logger, home, nil)
	assert.True(t, errors.ErrDuplicate.Is(err), "unexpected error: %+v", err)
}

func TestInitWithoutAppState(t *testing.T) {
	home, cleanup := setupHome(t)
	defer cleanup()

	require.NoError(t, InitCmd(nil, log.NewNopLogger(), home, nil))
	_, err := os.Stat(filepath.Join(home, "config", "genesis.json"))
	assert.NoError(t, err)
}

type tickerInitializer struct{}

func (tickerInitializer) FromGenesis(opts xswap.Options, db xswap.KVStore) error {
	var tokens []struct {
		Ticker string `json:"ticker"`
	}
	if err := opts.ReadOptions("currencies", &tokens); err != nil {
		return err
	}
	if len(tokens) == 0 {
		return errors.Wrap(errors.ErrEmpty, "currencies")
	}
	return nil
}

func TestValidateGenesis(t *testing.T) {
	home, cleanup := setupHome(t)
	defer cleanup()

	write := func(name, content string) string {
		path := filepath.Join(home, name)
		require.NoError(t, ioutil.WriteFile(path, []byte(content), 0600))
		return path
	}

	cases := map[string]struct {
		paths   []string
		wantErr *errors.Error
	}{
		"valid genesis": {
			paths: []string{write("valid.json", `{"app_state": {"currencies": [{"ticker": "XSW"}]}}`)},
		},
		"initializer rejects state": {
			paths:   []string{write("empty.json", `{"app_state": {"currencies": []}}`)},
			wantErr: errors.ErrEmpty,
		},
		"missing app state": {
			paths:   []string{write("missing.json", `{"chain_id": "test"}`)},
			wantErr: errors.ErrEmpty,
		},
		"not a JSON file": {
			paths:   []string{write("broken.json", `{`)},
			wantErr: errors.ErrInput,
		},
		"no files": {
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := ValidateGenesis(tickerInitializer{}, tc.paths)
			assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
		})
	}
}

func TestParseStartFlags(t *testing.T) {
	addr, debug, err := parseFlags([]string{"-bind", "tcp://0.0.0.0:9999", "-debug"})
	require.NoError(t, err)
	assert.Equal(t, "tcp://0.0.0.0:9999", addr)
	assert.True(t, debug)

	addr, debug, err = parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, "tcp://localhost:26658", addr)
	assert.False(t, debug)
}
