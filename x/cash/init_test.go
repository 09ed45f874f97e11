package cash

import (
	"encoding/json"
	"testing"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/store"
	"github.com/noxlabs/xswap/xswaptest"
	"github.com/noxlabs/xswap/xswaptest/assert"
)

func TestGenesis(t *testing.T) {
	addr := xswaptest.NewCondition().Address()
	genesis := `{"cash": [{
		"address": "` + addr.String() + `",
		"coins": [
			{"ticker": "APT", "amount": 1000},
			{"ticker": "BTC", "amount": 7},
			{"ticker": "APT", "amount": 5}
		]
	}]}`

	var opts xswap.Options
	assert.Nil(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	assert.Nil(t, Initializer{}.FromGenesis(opts, db))

	cs, err := NewController().Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, int64(1005), cs.Amount("APT"))
	assert.Equal(t, int64(7), cs.Amount("BTC"))
}

func TestGenesisInvalid(t *testing.T) {
	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
	}{
		"bad address": {
			genesis: `{"cash": [{"address": "", "coins": []}]}`,
			wantErr: errors.ErrInput,
		},
		"negative coin": {
			genesis: `{"cash": [{"address": "` + xswaptest.NewCondition().Address().String() + `", "coins": [{"ticker": "APT", "amount": -1}]}]}`,
			wantErr: errors.ErrAmount,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts xswap.Options
			assert.Nil(t, json.Unmarshal([]byte(tc.genesis), &opts))
			err := Initializer{}.FromGenesis(opts, store.MemStore())
			assert.IsErr(t, tc.wantErr, err)
		})
	}
}
