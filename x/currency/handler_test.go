package currency

import (
	"context"
	"testing"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/store"
	"github.com/noxlabs/xswap/xswaptest"
	"github.com/noxlabs/xswap/xswaptest/assert"
)

func TestCreateTokenInfoHandler(t *testing.T) {
	issuer := xswaptest.NewCondition()
	other := xswaptest.NewCondition()

	cases := map[string]struct {
		signer         xswap.Condition
		initTicker     string
		msg            xswap.Msg
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
	}{
		"issuer registers a token": {
			signer: issuer,
			msg: &CreateMsg{
				Metadata:  &xswap.Metadata{Schema: 1},
				Ticker:    "APT",
				Name:      "Aptos Coin",
				MinAmount: 10,
				MaxAmount: 1000,
			},
		},
		"only the issuer can register": {
			signer: other,
			msg: &CreateMsg{
				Metadata: &xswap.Metadata{Schema: 1},
				Ticker:   "APT",
				Name:     "Aptos Coin",
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"ticker already registered": {
			signer:     issuer,
			initTicker: "APT",
			msg: &CreateMsg{
				Metadata: &xswap.Metadata{Schema: 1},
				Ticker:   "APT",
				Name:     "Aptos Coin",
			},
			wantCheckErr:   errors.ErrDuplicate,
			wantDeliverErr: errors.ErrDuplicate,
		},
		"invalid ticker": {
			signer: issuer,
			msg: &CreateMsg{
				Metadata: &xswap.Metadata{Schema: 1},
				Ticker:   "apt",
				Name:     "Aptos Coin",
			},
			wantCheckErr:   errors.ErrCurrency,
			wantDeliverErr: errors.ErrCurrency,
		},
		"bounds out of order": {
			signer: issuer,
			msg: &CreateMsg{
				Metadata:  &xswap.Metadata{Schema: 1},
				Ticker:    "APT",
				Name:      "Aptos Coin",
				MinAmount: 100,
				MaxAmount: 10,
			},
			wantCheckErr:   errors.ErrAmount,
			wantDeliverErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if tc.initTicker != "" {
				info := &TokenInfo{Metadata: &xswap.Metadata{Schema: 1}, Name: "initial"}
				assert.Nil(t, saveToken(db, NewTokenInfoBucket(), tc.initTicker, info))
			}

			h := newCreateTokenInfoHandler(&xswaptest.Auth{Signer: tc.signer}, issuer.Address())
			tx := &xswaptest.Tx{Msg: tc.msg}
			if _, err := h.Check(context.Background(), db, tx); !tc.wantCheckErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			if _, err := h.Deliver(context.Background(), db, tx); !tc.wantDeliverErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}
			if tc.wantDeliverErr == nil {
				ok, err := NewRegistry().IsSupported(db, "APT")
				assert.Nil(t, err)
				assert.Equal(t, true, ok)
			}
		})
	}
}
