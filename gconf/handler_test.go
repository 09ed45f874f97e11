package gconf

import (
	"context"
	"testing"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/store"
	"github.com/noxlabs/xswap/x"
	"github.com/noxlabs/xswap/xswaptest"
	"github.com/noxlabs/xswap/xswaptest/assert"
)

func TestUpdateConfigurationHandler(t *testing.T) {
	owner := xswaptest.NewCondition()
	other := xswaptest.NewCondition()

	initial := myconfig{
		Metadata: &xswap.Metadata{Schema: 1},
		Owner:    owner.Address(),
		Num:      5125,
		Str:      "foobar",
	}

	cases := map[string]struct {
		Init           *myconfig
		Msg            xswap.Msg
		Signer         xswap.Condition
		WantCheckErr   *errors.Error
		WantDeliverErr *errors.Error
		WantConfig     *myconfig
	}{
		"success": {
			Init: &initial,
			Msg: &myconfigMsg{
				Metadata: &xswap.Metadata{Schema: 1},
				Patch:    &myconfig{Num: 333},
			},
			Signer: owner,
			WantConfig: &myconfig{
				Metadata: &xswap.Metadata{Schema: 1},
				Owner:    owner.Address(),
				Num:      333,
				Str:      "foobar",
			},
		},
		"owner transfer": {
			Init: &initial,
			Msg: &myconfigMsg{
				Metadata: &xswap.Metadata{Schema: 1},
				Patch:    &myconfig{Owner: other.Address()},
			},
			Signer: owner,
			WantConfig: &myconfig{
				Metadata: &xswap.Metadata{Schema: 1},
				Owner:    other.Address(),
				Num:      5125,
				Str:      "foobar",
			},
		},
		"message must be signed by the configuration owner": {
			Init: &initial,
			Msg: &myconfigMsg{
				Metadata: &xswap.Metadata{Schema: 1},
				Patch:    &myconfig{Num: 1},
			},
			Signer:         other,
			WantCheckErr:   x.ErrNotOwner,
			WantDeliverErr: x.ErrNotOwner,
			WantConfig:     &initial,
		},
		"configuration must exist": {
			Msg: &myconfigMsg{
				Metadata: &xswap.Metadata{Schema: 1},
				Patch:    &myconfig{Num: 1},
			},
			Signer:         owner,
			WantCheckErr:   errors.ErrNotFound,
			WantDeliverErr: errors.ErrNotFound,
		},
		"patch is required": {
			Init:           &initial,
			Msg:            &myconfigMsg{Metadata: &xswap.Metadata{Schema: 1}},
			Signer:         owner,
			WantCheckErr:   errors.ErrState,
			WantDeliverErr: errors.ErrState,
			WantConfig:     &initial,
		},
		"patched configuration must be valid": {
			Init: &initial,
			Msg: &myconfigMsg{
				Metadata: &xswap.Metadata{Schema: 1},
				Patch:    &myconfig{Num: -4},
			},
			Signer:         owner,
			WantCheckErr:   errors.ErrInput,
			WantDeliverErr: errors.ErrInput,
			WantConfig:     &initial,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if tc.Init != nil {
				assert.Nil(t, Save(db, "test", tc.Init))
			}
			auth := &xswaptest.Auth{Signer: tc.Signer}
			h := NewUpdateConfigurationHandler("test", &myconfig{}, auth)
			tx := &xswaptest.Tx{Msg: tc.Msg}

			cache := db.CacheWrap()
			if _, err := h.Check(context.Background(), cache, tx); !tc.WantCheckErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			cache.Discard()
			if _, err := h.Deliver(context.Background(), db, tx); !tc.WantDeliverErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}

			if tc.WantConfig != nil {
				var got myconfig
				assert.Nil(t, Load(db, "test", &got))
				assert.Equal(t, tc.WantConfig, &got)
			}
		})
	}
}

func TestPauseHandler(t *testing.T) {
	owner := xswaptest.NewCondition()
	db := store.MemStore()
	assert.Nil(t, Save(db, "test", &myconfig{
		Metadata: &xswap.Metadata{Schema: 1},
		Owner:    owner.Address(),
	}))

	msg := &myconfigMsg{Metadata: &xswap.Metadata{Schema: 1}}
	tx := &xswaptest.Tx{Msg: msg}
	ctx := context.Background()

	pause := NewPauseHandler("test", &myconfig{}, &xswaptest.Auth{Signer: owner}, true)
	unpause := NewPauseHandler("test", &myconfig{}, &xswaptest.Auth{Signer: owner}, false)
	stranger := NewPauseHandler("test", &myconfig{}, &xswaptest.Auth{Signer: xswaptest.NewCondition()}, true)

	var c myconfig
	_, err := pause.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	assert.Nil(t, Load(db, "test", &c))
	assert.Equal(t, true, c.Paused)

	// Pausing twice is allowed.
	_, err = pause.Deliver(ctx, db, tx)
	assert.Nil(t, err)

	_, err = stranger.Deliver(ctx, db, tx)
	assert.IsErr(t, x.ErrNotOwner, err)

	_, err = unpause.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	assert.Nil(t, Load(db, "test", &c))
	assert.Equal(t, false, c.Paused)
}
