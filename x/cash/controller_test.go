package cash

import (
	"testing"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/coin"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/store"
	"github.com/noxlabs/xswap/xswaptest"
	"github.com/noxlabs/xswap/xswaptest/assert"
)

func TestController(t *testing.T) {
	alice := xswaptest.NewCondition().Address()
	bob := xswaptest.NewCondition().Address()

	cases := map[string]struct {
		issue     []coin.Coin
		move      coin.Coin
		src, dst  xswap.Address
		wantErr   *errors.Error
		wantAlice int64
		wantBob   int64
	}{
		"move part of the balance": {
			issue:     []coin.Coin{coin.NewCoin(500, "APT")},
			move:      coin.NewCoin(200, "APT"),
			src:       alice,
			dst:       bob,
			wantAlice: 300,
			wantBob:   200,
		},
		"move everything": {
			issue:     []coin.Coin{coin.NewCoin(500, "APT")},
			move:      coin.NewCoin(500, "APT"),
			src:       alice,
			dst:       bob,
			wantAlice: 0,
			wantBob:   500,
		},
		"move to self": {
			issue:     []coin.Coin{coin.NewCoin(500, "APT")},
			move:      coin.NewCoin(100, "APT"),
			src:       alice,
			dst:       alice,
			wantAlice: 500,
		},
		"insufficient balance": {
			issue:     []coin.Coin{coin.NewCoin(500, "APT")},
			move:      coin.NewCoin(501, "APT"),
			src:       alice,
			dst:       bob,
			wantErr:   ErrInsufficientBalance,
			wantAlice: 500,
		},
		"unknown source": {
			move:    coin.NewCoin(1, "APT"),
			src:     bob,
			dst:     alice,
			wantErr: ErrInsufficientBalance,
		},
		"other ticker held": {
			issue:     []coin.Coin{coin.NewCoin(500, "BTC")},
			move:      coin.NewCoin(1, "APT"),
			src:       alice,
			dst:       bob,
			wantErr:   ErrInsufficientBalance,
			wantAlice: 0,
		},
		"zero amount": {
			issue:     []coin.Coin{coin.NewCoin(500, "APT")},
			move:      coin.NewCoin(0, "APT"),
			src:       alice,
			dst:       bob,
			wantErr:   errors.ErrAmount,
			wantAlice: 500,
		},
		"invalid destination": {
			issue:     []coin.Coin{coin.NewCoin(500, "APT")},
			move:      coin.NewCoin(1, "APT"),
			src:       alice,
			dst:       xswap.Address("short"),
			wantErr:   errors.ErrInput,
			wantAlice: 500,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController()
			for _, c := range tc.issue {
				assert.Nil(t, ctrl.IssueCoins(db, alice, c))
			}

			cache := db.CacheWrap()
			err := ctrl.MoveCoins(cache, tc.src, tc.dst, tc.move)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if err == nil {
				assert.Nil(t, cache.Write())
			} else {
				cache.Discard()
			}

			a, err := ctrl.Balance(db, alice)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantAlice, a.Amount("APT"))
			b, err := ctrl.Balance(db, bob)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantBob, b.Amount("APT"))
		})
	}
}

func TestControllerConservation(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	addrs := []xswap.Address{
		xswaptest.NewCondition().Address(),
		xswaptest.NewCondition().Address(),
		xswaptest.NewCondition().Address(),
	}
	assert.Nil(t, ctrl.IssueCoins(db, addrs[0], coin.NewCoin(1000, "APT")))

	moves := []struct {
		src, dst int
		amount   int64
	}{
		{0, 1, 400}, {1, 2, 150}, {2, 0, 50}, {0, 2, 600}, {2, 1, 1},
	}
	for _, m := range moves {
		assert.Nil(t, ctrl.MoveCoins(db, addrs[m.src], addrs[m.dst], coin.NewCoin(m.amount, "APT")))
	}

	var total int64
	for _, a := range addrs {
		cs, err := ctrl.Balance(db, a)
		assert.Nil(t, err)
		total += cs.Amount("APT")
	}
	assert.Equal(t, int64(1000), total)
}
