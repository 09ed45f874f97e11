package utils

import (
	"context"
	"testing"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/store"
	"github.com/noxlabs/xswap/xswaptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavepoint(t *testing.T) {
	key, value := []byte("swap"), []byte("locked")

	cases := map[string]struct {
		savepoint  Savepoint
		check      bool
		handlerErr error
		wantStored bool
	}{
		"deliver savepoint keeps a successful write": {
			savepoint:  NewSavepoint().OnDeliver(),
			wantStored: true,
		},
		"deliver savepoint drops a failed write": {
			savepoint:  NewSavepoint().OnDeliver(),
			handlerErr: errors.ErrInsufficientAmount,
			wantStored: false,
		},
		"without savepoint a failed write stays": {
			savepoint:  NewSavepoint().OnCheck(),
			handlerErr: errors.ErrInsufficientAmount,
			wantStored: true,
		},
		"check savepoint drops a failed write": {
			savepoint:  NewSavepoint().OnCheck(),
			check:      true,
			handlerErr: errors.ErrInsufficientAmount,
			wantStored: false,
		},
		"check savepoint keeps a successful write": {
			savepoint:  NewSavepoint().OnCheck().OnDeliver(),
			check:      true,
			wantStored: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			h := xswaptest.WriteHandler{Key: key, Value: value, Err: tc.handlerErr}
			ctx := context.Background()

			var err error
			if tc.check {
				_, err = tc.savepoint.Check(ctx, db, &xswaptest.Tx{}, h)
			} else {
				_, err = tc.savepoint.Deliver(ctx, db, &xswaptest.Tx{}, h)
			}
			if tc.handlerErr != nil {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			got, err := db.Get(key)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStored, got != nil)
		})
	}
}

var _ xswap.Decorator = Savepoint{}
