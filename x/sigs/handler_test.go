package sigs

import (
	"context"
	"testing"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/store"
	"github.com/noxlabs/xswap/xswaptest"
	"github.com/noxlabs/xswap/xswaptest/assert"
)

func TestBumpSequence(t *testing.T) {
	cases := map[string]struct {
		initSeq   int64
		increment uint32
		wantErr   *errors.Error
		wantSeq   int64
	}{
		"increment by one": {
			initSeq:   4,
			increment: 1,
			wantSeq:   4,
		},
		"increment by many": {
			initSeq:   4,
			increment: 100,
			wantSeq:   103,
		},
		"zero increment": {
			initSeq:   4,
			increment: 0,
			wantErr:   errors.ErrMsg,
			wantSeq:   4,
		},
		"increment too big": {
			initSeq:   4,
			increment: maxSequenceIncrement + 1,
			wantErr:   errors.ErrMsg,
			wantSeq:   4,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			key := xswaptest.NewKey()
			pub := key.PublicKey()
			bucket := NewUserBucket()
			user := &UserData{Metadata: &xswap.Metadata{Schema: 1}, Pubkey: pub, Sequence: tc.initSeq}
			_, err := bucket.Put(db, pub.Address(), user)
			assert.Nil(t, err)

			auth := &xswaptest.Auth{Signer: pub.Condition()}
			h := &bumpSequenceHandler{auth: auth, b: bucket}
			tx := &xswaptest.Tx{Msg: &BumpSequenceMsg{Metadata: &xswap.Metadata{Schema: 1}, Increment: tc.increment}}

			_, err = h.Deliver(context.Background(), db, tx)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %q, got %+v", tc.wantErr, err)
			}
			n, err := NextNonce(db, pub.Address())
			assert.Nil(t, err)
			assert.Equal(t, tc.wantSeq, n)
		})
	}
}

func TestBumpSequenceUnknownSigner(t *testing.T) {
	db := store.MemStore()
	auth := &xswaptest.Auth{Signer: xswaptest.NewCondition()}
	h := &bumpSequenceHandler{auth: auth, b: NewUserBucket()}
	tx := &xswaptest.Tx{Msg: &BumpSequenceMsg{Metadata: &xswap.Metadata{Schema: 1}, Increment: 2}}
	if _, err := h.Check(context.Background(), db, tx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}
