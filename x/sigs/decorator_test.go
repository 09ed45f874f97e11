package sigs

import (
	"context"
	"testing"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/crypto"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecorator(t *testing.T) {
	kv := store.MemStore()
	checkKv := kv.CacheWrap()
	signers := new(SigCheckHandler)
	d := NewDecorator()
	chainID := "deco-rate"
	ctx := xswap.WithChainID(context.Background(), chainID)

	priv := crypto.GenPrivKeyEd25519()
	perms := []xswap.Condition{priv.PublicKey().Condition()}

	tx := NewStdTx([]byte("art"))
	sig, err := SignTx(priv, tx, chainID, 0)
	require.NoError(t, err)
	sig1, err := SignTx(priv, tx, chainID, 1)
	require.NoError(t, err)

	deliver := func(dec xswap.Decorator, my xswap.Tx) error {
		_, err := dec.Deliver(ctx, kv, my, signers)
		return err
	}
	check := func(dec xswap.Decorator, my xswap.Tx) error {
		res, err := dec.Check(ctx, checkKv, my, signers)
		if err == nil {
			assert.Equal(t, int64(len(signers.Signers)*signatureVerifyCost), res.GasAllocated)
		}
		return err
	}

	for i, fn := range []func(xswap.Decorator, xswap.Tx) error{check, deliver} {
		tx.Signatures = nil
		err := fn(d, tx)
		assert.True(t, errors.ErrUnauthorized.Is(err), "%d", i)

		tx.Signatures = []*StdSignature{sig}
		err = fn(d, tx)
		assert.NoError(t, err, "%d", i)
		assert.Equal(t, perms, signers.Signers)

		// replay
		err = fn(d, tx)
		assert.Error(t, err, "%d", i)

		ad := d.AllowMissingSigs()
		tx.Signatures = nil
		err = fn(ad, tx)
		assert.NoError(t, err, "%d", i)
		assert.Equal(t, []xswap.Condition{}, signers.Signers)

		tx.Signatures = []*StdSignature{sig1}
		err = fn(ad, tx)
		assert.NoError(t, err, "%d", i)
		assert.Equal(t, perms, signers.Signers)
	}
}

// SigCheckHandler stores the seen signers on each call
type SigCheckHandler struct {
	Signers []xswap.Condition
}

var _ xswap.Handler = (*SigCheckHandler)(nil)

func (s *SigCheckHandler) Check(ctx xswap.Context, store xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &xswap.CheckResult{}, nil
}

func (s *SigCheckHandler) Deliver(ctx xswap.Context, store xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &xswap.DeliverResult{}, nil
}
