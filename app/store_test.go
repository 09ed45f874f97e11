package app

import (
	"context"
	"testing"
	"time"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/orm"
	"github.com/noxlabs/xswap/store/iavl"
	"github.com/noxlabs/xswap/xswaptest"
	"github.com/noxlabs/xswap/xswaptest/assert"
	abci "github.com/tendermint/tendermint/abci/types"
)

type dummyInit struct{}

func (dummyInit) FromGenesis(opts xswap.Options, kv xswap.KVStore) error {
	var value string
	if err := opts.ReadOptions("dummy", &value); err != nil {
		return err
	}
	return kv.Set([]byte("dummy"), []byte(value))
}

type countInit struct {
	called int
}

func (c *countInit) FromGenesis(opts xswap.Options, kv xswap.KVStore) error {
	c.called++
	return nil
}

func TestInitChain(t *testing.T) {
	counter := &countInit{}
	qr := xswap.NewQueryRouter()
	orm.RegisterQuery(qr)
	s := NewStoreApp("test", iavl.MemCommitStore(), qr, context.Background()).
		WithInit(ChainInitializers(dummyInit{}, counter))
	assert.Equal(t, "", s.GetChainID())

	s.InitChain(abci.RequestInitChain{
		ChainId:       "test-chain-1",
		AppStateBytes: []byte(`{"dummy": "secret"}`),
	})
	assert.Equal(t, "test-chain-1", s.GetChainID())
	assert.Equal(t, 1, counter.called)

	// The chain cannot be initialized twice.
	assert.Panics(t, func() {
		s.InitChain(abci.RequestInitChain{
			ChainId:       "test-chain-2",
			AppStateBytes: []byte(`{}`),
		})
	})

	s.Commit()

	val, err := NewABCIStore(s).Get([]byte("dummy"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("secret"), val)

	missing, err := NewABCIStore(s).Get([]byte("missing"))
	assert.Nil(t, err)
	assert.Nil(t, missing)
}

func TestInitChainRequiresAppState(t *testing.T) {
	s := NewStoreApp("test", iavl.MemCommitStore(), xswap.NewQueryRouter(), context.Background())
	assert.Panics(t, func() {
		s.InitChain(abci.RequestInitChain{ChainId: "test-chain-1"})
	})
}

func TestBaseAppDeliver(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	h := &xswaptest.Handler{DeliverResult: xswap.DeliverResult{Data: []byte("ok")}}
	decoder := func([]byte) (xswap.Tx, error) {
		return &xswaptest.Tx{Msg: &xswaptest.Msg{RoutePath: "test/msg"}}, nil
	}
	s := NewStoreApp("test", iavl.MemCommitStore(), xswap.NewQueryRouter(), context.Background())
	app := NewBaseApp(s, decoder, h, false)

	app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1, Time: now}})
	height, _ := xswap.GetHeight(app.BlockContext())
	assert.Equal(t, int64(1), height)
	blockTime, err := xswap.BlockTime(app.BlockContext())
	assert.Nil(t, err)
	assert.Equal(t, now, blockTime)

	res := app.DeliverTx([]byte("tx"))
	assert.Equal(t, uint32(0), res.Code)
	assert.Equal(t, []byte("ok"), res.Data)

	chk := app.CheckTx([]byte("tx"))
	assert.Equal(t, uint32(0), chk.Code)
	assert.Equal(t, 2, h.CallCount())
}

func TestBaseAppDecoderPanic(t *testing.T) {
	decoder := func([]byte) (xswap.Tx, error) {
		panic("malformed")
	}
	s := NewStoreApp("test", iavl.MemCommitStore(), xswap.NewQueryRouter(), context.Background())
	app := NewBaseApp(s, decoder, &xswaptest.Handler{}, false)

	res := app.DeliverTx([]byte("tx"))
	if res.Code == 0 {
		t.Fatal("a decoder panic must fail the transaction")
	}
}
