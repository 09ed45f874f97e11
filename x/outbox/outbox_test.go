package outbox

import (
	"context"
	"testing"
	"time"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/store"
	"github.com/noxlabs/xswap/xswaptest"
	"github.com/noxlabs/xswap/xswaptest/assert"
)

func TestEmitAndPoll(t *testing.T) {
	db := store.MemStore()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	ctx := xswap.WithHeight(context.Background(), 42)
	ctx = xswap.WithBlockTime(ctx, now)

	for i := 0; i < 5; i++ {
		seq, err := Emit(ctx, db, "test/event", &xswaptest.Msg{Serialized: []byte{byte(i)}})
		assert.Nil(t, err)
		assert.Equal(t, int64(i+1), seq)
	}

	latest, err := Latest(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(5), latest)

	all, err := After(db, 0, 0)
	assert.Nil(t, err)
	assert.Equal(t, 5, len(all))
	for i, e := range all {
		assert.Equal(t, int64(i+1), e.Sequence)
		assert.Equal(t, int64(42), e.Height)
		assert.Equal(t, xswap.AsUnixTime(now), e.Time)
		assert.Equal(t, []byte{byte(i)}, e.Payload)
	}

	page, err := After(db, 2, 2)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(page))
	assert.Equal(t, int64(3), page[0].Sequence)
	assert.Equal(t, int64(4), page[1].Sequence)

	none, err := After(db, 5, 10)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(none))

	_, err = After(db, -1, 0)
	assert.IsErr(t, errors.ErrInput, err)
}

func TestEmitDiscardedWithTransaction(t *testing.T) {
	db := store.MemStore()
	ctx := xswap.WithBlockTime(context.Background(), time.Now())

	cache := db.CacheWrap()
	_, err := Emit(ctx, cache, "test/event", &xswaptest.Msg{Serialized: []byte("x")})
	assert.Nil(t, err)
	cache.Discard()

	all, err := After(db, 0, 0)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(all))

	// The sequence is rolled back together with the event.
	seq, err := Emit(ctx, db, "test/event", &xswaptest.Msg{Serialized: []byte("y")})
	assert.Nil(t, err)
	assert.Equal(t, int64(1), seq)
}

func TestEmitRequiresBlockTime(t *testing.T) {
	_, err := Emit(context.Background(), store.MemStore(), "test/event", &xswaptest.Msg{})
	assert.IsErr(t, errors.ErrHuman, err)
}

func TestEventQuery(t *testing.T) {
	db := store.MemStore()
	ctx := xswap.WithBlockTime(context.Background(), time.Now())
	_, err := Emit(ctx, db, "test/event", &xswaptest.Msg{Serialized: []byte("payload")})
	assert.Nil(t, err)

	qr := xswap.NewQueryRouter()
	RegisterQuery(qr)
	h := qr.Handler("/events")
	if h == nil {
		t.Fatal("events query not registered")
	}
	models, err := h.Query(db, xswap.PrefixQueryMod, nil)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(models))

	var e Event
	assert.Nil(t, e.Unmarshal(models[0].Value))
	assert.Equal(t, "test/event", e.Kind)
	var msg xswaptest.Msg
	assert.Nil(t, e.Load(&msg))
	assert.Equal(t, []byte("payload"), msg.Serialized)
}
