package orm

import (
	"testing"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/store"
	"github.com/noxlabs/xswap/xswaptest/assert"
)

func TestModelBucketPutSequence(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	k1, err := b.Put(db, nil, &counter{Count: 1})
	assert.Nil(t, err)
	assert.Equal(t, EncodeSequence(1), k1)
	k2, err := b.Put(db, nil, &counter{Count: 2})
	assert.Nil(t, err)
	assert.Equal(t, EncodeSequence(2), k2)

	var c counter
	assert.Nil(t, b.One(db, k2, &c))
	assert.Equal(t, int64(2), c.Count)

	assert.Nil(t, b.Has(db, k1))
	assert.IsErr(t, errors.ErrNotFound, b.Has(db, []byte("missing")))
}

func TestModelBucketOneResetsDestination(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	_, err := b.Put(db, []byte("a"), &counter{Count: 3})
	assert.Nil(t, err)

	c := counter{Owner: "leftover", Count: 5}
	assert.Nil(t, b.One(db, []byte("a"), &c))
	assert.Equal(t, counter{Count: 3}, c)
}

func TestModelBucketErrors(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	var c counter
	assert.IsErr(t, errors.ErrNotFound, b.One(db, []byte("missing"), &c))

	_, err := b.Put(db, []byte("a"), &otherModel{Name: "x"})
	assert.IsErr(t, errors.ErrType, err)

	_, err = b.Put(db, []byte("a"), &counter{Count: -1})
	assert.IsErr(t, errors.ErrModel, err)

	assert.IsErr(t, errors.ErrNotFound, b.Delete(db, []byte("a")))

	_, err = b.Put(db, []byte("a"), &counter{Count: 1})
	assert.Nil(t, err)
	var o otherModel
	assert.IsErr(t, errors.ErrType, b.One(db, []byte("a"), &o))
}

func TestModelBucketByIndex(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{}, WithIndex("owner", ownerIndexer, false))

	_, err := b.Put(db, []byte("a"), &counter{Owner: "alice", Count: 1})
	assert.Nil(t, err)
	_, err = b.Put(db, []byte("b"), &counter{Owner: "alice", Count: 2})
	assert.Nil(t, err)
	_, err = b.Put(db, []byte("c"), &counter{Owner: "bob", Count: 3})
	assert.Nil(t, err)

	var values []counter
	keys, err := b.ByIndex(db, "owner", []byte("alice"), &values)
	assert.Nil(t, err)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b")}, keys)
	assert.Equal(t, []counter{{Owner: "alice", Count: 1}, {Owner: "alice", Count: 2}}, values)

	// moving an entity updates the index
	_, err = b.Put(db, []byte("a"), &counter{Owner: "bob", Count: 1})
	assert.Nil(t, err)

	var ptrs []*counter
	keys, err = b.ByIndex(db, "owner", []byte("bob"), &ptrs)
	assert.Nil(t, err)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("c")}, keys)
	assert.Equal(t, 2, len(ptrs))

	assert.Nil(t, b.Delete(db, []byte("b")))
	var none []counter
	keys, err = b.ByIndex(db, "owner", []byte("alice"), &none)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(keys))
	assert.Equal(t, 0, len(none))

	_, err = b.ByIndex(db, "unknown", []byte("alice"), &none)
	assert.IsErr(t, errors.ErrHuman, err)
}

func TestModelBucketUniqueIndex(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{}, WithIndex("owner", ownerIndexer, true))

	_, err := b.Put(db, []byte("a"), &counter{Owner: "alice"})
	assert.Nil(t, err)
	// overwriting the same entity is fine
	_, err = b.Put(db, []byte("a"), &counter{Owner: "alice", Count: 2})
	assert.Nil(t, err)
	_, err = b.Put(db, []byte("b"), &counter{Owner: "alice"})
	assert.IsErr(t, errors.ErrDuplicate, err)
}

func TestModelBucketScan(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})
	for i := int64(1); i <= 5; i++ {
		_, err := b.Put(db, nil, &counter{Count: i})
		assert.Nil(t, err)
	}

	cases := map[string]struct {
		start, end []byte
		limit      int
		want       []int64
	}{
		"all":          {want: []int64{1, 2, 3, 4, 5}},
		"after two":    {start: EncodeSequence(3), want: []int64{3, 4, 5}},
		"limited":      {start: EncodeSequence(2), limit: 2, want: []int64{2, 3}},
		"bounded":      {start: EncodeSequence(1), end: EncodeSequence(3), want: []int64{1, 2}},
		"out of range": {start: EncodeSequence(9), want: nil},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var res []counter
			_, err := b.Scan(db, tc.start, tc.end, tc.limit, &res)
			assert.Nil(t, err)
			var got []int64
			for _, c := range res {
				got = append(got, c.Count)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestModelBucketQuery(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{}, WithIndex("owner", ownerIndexer, false))
	_, err := b.Put(db, []byte("a"), &counter{Owner: "alice", Count: 1})
	assert.Nil(t, err)
	_, err = b.Put(db, []byte("b"), &counter{Owner: "bob", Count: 2})
	assert.Nil(t, err)

	qr := xswap.NewQueryRouter()
	b.Register("counters", qr)

	res, err := qr.Handler("/counters").Query(db, xswap.KeyQueryMod, []byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res))
	assert.Equal(t, []byte("cnts:a"), res[0].Key)

	res, err = qr.Handler("/counters").Query(db, xswap.PrefixQueryMod, nil)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(res))

	res, err = qr.Handler("/counters/owner").Query(db, xswap.KeyQueryMod, []byte("bob"))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res))
	assert.Equal(t, []byte("cnts:b"), res[0].Key)
}
