package iavl

import (
	"testing"

	"github.com/noxlabs/xswap/store"
	"github.com/noxlabs/xswap/xswaptest/assert"
)

func assertGetHas(t testing.TB, kv store.ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, has, exists)
}

// TestCacheGetSet does basic sanity checks on our cache
func TestCacheGetSet(t *testing.T) {
	base := MemCommitStore().Adapter()

	k, v := []byte("swap"), []byte("open")
	assertGetHas(t, base, k, nil, false)
	assert.Nil(t, base.Set(k, v))
	assertGetHas(t, base, k, v, true)

	// now layer a btree on top and make sure that we get
	// base data
	cache := base.CacheWrap()
	assertGetHas(t, cache, k, v, true)

	// writing more data is only visible in the cache
	k2, v2 := []byte("bridge"), []byte("reserve")
	assert.Nil(t, cache.Set(k2, v2))
	assertGetHas(t, cache, k2, v2, true)
	assertGetHas(t, base, k2, nil, false)

	// we can write the cache to the base layer...
	assert.Nil(t, cache.Write())
	assertGetHas(t, base, k2, v2, true)

	// we can discard one
	k3, v3 := []byte("relayer"), []byte("trusted")
	c2 := base.CacheWrap()
	assert.Nil(t, c2.Set(k3, v3))
	c2.Discard()
	assertGetHas(t, base, k3, nil, false)

	// and delete in another
	c3 := base.CacheWrap()
	assert.Nil(t, c3.Delete(k))
	assert.Nil(t, c3.Write())
	assertGetHas(t, base, k, nil, false)
	assertGetHas(t, base, k2, v2, true)
}

func TestCommitAndReload(t *testing.T) {
	commit := MemCommitStore()

	id, err := commit.LatestVersion()
	assert.Nil(t, err)
	assert.Equal(t, int64(0), id.Version)

	cache := commit.CacheWrap()
	assert.Nil(t, cache.Set([]byte("a"), []byte("1")))
	assert.Nil(t, cache.Write())

	// not visible in the committed state until commit
	val, err := commit.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, []byte(nil), val)

	id, err = commit.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), id.Version)
	if len(id.Hash) == 0 {
		t.Fatal("empty hash after commit")
	}

	val, err = commit.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("1"), val)

	latest, err := commit.LatestVersion()
	assert.Nil(t, err)
	assert.Equal(t, id, latest)
}

func TestAdapterIterator(t *testing.T) {
	base := MemCommitStore().Adapter()
	for _, k := range []string{"a", "b", "c", "d"} {
		assert.Nil(t, base.Set([]byte(k), []byte(k)))
	}

	it, err := base.Iterator([]byte("b"), []byte("d"))
	assert.Nil(t, err)
	var keys []string
	for ; it.Valid(); it.Next() {
		keys = append(keys, string(it.Key()))
	}
	it.Close()
	assert.Equal(t, []string{"b", "c"}, keys)

	it, err = base.ReverseIterator(nil, nil)
	assert.Nil(t, err)
	keys = nil
	for ; it.Valid(); it.Next() {
		keys = append(keys, string(it.Key()))
	}
	it.Close()
	assert.Equal(t, []string{"d", "c", "b", "a"}, keys)
}
