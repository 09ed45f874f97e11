package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, it Iterator) []Model {
	t.Helper()
	defer it.Close()
	var res []Model
	for ; it.Valid(); it.Next() {
		res = append(res, Model{Key: it.Key(), Value: it.Value()})
	}
	return res
}

func TestCacheWrapGetSetDelete(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte("1")))
	require.NoError(t, base.Set([]byte("b"), []byte("2")))

	cache := base.CacheWrap()
	require.NoError(t, cache.Set([]byte("c"), []byte("3")))
	require.NoError(t, cache.Delete([]byte("a")))

	val, err := cache.Get([]byte("a"))
	require.NoError(t, err)
	assert.Nil(t, val)
	has, err := cache.Has([]byte("c"))
	require.NoError(t, err)
	assert.True(t, has)

	// parent is not modified before the write
	val, err = base.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), val)
	has, err = base.Has([]byte("c"))
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, cache.Write())

	val, err = base.Get([]byte("a"))
	require.NoError(t, err)
	assert.Nil(t, val)
	val, err = base.Get([]byte("c"))
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), val)
}

func TestCacheWrapDiscard(t *testing.T) {
	base := MemStore()
	cache := base.CacheWrap()
	require.NoError(t, cache.Set([]byte("k"), []byte("v")))
	cache.Discard()

	has, err := base.Has([]byte("k"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestMergedIterator(t *testing.T) {
	base := MemStore()
	for _, k := range []string{"a", "c", "e", "g"} {
		require.NoError(t, base.Set([]byte(k), []byte("base-"+k)))
	}

	cache := base.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("cache-b")))
	require.NoError(t, cache.Set([]byte("c"), []byte("cache-c")))
	require.NoError(t, cache.Delete([]byte("e")))
	require.NoError(t, cache.Delete([]byte("z")))

	cases := map[string]struct {
		start, end []byte
		reverse    bool
		wantKeys   []string
		wantValues []string
	}{
		"full ascending": {
			wantKeys:   []string{"a", "b", "c", "g"},
			wantValues: []string{"base-a", "cache-b", "cache-c", "base-g"},
		},
		"full descending": {
			reverse:    true,
			wantKeys:   []string{"g", "c", "b", "a"},
			wantValues: []string{"base-g", "cache-c", "cache-b", "base-a"},
		},
		"bounded ascending": {
			start:      []byte("b"),
			end:        []byte("g"),
			wantKeys:   []string{"b", "c"},
			wantValues: []string{"cache-b", "cache-c"},
		},
		"bounded descending": {
			start:      []byte("a"),
			end:        []byte("c"),
			reverse:    true,
			wantKeys:   []string{"b", "a"},
			wantValues: []string{"cache-b", "base-a"},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var (
				it  Iterator
				err error
			)
			if tc.reverse {
				it, err = cache.ReverseIterator(tc.start, tc.end)
			} else {
				it, err = cache.Iterator(tc.start, tc.end)
			}
			require.NoError(t, err)
			models := collect(t, it)
			require.Len(t, models, len(tc.wantKeys))
			for i, m := range models {
				assert.Equal(t, tc.wantKeys[i], string(m.Key))
				assert.Equal(t, tc.wantValues[i], string(m.Value))
			}
		})
	}
}

func TestNestedCacheWrap(t *testing.T) {
	base := MemStore()
	outer := base.CacheWrap()
	inner := outer.CacheWrap()

	require.NoError(t, inner.Set([]byte("x"), []byte("1")))
	require.NoError(t, inner.Write())

	val, err := outer.Get([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), val)

	val, err = base.Get([]byte("x"))
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, outer.Write())
	val, err = base.Get([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), val)
}
