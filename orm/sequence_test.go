package orm

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/noxlabs/xswap/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	db := store.MemStore()

	cases := []struct {
		bucket     string
		init       int64
		increments int64
	}{
		0: {"alpha", 0, 22},
		1: {"beta", 0, 11},
		2: {"alpha", 22, 18},
		3: {"gamma", 0, 77},
		4: {"beta", 11, 248},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			s := NewSequence(tc.bucket, "id")
			orig, err := s.Latest(db)
			require.NoError(t, err)
			assert.Equal(t, tc.init, orig)

			var val int64
			for i := int64(0); i < tc.increments; i++ {
				val, err = s.NextInt(db)
				require.NoError(t, err)
			}
			// expect the final value to be this
			assert.Equal(t, tc.init+tc.increments, val)

			// make sure final value is bigger than original value
			// if we use the raw bytes to index stuff
			assert.Equal(t, 1, bytes.Compare(EncodeSequence(val), EncodeSequence(orig)))
		})
	}
}

func TestValidateSequence(t *testing.T) {
	assert.NoError(t, ValidateSequence(EncodeSequence(5)))
	assert.Error(t, ValidateSequence(nil))
	assert.Error(t, ValidateSequence([]byte{1, 2}))
}

func TestMultiRef(t *testing.T) {
	m, err := NewMultiRef([]byte("c"), []byte("a"), []byte("b"))
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b"), []byte("c")}, m.Refs)

	assert.Error(t, m.Add([]byte("b")))
	require.NoError(t, m.Remove([]byte("b")))
	assert.Error(t, m.Remove([]byte("b")))

	raw, err := m.Marshal()
	require.NoError(t, err)
	var loaded MultiRef
	require.NoError(t, loaded.Unmarshal(raw))
	assert.Equal(t, m.Refs, loaded.Refs)
}
