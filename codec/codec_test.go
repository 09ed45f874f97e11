package codec

import (
	"testing"

	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/xswaptest/assert"
)

type sample struct {
	Name   string
	Amount int64
	Hash   []byte
	Nested *nested
}

type nested struct {
	Schema uint32
}

func TestBinaryRoundtrip(t *testing.T) {
	in := sample{
		Name:   "swap",
		Amount: 99900,
		Hash:   []byte{1, 2, 3},
		Nested: &nested{Schema: 1},
	}
	bz, err := Marshal(&in)
	assert.Nil(t, err)

	var out sample
	assert.Nil(t, Unmarshal(bz, &out))
	assert.Equal(t, in, out)

	// Serialization must be deterministic.
	again, err := Marshal(&out)
	assert.Nil(t, err)
	assert.Equal(t, bz, again)
}

func TestUnmarshalGarbage(t *testing.T) {
	var out sample
	err := Unmarshal([]byte{0xff, 0xff, 0xff}, &out)
	assert.IsErr(t, errors.ErrType, err)
}
