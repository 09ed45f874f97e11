package xswaptest

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/crypto"
)

// NewKey returns a newly generated unique private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns a newly generated unique condition. The condition is
// of a signature key.
func NewCondition() xswap.Condition {
	return NewKey().PublicKey().Condition()
}

var sequence uint64

// SequenceID returns a unique 8 byte value, useful as a model key.
func SequenceID() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, atomic.AddUint64(&sequence, 1))
	return b
}
