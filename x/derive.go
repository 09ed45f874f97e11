package x

import (
	"encoding/binary"

	"github.com/noxlabs/xswap/coin"
	"github.com/noxlabs/xswap/errors"
	"golang.org/x/crypto/sha3"
)

// DeriveIDLength is the length of identifiers returned by DeriveID.
const DeriveIDLength = 32

// DeriveID computes a deterministic identifier from given parts. Each part
// is length prefixed before hashing, so that moving bytes between two
// neighbouring parts produces a different identifier.
func DeriveID(parts ...[]byte) []byte {
	h := sha3.New256()
	var size [4]byte
	for _, p := range parts {
		binary.BigEndian.PutUint32(size[:], uint32(len(p)))
		_, _ = h.Write(size[:])
		_, _ = h.Write(p)
	}
	return h.Sum(nil)
}

// Int64Bytes encodes given value as 8 bytes, big endian. Use it to pass
// numbers to DeriveID.
func Int64Bytes(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

// MaxFeeBps is the highest fee rate accepted, one hundred percent.
const MaxFeeBps = 10000

// FeeFor returns floor(amount * bps / 10000).
func FeeFor(amount, bps int64) (int64, error) {
	if amount < 0 {
		return 0, errors.Wrap(errors.ErrAmount, "negative amount")
	}
	if bps < 0 || bps > MaxFeeBps {
		return 0, errors.Wrapf(errors.ErrInput, "fee rate %d out of range", bps)
	}
	// Splitting the amount keeps the multiplication in range for any
	// amount that fits int64 and bps up to MaxFeeBps.
	whole, rest := amount/MaxFeeBps, amount%MaxFeeBps
	high, err := coin.Mul64(whole, bps)
	if err != nil {
		return 0, err
	}
	return high + rest*bps/MaxFeeBps, nil
}
