package sigs

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/codec"
	"github.com/noxlabs/xswap/errors"
)

const (
	pathBumpSequenceMsg = "sigs/bump_sequence"

	maxSequenceIncrement = 1000
	minSequenceIncrement = 1
)

// BumpSequenceMsg increments the sequence of the main signer, which
// invalidates any signed but not yet submitted transaction.
type BumpSequenceMsg struct {
	Metadata  *xswap.Metadata `json:"metadata"`
	Increment uint32          `json:"increment"`
}

var _ xswap.Msg = (*BumpSequenceMsg)(nil)

func (BumpSequenceMsg) Path() string {
	return pathBumpSequenceMsg
}

func (m *BumpSequenceMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Increment < minSequenceIncrement {
		return errors.Wrapf(errors.ErrMsg, "increment must be at least %d", minSequenceIncrement)
	}
	if m.Increment > maxSequenceIncrement {
		return errors.Wrapf(errors.ErrMsg, "increment must not be greater than %d", maxSequenceIncrement)
	}
	return nil
}

func (m *BumpSequenceMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *BumpSequenceMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}
