package xswap

import "github.com/noxlabs/xswap/errors"

// Metadata is attached to every model and message. The schema version
// allows to migrate stored data when the layout of a model changes.
type Metadata struct {
	Schema uint32 `json:"schema"`
}

// Validate returns an error if this metadata is not usable.
func (m *Metadata) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrMetadata, "missing metadata")
	}
	if m.Schema < 1 {
		return errors.Wrap(errors.ErrMetadata, "schema version must be at least 1")
	}
	return nil
}

// Copy returns a deep copy of this metadata.
func (m *Metadata) Copy() *Metadata {
	if m == nil {
		return nil
	}
	cpy := *m
	return &cpy
}
