package orm

import (
	"github.com/noxlabs/xswap/codec"
	"github.com/noxlabs/xswap/errors"
)

// counter is a model used by tests only.
type counter struct {
	Owner string
	Count int64
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrModel, "negative count")
	}
	return nil
}

func (c *counter) Marshal() ([]byte, error) {
	return codec.Marshal(c)
}

func (c *counter) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, c)
}

// otherModel is a model used by tests only.
type otherModel struct {
	Name string
}

func (o *otherModel) Validate() error {
	return nil
}

func (o *otherModel) Marshal() ([]byte, error) {
	return codec.Marshal(o)
}

func (o *otherModel) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, o)
}

func ownerIndexer(obj Object) ([]byte, error) {
	c, ok := obj.Value().(*counter)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", obj.Value())
	}
	if c.Owner == "" {
		return nil, nil
	}
	return []byte(c.Owner), nil
}
