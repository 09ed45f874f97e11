package gconf

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/codec"
	"github.com/noxlabs/xswap/errors"
)

type myconfig struct {
	Metadata *xswap.Metadata
	Owner    xswap.Address
	Num      int64
	Str      string
	Paused   bool
}

func (c *myconfig) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if c.Num < 0 {
		return errors.Field("Num", errors.ErrInput, "negative")
	}
	return errors.Field("Owner", c.Owner.Validate(), "invalid owner")
}

func (c *myconfig) GetOwner() xswap.Address {
	return c.Owner
}

func (c *myconfig) SetPaused(p bool) {
	c.Paused = p
}

func (c *myconfig) Marshal() ([]byte, error) {
	return codec.Marshal(c)
}

func (c *myconfig) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, c)
}

type myconfigMsg struct {
	Metadata *xswap.Metadata
	Patch    *myconfig
}

func (m *myconfigMsg) Path() string {
	return "test/update_configuration"
}

func (m *myconfigMsg) Validate() error {
	return m.Metadata.Validate()
}

func (m *myconfigMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *myconfigMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}
