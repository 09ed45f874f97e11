package sigs

import (
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/x"
)

// Reserved codes 150~159
var (
	ErrInvalidSequence = errors.Register(150, "invalid sequence number")
)

func init() {
	x.RegisterCategory(x.CategoryAuthorization, ErrInvalidSequence)
}
