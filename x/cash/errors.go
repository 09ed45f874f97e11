package cash

import (
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/x"
)

// Reserved codes 110~119
var (
	ErrInsufficientBalance = errors.Register(110, "insufficient balance")
)

func init() {
	x.RegisterCategory(x.CategoryResource, ErrInsufficientBalance)
}
