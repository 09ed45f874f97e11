package currency

import (
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/x"
)

// Reserved codes 130~139
var (
	ErrUnsupportedAsset = errors.Register(130, "unsupported asset")
)

func init() {
	x.RegisterCategory(x.CategoryValidation, ErrUnsupportedAsset)
}
