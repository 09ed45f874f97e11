package aswap

import (
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/x"
)

// Reserved codes 120~129
var (
	ErrInvalidTimelock       = errors.Register(120, "invalid timelock")
	ErrInvalidHashlockLength = errors.Register(121, "invalid hashlock length")
	ErrDuplicateSwap         = errors.Register(122, "duplicate swap")
	ErrSwapNotFound          = errors.Register(123, "swap not found")
	ErrAlreadyCompleted      = errors.Register(124, "swap already completed")
	ErrAlreadyRefunded       = errors.Register(125, "swap already refunded")
	ErrNotYetExpired         = errors.Register(126, "swap not yet expired")
	ErrInvalidSecret         = errors.Register(127, "invalid secret")
	ErrNotInitiator          = errors.Register(128, "not the swap initiator")
)

func init() {
	x.RegisterCategory(x.CategoryAuthorization, ErrNotInitiator)
	x.RegisterCategory(x.CategoryValidation, ErrInvalidTimelock, ErrInvalidHashlockLength)
	x.RegisterCategory(x.CategoryState,
		ErrDuplicateSwap,
		ErrSwapNotFound,
		ErrAlreadyCompleted,
		ErrAlreadyRefunded,
		ErrNotYetExpired,
		ErrInvalidSecret,
	)
}
