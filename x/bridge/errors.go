package bridge

import (
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/x"
)

// Reserved codes 140~149
var (
	ErrNotRelayer              = errors.Register(140, "not a relayer")
	ErrAmountOutOfRange        = errors.Register(141, "amount out of range")
	ErrEmptyDestinationAddress = errors.Register(142, "empty destination address")
	ErrInsufficientReserves    = errors.Register(143, "insufficient reserves")
	ErrAlreadyProcessed        = errors.Register(144, "already processed")
	ErrRequestNotFound         = errors.Register(145, "request not found")
	ErrRequestNotExpired       = errors.Register(146, "request not expired")
)

func init() {
	x.RegisterCategory(x.CategoryAuthorization, ErrNotRelayer)
	x.RegisterCategory(x.CategoryValidation, ErrAmountOutOfRange, ErrEmptyDestinationAddress)
	x.RegisterCategory(x.CategoryState, ErrAlreadyProcessed, ErrRequestNotFound, ErrRequestNotExpired)
	x.RegisterCategory(x.CategoryResource, ErrInsufficientReserves)
}
