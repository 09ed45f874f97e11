package x

import (
	"github.com/noxlabs/xswap/errors"
)

// Reserved codes 100~109
var (
	ErrPaused   = errors.Register(100, "paused")
	ErrNotOwner = errors.Register(101, "not the owner")
)

// Error categories as reported by ErrorCategory.
const (
	CategoryAuthorization = "authorization"
	CategoryValidation    = "validation"
	CategoryState         = "state conflict"
	CategoryResource      = "resource"
	CategoryInternal      = "internal"
)

var categories = map[*errors.Error]string{}

// RegisterCategory assigns given root errors to a category. Extensions call
// it next to the declaration of their root errors.
func RegisterCategory(category string, errs ...*errors.Error) {
	for _, e := range errs {
		categories[e] = category
	}
}

func init() {
	RegisterCategory(CategoryAuthorization, errors.ErrUnauthorized, ErrNotOwner)
	RegisterCategory(CategoryValidation,
		errors.ErrMsg,
		errors.ErrAmount,
		errors.ErrInput,
		errors.ErrEmpty,
		errors.ErrCurrency,
		errors.ErrMetadata,
	)
	RegisterCategory(CategoryState,
		ErrPaused,
		errors.ErrNotFound,
		errors.ErrDuplicate,
		errors.ErrExpired,
		errors.ErrState,
	)
	RegisterCategory(CategoryResource, errors.ErrInsufficientAmount)
}

// ErrorCategory returns the category of the root cause of given error.
// Errors that were not assigned a category are internal. For a group of
// errors the first one decides.
func ErrorCategory(err error) string {
	if err == nil {
		return ""
	}
	for {
		if e, ok := err.(*errors.Error); ok {
			if category, ok := categories[e]; ok {
				return category
			}
			return CategoryInternal
		}
		if u, ok := err.(interface{ Unpack() []error }); ok {
			if errs := u.Unpack(); len(errs) > 0 {
				err = errs[0]
				continue
			}
		}
		c, ok := err.(interface{ Cause() error })
		if !ok || c.Cause() == nil {
			return CategoryInternal
		}
		err = c.Cause()
	}
}
