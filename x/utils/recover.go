package utils

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ xswap.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx xswap.Context, store xswap.KVStore, tx xswap.Tx, next xswap.Checker) (_ *xswap.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx xswap.Context, store xswap.KVStore, tx xswap.Tx, next xswap.Deliverer) (_ *xswap.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
