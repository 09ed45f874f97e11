package sigs

import (
	"context"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/x"
)

type contextKey int // local to the sigs module

const (
	contextKeySigners contextKey = iota
)

// withSigners is a private method, as only this module
// can add a signer
func withSigners(ctx xswap.Context, signers []xswap.Condition) xswap.Context {
	return context.WithValue(ctx, contextKeySigners, signers)
}

// Authenticate reads the signers verified by the Decorator.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns who signed the current Context.
// May be empty
func (a Authenticate) GetConditions(ctx xswap.Context) []xswap.Condition {
	val, _ := ctx.Value(contextKeySigners).([]xswap.Condition)
	return val
}

// HasAddress returns true if any signer has given address.
func (a Authenticate) HasAddress(ctx xswap.Context, addr xswap.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
