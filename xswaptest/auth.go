package xswaptest

import (
	"context"
	"fmt"

	"github.com/noxlabs/xswap"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced conditions.
type Auth struct {
	// Signer represents an authentication of a single signer. This is a
	// convenience attribute when creating an authentication method for a
	// single signer.
	// When authenticating all signers, this condition is considered.
	Signer xswap.Condition

	// Signers represents an authentication of multiple signers.
	Signers []xswap.Condition
}

// GetConditions returns all configured signers.
func (a *Auth) GetConditions(xswap.Context) []xswap.Condition {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

// HasAddress returns true if given address belongs to one of the signers.
func (a *Auth) HasAddress(ctx xswap.Context, addr xswap.Address) bool {
	for _, s := range a.Signers {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	if a.Signer == nil {
		return false
	}
	return addr.Equals(a.Signer.Address())
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve permissions.
type CtxAuth struct {
	// Key used to set and retrieve conditions from the context. For
	// convenience only string type is accepted.
	Key string
}

// SetConditions returns a context with given conditions stored.
func (a *CtxAuth) SetConditions(ctx xswap.Context, permissions ...xswap.Condition) xswap.Context {
	return context.WithValue(ctx, a.Key, permissions)
}

// GetConditions returns conditions stored in the context.
func (a *CtxAuth) GetConditions(ctx xswap.Context) []xswap.Condition {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	conds, ok := val.([]xswap.Condition)
	if !ok {
		panic(fmt.Sprintf("instead of []xswap.Condition got %T", ctx.Value(a.Key)))
	}
	return conds
}

// HasAddress returns true if any stored condition matches given address.
func (a *CtxAuth) HasAddress(ctx xswap.Context, addr xswap.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
