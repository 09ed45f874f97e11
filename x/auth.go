package x

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system,
// rather than hard-coding x/sigs for all extensions.
type Authenticator interface {
	// GetConditions reveals all Conditions fulfilled,
	// you may want GetAddresses helper
	GetConditions(xswap.Context) []xswap.Condition
	// HasAddress checks if any condition matches this address
	HasAddress(xswap.Context, xswap.Address) bool
}

// MultiAuth chains together many Authenticators into one
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetConditions combines all Conditions from all Authenticators
func (m MultiAuth) GetConditions(ctx xswap.Context) []xswap.Condition {
	var res []xswap.Condition
	for _, impl := range m.impls {
		add := impl.GetConditions(ctx)
		if len(add) > 0 {
			res = append(res, add...)
		}
	}
	return res
}

// HasAddress returns true iff any Authenticator support this
func (m MultiAuth) HasAddress(ctx xswap.Context, addr xswap.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// GetAddresses wraps the GetConditions method of any Authenticator
func GetAddresses(ctx xswap.Context, auth Authenticator) []xswap.Address {
	perms := auth.GetConditions(ctx)
	addrs := make([]xswap.Address, len(perms))
	for i, p := range perms {
		addrs[i] = p.Address()
	}
	return addrs
}

// MainSigner returns the first permission if any, otherwise nil
func MainSigner(ctx xswap.Context, auth Authenticator) xswap.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// RequireOwner returns ErrNotOwner unless the given owner address signed
// the transaction.
func RequireOwner(ctx xswap.Context, auth Authenticator, owner xswap.Address) error {
	if len(owner) == 0 {
		return errors.Wrap(ErrNotOwner, "owner not configured")
	}
	if !auth.HasAddress(ctx, owner) {
		return errors.Wrapf(ErrNotOwner, "%s", owner)
	}
	return nil
}
