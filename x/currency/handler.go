package currency

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/orm"
	"github.com/noxlabs/xswap/x"
)

const newTokenInfoCost = 100

// RegisterQuery will register the token bucket as "/tokens"
func RegisterQuery(qr xswap.QueryRouter) {
	NewTokenInfoBucket().Register("tokens", qr)
}

// RegisterRoutes registers the currency handlers. When issuer is not nil,
// only the issuer can register new assets.
func RegisterRoutes(r xswap.Registry, auth x.Authenticator, issuer xswap.Address) {
	r.Handle(pathCreateMsg, newCreateTokenInfoHandler(auth, issuer))
}

func newCreateTokenInfoHandler(auth x.Authenticator, issuer xswap.Address) xswap.Handler {
	return &createTokenInfoHandler{
		auth:   auth,
		issuer: issuer,
		bucket: NewTokenInfoBucket(),
	}
}

type createTokenInfoHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	issuer xswap.Address
}

func (h *createTokenInfoHandler) Check(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{GasAllocated: newTokenInfoCost}, nil
}

func (h *createTokenInfoHandler) Deliver(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	t := &TokenInfo{
		Metadata:  &xswap.Metadata{Schema: 1},
		Name:      msg.Name,
		MinAmount: msg.MinAmount,
		MaxAmount: msg.MaxAmount,
	}
	if err := saveToken(db, h.bucket, msg.Ticker, t); err != nil {
		return nil, err
	}
	return &xswap.DeliverResult{}, nil
}

func (h *createTokenInfoHandler) validate(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*CreateMsg, error) {
	var msg *CreateMsg
	if err := xswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if h.issuer != nil && !h.auth.HasAddress(ctx, h.issuer) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "token only issued by %s", h.issuer)
	}
	switch err := h.bucket.Has(db, []byte(msg.Ticker)); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "ticker %s", msg.Ticker)
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}
	return msg, nil
}
