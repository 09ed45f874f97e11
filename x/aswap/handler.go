package aswap

import (
	"bytes"
	"crypto/sha256"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/coin"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/gconf"
	"github.com/noxlabs/xswap/orm"
	"github.com/noxlabs/xswap/x"
	"github.com/noxlabs/xswap/x/cash"
	"github.com/noxlabs/xswap/x/currency"
	"github.com/noxlabs/xswap/x/outbox"
)

const (
	createSwapCost  int64 = 300
	releaseSwapCost int64 = 100
	returnSwapCost  int64 = 100
)

// RegisterQuery registers swaps as "/aswaps" together with the
// "/aswaps/initiator", "/aswaps/recipient" and "/aswaps/hashlock" indexes.
func RegisterQuery(qr xswap.QueryRouter) {
	NewSwapBucket().Register("aswaps", qr)
}

// RegisterRoutes registers the swap handlers and the owner controlled
// administration handlers.
func RegisterRoutes(r xswap.Registry, auth x.Authenticator, bank cash.Controller, registry currency.Registry) {
	bucket := NewSwapBucket()
	custody := x.NewCustody(packageName, "escrow")
	r.Handle(pathCreateMsg, CreateSwapHandler{
		auth:     auth,
		bucket:   bucket,
		bank:     bank,
		registry: registry,
		custody:  custody,
	})
	r.Handle(pathReleaseMsg, ReleaseSwapHandler{
		bucket:  bucket,
		bank:    bank,
		custody: custody,
	})
	r.Handle(pathReturnMsg, ReturnSwapHandler{
		auth:    auth,
		bucket:  bucket,
		bank:    bank,
		custody: custody,
	})
	r.Handle(pathPauseMsg, gconf.NewPauseHandler(packageName, &Configuration{}, auth, true))
	r.Handle(pathUnpauseMsg, gconf.NewPauseHandler(packageName, &Configuration{}, auth, false))
	r.Handle(pathUpdateConfigurationMsg, gconf.NewUpdateConfigurationHandler(packageName, &Configuration{}, auth))
}

// EscrowAddress returns the account that holds the funds of all open
// swaps.
func EscrowAddress() xswap.Address {
	return x.NewCustody(packageName, "escrow").Address()
}

// CreateSwapHandler locks the initiator funds in a new swap.
type CreateSwapHandler struct {
	auth     x.Authenticator
	bucket   orm.ModelBucket
	bank     cash.Controller
	registry currency.Registry
	custody  *x.Custody
}

var _ xswap.Handler = CreateSwapHandler{}

func (h CreateSwapHandler) Check(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{GasAllocated: createSwapCost}, nil
}

func (h CreateSwapHandler) Deliver(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	msg, conf, now, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	feeAmount, err := x.FeeFor(msg.Amount.Amount, conf.FeeBps)
	if err != nil {
		return nil, errors.Wrap(err, "fee")
	}
	fee := coin.NewCoin(feeAmount, msg.Amount.Ticker)
	locked := coin.NewCoin(msg.Amount.Amount-feeAmount, msg.Amount.Ticker)
	if !locked.IsPositive() {
		return nil, errors.Wrap(errors.ErrAmount, "nothing left to lock after the fee")
	}

	if fee.IsPositive() {
		if err := h.bank.MoveCoins(db, msg.Source, conf.FeeRecipient, fee); err != nil {
			return nil, errors.Wrap(err, "pay fee")
		}
	}
	if err := h.bank.MoveCoins(db, msg.Source, h.custody.Address(), locked); err != nil {
		return nil, errors.Wrap(err, "lock funds")
	}

	id := SwapID(msg.Hashlock, msg.Source, msg.Timelock)
	swap := &Swap{
		Metadata:  &xswap.Metadata{Schema: 1},
		SwapRef:   msg.SwapRef,
		Hashlock:  msg.Hashlock,
		Timelock:  msg.Timelock,
		Initiator: msg.Source,
		Recipient: msg.Recipient,
		Amount:    locked,
		CreatedAt: now,
	}
	if _, err := h.bucket.Put(db, id, swap); err != nil {
		return nil, errors.Wrap(err, "save swap")
	}

	event := &InitiatedEvent{
		SwapID:    id,
		SwapRef:   msg.SwapRef,
		Hashlock:  msg.Hashlock,
		Initiator: msg.Source,
		Recipient: msg.Recipient,
		Amount:    locked,
		Fee:       fee,
		Timelock:  msg.Timelock,
	}
	if _, err := outbox.Emit(ctx, db, EventInitiated, event); err != nil {
		return nil, err
	}
	xswap.GetLogger(ctx).Info("swap initiated",
		"id", xswap.Address(id).String(), "amount", locked.String(), "fee", fee.String())
	return &xswap.DeliverResult{Data: id}, nil
}

func (h CreateSwapHandler) validate(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*CreateMsg, *Configuration, xswap.UnixTime, error) {
	conf, err := activeConf(db)
	if err != nil {
		return nil, nil, 0, err
	}
	var msg *CreateMsg
	if err := xswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, 0, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, nil, 0, errors.Wrap(errors.ErrUnauthorized, "source signature missing")
	}
	if err := h.custody.CheckDestination(msg.Recipient); err != nil {
		return nil, nil, 0, errors.Field("Recipient", err, "")
	}
	if err := currency.RequireSupported(db, h.registry, msg.Amount.Ticker); err != nil {
		return nil, nil, 0, err
	}
	now, err := xswap.BlockUnixTime(ctx)
	if err != nil {
		return nil, nil, 0, errors.Wrap(err, "block time")
	}
	if err := checkTimelockWindow(now, msg.Timelock, conf); err != nil {
		return nil, nil, 0, err
	}
	id := SwapID(msg.Hashlock, msg.Source, msg.Timelock)
	switch err := h.bucket.Has(db, id); {
	case err == nil:
		return nil, nil, 0, errors.Wrap(ErrDuplicateSwap, "hashlock already locked until this time")
	case !errors.ErrNotFound.Is(err):
		return nil, nil, 0, err
	}
	balance, err := h.bank.Balance(db, msg.Source)
	if err != nil {
		return nil, nil, 0, errors.Wrap(err, "balance")
	}
	if !balance.Contains(*msg.Amount) {
		return nil, nil, 0, errors.Wrapf(cash.ErrInsufficientBalance, "need %s", msg.Amount)
	}
	return msg, conf, now, nil
}

// ReleaseSwapHandler completes a swap when the correct secret is revealed.
type ReleaseSwapHandler struct {
	bucket  orm.ModelBucket
	bank    cash.Controller
	custody *x.Custody
}

var _ xswap.Handler = ReleaseSwapHandler{}

func (h ReleaseSwapHandler) Check(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{GasAllocated: releaseSwapCost}, nil
}

func (h ReleaseSwapHandler) Deliver(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	msg, swap, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	swap.Completed = true
	swap.Secret = msg.Secret
	if _, err := h.bucket.Put(db, msg.SwapID, swap); err != nil {
		return nil, errors.Wrap(err, "save swap")
	}
	if err := h.custody.Release(db, h.bank, swap.Recipient, swap.Amount); err != nil {
		return nil, err
	}
	event := &CompletedEvent{
		SwapID:    msg.SwapID,
		Recipient: swap.Recipient,
		Amount:    swap.Amount,
		Secret:    msg.Secret,
	}
	if _, err := outbox.Emit(ctx, db, EventCompleted, event); err != nil {
		return nil, err
	}
	xswap.GetLogger(ctx).Info("swap completed", "id", xswap.Address(msg.SwapID).String())
	return &xswap.DeliverResult{}, nil
}

func (h ReleaseSwapHandler) validate(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*ReleaseMsg, *Swap, error) {
	if _, err := activeConf(db); err != nil {
		return nil, nil, err
	}
	var msg *ReleaseMsg
	if err := xswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	swap, err := loadOpenSwap(h.bucket, db, msg.SwapID)
	if err != nil {
		return nil, nil, err
	}
	now, err := xswap.BlockUnixTime(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "block time")
	}
	if err := checkCompletable(now, swap.Timelock); err != nil {
		return nil, nil, err
	}
	hash := sha256.Sum256(msg.Secret)
	if !bytes.Equal(hash[:], swap.Hashlock) {
		return nil, nil, errors.Wrap(ErrInvalidSecret, "secret does not match the hashlock")
	}
	return msg, swap, nil
}

// ReturnSwapHandler refunds an expired swap to its initiator.
type ReturnSwapHandler struct {
	auth    x.Authenticator
	bucket  orm.ModelBucket
	bank    cash.Controller
	custody *x.Custody
}

var _ xswap.Handler = ReturnSwapHandler{}

func (h ReturnSwapHandler) Check(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{GasAllocated: returnSwapCost}, nil
}

func (h ReturnSwapHandler) Deliver(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	msg, swap, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	swap.Refunded = true
	if _, err := h.bucket.Put(db, msg.SwapID, swap); err != nil {
		return nil, errors.Wrap(err, "save swap")
	}
	if err := h.custody.Release(db, h.bank, swap.Initiator, swap.Amount); err != nil {
		return nil, err
	}
	event := &RefundedEvent{
		SwapID:    msg.SwapID,
		Initiator: swap.Initiator,
		Amount:    swap.Amount,
	}
	if _, err := outbox.Emit(ctx, db, EventRefunded, event); err != nil {
		return nil, err
	}
	xswap.GetLogger(ctx).Info("swap refunded", "id", xswap.Address(msg.SwapID).String())
	return &xswap.DeliverResult{}, nil
}

func (h ReturnSwapHandler) validate(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*ReturnMsg, *Swap, error) {
	if _, err := activeConf(db); err != nil {
		return nil, nil, err
	}
	var msg *ReturnMsg
	if err := xswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	swap, err := loadSwap(h.bucket, db, msg.SwapID)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, swap.Initiator) {
		return nil, nil, errors.Wrap(ErrNotInitiator, "only the initiator can refund")
	}
	if err := requireOpen(swap); err != nil {
		return nil, nil, err
	}
	now, err := xswap.BlockUnixTime(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "block time")
	}
	if err := checkRefundable(now, swap.Timelock); err != nil {
		return nil, nil, err
	}
	return msg, swap, nil
}

func loadSwap(bucket orm.ModelBucket, db xswap.ReadOnlyKVStore, id []byte) (*Swap, error) {
	var swap Swap
	switch err := bucket.One(db, id, &swap); {
	case err == nil:
		return &swap, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrSwapNotFound, "%X", id)
	default:
		return nil, errors.Wrap(err, "load swap")
	}
}

func loadOpenSwap(bucket orm.ModelBucket, db xswap.ReadOnlyKVStore, id []byte) (*Swap, error) {
	swap, err := loadSwap(bucket, db, id)
	if err != nil {
		return nil, err
	}
	if err := requireOpen(swap); err != nil {
		return nil, err
	}
	return swap, nil
}

func requireOpen(swap *Swap) error {
	switch {
	case swap.Completed:
		return errors.Wrap(ErrAlreadyCompleted, "swap is closed")
	case swap.Refunded:
		return errors.Wrap(ErrAlreadyRefunded, "swap is closed")
	}
	return nil
}
