package bridge

import (
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
	depositCost     int64 = 300
	releaseCost     int64 = 200
	addReservesCost int64 = 100
	relayerCost     int64 = 50
	confirmCost     int64 = 50
	expireCost      int64 = 150
	withdrawCost    int64 = 100
)

// RegisterQuery registers all pool buckets under the "/bridge/" prefix.
func RegisterQuery(qr xswap.QueryRouter) {
	NewRequestBucket().Register("bridge/requests", qr)
	NewReserveBucket().Register("bridge/reserves", qr)
	NewStatsBucket().Register("bridge/stats", qr)
	NewRelayerBucket().Register("bridge/relayers", qr)
	NewReleaseBucket().Register("bridge/releases", qr)
}

// RegisterRoutes registers the pool handlers and the owner controlled
// administration handlers.
func RegisterRoutes(r xswap.Registry, auth x.Authenticator, bank cash.Controller, registry currency.Registry) {
	p := newPool(auth, bank, registry)
	r.Handle(pathDepositMsg, DepositHandler{p})
	r.Handle(pathReleaseMsg, ReleaseHandler{p})
	r.Handle(pathAddReservesMsg, AddReservesHandler{p})
	r.Handle(pathAddRelayerMsg, RelayerHandler{pool: p, add: true})
	r.Handle(pathRemoveRelayerMsg, RelayerHandler{pool: p, add: false})
	r.Handle(pathConfirmRequestMsg, ConfirmRequestHandler{p})
	r.Handle(pathExpireRequestMsg, ExpireRequestHandler{p})
	r.Handle(pathWithdrawFeesMsg, WithdrawFeesHandler{p})
	r.Handle(pathPauseMsg, gconf.NewPauseHandler(packageName, &Configuration{}, auth, true))
	r.Handle(pathUnpauseMsg, gconf.NewPauseHandler(packageName, &Configuration{}, auth, false))
	r.Handle(pathUpdateConfigurationMsg, gconf.NewUpdateConfigurationHandler(packageName, &Configuration{}, auth))
}

// PoolAddress returns the account that holds all deposits and reserves.
func PoolAddress() xswap.Address {
	return x.NewCustody(packageName, "pool").Address()
}

// pool is the state shared by all handlers.
type pool struct {
	auth     x.Authenticator
	bank     cash.Controller
	registry currency.Registry
	custody  *x.Custody
	nonce    orm.Sequence

	requests orm.ModelBucket
	reserves orm.ModelBucket
	stats    orm.ModelBucket
	relayers orm.ModelBucket
	releases orm.ModelBucket
}

func newPool(auth x.Authenticator, bank cash.Controller, registry currency.Registry) *pool {
	return &pool{
		auth:     auth,
		bank:     bank,
		registry: registry,
		custody:  x.NewCustody(packageName, "pool"),
		nonce:    orm.NewSequence("request", "nonce"),
		requests: NewRequestBucket(),
		reserves: NewReserveBucket(),
		stats:    NewStatsBucket(),
		relayers: NewRelayerBucket(),
		releases: NewReleaseBucket(),
	}
}

// relayer returns the first transaction signer that belongs to the
// relayer set.
func (p *pool) relayer(ctx xswap.Context, db xswap.ReadOnlyKVStore) (xswap.Address, error) {
	for _, addr := range x.GetAddresses(ctx, p.auth) {
		switch err := p.relayers.Has(db, addr); {
		case err == nil:
			return addr, nil
		case !errors.ErrNotFound.Is(err):
			return nil, errors.Wrap(err, "relayer")
		}
	}
	return nil, errors.Wrap(ErrNotRelayer, "no relayer signature")
}

func (p *pool) reserve(db xswap.ReadOnlyKVStore, ticker string) (*Reserve, error) {
	var r Reserve
	switch err := p.reserves.One(db, []byte(ticker), &r); {
	case err == nil:
		return &r, nil
	case errors.ErrNotFound.Is(err):
		return &Reserve{Metadata: &xswap.Metadata{Schema: 1}, Ticker: ticker}, nil
	default:
		return nil, errors.Wrap(err, "load reserve")
	}
}

func (p *pool) saveReserve(db xswap.KVStore, r *Reserve) error {
	if _, err := p.reserves.Put(db, []byte(r.Ticker), r); err != nil {
		return errors.Wrap(err, "save reserve")
	}
	return nil
}

func (p *pool) statsFor(db xswap.ReadOnlyKVStore, ticker string) (*Stats, error) {
	var s Stats
	switch err := p.stats.One(db, []byte(ticker), &s); {
	case err == nil:
		return &s, nil
	case errors.ErrNotFound.Is(err):
		return &Stats{Metadata: &xswap.Metadata{Schema: 1}, Ticker: ticker}, nil
	default:
		return nil, errors.Wrap(err, "load stats")
	}
}

func (p *pool) saveStats(db xswap.KVStore, s *Stats) error {
	if _, err := p.stats.Put(db, []byte(s.Ticker), s); err != nil {
		return errors.Wrap(err, "save stats")
	}
	return nil
}

func (p *pool) request(db xswap.ReadOnlyKVStore, id []byte) (*Request, error) {
	var r Request
	switch err := p.requests.One(db, id, &r); {
	case err == nil:
		return &r, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrRequestNotFound, "%X", id)
	default:
		return nil, errors.Wrap(err, "load request")
	}
}

// bounds returns the accepted deposit range of an asset. Registry bounds
// take precedence, configuration bounds apply when the registry defines
// none.
func (p *pool) bounds(db xswap.ReadOnlyKVStore, conf *Configuration, ticker string) (int64, int64, error) {
	min, max, found, err := p.registry.AmountBounds(db, ticker)
	if err != nil {
		return 0, 0, errors.Wrap(err, "registry bounds")
	}
	if !found || (min == 0 && max == 0) {
		return conf.MinAmount, conf.MaxAmount, nil
	}
	return min, max, nil
}

func (p *pool) requireFunds(db xswap.ReadOnlyKVStore, owner xswap.Address, amount coin.Coin) error {
	balance, err := p.bank.Balance(db, owner)
	if err != nil {
		return errors.Wrap(err, "balance")
	}
	if !balance.Contains(amount) {
		return errors.Wrapf(cash.ErrInsufficientBalance, "need %s", amount)
	}
	return nil
}

// DepositHandler takes a deposit into the pool and records a request to
// be paid out on the destination chain.
type DepositHandler struct {
	*pool
}

var _ xswap.Handler = DepositHandler{}

func (h DepositHandler) Check(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{GasAllocated: depositCost}, nil
}

func (h DepositHandler) Deliver(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := xswap.BlockUnixTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}

	feeAmount, err := x.FeeFor(msg.Amount.Amount, conf.FeeBps)
	if err != nil {
		return nil, errors.Wrap(err, "fee")
	}
	fee := coin.NewCoin(feeAmount, msg.Amount.Ticker)
	net := coin.NewCoin(msg.Amount.Amount-feeAmount, msg.Amount.Ticker)
	if !net.IsPositive() {
		return nil, errors.Wrap(errors.ErrAmount, "nothing left to bridge after the fee")
	}

	if err := h.bank.MoveCoins(db, msg.User, h.custody.Address(), *msg.Amount); err != nil {
		return nil, errors.Wrap(err, "deposit")
	}

	reserve, err := h.reserve(db, net.Ticker)
	if err != nil {
		return nil, err
	}
	if reserve.Available, err = coin.Add64(reserve.Available, net.Amount); err != nil {
		return nil, errors.Wrap(err, "reserve")
	}
	if err := h.saveReserve(db, reserve); err != nil {
		return nil, err
	}

	stats, err := h.statsFor(db, net.Ticker)
	if err != nil {
		return nil, err
	}
	if stats.FeeCollected, err = coin.Add64(stats.FeeCollected, fee.Amount); err != nil {
		return nil, errors.Wrap(err, "fee collected")
	}
	if stats.TotalBridgedOut, err = coin.Add64(stats.TotalBridgedOut, net.Amount); err != nil {
		return nil, errors.Wrap(err, "total bridged out")
	}
	if err := h.saveStats(db, stats); err != nil {
		return nil, err
	}

	nonce, err := h.nonce.NextInt(db)
	if err != nil {
		return nil, errors.Wrap(err, "nonce")
	}
	id := RequestID(msg.User, msg.DestinationChain, msg.Amount.Amount, now, nonce)
	req := &Request{
		Metadata:           &xswap.Metadata{Schema: 1},
		Nonce:              nonce,
		User:               msg.User,
		DestinationChain:   msg.DestinationChain,
		DestinationAddress: msg.DestinationAddress,
		Amount:             *msg.Amount,
		Fee:                fee,
		Timestamp:          now,
	}
	if _, err := h.requests.Put(db, id, req); err != nil {
		return nil, errors.Wrap(err, "save request")
	}

	event := &RequestCreatedEvent{
		RequestID:          id,
		User:               msg.User,
		DestinationChain:   msg.DestinationChain,
		DestinationAddress: msg.DestinationAddress,
		Amount:             *msg.Amount,
		Fee:                fee,
		Net:                net,
		Timestamp:          now,
	}
	if _, err := outbox.Emit(ctx, db, EventRequestCreated, event); err != nil {
		return nil, err
	}
	xswap.GetLogger(ctx).Info("bridge deposit",
		"id", xswap.Address(id).String(), "net", net.String(), "fee", fee.String(), "chain", msg.DestinationChain)
	return &xswap.DeliverResult{Data: id}, nil
}

func (h DepositHandler) validate(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*DepositMsg, *Configuration, error) {
	conf, err := activeConf(db)
	if err != nil {
		return nil, nil, err
	}
	var msg *DepositMsg
	if err := xswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.User) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "user signature missing")
	}
	if err := currency.RequireSupported(db, h.registry, msg.Amount.Ticker); err != nil {
		return nil, nil, err
	}
	min, max, err := h.bounds(db, conf, msg.Amount.Ticker)
	if err != nil {
		return nil, nil, err
	}
	if (min != 0 && msg.Amount.Amount < min) || (max != 0 && msg.Amount.Amount > max) {
		return nil, nil, errors.Wrapf(ErrAmountOutOfRange, "%d not in [%d, %d]", msg.Amount.Amount, min, max)
	}
	if err := validateDestination(msg.DestinationAddress); err != nil {
		return nil, nil, errors.Wrap(err, "destination address")
	}
	if err := h.requireFunds(db, msg.User, *msg.Amount); err != nil {
		return nil, nil, err
	}
	return msg, conf, nil
}

// ReleaseHandler pays out of the reserves a deposit made on another chain.
type ReleaseHandler struct {
	*pool
}

var _ xswap.Handler = ReleaseHandler{}

func (h ReleaseHandler) Check(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{GasAllocated: releaseCost}, nil
}

func (h ReleaseHandler) Deliver(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	msg, relayer, reserve, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := xswap.BlockUnixTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}

	reserve.Available -= msg.Amount.Amount
	if err := h.saveReserve(db, reserve); err != nil {
		return nil, err
	}
	if err := h.custody.Release(db, h.bank, msg.User, *msg.Amount); err != nil {
		return nil, err
	}

	stats, err := h.statsFor(db, msg.Amount.Ticker)
	if err != nil {
		return nil, err
	}
	if stats.TotalBridgedIn, err = coin.Add64(stats.TotalBridgedIn, msg.Amount.Amount); err != nil {
		return nil, errors.Wrap(err, "total bridged in")
	}
	if err := h.saveStats(db, stats); err != nil {
		return nil, err
	}

	release := &Release{
		Metadata:  &xswap.Metadata{Schema: 1},
		RequestID: msg.RequestID,
		Relayer:   relayer,
		User:      msg.User,
		Amount:    *msg.Amount,
		Time:      now,
	}
	if _, err := h.releases.Put(db, msg.RequestID, release); err != nil {
		return nil, errors.Wrap(err, "save release")
	}

	switch req, err := h.request(db, msg.RequestID); {
	case err == nil:
		if !req.Processed && !req.Expired {
			req.Processed = true
			if _, err := h.requests.Put(db, msg.RequestID, req); err != nil {
				return nil, errors.Wrap(err, "save request")
			}
		}
	case !ErrRequestNotFound.Is(err):
		return nil, err
	}

	event := &RequestProcessedEvent{
		RequestID: msg.RequestID,
		Relayer:   relayer,
		User:      msg.User,
		Amount:    *msg.Amount,
	}
	if _, err := outbox.Emit(ctx, db, EventRequestProcessed, event); err != nil {
		return nil, err
	}
	xswap.GetLogger(ctx).Info("bridge release",
		"id", xswap.Address(msg.RequestID).String(), "amount", msg.Amount.String(), "relayer", relayer.String())
	return &xswap.DeliverResult{}, nil
}

func (h ReleaseHandler) validate(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*ReleaseMsg, xswap.Address, *Reserve, error) {
	if _, err := activeConf(db); err != nil {
		return nil, nil, nil, err
	}
	var msg *ReleaseMsg
	if err := xswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	relayer, err := h.relayer(ctx, db)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := h.custody.CheckDestination(msg.User); err != nil {
		return nil, nil, nil, errors.Field("User", err, "")
	}
	switch err := h.releases.Has(db, msg.RequestID); {
	case err == nil:
		return nil, nil, nil, errors.Wrapf(ErrAlreadyProcessed, "request %X already released", msg.RequestID)
	case !errors.ErrNotFound.Is(err):
		return nil, nil, nil, errors.Wrap(err, "release")
	}
	reserve, err := h.reserve(db, msg.Amount.Ticker)
	if err != nil {
		return nil, nil, nil, err
	}
	if reserve.Available < msg.Amount.Amount {
		return nil, nil, nil, errors.Wrapf(ErrInsufficientReserves, "%d %s available", reserve.Available, reserve.Ticker)
	}
	return msg, relayer, reserve, nil
}

// AddReservesHandler moves owner funds into the pool reserves.
type AddReservesHandler struct {
	*pool
}

var _ xswap.Handler = AddReservesHandler{}

func (h AddReservesHandler) Check(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{GasAllocated: addReservesCost}, nil
}

func (h AddReservesHandler) Deliver(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.bank.MoveCoins(db, conf.Owner, h.custody.Address(), *msg.Amount); err != nil {
		return nil, errors.Wrap(err, "fund reserves")
	}
	reserve, err := h.reserve(db, msg.Amount.Ticker)
	if err != nil {
		return nil, err
	}
	if reserve.Available, err = coin.Add64(reserve.Available, msg.Amount.Amount); err != nil {
		return nil, errors.Wrap(err, "reserve")
	}
	if err := h.saveReserve(db, reserve); err != nil {
		return nil, err
	}
	event := &ReservesAddedEvent{Amount: *msg.Amount, Available: reserve.Available}
	if _, err := outbox.Emit(ctx, db, EventReservesAdded, event); err != nil {
		return nil, err
	}
	xswap.GetLogger(ctx).Info("bridge reserves added", "amount", msg.Amount.String(), "available", reserve.Available)
	return &xswap.DeliverResult{}, nil
}

func (h AddReservesHandler) validate(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*AddReservesMsg, *Configuration, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	var msg *AddReservesMsg
	if err := xswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if err := x.RequireOwner(ctx, h.auth, conf.Owner); err != nil {
		return nil, nil, err
	}
	if err := currency.RequireSupported(db, h.registry, msg.Amount.Ticker); err != nil {
		return nil, nil, err
	}
	if err := h.requireFunds(db, conf.Owner, *msg.Amount); err != nil {
		return nil, nil, err
	}
	return msg, conf, nil
}

// RelayerHandler adds an address to or removes it from the relayer set.
// Adding a member or removing a stranger is a no-op.
type RelayerHandler struct {
	*pool
	add bool
}

var _ xswap.Handler = RelayerHandler{}

func (h RelayerHandler) Check(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{GasAllocated: relayerCost}, nil
}

func (h RelayerHandler) Deliver(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	relayer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	err = h.relayers.Has(db, relayer)
	exists := err == nil
	if err != nil && !errors.ErrNotFound.Is(err) {
		return nil, errors.Wrap(err, "relayer")
	}

	switch {
	case h.add && !exists:
		r := &Relayer{Metadata: &xswap.Metadata{Schema: 1}, Address: relayer}
		if _, err := h.relayers.Put(db, relayer, r); err != nil {
			return nil, errors.Wrap(err, "save relayer")
		}
		xswap.GetLogger(ctx).Info("relayer added", "address", relayer.String())
	case !h.add && exists:
		if err := h.relayers.Delete(db, relayer); err != nil {
			return nil, errors.Wrap(err, "delete relayer")
		}
		xswap.GetLogger(ctx).Info("relayer removed", "address", relayer.String())
	}
	return &xswap.DeliverResult{}, nil
}

func (h RelayerHandler) validate(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (xswap.Address, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	var relayer xswap.Address
	if h.add {
		var msg *AddRelayerMsg
		if err := xswap.LoadMsg(tx, &msg); err != nil {
			return nil, errors.Wrap(err, "load msg")
		}
		relayer = msg.Relayer
	} else {
		var msg *RemoveRelayerMsg
		if err := xswap.LoadMsg(tx, &msg); err != nil {
			return nil, errors.Wrap(err, "load msg")
		}
		relayer = msg.Relayer
	}
	if err := x.RequireOwner(ctx, h.auth, conf.Owner); err != nil {
		return nil, err
	}
	return relayer, nil
}

// ConfirmRequestHandler marks a local request as paid out on the
// destination chain.
type ConfirmRequestHandler struct {
	*pool
}

var _ xswap.Handler = ConfirmRequestHandler{}

func (h ConfirmRequestHandler) Check(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{GasAllocated: confirmCost}, nil
}

func (h ConfirmRequestHandler) Deliver(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	msg, req, relayer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	req.Processed = true
	if _, err := h.requests.Put(db, msg.RequestID, req); err != nil {
		return nil, errors.Wrap(err, "save request")
	}
	event := &RequestConfirmedEvent{RequestID: msg.RequestID, Relayer: relayer}
	if _, err := outbox.Emit(ctx, db, EventRequestConfirmed, event); err != nil {
		return nil, err
	}
	return &xswap.DeliverResult{}, nil
}

func (h ConfirmRequestHandler) validate(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*ConfirmRequestMsg, *Request, xswap.Address, error) {
	if _, err := activeConf(db); err != nil {
		return nil, nil, nil, err
	}
	var msg *ConfirmRequestMsg
	if err := xswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	relayer, err := h.relayer(ctx, db)
	if err != nil {
		return nil, nil, nil, err
	}
	req, err := h.request(db, msg.RequestID)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := requirePending(req); err != nil {
		return nil, nil, nil, err
	}
	return msg, req, relayer, nil
}

// ExpireRequestHandler refunds the net amount of a request that was not
// processed within the configured timeout. The fee is not refunded.
type ExpireRequestHandler struct {
	*pool
}

var _ xswap.Handler = ExpireRequestHandler{}

func (h ExpireRequestHandler) Check(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{GasAllocated: expireCost}, nil
}

func (h ExpireRequestHandler) Deliver(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	msg, req, reserve, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	net := req.Net()

	req.Expired = true
	if _, err := h.requests.Put(db, msg.RequestID, req); err != nil {
		return nil, errors.Wrap(err, "save request")
	}
	reserve.Available -= net.Amount
	if err := h.saveReserve(db, reserve); err != nil {
		return nil, err
	}
	if err := h.custody.Release(db, h.bank, req.User, net); err != nil {
		return nil, err
	}
	stats, err := h.statsFor(db, net.Ticker)
	if err != nil {
		return nil, err
	}
	if stats.TotalRefunded, err = coin.Add64(stats.TotalRefunded, net.Amount); err != nil {
		return nil, errors.Wrap(err, "total refunded")
	}
	if err := h.saveStats(db, stats); err != nil {
		return nil, err
	}

	event := &RequestExpiredEvent{RequestID: msg.RequestID, User: req.User, Refunded: net}
	if _, err := outbox.Emit(ctx, db, EventRequestExpired, event); err != nil {
		return nil, err
	}
	xswap.GetLogger(ctx).Info("bridge request expired",
		"id", xswap.Address(msg.RequestID).String(), "refunded", net.String())
	return &xswap.DeliverResult{}, nil
}

func (h ExpireRequestHandler) validate(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*ExpireRequestMsg, *Request, *Reserve, error) {
	conf, err := activeConf(db)
	if err != nil {
		return nil, nil, nil, err
	}
	var msg *ExpireRequestMsg
	if err := xswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	if err := x.RequireOwner(ctx, h.auth, conf.Owner); err != nil {
		return nil, nil, nil, err
	}
	req, err := h.request(db, msg.RequestID)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := requirePending(req); err != nil {
		return nil, nil, nil, err
	}
	now, err := xswap.BlockUnixTime(ctx)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "block time")
	}
	if deadline := req.Timestamp + xswap.UnixTime(conf.RequestTimeout); now <= deadline {
		return nil, nil, nil, errors.Wrapf(ErrRequestNotExpired, "expires after %s", deadline)
	}
	net := req.Net()
	reserve, err := h.reserve(db, net.Ticker)
	if err != nil {
		return nil, nil, nil, err
	}
	if reserve.Available < net.Amount {
		return nil, nil, nil, errors.Wrapf(ErrInsufficientReserves, "%d %s available", reserve.Available, reserve.Ticker)
	}
	return msg, req, reserve, nil
}

// WithdrawFeesHandler moves collected and not yet withdrawn fees out of
// the pool.
type WithdrawFeesHandler struct {
	*pool
}

var _ xswap.Handler = WithdrawFeesHandler{}

func (h WithdrawFeesHandler) Check(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{GasAllocated: withdrawCost}, nil
}

func (h WithdrawFeesHandler) Deliver(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	msg, stats, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	stats.FeeWithdrawn += msg.Amount.Amount
	if err := h.saveStats(db, stats); err != nil {
		return nil, err
	}
	if err := h.custody.Release(db, h.bank, msg.Destination, *msg.Amount); err != nil {
		return nil, err
	}
	event := &FeesWithdrawnEvent{Amount: *msg.Amount, Destination: msg.Destination}
	if _, err := outbox.Emit(ctx, db, EventFeesWithdrawn, event); err != nil {
		return nil, err
	}
	xswap.GetLogger(ctx).Info("bridge fees withdrawn", "amount", msg.Amount.String())
	return &xswap.DeliverResult{}, nil
}

func (h WithdrawFeesHandler) validate(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*WithdrawFeesMsg, *Stats, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	var msg *WithdrawFeesMsg
	if err := xswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if err := x.RequireOwner(ctx, h.auth, conf.Owner); err != nil {
		return nil, nil, err
	}
	if err := h.custody.CheckDestination(msg.Destination); err != nil {
		return nil, nil, errors.Field("Destination", err, "")
	}
	stats, err := h.statsFor(db, msg.Amount.Ticker)
	if err != nil {
		return nil, nil, err
	}
	if unclaimed := stats.UnclaimedFee(); msg.Amount.Amount > unclaimed {
		return nil, nil, errors.Wrapf(errors.ErrInsufficientAmount, "%d %s of fees available", unclaimed, stats.Ticker)
	}
	return msg, stats, nil
}

func requirePending(req *Request) error {
	switch {
	case req.Processed:
		return errors.Wrap(ErrAlreadyProcessed, "request is closed")
	case req.Expired:
		return errors.Wrap(errors.ErrExpired, "request is closed")
	}
	return nil
}
