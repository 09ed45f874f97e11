package bridge

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/codec"
	"github.com/noxlabs/xswap/coin"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/orm"
	"github.com/noxlabs/xswap/x"
)

const (
	maxChainLength   = 32
	maxAddressLength = 128
)

// Relayer is a member of the relayer set, keyed by its address.
type Relayer struct {
	Metadata *xswap.Metadata `json:"metadata"`
	Address  xswap.Address   `json:"address"`
}

var _ orm.Model = (*Relayer)(nil)

func (r *Relayer) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", r.Metadata.Validate())
	errs = errors.AppendField(errs, "Address", r.Address.Validate())
	return errs
}

func (r *Relayer) Marshal() ([]byte, error) {
	return codec.Marshal(r)
}

func (r *Relayer) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, r)
}

// NewRelayerBucket returns a bucket of relayers keyed by the address.
func NewRelayerBucket() orm.ModelBucket {
	return orm.NewModelBucket("relayer", &Relayer{})
}

// Reserve is the amount of an asset available for releases, keyed by the
// ticker.
type Reserve struct {
	Metadata  *xswap.Metadata `json:"metadata"`
	Ticker    string          `json:"ticker"`
	Available int64           `json:"available"`
}

var _ orm.Model = (*Reserve)(nil)

func (r *Reserve) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", r.Metadata.Validate())
	if !coin.IsCC(r.Ticker) {
		errs = errors.Append(errs, errors.Field("Ticker", errors.ErrCurrency, "invalid ticker %q", r.Ticker))
	}
	if r.Available < 0 {
		errs = errors.Append(errs, errors.Field("Available", ErrInsufficientReserves, "negative"))
	}
	return errs
}

func (r *Reserve) Marshal() ([]byte, error) {
	return codec.Marshal(r)
}

func (r *Reserve) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, r)
}

// NewReserveBucket returns a bucket of reserves keyed by the ticker.
func NewReserveBucket() orm.ModelBucket {
	return orm.NewModelBucket("reserve", &Reserve{})
}

// Stats are the running totals of an asset, keyed by the ticker. All
// values only ever grow.
type Stats struct {
	Metadata        *xswap.Metadata `json:"metadata"`
	Ticker          string          `json:"ticker"`
	TotalBridgedIn  int64           `json:"total_bridged_in"`
	TotalBridgedOut int64           `json:"total_bridged_out"`
	FeeCollected    int64           `json:"fee_collected"`
	FeeWithdrawn    int64           `json:"fee_withdrawn"`
	TotalRefunded   int64           `json:"total_refunded"`
}

var _ orm.Model = (*Stats)(nil)

func (s *Stats) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", s.Metadata.Validate())
	if !coin.IsCC(s.Ticker) {
		errs = errors.Append(errs, errors.Field("Ticker", errors.ErrCurrency, "invalid ticker %q", s.Ticker))
	}
	counters := []struct {
		name  string
		value int64
	}{
		{"TotalBridgedIn", s.TotalBridgedIn},
		{"TotalBridgedOut", s.TotalBridgedOut},
		{"FeeCollected", s.FeeCollected},
		{"FeeWithdrawn", s.FeeWithdrawn},
		{"TotalRefunded", s.TotalRefunded},
	}
	for _, c := range counters {
		if c.value < 0 {
			errs = errors.Append(errs, errors.Field(c.name, errors.ErrAmount, "negative"))
		}
	}
	if s.FeeWithdrawn > s.FeeCollected {
		errs = errors.Append(errs, errors.Field("FeeWithdrawn", errors.ErrAmount, "more than collected"))
	}
	return errs
}

// UnclaimedFee returns the collected fee that was not withdrawn yet.
func (s *Stats) UnclaimedFee() int64 {
	return s.FeeCollected - s.FeeWithdrawn
}

func (s *Stats) Marshal() ([]byte, error) {
	return codec.Marshal(s)
}

func (s *Stats) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, s)
}

// NewStatsBucket returns a bucket of statistics keyed by the ticker.
func NewStatsBucket() orm.ModelBucket {
	return orm.NewModelBucket("stats", &Stats{})
}

// Request is a deposit waiting to be paid out on the destination chain.
// Amount is the deposited value, Fee is the part of it kept by the pool.
type Request struct {
	Metadata           *xswap.Metadata `json:"metadata"`
	Nonce              int64           `json:"nonce"`
	User               xswap.Address   `json:"user"`
	DestinationChain   string          `json:"destination_chain"`
	DestinationAddress string          `json:"destination_address"`
	Amount             coin.Coin       `json:"amount"`
	Fee                coin.Coin       `json:"fee"`
	Timestamp          xswap.UnixTime  `json:"timestamp"`
	Processed          bool            `json:"processed"`
	Expired            bool            `json:"expired"`
}

var _ orm.Model = (*Request)(nil)

func (r *Request) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", r.Metadata.Validate())
	if r.Nonce <= 0 {
		errs = errors.Append(errs, errors.Field("Nonce", errors.ErrInput, "must be positive"))
	}
	errs = errors.AppendField(errs, "User", r.User.Validate())
	errs = errors.AppendField(errs, "DestinationChain", validateChain(r.DestinationChain))
	errs = errors.AppendField(errs, "DestinationAddress", validateDestination(r.DestinationAddress))
	if !r.Amount.IsPositive() {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "must be positive"))
	} else {
		errs = errors.AppendField(errs, "Amount", r.Amount.Validate())
	}
	switch {
	case !r.Fee.IsNonNegative():
		errs = errors.Append(errs, errors.Field("Fee", errors.ErrAmount, "negative"))
	case !r.Fee.IsZero() && !r.Fee.SameType(r.Amount):
		errs = errors.Append(errs, errors.Field("Fee", errors.ErrCurrency, "must be paid in %s", r.Amount.Ticker))
	case r.Fee.Amount > r.Amount.Amount:
		errs = errors.Append(errs, errors.Field("Fee", errors.ErrAmount, "more than the amount"))
	}
	errs = errors.AppendField(errs, "Timestamp", r.Timestamp.Validate())
	if r.Processed && r.Expired {
		errs = errors.Append(errs, errors.Field("Expired", errors.ErrState, "request cannot be processed and expired"))
	}
	return errs
}

// Net returns the value paid out on the destination chain.
func (r *Request) Net() coin.Coin {
	return coin.NewCoin(r.Amount.Amount-r.Fee.Amount, r.Amount.Ticker)
}

func (r *Request) Marshal() ([]byte, error) {
	return codec.Marshal(r)
}

func (r *Request) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, r)
}

// RequestID returns the key of a deposit. The nonce tells apart deposits
// of the same user, destination and amount made in the same second.
func RequestID(user xswap.Address, destinationChain string, amount int64, timestamp xswap.UnixTime, nonce int64) []byte {
	return x.DeriveID(
		user,
		[]byte(destinationChain),
		x.Int64Bytes(amount),
		x.Int64Bytes(int64(timestamp)),
		x.Int64Bytes(nonce),
	)
}

// NewRequestBucket returns a bucket of requests keyed by the request id
// and indexed by the user.
func NewRequestBucket() orm.ModelBucket {
	return orm.NewModelBucket("request", &Request{},
		orm.WithIndex("user", userIndex, false),
	)
}

func userIndex(obj orm.Object) ([]byte, error) {
	if obj == nil || obj.Value() == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	r, ok := obj.Value().(*Request)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "can only take index of Request, got %T", obj.Value())
	}
	return r.User, nil
}

// Release records a payout made by a relayer, keyed by the id of the
// request on the source chain. A request id is released at most once.
type Release struct {
	Metadata  *xswap.Metadata `json:"metadata"`
	RequestID []byte          `json:"request_id"`
	Relayer   xswap.Address   `json:"relayer"`
	User      xswap.Address   `json:"user"`
	Amount    coin.Coin       `json:"amount"`
	Time      xswap.UnixTime  `json:"time"`
}

var _ orm.Model = (*Release)(nil)

func (r *Release) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", r.Metadata.Validate())
	errs = errors.AppendField(errs, "RequestID", validateRequestID(r.RequestID))
	errs = errors.AppendField(errs, "Relayer", r.Relayer.Validate())
	errs = errors.AppendField(errs, "User", r.User.Validate())
	if !r.Amount.IsPositive() {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "must be positive"))
	}
	errs = errors.AppendField(errs, "Time", r.Time.Validate())
	return errs
}

func (r *Release) Marshal() ([]byte, error) {
	return codec.Marshal(r)
}

func (r *Release) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, r)
}

// NewReleaseBucket returns a bucket of releases keyed by the request id.
func NewReleaseBucket() orm.ModelBucket {
	return orm.NewModelBucket("release", &Release{})
}

func validateChain(chain string) error {
	switch n := len(chain); {
	case n == 0:
		return errors.Wrap(errors.ErrEmpty, "required")
	case n > maxChainLength:
		return errors.Wrap(errors.ErrInput, "too long")
	}
	return nil
}

func validateDestination(addr string) error {
	switch n := len(addr); {
	case n == 0:
		return errors.Wrap(ErrEmptyDestinationAddress, "required")
	case n > maxAddressLength:
		return errors.Wrap(errors.ErrInput, "too long")
	}
	return nil
}

func validateRequestID(id []byte) error {
	if len(id) == 0 {
		return errors.Wrap(errors.ErrEmpty, "required")
	}
	if len(id) != x.DeriveIDLength {
		return errors.Wrapf(errors.ErrInput, "must be %d bytes", x.DeriveIDLength)
	}
	return nil
}
