package bridge

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/codec"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/gconf"
	"github.com/noxlabs/xswap/x"
)

const (
	packageName = "bridge"

	// DefaultFeeBps is 0.25% of the deposit.
	DefaultFeeBps = 25
	// DefaultMinAmount and DefaultMaxAmount bound deposits of assets that
	// the registry does not bound.
	DefaultMinAmount = 1000
	DefaultMaxAmount = 1000000000000
	// DefaultRequestTimeout is one day.
	DefaultRequestTimeout = 24 * 60 * 60
)

// Configuration of the bridge pool.
type Configuration struct {
	Metadata *xswap.Metadata `json:"metadata"`
	Owner    xswap.Address   `json:"owner"`
	FeeBps   int64           `json:"fee_bps"`
	// MinAmount and MaxAmount are used for assets without registry bounds.
	MinAmount int64 `json:"min_amount"`
	MaxAmount int64 `json:"max_amount"`
	// RequestTimeout is the number of seconds after which an unprocessed
	// request can be expired and refunded.
	RequestTimeout int64 `json:"request_timeout"`
	Paused         bool  `json:"paused"`
}

var _ gconf.PausableConfig = (*Configuration)(nil)

// DefaultConfiguration returns a configuration with all optional values
// set. The owner must be provided.
func DefaultConfiguration() Configuration {
	return Configuration{
		Metadata:       &xswap.Metadata{Schema: 1},
		FeeBps:         DefaultFeeBps,
		MinAmount:      DefaultMinAmount,
		MaxAmount:      DefaultMaxAmount,
		RequestTimeout: DefaultRequestTimeout,
	}
}

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	if c.FeeBps < 0 || c.FeeBps > x.MaxFeeBps {
		errs = errors.Append(errs, errors.Field("FeeBps", errors.ErrInput, "must be in [0, %d]", x.MaxFeeBps))
	}
	if c.MinAmount <= 0 {
		errs = errors.Append(errs, errors.Field("MinAmount", errors.ErrAmount, "must be positive"))
	}
	if c.MaxAmount < c.MinAmount {
		errs = errors.Append(errs, errors.Field("MaxAmount", errors.ErrAmount, "lower than the minimum"))
	}
	if c.RequestTimeout <= 0 {
		errs = errors.Append(errs, errors.Field("RequestTimeout", errors.ErrInput, "must be positive"))
	}
	return errs
}

func (c *Configuration) GetOwner() xswap.Address {
	return c.Owner
}

func (c *Configuration) SetPaused(paused bool) {
	c.Paused = paused
}

func (c *Configuration) Marshal() ([]byte, error) {
	return codec.Marshal(c)
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, c)
}

func loadConf(db xswap.ReadOnlyKVStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, packageName, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

// activeConf returns the configuration unless the pool is paused.
func activeConf(db xswap.ReadOnlyKVStore) (*Configuration, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if conf.Paused {
		return nil, errors.Wrap(x.ErrPaused, "bridge is paused")
	}
	return conf, nil
}
