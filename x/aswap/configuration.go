package aswap

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/codec"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/gconf"
	"github.com/noxlabs/xswap/x"
)

const (
	packageName = "aswap"

	// DefaultFeeBps is 0.1% of the locked amount.
	DefaultFeeBps = 10
	// DefaultMinTimelock is two hours.
	DefaultMinTimelock = 2 * 60 * 60
	// DefaultMaxTimelock is 48 hours.
	DefaultMaxTimelock = 48 * 60 * 60
	// TimelockLimit caps MaxTimelock at one year.
	TimelockLimit = 365 * 24 * 60 * 60
)

// Configuration of the swap extension. Timelock bounds are in seconds,
// relative to the block time of the initiating transaction.
type Configuration struct {
	Metadata     *xswap.Metadata `json:"metadata"`
	Owner        xswap.Address   `json:"owner"`
	FeeRecipient xswap.Address   `json:"fee_recipient"`
	FeeBps       int64           `json:"fee_bps"`
	MinTimelock  int64           `json:"min_timelock"`
	MaxTimelock  int64           `json:"max_timelock"`
	Paused       bool            `json:"paused"`
}

var _ gconf.PausableConfig = (*Configuration)(nil)

// DefaultConfiguration returns a configuration with all optional values
// set. Owner and fee recipient must be provided.
func DefaultConfiguration() Configuration {
	return Configuration{
		Metadata:    &xswap.Metadata{Schema: 1},
		FeeBps:      DefaultFeeBps,
		MinTimelock: DefaultMinTimelock,
		MaxTimelock: DefaultMaxTimelock,
	}
}

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	if c.FeeBps < 0 || c.FeeBps > x.MaxFeeBps {
		errs = errors.Append(errs, errors.Field("FeeBps", errors.ErrInput, "must be in [0, %d]", x.MaxFeeBps))
	}
	// Without a fee the recipient is optional.
	if c.FeeBps > 0 || len(c.FeeRecipient) != 0 {
		errs = errors.AppendField(errs, "FeeRecipient", c.FeeRecipient.Validate())
	}
	if c.MinTimelock <= 0 {
		errs = errors.Append(errs, errors.Field("MinTimelock", errors.ErrInput, "must be positive"))
	}
	switch {
	case c.MaxTimelock < c.MinTimelock:
		errs = errors.Append(errs, errors.Field("MaxTimelock", errors.ErrInput, "lower than the minimum"))
	case c.MaxTimelock > TimelockLimit:
		errs = errors.Append(errs, errors.Field("MaxTimelock", errors.ErrInput, "must not exceed %d", TimelockLimit))
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

// activeConf returns the configuration unless the extension is paused.
func activeConf(db xswap.ReadOnlyKVStore) (*Configuration, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if conf.Paused {
		return nil, errors.Wrap(x.ErrPaused, "swaps are paused")
	}
	return conf, nil
}

// Initializer stores the configuration found under the "conf.aswap" genesis
// key. Missing optional values are filled with the defaults.
type Initializer struct{}

var _ xswap.Initializer = Initializer{}

func (Initializer) FromGenesis(opts xswap.Options, db xswap.KVStore) error {
	conf := DefaultConfiguration()
	return gconf.InitConfig(db, opts, packageName, &conf)
}
