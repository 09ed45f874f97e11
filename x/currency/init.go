package currency

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
)

// GenesisToken is a single entry of the "currencies" genesis list.
type GenesisToken struct {
	Ticker    string `json:"ticker"`
	Name      string `json:"name"`
	MinAmount int64  `json:"min_amount"`
	MaxAmount int64  `json:"max_amount"`
}

// Initializer loads the registered assets from the genesis file.
type Initializer struct{}

var _ xswap.Initializer = (*Initializer)(nil)

func (*Initializer) FromGenesis(opts xswap.Options, db xswap.KVStore) error {
	var tokens []GenesisToken
	if err := opts.ReadOptions("currencies", &tokens); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	bucket := NewTokenInfoBucket()
	for _, t := range tokens {
		if err := bucket.Has(db, []byte(t.Ticker)); err == nil {
			return errors.Wrapf(errors.ErrDuplicate, "ticker %s", t.Ticker)
		}
		info := &TokenInfo{
			Metadata:  &xswap.Metadata{Schema: 1},
			Name:      t.Name,
			MinAmount: t.MinAmount,
			MaxAmount: t.MaxAmount,
		}
		if err := saveToken(db, bucket, t.Ticker, info); err != nil {
			return errors.Wrapf(err, "token %s", t.Ticker)
		}
	}
	return nil
}
