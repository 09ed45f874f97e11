package currency

import (
	"regexp"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/codec"
	"github.com/noxlabs/xswap/coin"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/orm"
)

var isTokenName = regexp.MustCompile(`^[A-Za-z0-9 \-_:]{3,32}$`).MatchString

// TokenInfo describes an asset that can be moved by the swap and bridge
// extensions. A zero bound means that the registry does not constrain the
// amount on that side.
type TokenInfo struct {
	Metadata  *xswap.Metadata `json:"metadata"`
	Name      string          `json:"name"`
	MinAmount int64           `json:"min_amount"`
	MaxAmount int64           `json:"max_amount"`
}

var _ orm.Model = (*TokenInfo)(nil)

// Validate ensures the name is human readable and the bounds are ordered.
func (t *TokenInfo) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", t.Metadata.Validate())
	if !isTokenName(t.Name) {
		errs = errors.Append(errs, errors.Field("Name", errors.ErrState, "invalid token name %q", t.Name))
	}
	if t.MinAmount < 0 {
		errs = errors.Append(errs, errors.Field("MinAmount", errors.ErrAmount, "negative"))
	}
	if t.MaxAmount < 0 {
		errs = errors.Append(errs, errors.Field("MaxAmount", errors.ErrAmount, "negative"))
	}
	if t.MaxAmount != 0 && t.MinAmount > t.MaxAmount {
		errs = errors.Append(errs, errors.Field("MaxAmount", errors.ErrAmount, "lower than the minimum"))
	}
	return errs
}

func (t *TokenInfo) Marshal() ([]byte, error) {
	return codec.Marshal(t)
}

func (t *TokenInfo) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, t)
}

// NewTokenInfoBucket returns a bucket of token information, keyed by the
// ticker.
func NewTokenInfoBucket() orm.ModelBucket {
	return orm.NewModelBucket("tokeninfo", &TokenInfo{})
}

// saveToken stores given token information after checking the ticker.
func saveToken(db xswap.KVStore, b orm.ModelBucket, ticker string, t *TokenInfo) error {
	if !coin.IsCC(ticker) {
		return errors.Wrapf(errors.ErrCurrency, "ticker %q", ticker)
	}
	_, err := b.Put(db, []byte(ticker), t)
	return err
}
