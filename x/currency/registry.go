package currency

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/orm"
)

// Registry is consulted by extensions before moving an asset.
type Registry interface {
	// IsSupported returns true if the asset was registered.
	IsSupported(db xswap.ReadOnlyKVStore, ticker string) (bool, error)

	// AmountBounds returns the transfer bounds of given asset. Found is
	// false when the asset is not registered. A zero bound is not
	// enforced.
	AmountBounds(db xswap.ReadOnlyKVStore, ticker string) (min, max int64, found bool, err error)
}

// BaseRegistry reads the token information bucket.
type BaseRegistry struct {
	bucket orm.ModelBucket
}

var _ Registry = BaseRegistry{}

// NewRegistry returns a registry backed by the token information bucket.
func NewRegistry() BaseRegistry {
	return BaseRegistry{bucket: NewTokenInfoBucket()}
}

func (r BaseRegistry) IsSupported(db xswap.ReadOnlyKVStore, ticker string) (bool, error) {
	switch err := r.bucket.Has(db, []byte(ticker)); {
	case err == nil:
		return true, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, err
	}
}

func (r BaseRegistry) AmountBounds(db xswap.ReadOnlyKVStore, ticker string) (int64, int64, bool, error) {
	var t TokenInfo
	switch err := r.bucket.One(db, []byte(ticker), &t); {
	case err == nil:
		return t.MinAmount, t.MaxAmount, true, nil
	case errors.ErrNotFound.Is(err):
		return 0, 0, false, nil
	default:
		return 0, 0, false, err
	}
}

// RequireSupported returns ErrUnsupportedAsset if the registry does not
// know given asset.
func RequireSupported(db xswap.ReadOnlyKVStore, r Registry, ticker string) error {
	ok, err := r.IsSupported(db, ticker)
	if err != nil {
		return errors.Wrap(err, "registry")
	}
	if !ok {
		return errors.Wrapf(ErrUnsupportedAsset, "%q", ticker)
	}
	return nil
}
