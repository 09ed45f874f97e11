package cash

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/coin"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/orm"
)

// Controller is the functionality needed by other extensions to move funds.
type Controller interface {
	// Balance returns all coins held by given address. An unknown
	// address holds nothing.
	Balance(db xswap.ReadOnlyKVStore, addr xswap.Address) (coin.Coins, error)

	// MoveCoins debits the source and credits the destination with
	// the same amount. It fails with ErrInsufficientBalance when the
	// source does not hold enough funds.
	MoveCoins(db xswap.KVStore, src, dst xswap.Address, amount coin.Coin) error

	// IssueCoins credits the destination with new coins. This is used
	// only by the genesis initialization.
	IssueCoins(db xswap.KVStore, dst xswap.Address, amount coin.Coin) error
}

// BaseController is a simple implementation of Controller.
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller operating on the wallet bucket.
func NewController() BaseController {
	return BaseController{bucket: NewWalletBucket()}
}

// Balance returns the coins held by given address.
func (c BaseController) Balance(db xswap.ReadOnlyKVStore, addr xswap.Address) (coin.Coins, error) {
	w, err := c.wallet(db, addr)
	if err != nil {
		return nil, err
	}
	return w.Coins, nil
}

// MoveCoins moves the given amount from src to dst.
func (c BaseController) MoveCoins(db xswap.KVStore, src, dst xswap.Address, amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "invalid amount")
	}
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	if err := dst.Validate(); err != nil {
		return errors.Wrap(err, "invalid destination")
	}

	sender, err := c.wallet(db, src)
	if err != nil {
		return err
	}
	if !sender.Coins.Contains(amount) {
		return errors.Wrapf(ErrInsufficientBalance, "%s holds %d %s, needs %d",
			src, sender.Coins.Amount(amount.Ticker), amount.Ticker, amount.Amount)
	}
	if sender.Coins, err = sender.Coins.Subtract(amount); err != nil {
		return errors.Wrap(err, "debit")
	}
	if _, err := c.bucket.Put(db, src, sender); err != nil {
		return errors.Wrap(err, "save sender")
	}

	// Load after the debit is saved, so that moving funds to self is
	// a no-op.
	return c.credit(db, dst, amount)
}

// IssueCoins creates new coins for given address.
func (c BaseController) IssueCoins(db xswap.KVStore, dst xswap.Address, amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "invalid amount")
	}
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	if err := dst.Validate(); err != nil {
		return errors.Wrap(err, "invalid destination")
	}
	return c.credit(db, dst, amount)
}

func (c BaseController) credit(db xswap.KVStore, dst xswap.Address, amount coin.Coin) error {
	recipient, err := c.wallet(db, dst)
	if err != nil {
		return err
	}
	if recipient.Coins, err = recipient.Coins.Add(amount); err != nil {
		return errors.Wrap(err, "credit")
	}
	if _, err := c.bucket.Put(db, dst, recipient); err != nil {
		return errors.Wrap(err, "save recipient")
	}
	return nil
}

// wallet returns the wallet of given address or an empty wallet if none
// was stored yet.
func (c BaseController) wallet(db xswap.ReadOnlyKVStore, addr xswap.Address) (*Wallet, error) {
	var w Wallet
	switch err := c.bucket.One(db, addr, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return &Wallet{Metadata: &xswap.Metadata{Schema: 1}}, nil
	default:
		return nil, errors.Wrap(err, "load wallet")
	}
}
