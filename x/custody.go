package x

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/coin"
	"github.com/noxlabs/xswap/errors"
)

// CoinMover moves funds between two addresses in a single step. It is
// implemented by the cash controller.
type CoinMover interface {
	MoveCoins(db xswap.KVStore, src, dst xswap.Address, amount coin.Coin) error
}

// Custody is the authority over funds held by an extension. Funds are sent
// to the custody address like to any other account. Only the holder of the
// Custody value can move them out again.
//
// The custody condition is not a signature condition, so no transaction
// signer can ever match it. Extensions keep their Custody in an unexported
// field and never return it.
type Custody struct {
	cond xswap.Condition
}

// NewCustody creates the custody of given extension. The label tells apart
// several custody accounts of the same extension.
func NewCustody(ext, label string) *Custody {
	return &Custody{cond: xswap.NewCondition(ext, "custody", []byte(label))}
}

// Address returns the account that holds funds in custody.
func (c *Custody) Address() xswap.Address {
	return c.cond.Address()
}

// CheckDestination returns an error if funds cannot be released to given
// address. Releasing to the custody address itself would leave the funds in
// place while the extension accounts for them as paid out.
func (c *Custody) CheckDestination(dst xswap.Address) error {
	if err := dst.Validate(); err != nil {
		return err
	}
	if dst.Equals(c.Address()) {
		return errors.Wrap(errors.ErrInput, "custody account cannot receive its own funds")
	}
	return nil
}

// Release moves given amount out of custody to the destination.
func (c *Custody) Release(db xswap.KVStore, mover CoinMover, dst xswap.Address, amount coin.Coin) error {
	if err := c.CheckDestination(dst); err != nil {
		return errors.Wrap(err, "release destination")
	}
	if err := mover.MoveCoins(db, c.Address(), dst, amount); err != nil {
		return errors.Wrap(err, "release from custody")
	}
	return nil
}
