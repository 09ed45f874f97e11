package coin

import (
	"sort"
	"strings"

	"github.com/noxlabs/xswap/errors"
)

// Coins is a set of coins, at most one coin per ticker. It is kept sorted
// by ticker and without zero values.
type Coins []*Coin

// CombineCoins creates a Coins containing all given coins.
// It will sort them and combine duplicates to produce
// a normalized array.
func CombineCoins(cs ...Coin) (Coins, error) {
	var res Coins
	for _, c := range cs {
		var err error
		res, err = res.Add(c)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Clone returns a deep copy of the coins.
func (cs Coins) Clone() Coins {
	res := make(Coins, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}

// Add modifies the set by adding a single coin value, returning a new set.
// Coins of a new ticker are inserted at the right position, a coin that
// reaches zero is removed.
func (cs Coins) Add(c Coin) (Coins, error) {
	if c.IsZero() {
		return cs.Clone(), nil
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	res := cs.Clone()
	existing, idx := res.findCoin(c.Ticker)
	if existing == nil {
		res = append(res, c.Clone())
		sort.Slice(res, func(i, j int) bool {
			return res[i].Ticker < res[j].Ticker
		})
		return res, nil
	}
	sum, err := existing.Add(c)
	if err != nil {
		return nil, err
	}
	if sum.IsZero() {
		return append(res[:idx], res[idx+1:]...), nil
	}
	res[idx] = &sum
	return res, nil
}

// Subtract is Add with the negated value of the argument.
func (cs Coins) Subtract(c Coin) (Coins, error) {
	return cs.Add(c.Negative())
}

// Contains returns true if there is at least that much
// coin in the set.
func (cs Coins) Contains(c Coin) bool {
	have, _ := cs.findCoin(c.Ticker)
	if have == nil {
		return c.Amount <= 0
	}
	return have.IsGTE(c)
}

// Amount returns the amount held of given ticker.
func (cs Coins) Amount(ticker string) int64 {
	c, _ := cs.findCoin(ticker)
	if c == nil {
		return 0
	}
	return c.Amount
}

func (cs Coins) findCoin(ticker string) (*Coin, int) {
	for i, c := range cs {
		if c.Ticker == ticker {
			return c, i
		}
	}
	return nil, len(cs)
}

// IsEmpty returns if nothing is in the set
func (cs Coins) IsEmpty() bool {
	return len(cs) == 0
}

// IsNonNegative returns true if all coins are positive,
// but also accepts an empty set
func (cs Coins) IsNonNegative() bool {
	for _, c := range cs {
		if !c.IsNonNegative() {
			return false
		}
	}
	return true
}

// Equals returns true if both sets hold the same coins.
func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for i := range cs {
		if !cs[i].Equals(*o[i]) {
			return false
		}
	}
	return true
}

// Validate requires that all coins are in alphabetical
// order, non zero, and not duplicated.
func (cs Coins) Validate() error {
	last := ""
	for _, c := range cs {
		if c == nil {
			return errors.Wrap(errors.ErrEmpty, "nil coin")
		}
		if err := c.Validate(); err != nil {
			return err
		}
		if c.IsZero() {
			return errors.Wrap(errors.ErrAmount, "zero coins")
		}
		if c.Ticker <= last {
			return errors.Wrap(errors.ErrCurrency, "not sorted or duplicate")
		}
		last = c.Ticker
	}
	return nil
}

func (cs Coins) String() string {
	strs := make([]string, len(cs))
	for i, c := range cs {
		strs[i] = c.String()
	}
	return strings.Join(strs, ", ")
}
