/*
Package coin defines the token amounts moved by all extensions.

An amount is a whole number of the smallest unit of an asset. There is no
fractional part, assets with decimals register their smallest unit as one.
*/
package coin

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/noxlabs/xswap/errors"
)

// IsCC is the RegExp to ensure valid currency codes (tickers). The first
// character must be a letter, digits are allowed after it, for example
// APT or TUSDC.
var IsCC = regexp.MustCompile(`^[A-Z][A-Z0-9]{2,5}$`).MatchString

// Coin is an amount of a single asset.
type Coin struct {
	Ticker string `json:"ticker"`
	Amount int64  `json:"amount"`
}

// NewCoin creates a coin with given amount of given ticker.
func NewCoin(amount int64, ticker string) Coin {
	return Coin{
		Ticker: ticker,
		Amount: amount,
	}
}

// NewCoinp returns a pointer, like NewCoin
func NewCoinp(amount int64, ticker string) *Coin {
	c := NewCoin(amount, ticker)
	return &c
}

// ParseHumanFormat parses a coin from its string representation, for
// example "100 APT".
func ParseHumanFormat(h string) (Coin, error) {
	chunks := strings.Fields(h)
	if len(chunks) != 2 {
		return Coin{}, errors.Wrap(errors.ErrInput, "expected format: <amount> <ticker>")
	}
	amount, err := strconv.ParseInt(chunks[0], 10, 64)
	if err != nil {
		return Coin{}, errors.Wrapf(errors.ErrAmount, "cannot parse %q", chunks[0])
	}
	c := NewCoin(amount, chunks[1])
	if err := c.Validate(); err != nil {
		return Coin{}, err
	}
	return c, nil
}

// String provides a human readable representation of the coin.
func (c Coin) String() string {
	return fmt.Sprintf("%d %s", c.Amount, c.Ticker)
}

// Validate ensures that the ticker is valid. Negative amounts are allowed,
// use IsPositive to ensure a strictly positive value.
func (c Coin) Validate() error {
	if !IsCC(c.Ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", c.Ticker)
	}
	return nil
}

// Add combines two coins of the same type. An error is returned if the
// tickers differ or if the result does not fit into int64.
func (c Coin) Add(o Coin) (Coin, error) {
	if c.Ticker == "" && c.IsZero() {
		return o, nil
	}
	if o.Ticker == "" && o.IsZero() {
		return c, nil
	}
	if !c.SameType(o) {
		return Coin{}, errors.Wrapf(errors.ErrCurrency, "adding %s to %s", c.Ticker, o.Ticker)
	}
	sum, err := Add64(c.Amount, o.Amount)
	if err != nil {
		return Coin{}, err
	}
	return Coin{Ticker: c.Ticker, Amount: sum}, nil
}

// Subtract is Add with the negated value of the argument.
func (c Coin) Subtract(o Coin) (Coin, error) {
	if o.Amount == math.MinInt64 {
		return Coin{}, errors.ErrOverflow
	}
	return c.Add(o.Negative())
}

// Negative returns the opposite coin value
//
//	x.Add(x.Negative()).IsZero() == true
func (c Coin) Negative() Coin {
	return Coin{
		Ticker: c.Ticker,
		Amount: -c.Amount,
	}
}

// Compare will check values of two coins, without inspecting the currency
// code. It returns 1 if c is greater, -1 if c is smaller and 0 if equal.
func (c Coin) Compare(o Coin) int {
	switch {
	case c.Amount > o.Amount:
		return 1
	case c.Amount < o.Amount:
		return -1
	default:
		return 0
	}
}

// Equals returns true if all fields are identical
func (c Coin) Equals(o Coin) bool {
	return c.Ticker == o.Ticker && c.Amount == o.Amount
}

// IsEmpty returns true on null or zero amount
func IsEmpty(c *Coin) bool {
	return c == nil || c.IsZero()
}

// IsZero returns true amount is 0
func (c Coin) IsZero() bool {
	return c.Amount == 0
}

// IsPositive returns true if the value is greater than 0
func (c Coin) IsPositive() bool {
	return c.Amount > 0
}

// IsNonNegative returns true if the value is 0 or higher
func (c Coin) IsNonNegative() bool {
	return c.Amount >= 0
}

// IsGTE returns true if c is same type and at least as large as o.
func (c Coin) IsGTE(o Coin) bool {
	return c.SameType(o) && c.Amount >= o.Amount
}

// SameType returns true if they have the same currency
func (c Coin) SameType(o Coin) bool {
	return c.Ticker == o.Ticker
}

// Clone provides an independent copy of a coin pointer
func (c *Coin) Clone() *Coin {
	if c == nil {
		return nil
	}
	cpy := *c
	return &cpy
}

// Add64 sums two values and reports an overflow.
func Add64(a, b int64) (int64, error) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, errors.Wrap(errors.ErrOverflow, "int64 addition")
	}
	return c, nil
}

// Mul64 multiplies two values and reports an overflow.
func Mul64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, errors.Wrap(errors.ErrOverflow, "int64 multiplication")
	}
	return c, nil
}
