package currency

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/codec"
	"github.com/noxlabs/xswap/coin"
	"github.com/noxlabs/xswap/errors"
)

const pathCreateMsg = "currency/create"

// CreateMsg registers a new asset.
type CreateMsg struct {
	Metadata  *xswap.Metadata `json:"metadata"`
	Ticker    string          `json:"ticker"`
	Name      string          `json:"name"`
	MinAmount int64           `json:"min_amount"`
	MaxAmount int64           `json:"max_amount"`
}

var _ xswap.Msg = (*CreateMsg)(nil)

func (CreateMsg) Path() string {
	return pathCreateMsg
}

func (m *CreateMsg) Validate() error {
	if !coin.IsCC(m.Ticker) {
		return errors.Field("Ticker", errors.ErrCurrency, "invalid ticker %q", m.Ticker)
	}
	t := TokenInfo{
		Metadata:  m.Metadata,
		Name:      m.Name,
		MinAmount: m.MinAmount,
		MaxAmount: m.MaxAmount,
	}
	return t.Validate()
}

func (m *CreateMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *CreateMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}
