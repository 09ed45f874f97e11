package xswaptest

import "github.com/noxlabs/xswap"

// Tx represents a xswap transaction.
// This is a mock implementation and it should be used only for testing.
type Tx struct {
	// Msg is returned by GetMsg method.
	Msg xswap.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ xswap.Tx = (*Tx)(nil)

// GetMsg returns the message and configured error.
func (tx *Tx) GetMsg() (xswap.Msg, error) {
	return tx.Msg, tx.Err
}

// Unmarshal is not implemented.
func (tx *Tx) Unmarshal([]byte) error {
	panic("not implemented")
}

// Marshal is not implemented.
func (tx *Tx) Marshal() ([]byte, error) {
	panic("not implemented")
}

// Msg represents a xswap message.
// This is a mock implementation and it should be used only for testing.
type Msg struct {
	// RoutePath is returned by Path method.
	RoutePath string
	// Serialized represents the serialized form of this message.
	Serialized []byte
	// Err if set is returned by any method call.
	Err error
}

var _ xswap.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Unmarshal(b []byte) error {
	m.Serialized = b
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, m.Err
}
