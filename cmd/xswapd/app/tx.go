package app

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/codec"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/x/sigs"
)

// Tx is the transaction envelope accepted by the application. The message
// is carried in its serialized form together with its route so that it can
// be decoded without a type registry on the wire.
type Tx struct {
	Signatures []*sigs.StdSignature `json:"signatures"`
	Route      string               `json:"route"`
	Payload    []byte               `json:"payload"`
}

// make sure tx fulfills all interfaces
var _ xswap.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// NewTx wraps given message into an unsigned transaction.
func NewTx(msg xswap.Msg) (*Tx, error) {
	if msg == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "message")
	}
	raw, err := msg.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal message")
	}
	return &Tx{Route: msg.Path(), Payload: raw}, nil
}

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (xswap.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, err
	}
	return tx, nil
}

// GetMsg decodes the payload into the message type registered for the
// route.
func (tx *Tx) GetMsg() (xswap.Msg, error) {
	msg, err := NewMsg(tx.Route)
	if err != nil {
		return nil, err
	}
	if err := msg.Unmarshal(tx.Payload); err != nil {
		return nil, errors.Wrapf(err, "decode %s payload", tx.Route)
	}
	return msg, nil
}

// GetSignatures returns the signatures attached to this transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// the sign bytes should only come from the data itself, not
	// previous signatures
	unsigned := Tx{Route: tx.Route, Payload: tx.Payload}
	return unsigned.Marshal()
}

func (tx *Tx) Marshal() ([]byte, error) {
	return codec.Marshal(tx)
}

func (tx *Tx) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, tx)
}
