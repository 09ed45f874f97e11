package aswap

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/codec"
	"github.com/noxlabs/xswap/coin"
)

// Outbox event kinds.
const (
	EventInitiated = "aswap/initiated"
	EventCompleted = "aswap/completed"
	EventRefunded  = "aswap/refunded"
)

// InitiatedEvent is emitted when funds are locked. Amount is the locked
// value, Fee was paid on top of it.
type InitiatedEvent struct {
	SwapID    []byte         `json:"swap_id"`
	SwapRef   []byte         `json:"swap_ref"`
	Hashlock  []byte         `json:"hashlock"`
	Initiator xswap.Address  `json:"initiator"`
	Recipient xswap.Address  `json:"recipient"`
	Amount    coin.Coin      `json:"amount"`
	Fee       coin.Coin      `json:"fee"`
	Timelock  xswap.UnixTime `json:"timelock"`
}

func (e *InitiatedEvent) Marshal() ([]byte, error) {
	return codec.Marshal(e)
}

func (e *InitiatedEvent) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, e)
}

// CompletedEvent publishes the secret so that the counterpart swap on the
// other chain can be completed.
type CompletedEvent struct {
	SwapID    []byte        `json:"swap_id"`
	Recipient xswap.Address `json:"recipient"`
	Amount    coin.Coin     `json:"amount"`
	Secret    []byte        `json:"secret"`
}

func (e *CompletedEvent) Marshal() ([]byte, error) {
	return codec.Marshal(e)
}

func (e *CompletedEvent) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, e)
}

type RefundedEvent struct {
	SwapID    []byte        `json:"swap_id"`
	Initiator xswap.Address `json:"initiator"`
	Amount    coin.Coin     `json:"amount"`
}

func (e *RefundedEvent) Marshal() ([]byte, error) {
	return codec.Marshal(e)
}

func (e *RefundedEvent) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, e)
}
