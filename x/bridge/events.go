package bridge

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/codec"
	"github.com/noxlabs/xswap/coin"
)

// Outbox event kinds. Relayers follow RequestCreated to pay out deposits
// on the destination chain.
const (
	EventRequestCreated   = "bridge/request_created"
	EventRequestProcessed = "bridge/request_processed"
	EventReservesAdded    = "bridge/reserves_added"
	EventRequestConfirmed = "bridge/request_confirmed"
	EventRequestExpired   = "bridge/request_expired"
	EventFeesWithdrawn    = "bridge/fees_withdrawn"
)

// RequestCreatedEvent carries everything a relayer needs to release the
// net amount on the destination chain.
type RequestCreatedEvent struct {
	RequestID          []byte         `json:"request_id"`
	User               xswap.Address  `json:"user"`
	DestinationChain   string         `json:"destination_chain"`
	DestinationAddress string         `json:"destination_address"`
	Amount             coin.Coin      `json:"amount"`
	Fee                coin.Coin      `json:"fee"`
	Net                coin.Coin      `json:"net"`
	Timestamp          xswap.UnixTime `json:"timestamp"`
}

func (e *RequestCreatedEvent) Marshal() ([]byte, error) {
	return codec.Marshal(e)
}

func (e *RequestCreatedEvent) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, e)
}

type RequestProcessedEvent struct {
	RequestID []byte        `json:"request_id"`
	Relayer   xswap.Address `json:"relayer"`
	User      xswap.Address `json:"user"`
	Amount    coin.Coin     `json:"amount"`
}

func (e *RequestProcessedEvent) Marshal() ([]byte, error) {
	return codec.Marshal(e)
}

func (e *RequestProcessedEvent) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, e)
}

type ReservesAddedEvent struct {
	Amount    coin.Coin `json:"amount"`
	Available int64     `json:"available"`
}

func (e *ReservesAddedEvent) Marshal() ([]byte, error) {
	return codec.Marshal(e)
}

func (e *ReservesAddedEvent) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, e)
}

type RequestConfirmedEvent struct {
	RequestID []byte        `json:"request_id"`
	Relayer   xswap.Address `json:"relayer"`
}

func (e *RequestConfirmedEvent) Marshal() ([]byte, error) {
	return codec.Marshal(e)
}

func (e *RequestConfirmedEvent) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, e)
}

// RequestExpiredEvent is emitted when the net amount of a request was
// refunded to the user.
type RequestExpiredEvent struct {
	RequestID []byte        `json:"request_id"`
	User      xswap.Address `json:"user"`
	Refunded  coin.Coin     `json:"refunded"`
}

func (e *RequestExpiredEvent) Marshal() ([]byte, error) {
	return codec.Marshal(e)
}

func (e *RequestExpiredEvent) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, e)
}

type FeesWithdrawnEvent struct {
	Amount      coin.Coin     `json:"amount"`
	Destination xswap.Address `json:"destination"`
}

func (e *FeesWithdrawnEvent) Marshal() ([]byte, error) {
	return codec.Marshal(e)
}

func (e *FeesWithdrawnEvent) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, e)
}
