package aswap

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/codec"
	"github.com/noxlabs/xswap/coin"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/orm"
	"github.com/noxlabs/xswap/x"
)

const (
	// HashlockLength is the size of a sha256 digest.
	HashlockLength = 32

	maxSwapRefLength = 64
	maxSecretLength  = 256
)

// Swap is a single hash time locked transfer. Amount is the value held in
// custody, after the fee was taken.
type Swap struct {
	Metadata  *xswap.Metadata `json:"metadata"`
	SwapRef   []byte          `json:"swap_ref"`
	Hashlock  []byte          `json:"hashlock"`
	Timelock  xswap.UnixTime  `json:"timelock"`
	Initiator xswap.Address   `json:"initiator"`
	Recipient xswap.Address   `json:"recipient"`
	Amount    coin.Coin       `json:"amount"`
	Completed bool            `json:"completed"`
	Refunded  bool            `json:"refunded"`
	CreatedAt xswap.UnixTime  `json:"created_at"`
	Secret    []byte          `json:"secret,omitempty"`
}

var _ orm.Model = (*Swap)(nil)

// Validate ensures the swap is well formed and in exactly one state.
func (s *Swap) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", s.Metadata.Validate())
	if len(s.SwapRef) > maxSwapRefLength {
		errs = errors.Append(errs, errors.Field("SwapRef", errors.ErrInput, "too long"))
	}
	if len(s.Hashlock) != HashlockLength {
		errs = errors.Append(errs, errors.Field("Hashlock", ErrInvalidHashlockLength, "got %d bytes", len(s.Hashlock)))
	}
	if s.Timelock == 0 {
		errs = errors.Append(errs, errors.Field("Timelock", errors.ErrEmpty, "required"))
	} else {
		errs = errors.AppendField(errs, "Timelock", s.Timelock.Validate())
	}
	errs = errors.AppendField(errs, "CreatedAt", s.CreatedAt.Validate())
	errs = errors.AppendField(errs, "Initiator", s.Initiator.Validate())
	errs = errors.AppendField(errs, "Recipient", s.Recipient.Validate())
	if !s.Amount.IsPositive() {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "must be positive"))
	} else {
		errs = errors.AppendField(errs, "Amount", s.Amount.Validate())
	}
	if s.Completed && s.Refunded {
		errs = errors.Append(errs, errors.Field("Refunded", errors.ErrState, "swap cannot be completed and refunded"))
	}
	if s.Completed != (len(s.Secret) != 0) {
		errs = errors.Append(errs, errors.Field("Secret", errors.ErrState, "secret is set only on completion"))
	}
	return errs
}

// IsOpen returns true if the swap was neither completed nor refunded.
func (s *Swap) IsOpen() bool {
	return !s.Completed && !s.Refunded
}

func (s *Swap) Marshal() ([]byte, error) {
	return codec.Marshal(s)
}

func (s *Swap) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, s)
}

// SwapID returns the key of the swap locked with given hashlock by the
// initiator until timelock.
func SwapID(hashlock []byte, initiator xswap.Address, timelock xswap.UnixTime) []byte {
	return x.DeriveID(hashlock, initiator, x.Int64Bytes(int64(timelock)))
}

// NewSwapBucket returns a bucket of swaps keyed by the swap id, with
// initiator, recipient and hashlock indexes.
func NewSwapBucket() orm.ModelBucket {
	return orm.NewModelBucket("aswap", &Swap{},
		orm.WithIndex("initiator", initiatorIndex, false),
		orm.WithIndex("recipient", recipientIndex, false),
		orm.WithIndex("hashlock", hashlockIndex, false),
	)
}

func toSwap(obj orm.Object) (*Swap, error) {
	if obj == nil || obj.Value() == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	s, ok := obj.Value().(*Swap)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "can only take index of Swap, got %T", obj.Value())
	}
	return s, nil
}

func initiatorIndex(obj orm.Object) ([]byte, error) {
	s, err := toSwap(obj)
	if err != nil {
		return nil, err
	}
	return s.Initiator, nil
}

func recipientIndex(obj orm.Object) ([]byte, error) {
	s, err := toSwap(obj)
	if err != nil {
		return nil, err
	}
	return s.Recipient, nil
}

func hashlockIndex(obj orm.Object) ([]byte, error) {
	s, err := toSwap(obj)
	if err != nil {
		return nil, err
	}
	return s.Hashlock, nil
}
