package aswap

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/codec"
	"github.com/noxlabs/xswap/coin"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/x"
)

const (
	pathCreateMsg              = "aswap/create"
	pathReleaseMsg             = "aswap/release"
	pathReturnMsg              = "aswap/return"
	pathPauseMsg               = "aswap/pause"
	pathUnpauseMsg             = "aswap/unpause"
	pathUpdateConfigurationMsg = "aswap/update_configuration"
)

// CreateMsg locks Amount from Source for the Recipient. It must be signed
// by the Source, who becomes the swap initiator.
type CreateMsg struct {
	Metadata  *xswap.Metadata `json:"metadata"`
	SwapRef   []byte          `json:"swap_ref"`
	Source    xswap.Address   `json:"source"`
	Recipient xswap.Address   `json:"recipient"`
	Hashlock  []byte          `json:"hashlock"`
	Amount    *coin.Coin      `json:"amount"`
	Timelock  xswap.UnixTime  `json:"timelock"`
}

var _ xswap.Msg = (*CreateMsg)(nil)

func (CreateMsg) Path() string {
	return pathCreateMsg
}

func (m *CreateMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.SwapRef) > maxSwapRefLength {
		errs = errors.Append(errs, errors.Field("SwapRef", errors.ErrInput, "too long"))
	}
	errs = errors.AppendField(errs, "Source", m.Source.Validate())
	errs = errors.AppendField(errs, "Recipient", m.Recipient.Validate())
	if len(m.Hashlock) != HashlockLength {
		errs = errors.Append(errs, errors.Field("Hashlock", ErrInvalidHashlockLength, "got %d bytes", len(m.Hashlock)))
	}
	if m.Amount == nil || !m.Amount.IsPositive() {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "must be positive"))
	} else {
		errs = errors.AppendField(errs, "Amount", m.Amount.Validate())
	}
	if m.Timelock == 0 {
		errs = errors.Append(errs, errors.Field("Timelock", errors.ErrEmpty, "required"))
	} else {
		errs = errors.AppendField(errs, "Timelock", m.Timelock.Validate())
	}
	return errs
}

func (m *CreateMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *CreateMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

// ReleaseMsg completes a swap by revealing the secret. Anyone can submit
// it, the funds always go to the swap recipient.
type ReleaseMsg struct {
	Metadata *xswap.Metadata `json:"metadata"`
	SwapID   []byte          `json:"swap_id"`
	Secret   []byte          `json:"secret"`
}

var _ xswap.Msg = (*ReleaseMsg)(nil)

func (ReleaseMsg) Path() string {
	return pathReleaseMsg
}

func (m *ReleaseMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "SwapID", validateSwapID(m.SwapID))
	switch n := len(m.Secret); {
	case n == 0:
		errs = errors.Append(errs, errors.Field("Secret", errors.ErrEmpty, "required"))
	case n > maxSecretLength:
		errs = errors.Append(errs, errors.Field("Secret", errors.ErrInput, "too long"))
	}
	return errs
}

func (m *ReleaseMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *ReleaseMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

// ReturnMsg refunds an expired swap to its initiator. It must be signed by
// the initiator.
type ReturnMsg struct {
	Metadata *xswap.Metadata `json:"metadata"`
	SwapID   []byte          `json:"swap_id"`
}

var _ xswap.Msg = (*ReturnMsg)(nil)

func (ReturnMsg) Path() string {
	return pathReturnMsg
}

func (m *ReturnMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "SwapID", validateSwapID(m.SwapID))
	return errs
}

func (m *ReturnMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *ReturnMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

func validateSwapID(id []byte) error {
	if len(id) == 0 {
		return errors.Wrap(errors.ErrEmpty, "required")
	}
	if len(id) != x.DeriveIDLength {
		return errors.Wrapf(errors.ErrInput, "must be %d bytes", x.DeriveIDLength)
	}
	return nil
}

// PauseMsg stops all swap operations until an UnpauseMsg is processed.
type PauseMsg struct {
	Metadata *xswap.Metadata `json:"metadata"`
}

var _ xswap.Msg = (*PauseMsg)(nil)

func (PauseMsg) Path() string {
	return pathPauseMsg
}

func (m *PauseMsg) Validate() error {
	return errors.Field("Metadata", m.Metadata.Validate(), "invalid metadata")
}

func (m *PauseMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *PauseMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

// UnpauseMsg resumes swap operations.
type UnpauseMsg struct {
	Metadata *xswap.Metadata `json:"metadata"`
}

var _ xswap.Msg = (*UnpauseMsg)(nil)

func (UnpauseMsg) Path() string {
	return pathUnpauseMsg
}

func (m *UnpauseMsg) Validate() error {
	return errors.Field("Metadata", m.Metadata.Validate(), "invalid metadata")
}

func (m *UnpauseMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *UnpauseMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

// UpdateConfigurationMsg patches the configuration. Only non zero fields
// of the patch are applied.
type UpdateConfigurationMsg struct {
	Metadata *xswap.Metadata `json:"metadata"`
	Patch    *Configuration  `json:"patch"`
}

var _ xswap.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return pathUpdateConfigurationMsg
}

func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		errs = errors.Append(errs, errors.Field("Patch", errors.ErrEmpty, "required"))
	}
	return errs
}

func (m *UpdateConfigurationMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *UpdateConfigurationMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}
