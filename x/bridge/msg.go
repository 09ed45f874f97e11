package bridge

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/codec"
	"github.com/noxlabs/xswap/coin"
	"github.com/noxlabs/xswap/errors"
)

const (
	pathDepositMsg             = "bridge/deposit"
	pathReleaseMsg             = "bridge/release"
	pathAddReservesMsg         = "bridge/add_reserves"
	pathAddRelayerMsg          = "bridge/add_relayer"
	pathRemoveRelayerMsg       = "bridge/remove_relayer"
	pathConfirmRequestMsg      = "bridge/confirm_request"
	pathExpireRequestMsg       = "bridge/expire_request"
	pathWithdrawFeesMsg        = "bridge/withdraw_fees"
	pathPauseMsg               = "bridge/pause"
	pathUnpauseMsg             = "bridge/unpause"
	pathUpdateConfigurationMsg = "bridge/update_configuration"
)

// DepositMsg moves Amount from the User into the pool to be paid out on
// the destination chain. It must be signed by the User.
type DepositMsg struct {
	Metadata           *xswap.Metadata `json:"metadata"`
	User               xswap.Address   `json:"user"`
	Amount             *coin.Coin      `json:"amount"`
	DestinationChain   string          `json:"destination_chain"`
	DestinationAddress string          `json:"destination_address"`
}

var _ xswap.Msg = (*DepositMsg)(nil)

func (DepositMsg) Path() string {
	return pathDepositMsg
}

func (m *DepositMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "User", m.User.Validate())
	errs = errors.AppendField(errs, "Amount", validateAmount(m.Amount))
	errs = errors.AppendField(errs, "DestinationChain", validateChain(m.DestinationChain))
	// An empty destination is rejected by the handler, after the amount
	// bounds were checked.
	if len(m.DestinationAddress) > maxAddressLength {
		errs = errors.Append(errs, errors.Field("DestinationAddress", errors.ErrInput, "too long"))
	}
	return errs
}

func (m *DepositMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *DepositMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

// ReleaseMsg pays out a deposit made on another chain. RequestID is the
// id of the request on the source chain. It must be signed by a relayer.
type ReleaseMsg struct {
	Metadata  *xswap.Metadata `json:"metadata"`
	RequestID []byte          `json:"request_id"`
	User      xswap.Address   `json:"user"`
	Amount    *coin.Coin      `json:"amount"`
}

var _ xswap.Msg = (*ReleaseMsg)(nil)

func (ReleaseMsg) Path() string {
	return pathReleaseMsg
}

func (m *ReleaseMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "RequestID", validateRequestID(m.RequestID))
	errs = errors.AppendField(errs, "User", m.User.Validate())
	errs = errors.AppendField(errs, "Amount", validateAmount(m.Amount))
	return errs
}

func (m *ReleaseMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *ReleaseMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

// AddReservesMsg funds the pool from the owner account.
type AddReservesMsg struct {
	Metadata *xswap.Metadata `json:"metadata"`
	Amount   *coin.Coin      `json:"amount"`
}

var _ xswap.Msg = (*AddReservesMsg)(nil)

func (AddReservesMsg) Path() string {
	return pathAddReservesMsg
}

func (m *AddReservesMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Amount", validateAmount(m.Amount))
	return errs
}

func (m *AddReservesMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *AddReservesMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

type AddRelayerMsg struct {
	Metadata *xswap.Metadata `json:"metadata"`
	Relayer  xswap.Address   `json:"relayer"`
}

var _ xswap.Msg = (*AddRelayerMsg)(nil)

func (AddRelayerMsg) Path() string {
	return pathAddRelayerMsg
}

func (m *AddRelayerMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Relayer", m.Relayer.Validate())
	return errs
}

func (m *AddRelayerMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *AddRelayerMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

type RemoveRelayerMsg struct {
	Metadata *xswap.Metadata `json:"metadata"`
	Relayer  xswap.Address   `json:"relayer"`
}

var _ xswap.Msg = (*RemoveRelayerMsg)(nil)

func (RemoveRelayerMsg) Path() string {
	return pathRemoveRelayerMsg
}

func (m *RemoveRelayerMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Relayer", m.Relayer.Validate())
	return errs
}

func (m *RemoveRelayerMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *RemoveRelayerMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

// ConfirmRequestMsg is sent by a relayer once a local request was paid
// out on its destination chain.
type ConfirmRequestMsg struct {
	Metadata  *xswap.Metadata `json:"metadata"`
	RequestID []byte          `json:"request_id"`
}

var _ xswap.Msg = (*ConfirmRequestMsg)(nil)

func (ConfirmRequestMsg) Path() string {
	return pathConfirmRequestMsg
}

func (m *ConfirmRequestMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "RequestID", validateRequestID(m.RequestID))
	return errs
}

func (m *ConfirmRequestMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *ConfirmRequestMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

// ExpireRequestMsg refunds a request that no relayer processed in time.
type ExpireRequestMsg struct {
	Metadata  *xswap.Metadata `json:"metadata"`
	RequestID []byte          `json:"request_id"`
}

var _ xswap.Msg = (*ExpireRequestMsg)(nil)

func (ExpireRequestMsg) Path() string {
	return pathExpireRequestMsg
}

func (m *ExpireRequestMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "RequestID", validateRequestID(m.RequestID))
	return errs
}

func (m *ExpireRequestMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *ExpireRequestMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

// WithdrawFeesMsg moves collected fees out of the pool.
type WithdrawFeesMsg struct {
	Metadata    *xswap.Metadata `json:"metadata"`
	Amount      *coin.Coin      `json:"amount"`
	Destination xswap.Address   `json:"destination"`
}

var _ xswap.Msg = (*WithdrawFeesMsg)(nil)

func (WithdrawFeesMsg) Path() string {
	return pathWithdrawFeesMsg
}

func (m *WithdrawFeesMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Amount", validateAmount(m.Amount))
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	return errs
}

func (m *WithdrawFeesMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *WithdrawFeesMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

// PauseMsg stops deposits and releases until an UnpauseMsg is processed.
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

func validateAmount(c *coin.Coin) error {
	if c == nil || !c.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "must be positive")
	}
	return c.Validate()
}
