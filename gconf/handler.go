package gconf

import (
	"reflect"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/x"
)

// OwnedConfig must have an Owner field. A configuration update message must
// be signed by an owner in order to be authorized to apply the change.
type OwnedConfig interface {
	Configuration
	GetOwner() xswap.Address
}

// PausableConfig is a configuration that carries the emergency stop flag of
// an extension.
type PausableConfig interface {
	OwnedConfig
	SetPaused(bool)
}

// UpdateConfigurationHandler processes a configuration patch message. The
// message must have a "Patch" field of the configuration type. All non zero
// fields of the patch overwrite the stored configuration.
type UpdateConfigurationHandler struct {
	pkg    string
	config reflect.Type
	auth   x.Authenticator
}

var _ xswap.Handler = (*UpdateConfigurationHandler)(nil)

// NewUpdateConfigurationHandler returns a message handler that process
// configuration patch message. Given config is used only to learn the
// configuration type.
//
// To pass authentication step, each message must be signed by the current
// configuration owner. A configuration that does not exist cannot be
// updated, it must be created via genesis.
func NewUpdateConfigurationHandler(pkg string, config OwnedConfig, auth x.Authenticator) UpdateConfigurationHandler {
	return UpdateConfigurationHandler{
		pkg:    pkg,
		config: reflect.TypeOf(config).Elem(),
		auth:   auth,
	}
}

func (h UpdateConfigurationHandler) Check(ctx xswap.Context, store xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, err := h.applyTx(ctx, store, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{}, nil
}

func (h UpdateConfigurationHandler) Deliver(ctx xswap.Context, store xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	if _, err := h.applyTx(ctx, store, tx); err != nil {
		return nil, err
	}
	return &xswap.DeliverResult{}, nil
}

func (h UpdateConfigurationHandler) applyTx(ctx xswap.Context, store xswap.KVStore, tx xswap.Tx) (OwnedConfig, error) {
	config := reflect.New(h.config).Interface().(OwnedConfig)
	if err := Load(store, h.pkg, config); err != nil {
		return nil, errors.Wrap(err, "load current configuration")
	}
	if err := x.RequireOwner(ctx, h.auth, config.GetOwner()); err != nil {
		return nil, err
	}

	payload, err := patchPayload(tx)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get message payload")
	}
	if err := patch(config, payload); err != nil {
		return nil, errors.Wrap(err, "cannot patch config with message payload")
	}
	if err := Save(store, h.pkg, config); err != nil {
		return nil, errors.Wrap(err, "cannot save updated config")
	}
	xswap.GetLogger(ctx).Info("configuration updated", "pkg", h.pkg)
	return config, nil
}

func patch(config OwnedConfig, payload OwnedConfig) error {
	pType := reflect.TypeOf(payload)
	cType := reflect.TypeOf(config)
	if pType != cType {
		return errors.Wrap(errors.ErrMsg, "config in message doesn't match store")
	}

	cval := reflect.ValueOf(config).Elem()
	pval := reflect.ValueOf(payload).Elem()
	for i := 0; i < cval.NumField(); i++ {
		got := pval.Field(i)
		// Zero values do not update the original configuration.
		if isZero(got) {
			continue
		}
		cval.Field(i).Set(got)
	}
	return nil
}

// isZero returns true if given value represents a zero value of a given type.
func isZero(val reflect.Value) bool {
	zero := reflect.Zero(val.Type()).Interface()
	return reflect.DeepEqual(val.Interface(), zero)
}

// patchPayload expects the transaction to have a message with "Patch" field
// of the same type as the configuration. Content of this field is extracted
// and returned.
func patchPayload(tx xswap.Tx) (OwnedConfig, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	pval := reflect.ValueOf(msg)
	if pval.Kind() != reflect.Ptr || pval.Elem().Kind() != reflect.Struct {
		return nil, errors.Wrapf(errors.ErrInput, "invalid message container value: %T", msg)
	}
	field := pval.Elem().FieldByName("Patch")
	if !field.IsValid() || field.Kind() != reflect.Ptr {
		return nil, errors.Wrapf(errors.ErrType, `%T has no "Patch" field`, msg)
	}
	if field.IsNil() {
		return nil, errors.Wrap(errors.ErrState, `"Patch" field is required`)
	}
	payload, ok := field.Interface().(OwnedConfig)
	if !ok {
		return nil, errors.Wrap(errors.ErrInput, `"Patch" field is of a wrong type`)
	}
	return payload, nil
}

// PauseHandler sets or clears the paused flag of a configuration. It is
// available to the owner regardless of the current flag value, so that an
// emergency stop can always be lifted.
type PauseHandler struct {
	pkg    string
	config reflect.Type
	auth   x.Authenticator
	paused bool
}

var _ xswap.Handler = (*PauseHandler)(nil)

// NewPauseHandler returns a handler that sets the paused flag of the
// configuration to given value.
func NewPauseHandler(pkg string, config PausableConfig, auth x.Authenticator, paused bool) PauseHandler {
	return PauseHandler{
		pkg:    pkg,
		config: reflect.TypeOf(config).Elem(),
		auth:   auth,
		paused: paused,
	}
}

func (h PauseHandler) Check(ctx xswap.Context, store xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if err := h.apply(ctx, store, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{}, nil
}

func (h PauseHandler) Deliver(ctx xswap.Context, store xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	if err := h.apply(ctx, store, tx); err != nil {
		return nil, err
	}
	return &xswap.DeliverResult{}, nil
}

func (h PauseHandler) apply(ctx xswap.Context, store xswap.KVStore, tx xswap.Tx) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	config := reflect.New(h.config).Interface().(PausableConfig)
	if err := Load(store, h.pkg, config); err != nil {
		return errors.Wrap(err, "load current configuration")
	}
	if err := x.RequireOwner(ctx, h.auth, config.GetOwner()); err != nil {
		return err
	}
	config.SetPaused(h.paused)
	if err := Save(store, h.pkg, config); err != nil {
		return errors.Wrap(err, "cannot save configuration")
	}
	xswap.GetLogger(ctx).Info("pause flag changed", "pkg", h.pkg, "paused", h.paused)
	return nil
}
