/*
Package codec provides the binary serialization used by all models and
messages stored or transmitted by the application.

Every persistent type implements the xswap.Persistent interface by calling
Marshal and Unmarshal from this package. Types are serialized with go-amino
in its bare binary form, which is deterministic and does not depend on the
Marshal methods of the serialized type.
*/
package codec

import (
	"github.com/noxlabs/xswap/errors"
	amino "github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

// Amino returns the shared codec instance. Use it to register concrete
// implementations of interfaces that are part of serialized types.
func Amino() *amino.Codec {
	return cdc
}

// Marshal serializes given value into its binary representation.
func Marshal(o interface{}) ([]byte, error) {
	bz, err := cdc.MarshalBinaryBare(o)
	if err != nil {
		return nil, errors.Wrap(errors.ErrType, err.Error())
	}
	// A zero value serializes to no bytes. Stores treat nil as a missing
	// value so an empty slice is returned instead.
	if bz == nil {
		bz = []byte{}
	}
	return bz, nil
}

// Unmarshal deserializes binary data into given pointer.
func Unmarshal(bz []byte, o interface{}) error {
	if err := cdc.UnmarshalBinaryBare(bz, o); err != nil {
		return errors.Wrap(errors.ErrType, err.Error())
	}
	return nil
}

// MarshalJSON serializes given value into amino JSON. This is the format
// used when presenting data to humans, for example by the CLI.
func MarshalJSON(o interface{}) ([]byte, error) {
	bz, err := cdc.MarshalJSONIndent(o, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrType, err.Error())
	}
	return bz, nil
}

// UnmarshalJSON deserializes amino JSON into given pointer.
func UnmarshalJSON(bz []byte, o interface{}) error {
	if err := cdc.UnmarshalJSON(bz, o); err != nil {
		return errors.Wrap(errors.ErrType, err.Error())
	}
	return nil
}
