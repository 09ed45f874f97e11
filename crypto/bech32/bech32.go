// Package bech32 encodes addresses in the human friendly form used by the
// command line client and the JSON address representation.
package bech32

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/noxlabs/xswap/errors"
)

// Encode returns the bech32 representation of payload, prefixed with hrp.
func Encode(hrp string, payload []byte) (string, error) {
	conv, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", errors.Wrap(errors.ErrInput, err.Error())
	}
	raw, err := bech32.Encode(hrp, conv)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "encode %q: %s", hrp, err)
	}
	return raw, nil
}

// Decode splits a bech32 string into its human readable part and the
// payload. The checksum is verified.
func Decode(raw string) (string, []byte, error) {
	hrp, conv, err := bech32.Decode(raw)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	payload, err := bech32.ConvertBits(conv, 5, 8, false)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return hrp, payload, nil
}

// DecodePrefixed works like Decode but only accepts values with given human
// readable part. An address encoded for another network must not be taken
// as a local one.
func DecodePrefixed(raw, hrp string) ([]byte, error) {
	got, payload, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	if got != hrp {
		return nil, errors.Wrapf(errors.ErrInput, "want %q prefix, got %q", hrp, got)
	}
	return payload, nil
}
