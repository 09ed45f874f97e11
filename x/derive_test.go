package x

import (
	"bytes"
	"math"
	"testing"

	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/xswaptest/assert"
)

func TestDeriveID(t *testing.T) {
	a := DeriveID([]byte("hash"), []byte("initiator"), Int64Bytes(7200))
	b := DeriveID([]byte("hash"), []byte("initiator"), Int64Bytes(7200))
	assert.Equal(t, a, b)
	assert.Equal(t, DeriveIDLength, len(a))

	if bytes.Equal(a, DeriveID([]byte("hash"), []byte("initiator"), Int64Bytes(7201))) {
		t.Fatal("different timelock must produce a different id")
	}
	// Moving bytes between parts must not collide.
	if bytes.Equal(DeriveID([]byte("ab"), []byte("c")), DeriveID([]byte("a"), []byte("bc"))) {
		t.Fatal("parts are not separated")
	}
}

func TestFeeFor(t *testing.T) {
	cases := map[string]struct {
		amount  int64
		bps     int64
		want    int64
		wantErr *errors.Error
	}{
		"swap fee": {
			amount: 100000,
			bps:    10,
			want:   100,
		},
		"bridge fee": {
			amount: 1000,
			bps:    25,
			want:   2,
		},
		"rounded down": {
			amount: 999,
			bps:    10,
			want:   0,
		},
		"zero rate": {
			amount: 123456,
			bps:    0,
			want:   0,
		},
		"full rate": {
			amount: 777,
			bps:    MaxFeeBps,
			want:   777,
		},
		"max amount does not overflow": {
			amount: math.MaxInt64,
			bps:    25,
			want:   math.MaxInt64/10000*25 + (math.MaxInt64%10000)*25/10000,
		},
		"negative amount": {
			amount:  -1,
			bps:     10,
			wantErr: errors.ErrAmount,
		},
		"rate out of range": {
			amount:  100,
			bps:     MaxFeeBps + 1,
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := FeeFor(tc.amount, tc.bps)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestErrorCategory(t *testing.T) {
	cases := map[string]struct {
		err  error
		want string
	}{
		"nil":          {err: nil, want: ""},
		"paused":       {err: errors.Wrap(ErrPaused, "aswap"), want: CategoryState},
		"not owner":    {err: ErrNotOwner, want: CategoryAuthorization},
		"amount":       {err: errors.Field("Amount", errors.ErrAmount, "zero"), want: CategoryValidation},
		"unknown":      {err: errors.Wrap(errors.ErrDatabase, "disk"), want: CategoryInternal},
		"group":        {err: errors.Append(errors.ErrEmpty.New("a"), ErrPaused.New("b")), want: CategoryValidation},
		"insufficient": {err: errors.ErrInsufficientAmount.New("low"), want: CategoryResource},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, ErrorCategory(tc.err))
		})
	}
}
