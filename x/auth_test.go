package x

import (
	"context"
	"testing"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/xswaptest"
	"github.com/noxlabs/xswap/xswaptest/assert"
)

func TestAuth(t *testing.T) {
	a := xswaptest.NewCondition()
	b := xswaptest.NewCondition()
	c := xswaptest.NewCondition()

	ctx1 := &xswaptest.CtxAuth{Key: "foo"}
	ctx2 := &xswaptest.CtxAuth{Key: "bar"}

	cases := map[string]struct {
		ctx          xswap.Context
		auth         Authenticator
		mainSigner   xswap.Condition
		wantInCtx    xswap.Condition
		wantNotInCtx xswap.Condition
		wantAll      []xswap.Condition
	}{
		"empty context": {
			ctx:          context.Background(),
			auth:         &xswaptest.Auth{},
			wantNotInCtx: b,
		},
		"signer a": {
			ctx:          context.Background(),
			auth:         &xswaptest.Auth{Signer: a},
			mainSigner:   a,
			wantInCtx:    a,
			wantNotInCtx: b,
			wantAll:      []xswap.Condition{a},
		},
		"chained signers": {
			ctx: context.Background(),
			auth: ChainAuth(
				&xswaptest.Auth{Signer: b},
				&xswaptest.Auth{Signer: a}),
			mainSigner:   b,
			wantInCtx:    a,
			wantNotInCtx: c,
			wantAll:      []xswap.Condition{b, a},
		},
		"ctxAuth checks what is set by same key": {
			ctx:          ctx1.SetConditions(context.Background(), a, b),
			auth:         ctx1,
			mainSigner:   a,
			wantInCtx:    b,
			wantNotInCtx: c,
			wantAll:      []xswap.Condition{a, b},
		},
		"ctxAuth with different key sees nothing": {
			ctx:          ctx1.SetConditions(context.Background(), a, b),
			auth:         ctx2,
			wantNotInCtx: a,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.mainSigner, MainSigner(tc.ctx, tc.auth))
			if tc.wantInCtx != nil && !tc.auth.HasAddress(tc.ctx, tc.wantInCtx.Address()) {
				t.Fatal("condition address that was expected in context not found")
			}
			if tc.wantNotInCtx != nil && tc.auth.HasAddress(tc.ctx, tc.wantNotInCtx.Address()) {
				t.Fatal("condition address that was expected not to be in context found")
			}

			all := tc.auth.GetConditions(tc.ctx)
			assert.Equal(t, tc.wantAll, all)
			if got := GetAddresses(tc.ctx, tc.auth); len(got) != len(all) {
				t.Fatalf("want %d addresses, got %d", len(all), len(got))
			}
		})
	}
}

func TestRequireOwner(t *testing.T) {
	owner := xswaptest.NewCondition()
	other := xswaptest.NewCondition()
	ctx := context.Background()

	cases := map[string]struct {
		auth    Authenticator
		owner   xswap.Address
		wantErr *errors.Error
	}{
		"owner signed": {
			auth:  &xswaptest.Auth{Signer: owner},
			owner: owner.Address(),
		},
		"owner among many signers": {
			auth:  &xswaptest.Auth{Signers: []xswap.Condition{other, owner}},
			owner: owner.Address(),
		},
		"someone else signed": {
			auth:    &xswaptest.Auth{Signer: other},
			owner:   owner.Address(),
			wantErr: ErrNotOwner,
		},
		"no owner configured": {
			auth:    &xswaptest.Auth{Signer: other},
			wantErr: ErrNotOwner,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := RequireOwner(ctx, tc.auth, tc.owner)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}
