package xswap_test

import (
	"testing"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/xswaptest"
	"github.com/noxlabs/xswap/xswaptest/assert"
)

type otherMsg struct {
	xswaptest.Msg
}

func TestLoadMsg(t *testing.T) {
	msg := &xswaptest.Msg{RoutePath: "test/msg"}

	var dst *xswaptest.Msg
	assert.Nil(t, xswap.LoadMsg(&xswaptest.Tx{Msg: msg}, &dst))
	assert.Equal(t, msg, dst)

	var wrong *otherMsg
	err := xswap.LoadMsg(&xswaptest.Tx{Msg: msg}, &wrong)
	assert.IsErr(t, errors.ErrType, err)

	err = xswap.LoadMsg(&xswaptest.Tx{Msg: msg}, dst)
	assert.IsErr(t, errors.ErrType, err)

	invalid := &xswaptest.Msg{Err: errors.ErrAmount.New("negative")}
	var dst2 *xswaptest.Msg
	err = xswap.LoadMsg(&xswaptest.Tx{Msg: invalid}, &dst2)
	assert.IsErr(t, errors.ErrAmount, err)
	if dst2 != nil {
		t.Fatal("invalid message must not be assigned")
	}

	err = xswap.LoadMsg(&xswaptest.Tx{Err: errors.ErrInput}, &dst2)
	assert.IsErr(t, errors.ErrInput, err)
}

func TestGetPath(t *testing.T) {
	assert.Equal(t, "test/path", xswap.GetPath(&xswaptest.Tx{Msg: &xswaptest.Msg{RoutePath: "test/path"}}))
	assert.Equal(t, "(missing)", xswap.GetPath(&xswaptest.Tx{}))
}
