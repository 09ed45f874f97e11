package app

import (
	"context"
	"testing"

	"github.com/noxlabs/xswap/xswaptest"
	"github.com/noxlabs/xswap/xswaptest/assert"
)

func TestChain(t *testing.T) {
	c1 := &xswaptest.Decorator{}
	c2 := &xswaptest.Decorator{}
	h := &xswaptest.Handler{}

	stack := ChainDecorators(c1, nil, c2).WithHandler(h)

	ctx := context.Background()
	_, err := stack.Check(ctx, nil, nil)
	assert.Nil(t, err)
	_, err = stack.Deliver(ctx, nil, nil)
	assert.Nil(t, err)

	assert.Equal(t, 1, c1.CheckCallCount())
	assert.Equal(t, 1, c1.DeliverCallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestChainStopsOnPanic(t *testing.T) {
	c1 := &xswaptest.Decorator{}
	stack := ChainDecorators(c1).WithHandler(xswaptest.PanicHandler{Msg: "boom"})

	assert.Panics(t, func() {
		stack.Check(context.Background(), nil, nil)
	})
	assert.Equal(t, 1, c1.CheckCallCount())
}
