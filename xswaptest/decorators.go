package xswaptest

import "github.com/noxlabs/xswap"

// Decorator is a mock implementation of the xswap.Decorator interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding
// method. If error attribute is not set then wrapped handler method is
// called.
type Decorator struct {
	checkCall int
	CheckErr  error

	deliverCall int
	DeliverErr  error
}

var _ xswap.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx, next xswap.Checker) (*xswap.CheckResult, error) {
	d.checkCall++

	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx, next xswap.Deliverer) (*xswap.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

// CheckCallCount returns how many times Check was called.
func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

// DeliverCallCount returns how many times Deliver was called.
func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

// CallCount returns the total number of calls.
func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

// Decorate wraps given handler with given decorator.
func Decorate(h xswap.Handler, d xswap.Decorator) xswap.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn xswap.Handler
	dc xswap.Decorator
}

var _ xswap.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
