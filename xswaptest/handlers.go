package xswaptest

import "github.com/noxlabs/xswap"

// Handler implements a mock of xswap.Handler
//
// Use this handler in your tests. Set XxxResult and XxxErr to control what
// results are returned by each method call.
type Handler struct {
	checkCall   int
	CheckResult xswap.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult xswap.DeliverResult
	DeliverErr    error
}

var _ xswap.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

// CheckCallCount returns how many times Check was called.
func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

// DeliverCallCount returns how many times Deliver was called.
func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

// CallCount returns the total number of calls.
func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// WriteHandler is a handler that writes given key and value to the store
// and then returns configured error.
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

var _ xswap.Handler = WriteHandler{}

func (h WriteHandler) Check(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{}, h.Err
}

func (h WriteHandler) Deliver(ctx xswap.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &xswap.DeliverResult{}, h.Err
}

// PanicHandler always panics.
type PanicHandler struct {
	Msg string
}

var _ xswap.Handler = PanicHandler{}

func (h PanicHandler) Check(xswap.Context, xswap.KVStore, xswap.Tx) (*xswap.CheckResult, error) {
	panic(h.Msg)
}

func (h PanicHandler) Deliver(xswap.Context, xswap.KVStore, xswap.Tx) (*xswap.DeliverResult, error) {
	panic(h.Msg)
}
