package utils

import (
	"strings"
	"time"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/x"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ xswap.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> error, success -> debug
func (r Logging) Check(ctx xswap.Context, store xswap.KVStore, tx xswap.Tx, next xswap.Checker) (*xswap.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (r Logging) Deliver(ctx xswap.Context, store xswap.KVStore, tx xswap.Tx, next xswap.Deliverer) (*xswap.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx xswap.Context, tx xswap.Tx, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := xswap.GetLogger(ctx).With(
		"path", xswap.GetPath(tx),
		"duration", delta/time.Microsecond,
	)

	// An empty message is still logged, the key values carry the
	// information.
	switch {
	case err != nil:
		kv := []interface{}{"err", err, "category", x.ErrorCategory(err)}
		if fields := errors.FieldNames(err); len(fields) > 0 {
			kv = append(kv, "fields", strings.Join(fields, ","))
		}
		logger.Error(msg, kv...)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
