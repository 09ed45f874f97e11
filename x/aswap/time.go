package aswap

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
)

// checkTimelockWindow ensures a new swap is locked for at least the
// minimum and at most the maximum configured duration.
func checkTimelockWindow(now, timelock xswap.UnixTime, conf *Configuration) error {
	min := now + xswap.UnixTime(conf.MinTimelock)
	max := now + xswap.UnixTime(conf.MaxTimelock)
	if timelock < min {
		return errors.Wrapf(ErrInvalidTimelock, "must be at least %s", min)
	}
	if timelock > max {
		return errors.Wrapf(ErrInvalidTimelock, "must be at most %s", max)
	}
	return nil
}

// checkCompletable allows completion up to and including the timelock.
func checkCompletable(now, timelock xswap.UnixTime) error {
	if now > timelock {
		return errors.Wrapf(errors.ErrExpired, "timelock passed at %s", timelock)
	}
	return nil
}

// checkRefundable allows a refund strictly after the timelock.
func checkRefundable(now, timelock xswap.UnixTime) error {
	if now <= timelock {
		return errors.Wrapf(ErrNotYetExpired, "locked until %s", timelock)
	}
	return nil
}
