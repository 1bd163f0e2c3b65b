package utils

import (
	"time"

	"github.com/iov-one/remit"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ remit.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> error, success -> debug
func (r Logging) Check(ctx remit.Context, store remit.KVStore, tx remit.Tx, next remit.Checker) (*remit.CheckResult, error) {
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
func (r Logging) Deliver(ctx remit.Context, store remit.KVStore, tx remit.Tx, next remit.Deliverer) (*remit.DeliverResult, error) {
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
func logDuration(ctx remit.Context, tx remit.Tx, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Now().Sub(start)
	logger := remit.GetLogger(ctx).With("path", remit.GetPath(tx), "duration", delta/time.Microsecond)

	if err != nil {
		logger = logger.With("err", err)
	}

	// Although message can be empty, we still want to emit a log entry
	// because it contains other relevant information beside the message.

	if err != nil {
		logger.Error(msg)
	} else {
		if lowPrio {
			logger.Debug(msg)
		} else {
			logger.Info(msg)
		}
	}
}
