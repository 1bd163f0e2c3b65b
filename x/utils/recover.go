package utils

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
)

// Recovery stops a panic raised by any decorator or handler further down the
// chain. The panic is returned as ErrPanic and logged with the message path,
// so a single broken transaction cannot halt the node.
type Recovery struct{}

var _ remit.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into ErrPanic.
func (r Recovery) Check(ctx remit.Context, store remit.KVStore, tx remit.Tx, next remit.Checker) (_ *remit.CheckResult, err error) {
	defer recoverTx(ctx, tx, &err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into ErrPanic.
func (r Recovery) Deliver(ctx remit.Context, store remit.KVStore, tx remit.Tx, next remit.Deliverer) (_ *remit.DeliverResult, err error) {
	defer recoverTx(ctx, tx, &err)
	return next.Deliver(ctx, store, tx)
}

// recoverTx must be deferred directly for recover to see the panic.
func recoverTx(ctx remit.Context, tx remit.Tx, err *error) {
	r := recover()
	if r == nil {
		return
	}
	*err = errors.Wrapf(errors.ErrPanic, "%v", r)
	remit.GetLogger(ctx).Error("transaction panicked",
		"path", remit.GetPath(tx),
		"panic", r)
}
