package remittance

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/x"
	"github.com/iov-one/remit/x/cash"
)

const (
	createRemittanceCost int64 = 300
	settleRemittanceCost int64 = 100
	administrationCost   int64 = 50
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r remit.Registry, auth x.Authenticator, bank cash.CoinMover) {
	ctrl := NewController(bank)
	r.Handle(pathCreateMsg, CreateHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathWithdrawMsg, WithdrawHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathCancelMsg, CancelHandler{auth: auth, ctrl: ctrl})

	admin := AdminHandler{auth: auth, ctrl: ctrl}
	for _, path := range []string{
		pathWithdrawFeesMsg,
		pathSetFeeMsg,
		pathNominateOwnerMsg,
		pathClaimOwnershipMsg,
		pathPauseMsg,
		pathUnpauseMsg,
		pathKillMsg,
	} {
		r.Handle(path, admin)
	}
}

// RegisterQuery will register the escrow records as "/remittances" and the
// lifecycle state as "/remittance/state".
func RegisterQuery(qr remit.QueryRouter) {
	NewBucket().Register("/remittances", qr)
	NewStateBucket().Register("/remittance/state", qr)
}

// CreateHandler locks funds of the signer in a new escrow.
type CreateHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ remit.Handler = CreateHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CreateHandler) Check(ctx remit.Context, db remit.KVStore, tx remit.Tx) (*remit.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &remit.CheckResult{GasAllocated: createRemittanceCost}, nil
}

// Deliver moves the deposit to the custody account and stores the escrow.
// The commitment is returned as the result data.
func (h CreateHandler) Deliver(ctx remit.Context, db remit.KVStore, tx remit.Tx) (*remit.DeliverResult, error) {
	sender, msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	var events remit.EventBuffer
	rem, err := h.ctrl.Create(ctx, db, &events, sender, msg.Commitment, msg.Duration, msg.Deposit)
	if err != nil {
		return nil, err
	}
	remit.GetLogger(ctx).Info("remittance created",
		"commitment", hexKey(msg.Commitment),
		"amount", rem.Amount,
		"expiration", rem.Expiration)
	return &remit.DeliverResult{Data: msg.Commitment, Events: events.Events()}, nil
}

func (h CreateHandler) validate(ctx remit.Context, tx remit.Tx) (remit.Address, *CreateMsg, error) {
	var msg *CreateMsg
	if err := remit.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	sender, err := caller(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return sender, msg, nil
}

// WithdrawHandler pays an escrow to the signer that knows the secret.
type WithdrawHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ remit.Handler = WithdrawHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h WithdrawHandler) Check(ctx remit.Context, db remit.KVStore, tx remit.Tx) (*remit.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &remit.CheckResult{GasAllocated: settleRemittanceCost}, nil
}

// Deliver pays the escrow amount to the signer and removes the escrow.
func (h WithdrawHandler) Deliver(ctx remit.Context, db remit.KVStore, tx remit.Tx) (*remit.DeliverResult, error) {
	recipient, msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	var events remit.EventBuffer
	rem, err := h.ctrl.Withdraw(ctx, db, &events, recipient, msg.Secret)
	if err != nil {
		return nil, err
	}
	remit.GetLogger(ctx).Info("remittance withdrawn",
		"recipient", recipient,
		"amount", rem.Amount)
	return &remit.DeliverResult{Events: events.Events()}, nil
}

func (h WithdrawHandler) validate(ctx remit.Context, tx remit.Tx) (remit.Address, *WithdrawMsg, error) {
	var msg *WithdrawMsg
	if err := remit.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	recipient, err := caller(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return recipient, msg, nil
}

// CancelHandler returns an expired escrow to its sender.
type CancelHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ remit.Handler = CancelHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CancelHandler) Check(ctx remit.Context, db remit.KVStore, tx remit.Tx) (*remit.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &remit.CheckResult{GasAllocated: settleRemittanceCost}, nil
}

// Deliver refunds the escrow amount to the sender and removes the escrow.
func (h CancelHandler) Deliver(ctx remit.Context, db remit.KVStore, tx remit.Tx) (*remit.DeliverResult, error) {
	sender, msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	var events remit.EventBuffer
	rem, err := h.ctrl.Cancel(ctx, db, &events, sender, msg.Commitment)
	if err != nil {
		return nil, err
	}
	remit.GetLogger(ctx).Info("remittance cancelled",
		"commitment", hexKey(msg.Commitment),
		"amount", rem.Amount)
	return &remit.DeliverResult{Events: events.Events()}, nil
}

func (h CancelHandler) validate(ctx remit.Context, tx remit.Tx) (remit.Address, *CancelMsg, error) {
	var msg *CancelMsg
	if err := remit.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	sender, err := caller(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return sender, msg, nil
}

// AdminHandler processes all owner operations and the ownership claim.
type AdminHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ remit.Handler = AdminHandler{}

// Check verifies the message and the presence of a signer. Ownership is
// verified on delivery.
func (h AdminHandler) Check(ctx remit.Context, db remit.KVStore, tx remit.Tx) (*remit.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &remit.CheckResult{GasAllocated: administrationCost}, nil
}

// Deliver applies the administrative operation.
func (h AdminHandler) Deliver(ctx remit.Context, db remit.KVStore, tx remit.Tx) (*remit.DeliverResult, error) {
	signer, msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}

	var events remit.EventBuffer
	switch m := msg.(type) {
	case *WithdrawFeesMsg:
		_, err = h.ctrl.WithdrawFees(ctx, db, &events, signer)
	case *SetFeeMsg:
		err = h.ctrl.SetFee(db, &events, signer, m.Fee)
	case *NominateOwnerMsg:
		err = h.ctrl.NominateOwner(db, &events, signer, m.Candidate)
	case *ClaimOwnershipMsg:
		err = h.ctrl.ClaimOwnership(db, &events, signer)
	case *PauseMsg:
		err = h.ctrl.Pause(db, &events, signer)
	case *UnpauseMsg:
		err = h.ctrl.Unpause(db, &events, signer)
	case *KillMsg:
		err = h.ctrl.Kill(db, &events, signer)
	}
	if err != nil {
		return nil, err
	}
	for _, ev := range events.Events() {
		remit.GetLogger(ctx).Info("remittance administration", "event", ev.Kind, "signer", signer)
	}
	return &remit.DeliverResult{Events: events.Events()}, nil
}

func (h AdminHandler) validate(ctx remit.Context, tx remit.Tx) (remit.Address, remit.Msg, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot get transaction message")
	}
	switch msg.(type) {
	case *WithdrawFeesMsg, *SetFeeMsg, *NominateOwnerMsg, *ClaimOwnershipMsg,
		*PauseMsg, *UnpauseMsg, *KillMsg:
	default:
		return nil, nil, errors.WithType(errors.ErrMsg, msg)
	}
	if err := msg.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "invalid message")
	}
	signer, err := caller(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return signer, msg, nil
}

// caller returns the address of the main signer of the transaction.
func caller(ctx remit.Context, auth x.Authenticator) (remit.Address, error) {
	cond := x.MainSigner(ctx, auth)
	if cond == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return cond.Address(), nil
}
