package sigs

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/x"
)

// RegisterRoutes registers the sequence bump handler.
func RegisterRoutes(r remit.Registry, auth x.Authenticator) {
	r.Handle(BumpSequenceMsg{}.Path(), &bumpSequenceHandler{
		b:    NewBucket(),
		auth: auth,
	})
}

type bumpSequenceHandler struct {
	auth x.Authenticator
	b    Bucket
}

func (h *bumpSequenceHandler) Check(ctx remit.Context, db remit.KVStore, tx remit.Tx) (*remit.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &remit.CheckResult{}, nil
}

func (h *bumpSequenceHandler) Deliver(ctx remit.Context, db remit.KVStore, tx remit.Tx) (*remit.DeliverResult, error) {
	user, msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// Each transaction processing bumps the sequence by one. Increment
	// must represent the total increment value.
	incr := int64(msg.Increment) - 1
	if incr == 0 {
		// Zero increment requires no modification.
		return &remit.DeliverResult{}, nil
	}
	user.Sequence += incr
	if err := h.b.Save(db, user); err != nil {
		return nil, errors.Wrap(err, "save user")
	}
	return &remit.DeliverResult{}, nil
}

func (h *bumpSequenceHandler) validate(ctx remit.Context, db remit.KVStore, tx remit.Tx) (*UserData, *BumpSequenceMsg, error) {
	var msg *BumpSequenceMsg
	if err := remit.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	var user UserData
	if err := h.b.One(db, signer.Address(), &user); err != nil {
		return nil, nil, errors.Wrap(err, "no sequence")
	}

	if user.Sequence+int64(msg.Increment) < user.Sequence {
		return nil, nil, errors.Wrap(errors.ErrOverflow, "user sequence")
	}
	return &user, msg, nil
}
