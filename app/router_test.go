package app

import (
	"context"
	"testing"

	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/remittest"
	"github.com/iov-one/remit/remittest/assert"
)

func TestRouter(t *testing.T) {
	var (
		ctx = context.Background()
		r   = NewRouter()

		msg     = &remittest.Msg{RoutePath: "test/good"}
		tx      = &remittest.Tx{Msg: msg}
		handler = &remittest.Handler{}
	)

	r.Handle(msg.Path(), handler)

	if _, err := r.Check(ctx, nil, tx); err != nil {
		t.Fatalf("check failed: %s", err)
	}
	if _, err := r.Deliver(ctx, nil, tx); err != nil {
		t.Fatalf("delivery failed: %s", err)
	}
	assert.Equal(t, 2, handler.CallCount())
}

func TestRouterRegistration(t *testing.T) {
	r := NewRouter()
	r.Handle("test/one", &remittest.Handler{})

	assert.Panics(t, func() { r.Handle("test/one", &remittest.Handler{}) })
	assert.Panics(t, func() { r.Handle("l:7", &remittest.Handler{}) })
	assert.Panics(t, func() { r.Handle("", &remittest.Handler{}) })
}

func TestRouterNoHandler(t *testing.T) {
	var (
		ctx = context.Background()
		r   = NewRouter()
		tx  = &remittest.Tx{Msg: &remittest.Msg{RoutePath: "test/missing"}}
	)

	_, err := r.Check(ctx, nil, tx)
	assert.IsErr(t, errors.ErrNotFound, err)
	_, err = r.Deliver(ctx, nil, tx)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestRouterWithoutMessage(t *testing.T) {
	var (
		ctx = context.Background()
		r   = NewRouter()
	)
	r.Handle("test/any", &remittest.Handler{})

	_, err := r.Deliver(ctx, nil, &remittest.Tx{})
	assert.IsErr(t, errors.ErrMsg, err)

	_, err = r.Check(ctx, nil, &remittest.Tx{Err: errors.ErrInput})
	assert.IsErr(t, errors.ErrInput, err)
}
