package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/remittest"
	"github.com/iov-one/remit/remittest/assert"
	"github.com/iov-one/remit/store"
	"github.com/tendermint/tendermint/libs/log"
)

func TestRecovery(t *testing.T) {
	h := remittest.Decorate(&remittest.Handler{Panic: "boom"}, NewRecovery())
	ctx := context.Background()
	kv := store.MemStore()

	// Panic handler panics when not wrapped.
	assert.Panics(t, func() {
		(&remittest.Handler{Panic: "boom"}).Check(ctx, kv, &remittest.Tx{})
	})

	_, err := h.Check(ctx, kv, &remittest.Tx{})
	assert.IsErr(t, errors.ErrPanic, err)

	_, err = h.Deliver(ctx, kv, &remittest.Tx{})
	assert.IsErr(t, errors.ErrPanic, err)
}

func TestRecoveryLogsPanic(t *testing.T) {
	var buf bytes.Buffer
	ctx := remit.WithLogger(context.Background(), log.NewTMLogger(log.NewSyncWriter(&buf)))
	h := remittest.Decorate(&remittest.Handler{Panic: "boom"}, NewRecovery())
	tx := &remittest.Tx{Msg: &remittest.Msg{RoutePath: "test/boom"}}

	_, err := h.Deliver(ctx, store.MemStore(), tx)
	assert.IsErr(t, errors.ErrPanic, err)

	out := buf.String()
	if !strings.Contains(out, "transaction panicked") || !strings.Contains(out, "test/boom") {
		t.Fatalf("panic not logged: %q", out)
	}
}
