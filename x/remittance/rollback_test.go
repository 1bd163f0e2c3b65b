package remittance

import (
	"testing"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/remittest"
	"github.com/iov-one/remit/remittest/assert"
	"github.com/iov-one/remit/x/cash"
	"github.com/iov-one/remit/x/utils"
)

// failingMover refuses every transfer.
type failingMover struct {
	cash.CoinMover
}

func (failingMover) MoveCoins(remit.KVStore, remit.Address, remit.Address, coin.Amount) error {
	return errors.Wrap(errors.ErrDatabase, "settlement unavailable")
}

func TestFailedSettlementLeavesStateUnchanged(t *testing.T) {
	f := newFixture(t, 5)
	key := f.create(t, "secret", 1000)
	expired := f.create(t, "expired", 1000)
	before := f.state(t)

	broken := NewController(failingMover{CoinMover: f.bank})

	_, err := broken.Withdraw(f.ctx(1), f.db, remit.DiscardEvents, f.recipient, []byte("secret"))
	assert.IsErr(t, errors.ErrDatabase, err)
	_, err = f.ctrl.Remittance(f.db, key)
	assert.Nil(t, err)

	_, err = broken.Cancel(f.ctx(int64(week)), f.db, remit.DiscardEvents, f.sender, expired)
	assert.IsErr(t, errors.ErrDatabase, err)
	_, err = f.ctrl.Remittance(f.db, expired)
	assert.Nil(t, err)

	_, err = broken.WithdrawFees(f.ctx(1), f.db, remit.DiscardEvents, f.owner)
	assert.IsErr(t, errors.ErrDatabase, err)

	fresh := CommitmentFor(testChainID, f.recipient, []byte("fresh"))
	_, err = broken.Create(f.ctx(1), f.db, remit.DiscardEvents, f.sender, fresh, week, 1000)
	assert.IsErr(t, errors.ErrDatabase, err)
	_, err = f.ctrl.Remittance(f.db, fresh)
	assert.IsErr(t, ErrNoSuchEscrow, err)

	assert.Equal(t, before, f.state(t))
	assert.Equal(t, coin.Amount(2000), f.balance(t, f.custody()))
}

// lateFailingMover performs the transfer and then reports a failure, which
// leaves partial writes behind.
type lateFailingMover struct {
	cash.CoinMover
}

func (m lateFailingMover) MoveCoins(db remit.KVStore, src, dst remit.Address, amount coin.Amount) error {
	if err := m.CoinMover.MoveCoins(db, src, dst, amount); err != nil {
		return err
	}
	return errors.Wrap(errors.ErrDatabase, "lost acknowledgement")
}

func TestSavepointDiscardsPartialTransfer(t *testing.T) {
	f := newFixture(t, 0)
	key := f.create(t, "secret", 1000)

	auth := &remittest.CtxAuth{Key: "auth"}
	r := newTestRouter()
	RegisterRoutes(r, auth, lateFailingMover{CoinMover: f.bank})
	handler := remittest.Decorate(r.handlers[pathWithdrawMsg], utils.NewSavepoint().OnDeliver())

	ctx := auth.SetConditions(f.ctx(1), f.recipientCond)
	tx := &remittest.Tx{Msg: &WithdrawMsg{Secret: []byte("secret")}}
	_, err := handler.Deliver(ctx, f.db, tx)
	assert.IsErr(t, errors.ErrDatabase, err)

	_, err = f.ctrl.Remittance(f.db, key)
	assert.Nil(t, err)
	assert.Equal(t, coin.Amount(0), f.balance(t, f.recipient))
	assert.Equal(t, coin.Amount(1000), f.balance(t, f.custody()))
}
