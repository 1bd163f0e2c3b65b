package remittance

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/remittest"
	"github.com/iov-one/remit/remittest/assert"
	"github.com/iov-one/remit/store"
	"github.com/iov-one/remit/x/cash"
)

const (
	testChainID  = "remit-test-chain"
	initialFunds = coin.Amount(1000000)
	week         = remit.UnixDuration(604800)
)

// blockT is the block time all test scenarios start at.
var blockT = time.Date(2019, time.May, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	db   remit.CacheableKVStore
	bank cash.Controller
	ctrl Controller

	ownerCond     remit.Condition
	senderCond    remit.Condition
	recipientCond remit.Condition

	owner     remit.Address
	sender    remit.Address
	recipient remit.Address
}

// newFixture returns an initialized service with the given fee. The sender
// holds initialFunds.
func newFixture(t testing.TB, fee coin.Amount) *fixture {
	t.Helper()
	f := &fixture{
		db:            store.MemStore(),
		bank:          cash.NewController(cash.NewBucket()),
		ownerCond:     remittest.NewCondition(),
		senderCond:    remittest.NewCondition(),
		recipientCond: remittest.NewCondition(),
	}
	f.owner = f.ownerCond.Address()
	f.sender = f.senderCond.Address()
	f.recipient = f.recipientCond.Address()
	f.ctrl = NewController(f.bank)
	assert.Nil(t, f.ctrl.SetState(f.db, &State{Owner: f.owner, Fee: fee}))
	assert.Nil(t, f.bank.IssueCoins(f.db, f.sender, initialFunds))
	return f
}

// ctx returns a context with the block time shifted by given number of
// seconds from blockT.
func (f *fixture) ctx(seconds int64) remit.Context {
	ctx := remit.WithChainID(context.Background(), testChainID)
	return remit.WithBlockTime(ctx, blockT.Add(time.Duration(seconds)*time.Second))
}

func (f *fixture) balance(t testing.TB, addr remit.Address) coin.Amount {
	t.Helper()
	amount, err := f.bank.Balance(f.db, addr)
	assert.Nil(t, err)
	return amount
}

func (f *fixture) custody() remit.Address {
	return CustodyAddress(testChainID)
}

func (f *fixture) state(t testing.TB) *State {
	t.Helper()
	s, err := f.ctrl.State(f.db)
	assert.Nil(t, err)
	return s
}

func (f *fixture) setState(t testing.TB, fn func(*State)) {
	t.Helper()
	s := f.state(t)
	fn(s)
	assert.Nil(t, f.ctrl.SetState(f.db, s))
}

// create locks the deposit of the fixture sender for the fixture recipient
// and returns the commitment key.
func (f *fixture) create(t testing.TB, secret string, deposit coin.Amount) []byte {
	t.Helper()
	key := CommitmentFor(testChainID, f.recipient, []byte(secret))
	_, err := f.ctrl.Create(f.ctx(0), f.db, remit.DiscardEvents, f.sender, key, week, deposit)
	assert.Nil(t, err)
	return key
}

func eventKinds(events []remit.Event) []string {
	kinds := make([]string, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}
