package app

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/app"
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/crypto"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/remittest/assert"
	"github.com/iov-one/remit/x/cash"
	"github.com/iov-one/remit/x/remittance"
	"github.com/iov-one/remit/x/sigs"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	testChainID = "test-remit-chain"
	week        = remit.UnixDuration(7 * 24 * 60 * 60)
)

func TestApp(t *testing.T) {
	owner := newUser(crypto.GenPrivKeyEd25519())
	sender := newUser(crypto.GenPrivKeyEd25519())
	recipient := newUser(crypto.GenPrivKeyEd25519())

	myApp := newTestApp(t, fmt.Sprintf(`{
		"cash": [
			{"address": "%s", "balance": 100000},
			{"address": "%s", "balance": 0}
		],
		"remittance": {"owner": "%s", "fee": 100},
		"conf": {"remittance": {"min_duration": "1h", "max_duration": 2419200}}
	}`, sender.addr, owner.addr, owner.addr))

	start := time.Date(2019, 5, 1, 12, 0, 0, 0, time.UTC)
	secret := []byte("123")
	commitment := remittance.CommitmentFor(testChainID, recipient.addr, secret)

	res := deliverBlock(t, myApp, 1, start, sender.sign(t, &remittance.CreateMsg{
		Commitment: commitment,
		Duration:   week,
		Deposit:    10000,
	}))
	assert.Equal(t, uint32(0), res.Code)
	assert.Equal(t, commitment, res.Data)
	assertTag(t, res.Tags, remit.EventKey, remittance.EventCreated)
	assertTag(t, res.Tags, "action", "remittance/create")

	assert.Equal(t, coin.Amount(90000), queryBalance(t, myApp, sender.addr))
	custody := remittance.CustodyAddress(testChainID)
	assert.Equal(t, coin.Amount(10000), queryBalance(t, myApp, custody))

	var rec remittance.Remittance
	queryOne(t, myApp, "/remittances", commitment, &rec)
	assert.Equal(t, coin.Amount(9900), rec.Amount)
	assert.Equal(t, remit.AsUnixTime(start).Add(time.Duration(week)*time.Second), rec.Expiration)

	// the recipient claims the funds one block later
	res = deliverBlock(t, myApp, 2, start.Add(time.Second), recipient.sign(t, &remittance.WithdrawMsg{Secret: secret}))
	assert.Equal(t, uint32(0), res.Code)
	assertTag(t, res.Tags, remit.EventKey, remittance.EventWithdrawn)
	assert.Equal(t, coin.Amount(9900), queryBalance(t, myApp, recipient.addr))
	assert.Equal(t, coin.Amount(100), queryBalance(t, myApp, custody))

	// claims are exactly once
	res = deliverBlock(t, myApp, 3, start.Add(2*time.Second), recipient.sign(t, &remittance.WithdrawMsg{Secret: secret}))
	assert.Equal(t, remittance.ErrNoSuchEscrow.ABCICode(), res.Code)

	// the failed transaction still consumed the sequence
	assert.Equal(t, int64(2), querySequence(t, myApp, recipient.key.PublicKey()))

	res = deliverBlock(t, myApp, 4, start.Add(3*time.Second), owner.sign(t, &remittance.WithdrawFeesMsg{}))
	assert.Equal(t, uint32(0), res.Code)
	assert.Equal(t, coin.Amount(100), queryBalance(t, myApp, owner.addr))
	assert.Equal(t, coin.Amount(0), queryBalance(t, myApp, custody))

	var state remittance.State
	queryOne(t, myApp, "/remittance/state", []byte("state"), &state)
	assert.Equal(t, coin.Amount(0), state.AccruedFees)
	assert.Equal(t, owner.addr, state.Owner)
}

func TestAppRejectsInvalidTransactions(t *testing.T) {
	owner := newUser(crypto.GenPrivKeyEd25519())
	sender := newUser(crypto.GenPrivKeyEd25519())

	myApp := newTestApp(t, fmt.Sprintf(`{
		"cash": [{"address": "%s", "balance": 100}],
		"remittance": {"owner": "%s", "fee": 0}
	}`, sender.addr, owner.addr))

	start := time.Date(2019, 5, 1, 12, 0, 0, 0, time.UTC)
	commitment := remittance.CommitmentFor(testChainID, owner.addr, []byte("secret"))
	create := &remittance.CreateMsg{Commitment: commitment, Duration: week, Deposit: 50}

	// unsigned transactions have no caller
	unsigned := &Tx{CreateRemittanceMsg: create}
	res := deliverBlock(t, myApp, 1, start, mustMarshal(t, unsigned))
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), res.Code)

	// only the owner can pause
	res = deliverBlock(t, myApp, 2, start, sender.sign(t, &remittance.PauseMsg{}))
	assert.Equal(t, remittance.ErrNotOwner.ABCICode(), res.Code)

	res = deliverBlock(t, myApp, 3, start, owner.sign(t, &remittance.PauseMsg{}))
	assert.Equal(t, uint32(0), res.Code)

	res = deliverBlock(t, myApp, 4, start, sender.sign(t, create))
	assert.Equal(t, remittance.ErrContractPaused.ABCICode(), res.Code)

	// funds never left the sender
	assert.Equal(t, coin.Amount(100), queryBalance(t, myApp, sender.addr))

	res = deliverBlock(t, myApp, 5, start, []byte("not a transaction"))
	assert.Equal(t, errors.ErrInput.ABCICode(), res.Code)
}

func newTestApp(t testing.TB, appState string) app.BaseApp {
	t.Helper()
	abciApp, err := GenerateApp("", log.NewNopLogger(), true)
	assert.Nil(t, err)
	myApp := abciApp.(app.BaseApp)

	// ensure the state is valid json before passing it on
	var raw json.RawMessage
	assert.Nil(t, json.Unmarshal([]byte(appState), &raw))

	myApp.InitChain(abci.RequestInitChain{
		ChainId:       testChainID,
		AppStateBytes: raw,
	})
	return myApp
}

// deliverBlock processes a block with a single transaction and commits it.
func deliverBlock(t testing.TB, myApp app.BaseApp, height int64, now time.Time, tx []byte) abci.ResponseDeliverTx {
	t.Helper()
	myApp.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{ChainID: testChainID, Height: height, Time: now},
	})
	res := myApp.DeliverTx(tx)
	myApp.EndBlock(abci.RequestEndBlock{Height: height})
	myApp.Commit()
	return res
}

type user struct {
	key  *crypto.PrivateKey
	addr remit.Address
	seq  int64
}

func newUser(key *crypto.PrivateKey) *user {
	return &user{key: key, addr: key.PublicKey().Address()}
}

// sign returns the serialized transaction carrying given message, signed
// with the next sequence of the user.
func (u *user) sign(t testing.TB, msg remit.Msg) []byte {
	t.Helper()
	tx := &Tx{}
	assert.Nil(t, tx.SetMsg(msg))
	sig, err := sigs.SignTx(u.key, tx, testChainID, u.seq)
	assert.Nil(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	u.seq++
	return mustMarshal(t, tx)
}

func mustMarshal(t testing.TB, tx *Tx) []byte {
	t.Helper()
	raw, err := proto.Marshal(tx)
	assert.Nil(t, err)
	return raw
}

func queryOne(t testing.TB, myApp app.BaseApp, path string, key []byte, dest proto.Message) {
	t.Helper()
	res := myApp.Query(abci.RequestQuery{Path: path, Data: key})
	if res.Code != 0 {
		t.Fatalf("query %s: %d %s", path, res.Code, res.Log)
	}
	assert.Nil(t, app.UnmarshalOneResult(res.Value, dest))
}

func queryBalance(t testing.TB, myApp app.BaseApp, addr remit.Address) coin.Amount {
	t.Helper()
	var w cash.Wallet
	queryOne(t, myApp, "/wallets", addr, &w)
	return w.Balance
}

func querySequence(t testing.TB, myApp app.BaseApp, pubkey *crypto.PublicKey) int64 {
	t.Helper()
	var u sigs.UserData
	queryOne(t, myApp, "/auth", pubkey.Address(), &u)
	return u.Sequence
}

func assertTag(t testing.TB, tags []common.KVPair, key, value string) {
	t.Helper()
	for _, tag := range tags {
		if string(tag.Key) == key && string(tag.Value) == value {
			return
		}
	}
	t.Fatalf("tag %s=%s not found in %v", key, value, tags)
}
