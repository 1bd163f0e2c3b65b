package client

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/app"
	remitd "github.com/iov-one/remit/cmd/remitd/app"
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/crypto"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/remittest/assert"
	"github.com/iov-one/remit/x/remittance"
	"github.com/iov-one/remit/x/sigs"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/tendermint/tendermint/rpc/client/mock"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
)

const chainID = "test-client-chain"

// localConn serves abci calls directly from an in-process application.
type localConn struct {
	mock.ABCIApp
	height int64
}

func (c *localConn) Status() (*ctypes.ResultStatus, error) {
	return &ctypes.ResultStatus{
		SyncInfo: ctypes.SyncInfo{LatestBlockHeight: c.height},
	}, nil
}

func TestClient(t *testing.T) {
	owner := crypto.GenPrivKeyEd25519()
	sender := crypto.GenPrivKeyEd25519()
	recipient := crypto.GenPrivKeyEd25519().PublicKey().Address()

	myApp := newApp(t, fmt.Sprintf(`{
		"cash": [{"address": "%s", "balance": 50000}],
		"remittance": {"owner": "%s", "fee": 100}
	}`, sender.PublicKey().Address(), owner.PublicKey().Address()))
	conn := &localConn{ABCIApp: mock.ABCIApp{App: myApp}}
	c := NewClient(conn)

	state, err := c.ContractState()
	assert.Nil(t, err)
	assert.Equal(t, owner.PublicKey().Address(), state.Owner)
	assert.Equal(t, coin.Amount(100), state.Fee)

	seq, err := c.NextSequence(sender.PublicKey())
	assert.Nil(t, err)
	assert.Equal(t, int64(0), seq)

	now := time.Date(2019, 6, 1, 10, 0, 0, 0, time.UTC)
	myApp.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{ChainID: chainID, Height: 1, Time: now},
	})
	commitment := remittance.CommitmentFor(chainID, recipient, []byte("secret"))
	tx := signedTx(t, sender, seq, &remittance.CreateMsg{
		Commitment: commitment,
		Duration:   remit.UnixDuration(24 * 60 * 60),
		Deposit:    20000,
	})
	res, err := c.CommitTx(context.Background(), tx)
	assert.Nil(t, err)
	assert.Nil(t, res.Err)
	assert.Equal(t, commitment, res.Result.Data)
	myApp.EndBlock(abci.RequestEndBlock{Height: 1})
	myApp.Commit()
	conn.height = 1

	status, err := c.Status(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, int64(1), status.Height)

	r, err := c.Remittance(commitment)
	assert.Nil(t, err)
	assert.Equal(t, coin.Amount(19900), r.Amount)
	assert.Equal(t, sender.PublicKey().Address(), r.Sender)
	assert.Equal(t, remit.AsUnixTime(now.Add(24*time.Hour)), r.Expiration)

	balance, err := c.Balance(sender.PublicKey().Address())
	assert.Nil(t, err)
	assert.Equal(t, coin.Amount(30000), balance)

	balance, err = c.Balance(recipient)
	assert.Nil(t, err)
	assert.Equal(t, coin.Amount(0), balance)

	seq, err = c.NextSequence(sender.PublicKey())
	assert.Nil(t, err)
	assert.Equal(t, int64(1), seq)

	_, err = c.Remittance([]byte("unknown commitment"))
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestClientCommitTxRejected(t *testing.T) {
	myApp := newApp(t, `{}`)
	c := NewClient(&localConn{ABCIApp: mock.ABCIApp{App: myApp}})

	// unsigned transactions have no caller
	create := &remittance.CreateMsg{
		Commitment: remittance.CommitmentFor(chainID, crypto.GenPrivKeyEd25519().PublicKey().Address(), []byte("x")),
		Duration:   remit.UnixDuration(60 * 60),
		Deposit:    10,
	}
	raw, err := proto.Marshal(&remitd.Tx{CreateRemittanceMsg: create})
	assert.Nil(t, err)
	_, err = c.CommitTx(context.Background(), raw)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	_, err = c.CommitTx(context.Background(), []byte("invalid"))
	assert.IsErr(t, errors.ErrInput, err)
}

func TestClientQueryUnknownPath(t *testing.T) {
	myApp := newApp(t, `{}`)
	c := NewClient(&localConn{ABCIApp: mock.ABCIApp{App: myApp}})

	_, err := c.QueryModels("/unknown", []byte("key"))
	assert.IsErr(t, errors.ErrNotFound, err)
}

func newApp(t testing.TB, appState string) app.BaseApp {
	t.Helper()
	abciApp, err := remitd.GenerateApp("", log.NewNopLogger(), false)
	assert.Nil(t, err)
	myApp := abciApp.(app.BaseApp)
	myApp.InitChain(abci.RequestInitChain{
		ChainId:       chainID,
		AppStateBytes: []byte(appState),
	})
	myApp.Commit()
	return myApp
}

func signedTx(t testing.TB, key *crypto.PrivateKey, seq int64, msg remit.Msg) []byte {
	t.Helper()
	tx := &remitd.Tx{}
	assert.Nil(t, tx.SetMsg(msg))
	sig, err := sigs.SignTx(key, tx, chainID, seq)
	assert.Nil(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	raw, err := proto.Marshal(tx)
	assert.Nil(t, err)
	return raw
}
