package commands

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/iov-one/remit/app"
	"github.com/iov-one/remit/client"
	remitd "github.com/iov-one/remit/cmd/remitd/app"
	"github.com/iov-one/remit/crypto"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/x/remittance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/tendermint/tendermint/rpc/client/mock"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
)

type appConn struct {
	mock.ABCIApp
}

func (appConn) Status() (*ctypes.ResultStatus, error) {
	return &ctypes.ResultStatus{}, nil
}

func TestQueryCmd(t *testing.T) {
	owner := crypto.GenPrivKeyEd25519().PublicKey().Address()
	appState, err := remitd.GenInitOptions([]string{owner.String()})
	require.NoError(t, err)

	abciApp, err := remitd.GenerateApp("", log.NewNopLogger(), false)
	require.NoError(t, err)
	myApp := abciApp.(app.BaseApp)
	myApp.InitChain(abci.RequestInitChain{ChainId: "query-test", AppStateBytes: appState})
	myApp.Commit()

	var remote string
	connect := func(r string) client.Connection {
		remote = r
		return appConn{mock.ABCIApp{App: myApp}}
	}

	var out bytes.Buffer
	require.NoError(t, QueryCmd(connect, &out, []string{"-remote", "tcp://node:26657", "state"}))
	assert.Equal(t, "tcp://node:26657", remote)
	var state remittance.State
	require.NoError(t, json.Unmarshal(out.Bytes(), &state))
	assert.Equal(t, owner, state.Owner)

	out.Reset()
	require.NoError(t, QueryCmd(connect, &out, []string{"balance", owner.String()}))
	var balance struct {
		Balance int64 `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &balance))
	assert.Equal(t, int64(remitd.InitialBalance), balance.Balance)

	key := hex.EncodeToString(remittance.CommitmentFor("query-test", owner, []byte("s")))
	err = QueryCmd(connect, &out, []string{"remittance", key})
	assert.True(t, errors.ErrNotFound.Is(err))

	err = QueryCmd(connect, &out, []string{"remittance", "zz"})
	assert.True(t, errors.ErrInput.Is(err))

	err = QueryCmd(connect, &out, []string{"unknown"})
	assert.True(t, errors.ErrInput.Is(err))

	err = QueryCmd(connect, &out, nil)
	assert.True(t, errors.ErrInput.Is(err))
}
