package app

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/remittest"
	"github.com/iov-one/remit/remittest/assert"
	"github.com/iov-one/remit/store/iavl"
	abci "github.com/tendermint/tendermint/abci/types"
)

func TestStoreAppInitChain(t *testing.T) {
	db, err := iavl.NewCommitStore("", "test")
	assert.Nil(t, err)

	genesis := &recordingInit{}
	app := NewStoreApp("test", db, remit.NewQueryRouter(), context.Background()).WithInit(genesis)
	assert.Equal(t, "", app.GetChainID())

	app.InitChain(abci.RequestInitChain{
		ChainId:       "test-chain-1",
		AppStateBytes: []byte(`{"foo": {"bar": 1}}`),
	})
	assert.Equal(t, "test-chain-1", app.GetChainID())
	assert.Equal(t, 1, len(genesis.calls))
	assert.Equal(t, `{"bar": 1}`, string(genesis.calls[0]["foo"]))

	// genesis can be loaded only once
	assert.Panics(t, func() {
		app.InitChain(abci.RequestInitChain{
			ChainId:       "test-chain-2",
			AppStateBytes: []byte(`{}`),
		})
	})

	app.Commit()

	// a restarted application loads the chain id from the store
	restarted := NewStoreApp("test", db, remit.NewQueryRouter(), context.Background())
	assert.Equal(t, "test-chain-1", restarted.GetChainID())
	assert.Equal(t, "test-chain-1", remit.GetChainID(restarted.BlockContext()))
}

func TestStoreAppInitChainErrors(t *testing.T) {
	cases := map[string]struct {
		chainID  string
		appState []byte
	}{
		"missing app state": {chainID: "test-chain-1", appState: nil},
		"invalid app state": {chainID: "test-chain-1", appState: []byte(`[1, 2]`)},
		"invalid chain id":  {chainID: "x", appState: []byte(`{}`)},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db, err := iavl.NewCommitStore("", "test")
			assert.Nil(t, err)
			app := NewStoreApp("test", db, remit.NewQueryRouter(), context.Background()).WithInit(&recordingInit{})
			assert.Panics(t, func() {
				app.InitChain(abci.RequestInitChain{ChainId: tc.chainID, AppStateBytes: tc.appState})
			})
		})
	}
}

func TestBaseAppDeliverAndQuery(t *testing.T) {
	db, err := iavl.NewCommitStore("", "test")
	assert.Nil(t, err)

	qr := remit.NewQueryRouter()
	qr.Register("/raw", rawQuery{})
	store := NewStoreApp("test", db, qr, context.Background()).WithInit(&recordingInit{})

	handler := &remittest.Handler{
		WriteKey:      []byte("greeting"),
		WriteValue:    []byte("hello"),
		DeliverResult: remit.DeliverResult{Data: []byte("ok")},
	}
	app := NewBaseApp(store, decodePath, handler, false)

	app.InitChain(abci.RequestInitChain{ChainId: "test-chain-1", AppStateBytes: []byte(`{}`)})

	blockTime := time.Date(2019, 5, 1, 12, 0, 0, 0, time.UTC)
	app.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{Height: 1, Time: blockTime},
	})
	height, _ := remit.GetHeight(app.BlockContext())
	assert.Equal(t, int64(1), height)
	assert.Equal(t, remit.AsUnixTime(blockTime), remit.MustBlockNow(app.BlockContext()))

	chk := app.CheckTx([]byte("test/greet"))
	assert.Equal(t, uint32(0), chk.Code)

	res := app.DeliverTx([]byte("test/greet"))
	assert.Equal(t, uint32(0), res.Code)
	assert.Equal(t, []byte("ok"), res.Data)
	assert.Equal(t, 1, handler.DeliverCallCount())
	assert.Equal(t, 1, handler.CheckCallCount())

	// nothing is visible to queries before the commit
	q := app.Query(abci.RequestQuery{Path: "/raw", Data: []byte("greeting")})
	assert.Equal(t, uint32(0), q.Code)
	var values ResultSet
	assert.Nil(t, values.Unmarshal(q.Value))
	assert.Equal(t, 1, len(values.Results))
	assert.Equal(t, 0, len(values.Results[0]))

	app.EndBlock(abci.RequestEndBlock{Height: 1})
	commit := app.Commit()
	if len(commit.Data) == 0 {
		t.Fatal("commit returned no app hash")
	}

	q = app.Query(abci.RequestQuery{Path: "/raw", Data: []byte("greeting")})
	assert.Equal(t, uint32(0), q.Code)
	assert.Equal(t, int64(1), q.Height)
	var keys ResultSet
	assert.Nil(t, keys.Unmarshal(q.Key))
	assert.Nil(t, values.Unmarshal(q.Value))
	models, err := JoinResults(&keys, &values)
	assert.Nil(t, err)
	assert.Equal(t, []remit.Model{remit.Pair([]byte("greeting"), []byte("hello"))}, models)

	info := app.Info(abci.RequestInfo{})
	assert.Equal(t, int64(1), info.LastBlockHeight)
	assert.Equal(t, commit.Data, info.LastBlockAppHash)
}

func TestBaseAppErrors(t *testing.T) {
	db, err := iavl.NewCommitStore("", "test")
	assert.Nil(t, err)
	store := NewStoreApp("test", db, remit.NewQueryRouter(), context.Background())
	handler := &remittest.Handler{DeliverErr: errors.ErrUnauthorized}
	app := NewBaseApp(store, decodePath, handler, false)

	res := app.DeliverTx([]byte("test/greet"))
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), res.Code)

	// decoder failure never reaches the handler
	res = app.DeliverTx(nil)
	assert.Equal(t, errors.ErrInput.ABCICode(), res.Code)
	chk := app.CheckTx(nil)
	assert.Equal(t, errors.ErrInput.ABCICode(), chk.Code)
	assert.Equal(t, 1, handler.CallCount())

	q := app.Query(abci.RequestQuery{Path: "/unknown"})
	assert.Equal(t, errors.ErrNotFound.ABCICode(), q.Code)
}

func TestSplitPath(t *testing.T) {
	cases := map[string]struct {
		path, wantPath, wantMod string
	}{
		"no modifier":   {path: "/wallets", wantPath: "/wallets", wantMod: ""},
		"with modifier": {path: "/wallets?prefix", wantPath: "/wallets", wantMod: "prefix"},
		"empty":         {path: "", wantPath: "", wantMod: ""},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			path, mod := splitPath(tc.path)
			assert.Equal(t, tc.wantPath, path)
			assert.Equal(t, tc.wantMod, mod)
		})
	}
}

// decodePath returns a transaction which message path is the given data.
func decodePath(raw []byte) (remit.Tx, error) {
	if len(raw) == 0 {
		return nil, errors.Wrap(errors.ErrInput, "empty transaction")
	}
	return &remittest.Tx{Msg: &remittest.Msg{RoutePath: string(raw)}}, nil
}

type recordingInit struct {
	calls []remit.Options
}

func (r *recordingInit) FromGenesis(opts remit.Options, kv remit.KVStore) error {
	r.calls = append(r.calls, opts)
	return nil
}

// rawQuery returns the value stored under the key given as data.
type rawQuery struct{}

func (rawQuery) Query(db remit.ReadOnlyKVStore, mod string, data []byte) ([]remit.Model, error) {
	value, err := db.Get(data)
	if err != nil {
		return nil, err
	}
	return []remit.Model{remit.Pair(data, value)}, nil
}
