package server

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/remit/app"
	"github.com/iov-one/remit/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

func TestInitCmd(t *testing.T) {
	home, err := ioutil.TempDir("", "remitd-init")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	gen := func(args []string) (json.RawMessage, error) {
		return json.RawMessage(`{"remittance": {"fee": 3}}`), nil
	}
	logger := log.NewNopLogger()

	// tendermint files must be created first
	err = InitCmd(gen, logger, home, nil)
	assert.True(t, errors.ErrNotFound.Is(err))

	require.NoError(t, os.MkdirAll(filepath.Join(home, "config"), 0755))
	const tmGenesis = `{"chain_id": "test-chain-AbC", "validators": []}`
	require.NoError(t, ioutil.WriteFile(GenesisFile(home), []byte(tmGenesis), 0600))

	require.NoError(t, InitCmd(gen, logger, home, nil))
	gen0, err := app.LoadGenesis(GenesisFile(home))
	require.NoError(t, err)
	assert.Equal(t, "test-chain-AbC", gen0.ChainID)
	assert.JSONEq(t, `{"fee": 3}`, string(gen0.AppState["remittance"]))

	// the app state is never overwritten
	err = InitCmd(gen, logger, home, nil)
	assert.True(t, errors.ErrDuplicate.Is(err))
}
