package server

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/iov-one/remit/app"
	"github.com/iov-one/remit/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// GenOptions can parse command-line and flag to
// generate default app_state for the genesis file.
// This is application-specific
type GenOptions func(args []string) (json.RawMessage, error)

// GenesisFile returns the location of the tendermint genesis file for the
// given home directory.
func GenesisFile(home string) string {
	return filepath.Join(home, "config", "genesis.json")
}

// InitCmd will add the app_state to an existing tendermint genesis file.
// Run `tendermint init` with the same home directory first.
//
// The application passes in a function to generate the options.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	genFile := GenesisFile(home)
	if !fileExists(genFile) {
		return errors.Wrapf(errors.ErrNotFound, "genesis file %s, run tendermint init first", genFile)
	}

	// Once the app_state is set, we refuse to overwrite it
	gen0, err := app.LoadGenesis(genFile)
	if err != nil {
		return err
	}
	if len(gen0.AppState) > 0 {
		return errors.Wrapf(errors.ErrDuplicate, "app_state already set in %s", genFile)
	}

	options, err := gen(args)
	if err != nil {
		return err
	}
	if err := app.AddGenesisOptions(genFile, options); err != nil {
		return err
	}
	logger.Info("App state set in genesis file", "path", genFile)
	return nil
}

func fileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return !os.IsNotExist(err)
}
