package app

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/crypto"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/x/cash"
	"github.com/iov-one/remit/x/remittance"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// InitialBalance is issued to the generated account in dev mode.
const InitialBalance coin.Amount = 123456789

// GenInitOptions will produce some basic options for one rich account, that
// is also the owner of the remittance service, to use for dev mode.
//
// An existing address can be given as the only argument. Otherwise a new key
// is generated and printed.
func GenInitOptions(args []string) (json.RawMessage, error) {
	var addr remit.Address
	if len(args) > 0 {
		a, err := remit.ParseAddress(args[0])
		if err != nil {
			return nil, errors.Wrap(err, "owner address")
		}
		if err := a.Validate(); err != nil {
			return nil, errors.Wrap(err, "owner address")
		}
		addr = a
	} else {
		// if no address provided, auto-generate one
		// and print out the keys
		a, keys, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = a
		fmt.Println(keys)
	}

	state := genesisState{
		Cash: []cash.GenesisAccount{
			{Address: addr, Balance: InitialBalance},
		},
		Remittance: remittance.Genesis{
			Owner: addr,
		},
		Conf: map[string]remittance.Configuration{
			"remittance": remittance.DefaultConfiguration(),
		},
	}
	return json.MarshalIndent(state, "", "  ")
}

// genesisState is the app_state written by GenInitOptions.
type genesisState struct {
	Cash       []cash.GenesisAccount               `json:"cash"`
	Remittance remittance.Genesis                  `json:"remittance"`
	Conf       map[string]remittance.Configuration `json:"conf"`
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "remit.db")
	}

	application, err := Application(Name, Stack(), TxDecoder, dbPath, debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(Initializers())

	// set the logger and return
	application.WithLogger(logger)
	return application, nil
}

type output struct {
	Address remit.Address      `json:"address"`
	Bech32  string             `json:"bech32"`
	Pubkey  *crypto.PublicKey  `json:"pub_key"`
	Secret  *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key,
// along with a json representation of the keys.
// You can give coins to this address and
// import the keys in a client to use them
func GenerateCoinKey() (remit.Address, string, error) {
	return KeyOutput(crypto.GenPrivKeyEd25519())
}

// KeyOutput returns the address of the given key together with a json
// representation of the key pair.
func KeyOutput(privKey *crypto.PrivateKey) (remit.Address, string, error) {
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()
	b32, err := addr.Bech32()
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrInput, err.Error())
	}
	out := output{Address: addr, Bech32: b32, Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrInput, err.Error())
	}
	return addr, string(keys), nil
}
