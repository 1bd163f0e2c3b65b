package commands

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/crypto"
	"github.com/iov-one/remit/errors"
)

type keyOutput struct {
	Path    string             `json:"path,omitempty"`
	Address remit.Address      `json:"address"`
	Bech32  string             `json:"bech32"`
	Pubkey  *crypto.PublicKey  `json:"pub_key"`
	Secret  *crypto.PrivateKey `json:"secret"`
}

// KeysCmd prints a new ed25519 key pair together with its address. When a
// hex encoded seed is given, the key is derived from it using the account
// index, so the same seed always returns the same keys.
func KeysCmd(out io.Writer, args []string) error {
	fl := flag.NewFlagSet("keys", flag.ContinueOnError)
	var (
		seedFl    = fl.String("seed", "", "hex encoded master seed, at least 16 bytes")
		accountFl = fl.Uint("account", 0, "account index used for derivation from the seed")
	)
	if err := fl.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	var (
		key  *crypto.PrivateKey
		path string
	)
	if *seedFl == "" {
		key = crypto.GenPrivKeyEd25519()
	} else {
		seed, err := hex.DecodeString(*seedFl)
		if err != nil {
			return errors.Wrap(errors.ErrInput, "seed must be hex encoded")
		}
		path = crypto.AccountPath(uint32(*accountFl))
		key, err = crypto.DeriveKey(seed, path)
		if err != nil {
			return err
		}
	}

	pub := key.PublicKey()
	addr := pub.Address()
	b32, err := addr.Bech32()
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	raw, err := json.MarshalIndent(keyOutput{
		Path:    path,
		Address: addr,
		Bech32:  b32,
		Pubkey:  pub,
		Secret:  key,
	}, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	_, err = fmt.Fprintln(out, string(raw))
	return err
}
