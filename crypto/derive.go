package crypto

import (
	"fmt"

	"github.com/iov-one/remit/errors"
	"github.com/stellar/go/exp/crypto/derivation"
	"golang.org/x/crypto/ed25519"
)

// DefaultPath is the derivation path template used for account keys. The
// only parameter is the account index.
const DefaultPath = "m/44'/234'/%d'"

// AccountPath returns the derivation path of the n-th account.
func AccountPath(n uint32) string {
	return fmt.Sprintf(DefaultPath, n)
}

// DeriveKey returns the ed25519 private key derived from the master seed
// using given SLIP-10 path, ie "m/44'/234'/0'".
func DeriveKey(seed []byte, path string) (*PrivateKey, error) {
	if len(seed) < 16 {
		return nil, errors.Wrap(errors.ErrInput, "seed too short")
	}
	k, err := derivation.DeriveForPath(path, seed)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "derive %q: %s", path, err)
	}
	return &PrivateKey{Ed25519: ed25519.NewKeyFromSeed(k.Key)}, nil
}
