package remittest

import (
	"testing"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/crypto"
)

// NewKey returns a random private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns a signature condition of a random key.
func NewCondition() remit.Condition {
	return NewKey().PublicKey().Condition()
}

// ParseAddress takes an address in a human readable format and returns
// its binary representation. This function is a test helper that is using
// remit.ParseAddress function functionality.
func ParseAddress(t testing.TB, encodedAddress string) remit.Address {
	t.Helper()

	addr, err := remit.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
