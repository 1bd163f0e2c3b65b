package remittance

import (
	"github.com/iov-one/remit"
	"golang.org/x/crypto/sha3"
)

// CommitmentSize is the length of a commitment key in bytes.
const CommitmentSize = 32

// CustodyAddress returns the account holding all deposited funds of the
// given chain. Its condition is "remittance/custody/<chainID>".
func CustodyAddress(chainID string) remit.Address {
	return remit.NewCondition("remittance", "custody", []byte(chainID)).Address()
}

// InstanceSalt returns the value mixed into every commitment so that the same
// recipient and secret produce different keys on different chains.
func InstanceSalt(chainID string) []byte {
	return CustodyAddress(chainID)
}

// Commitment returns the Keccak-256 hash of the recipient, the salt and the
// secret. Recipient and salt are both addresses, so the encoding is
// unambiguous.
func Commitment(recipient remit.Address, secret, salt []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(recipient)
	h.Write(salt)
	h.Write(secret)
	return h.Sum(nil)
}

// CommitmentFor returns the commitment key a sender must use on the given
// chain to lock funds for the recipient knowing the secret.
func CommitmentFor(chainID string, recipient remit.Address, secret []byte) []byte {
	return Commitment(recipient, secret, InstanceSalt(chainID))
}
