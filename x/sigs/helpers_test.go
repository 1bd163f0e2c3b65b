package sigs

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/remittest"
)

// StdTx is a signed transaction carrying an opaque payload.
type StdTx struct {
	remittest.Tx
	Payload    []byte
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)
var _ remit.Tx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	return &StdTx{
		Tx:      remittest.Tx{Msg: &remittest.Msg{RoutePath: "sigs/test"}},
		Payload: payload,
	}
}

func (tx *StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx *StdTx) GetSignBytes() ([]byte, error) {
	return tx.Payload, nil
}
