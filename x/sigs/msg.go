package sigs

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
)

// BumpSequenceMsg increments the sequence of the main signer. It allows a
// signer to invalidate transactions signed but not yet submitted.
type BumpSequenceMsg struct {
	// Increment is the total amount the sequence is increased by, including
	// the increment done while verifying the signature.
	Increment uint32 `protobuf:"varint,1,opt,name=increment,proto3" json:"increment,omitempty"`
}

func (m *BumpSequenceMsg) Reset()         { *m = BumpSequenceMsg{} }
func (m *BumpSequenceMsg) String() string { return proto.CompactTextString(m) }
func (*BumpSequenceMsg) ProtoMessage()    {}

var _ remit.Msg = (*BumpSequenceMsg)(nil)

func (BumpSequenceMsg) Path() string {
	return "sigs/bump_sequence"
}

func (m *BumpSequenceMsg) Validate() error {
	// Incrementing by a value that is too small is not allowed, because
	// signature verification already bumped the sequence by one.
	if m.Increment < 1 {
		return errors.Wrap(errors.ErrMsg, "increment must be greater than zero")
	}
	if m.Increment > 1000 {
		return errors.Wrap(errors.ErrMsg, "increment must not be greater than 1000")
	}
	return nil
}
