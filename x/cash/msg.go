package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/errors"
)

const maxMemoSize int = 128

// SendMsg moves funds from the source account to the destination.
type SendMsg struct {
	Source      remit.Address `protobuf:"bytes,1,opt,name=source,proto3,casttype=github.com/iov-one/remit.Address" json:"source"`
	Destination remit.Address `protobuf:"bytes,2,opt,name=destination,proto3,casttype=github.com/iov-one/remit.Address" json:"destination"`
	Amount      coin.Amount   `protobuf:"varint,3,opt,name=amount,proto3,casttype=github.com/iov-one/remit/coin.Amount" json:"amount"`
	Memo        string        `protobuf:"bytes,4,opt,name=memo,proto3" json:"memo,omitempty"`
}

func (m *SendMsg) Reset()         { *m = SendMsg{} }
func (m *SendMsg) String() string { return proto.CompactTextString(m) }
func (*SendMsg) ProtoMessage()    {}

// Ensure we implement the Msg interface
var _ remit.Msg = (*SendMsg)(nil)

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "cash/send"
}

// Validate makes sure that this is sensible
func (m *SendMsg) Validate() error {
	var err error
	if !m.Amount.IsPositive() {
		err = errors.Wrapf(errors.ErrAmount, "non-positive SendMsg: %d", int64(m.Amount))
	}
	err = errors.Append(err, errors.Wrap(m.Source.Validate(), "source"))
	err = errors.Append(err, errors.Wrap(m.Destination.Validate(), "destination"))
	if len(m.Memo) > maxMemoSize {
		err = errors.Append(err, errors.Wrap(errors.ErrState, "memo too long"))
	}
	return err
}
