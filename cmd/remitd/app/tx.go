package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/x/cash"
	"github.com/iov-one/remit/x/remittance"
	"github.com/iov-one/remit/x/sigs"
)

// Tx contains the message, signed by one or more keys. Exactly one message
// field must be set.
type Tx struct {
	Signatures []*sigs.StdSignature `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`

	SendMsg         *cash.SendMsg         `protobuf:"bytes,51,opt,name=send_msg,json=sendMsg,proto3" json:"send_msg,omitempty"`
	BumpSequenceMsg *sigs.BumpSequenceMsg `protobuf:"bytes,52,opt,name=bump_sequence_msg,json=bumpSequenceMsg,proto3" json:"bump_sequence_msg,omitempty"`

	CreateRemittanceMsg   *remittance.CreateMsg         `protobuf:"bytes,60,opt,name=create_remittance_msg,json=createRemittanceMsg,proto3" json:"create_remittance_msg,omitempty"`
	WithdrawRemittanceMsg *remittance.WithdrawMsg       `protobuf:"bytes,61,opt,name=withdraw_remittance_msg,json=withdrawRemittanceMsg,proto3" json:"withdraw_remittance_msg,omitempty"`
	CancelRemittanceMsg   *remittance.CancelMsg         `protobuf:"bytes,62,opt,name=cancel_remittance_msg,json=cancelRemittanceMsg,proto3" json:"cancel_remittance_msg,omitempty"`
	WithdrawFeesMsg       *remittance.WithdrawFeesMsg   `protobuf:"bytes,63,opt,name=withdraw_fees_msg,json=withdrawFeesMsg,proto3" json:"withdraw_fees_msg,omitempty"`
	SetFeeMsg             *remittance.SetFeeMsg         `protobuf:"bytes,64,opt,name=set_fee_msg,json=setFeeMsg,proto3" json:"set_fee_msg,omitempty"`
	NominateOwnerMsg      *remittance.NominateOwnerMsg  `protobuf:"bytes,65,opt,name=nominate_owner_msg,json=nominateOwnerMsg,proto3" json:"nominate_owner_msg,omitempty"`
	ClaimOwnershipMsg     *remittance.ClaimOwnershipMsg `protobuf:"bytes,66,opt,name=claim_ownership_msg,json=claimOwnershipMsg,proto3" json:"claim_ownership_msg,omitempty"`
	PauseMsg              *remittance.PauseMsg          `protobuf:"bytes,67,opt,name=pause_msg,json=pauseMsg,proto3" json:"pause_msg,omitempty"`
	UnpauseMsg            *remittance.UnpauseMsg        `protobuf:"bytes,68,opt,name=unpause_msg,json=unpauseMsg,proto3" json:"unpause_msg,omitempty"`
	KillMsg               *remittance.KillMsg           `protobuf:"bytes,69,opt,name=kill_msg,json=killMsg,proto3" json:"kill_msg,omitempty"`
}

func (m *Tx) Reset()         { *m = Tx{} }
func (m *Tx) String() string { return proto.CompactTextString(m) }
func (*Tx) ProtoMessage()    {}

// make sure tx fulfills all interfaces
var _ remit.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (remit.Tx, error) {
	tx := new(Tx)
	if err := proto.Unmarshal(bz, tx); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return tx, nil
}

// GetMsg returns the only message set on the transaction.
func (tx *Tx) GetMsg() (remit.Msg, error) {
	found := tx.msgs()
	switch len(found) {
	case 0:
		return nil, errors.Wrap(errors.ErrMsg, "transaction without a message")
	case 1:
		return found[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "transaction with %d messages", len(found))
	}
}

// msgs returns all message fields that are set.
func (tx *Tx) msgs() []remit.Msg {
	var res []remit.Msg
	add := func(set bool, m remit.Msg) {
		if set {
			res = append(res, m)
		}
	}
	add(tx.SendMsg != nil, tx.SendMsg)
	add(tx.BumpSequenceMsg != nil, tx.BumpSequenceMsg)
	add(tx.CreateRemittanceMsg != nil, tx.CreateRemittanceMsg)
	add(tx.WithdrawRemittanceMsg != nil, tx.WithdrawRemittanceMsg)
	add(tx.CancelRemittanceMsg != nil, tx.CancelRemittanceMsg)
	add(tx.WithdrawFeesMsg != nil, tx.WithdrawFeesMsg)
	add(tx.SetFeeMsg != nil, tx.SetFeeMsg)
	add(tx.NominateOwnerMsg != nil, tx.NominateOwnerMsg)
	add(tx.ClaimOwnershipMsg != nil, tx.ClaimOwnershipMsg)
	add(tx.PauseMsg != nil, tx.PauseMsg)
	add(tx.UnpauseMsg != nil, tx.UnpauseMsg)
	add(tx.KillMsg != nil, tx.KillMsg)
	return res
}

// SetMsg assigns given message to the matching field of the transaction.
func (tx *Tx) SetMsg(msg remit.Msg) error {
	switch m := msg.(type) {
	case *cash.SendMsg:
		tx.SendMsg = m
	case *sigs.BumpSequenceMsg:
		tx.BumpSequenceMsg = m
	case *remittance.CreateMsg:
		tx.CreateRemittanceMsg = m
	case *remittance.WithdrawMsg:
		tx.WithdrawRemittanceMsg = m
	case *remittance.CancelMsg:
		tx.CancelRemittanceMsg = m
	case *remittance.WithdrawFeesMsg:
		tx.WithdrawFeesMsg = m
	case *remittance.SetFeeMsg:
		tx.SetFeeMsg = m
	case *remittance.NominateOwnerMsg:
		tx.NominateOwnerMsg = m
	case *remittance.ClaimOwnershipMsg:
		tx.ClaimOwnershipMsg = m
	case *remittance.PauseMsg:
		tx.PauseMsg = m
	case *remittance.UnpauseMsg:
		tx.UnpauseMsg = m
	case *remittance.KillMsg:
		tx.KillMsg = m
	default:
		return errors.WithType(errors.ErrMsg, msg)
	}
	return nil
}

// GetSignatures returns the signatures attached to the transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// the sign bytes should only come from the data itself, not previous
	// signatures
	signatures := tx.Signatures
	tx.Signatures = nil
	bz, err := proto.Marshal(tx)
	tx.Signatures = signatures
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return bz, nil
}
