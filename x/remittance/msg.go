package remittance

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/errors"
)

const (
	pathCreateMsg         = "remittance/create"
	pathWithdrawMsg       = "remittance/withdraw"
	pathCancelMsg         = "remittance/cancel"
	pathWithdrawFeesMsg   = "remittance/withdraw_fees"
	pathSetFeeMsg         = "remittance/set_fee"
	pathNominateOwnerMsg  = "remittance/nominate_owner"
	pathClaimOwnershipMsg = "remittance/claim_ownership"
	pathPauseMsg          = "remittance/pause"
	pathUnpauseMsg        = "remittance/unpause"
	pathKillMsg           = "remittance/kill"

	maxSecretSize = 256
)

var (
	_ remit.Msg = (*CreateMsg)(nil)
	_ remit.Msg = (*WithdrawMsg)(nil)
	_ remit.Msg = (*CancelMsg)(nil)
	_ remit.Msg = (*WithdrawFeesMsg)(nil)
	_ remit.Msg = (*SetFeeMsg)(nil)
	_ remit.Msg = (*NominateOwnerMsg)(nil)
	_ remit.Msg = (*ClaimOwnershipMsg)(nil)
	_ remit.Msg = (*PauseMsg)(nil)
	_ remit.Msg = (*UnpauseMsg)(nil)
	_ remit.Msg = (*KillMsg)(nil)
)

// CreateMsg locks the deposit under the commitment for the given duration.
type CreateMsg struct {
	Commitment []byte             `protobuf:"bytes,1,opt,name=commitment,proto3" json:"commitment"`
	Duration   remit.UnixDuration `protobuf:"varint,2,opt,name=duration,proto3,casttype=github.com/iov-one/remit.UnixDuration" json:"duration"`
	Deposit    coin.Amount        `protobuf:"varint,3,opt,name=deposit,proto3,casttype=github.com/iov-one/remit/coin.Amount" json:"deposit"`
}

func (m *CreateMsg) Reset()         { *m = CreateMsg{} }
func (m *CreateMsg) String() string { return proto.CompactTextString(m) }
func (*CreateMsg) ProtoMessage()    {}

// Path returns the routing path for this message.
func (CreateMsg) Path() string { return pathCreateMsg }

// Validate checks the commitment only. Duration and deposit are checked by
// the controller against the configured bounds and the current fee, so that
// they fail with ErrDurationTooShort and ErrInsufficientDeposit.
func (m *CreateMsg) Validate() error {
	return validateCommitment(m.Commitment)
}

// WithdrawMsg claims the escrow locked for the signer with the given secret.
type WithdrawMsg struct {
	Secret []byte `protobuf:"bytes,1,opt,name=secret,proto3" json:"secret"`
}

func (m *WithdrawMsg) Reset()         { *m = WithdrawMsg{} }
func (m *WithdrawMsg) String() string { return "WithdrawMsg{...}" }
func (*WithdrawMsg) ProtoMessage()    {}

// Path returns the routing path for this message.
func (WithdrawMsg) Path() string { return pathWithdrawMsg }

// Validate requires a secret of a sensible size.
func (m *WithdrawMsg) Validate() error {
	if len(m.Secret) == 0 {
		return errors.Wrap(errors.ErrEmpty, "secret")
	}
	if len(m.Secret) > maxSecretSize {
		return errors.Wrapf(errors.ErrInput, "secret longer than %d bytes", maxSecretSize)
	}
	return nil
}

// CancelMsg returns the funds of an expired escrow to its sender.
type CancelMsg struct {
	Commitment []byte `protobuf:"bytes,1,opt,name=commitment,proto3" json:"commitment"`
}

func (m *CancelMsg) Reset()         { *m = CancelMsg{} }
func (m *CancelMsg) String() string { return proto.CompactTextString(m) }
func (*CancelMsg) ProtoMessage()    {}

// Path returns the routing path for this message.
func (CancelMsg) Path() string { return pathCancelMsg }

// Validate requires a well formed commitment.
func (m *CancelMsg) Validate() error {
	return validateCommitment(m.Commitment)
}

// WithdrawFeesMsg sweeps all accrued fees to the owner.
type WithdrawFeesMsg struct{}

func (m *WithdrawFeesMsg) Reset()         { *m = WithdrawFeesMsg{} }
func (m *WithdrawFeesMsg) String() string { return proto.CompactTextString(m) }
func (*WithdrawFeesMsg) ProtoMessage()    {}

// Path returns the routing path for this message.
func (WithdrawFeesMsg) Path() string { return pathWithdrawFeesMsg }

// Validate always passes.
func (m *WithdrawFeesMsg) Validate() error { return nil }

// SetFeeMsg changes the fee charged for new escrows.
type SetFeeMsg struct {
	Fee coin.Amount `protobuf:"varint,1,opt,name=fee,proto3,casttype=github.com/iov-one/remit/coin.Amount" json:"fee"`
}

func (m *SetFeeMsg) Reset()         { *m = SetFeeMsg{} }
func (m *SetFeeMsg) String() string { return proto.CompactTextString(m) }
func (*SetFeeMsg) ProtoMessage()    {}

// Path returns the routing path for this message.
func (SetFeeMsg) Path() string { return pathSetFeeMsg }

// Validate requires a non negative fee.
func (m *SetFeeMsg) Validate() error {
	return errors.Wrap(m.Fee.Validate(), "fee")
}

// NominateOwnerMsg selects the candidate for the next owner. An empty
// candidate clears the nomination.
type NominateOwnerMsg struct {
	Candidate remit.Address `protobuf:"bytes,1,opt,name=candidate,proto3,casttype=github.com/iov-one/remit.Address" json:"candidate,omitempty"`
}

func (m *NominateOwnerMsg) Reset()         { *m = NominateOwnerMsg{} }
func (m *NominateOwnerMsg) String() string { return proto.CompactTextString(m) }
func (*NominateOwnerMsg) ProtoMessage()    {}

// Path returns the routing path for this message.
func (NominateOwnerMsg) Path() string { return pathNominateOwnerMsg }

// Validate accepts an empty or a well formed candidate address.
func (m *NominateOwnerMsg) Validate() error {
	if len(m.Candidate) == 0 {
		return nil
	}
	return errors.Wrap(m.Candidate.Validate(), "candidate")
}

// ClaimOwnershipMsg makes the nominated signer the owner.
type ClaimOwnershipMsg struct{}

func (m *ClaimOwnershipMsg) Reset()         { *m = ClaimOwnershipMsg{} }
func (m *ClaimOwnershipMsg) String() string { return proto.CompactTextString(m) }
func (*ClaimOwnershipMsg) ProtoMessage()    {}

// Path returns the routing path for this message.
func (ClaimOwnershipMsg) Path() string { return pathClaimOwnershipMsg }

// Validate always passes.
func (m *ClaimOwnershipMsg) Validate() error { return nil }

// PauseMsg freezes new escrows, claims and cancellations.
type PauseMsg struct{}

func (m *PauseMsg) Reset()         { *m = PauseMsg{} }
func (m *PauseMsg) String() string { return proto.CompactTextString(m) }
func (*PauseMsg) ProtoMessage()    {}

// Path returns the routing path for this message.
func (PauseMsg) Path() string { return pathPauseMsg }

// Validate always passes.
func (m *PauseMsg) Validate() error { return nil }

// UnpauseMsg reactivates a paused service.
type UnpauseMsg struct{}

func (m *UnpauseMsg) Reset()         { *m = UnpauseMsg{} }
func (m *UnpauseMsg) String() string { return proto.CompactTextString(m) }
func (*UnpauseMsg) ProtoMessage()    {}

// Path returns the routing path for this message.
func (UnpauseMsg) Path() string { return pathUnpauseMsg }

// Validate always passes.
func (m *UnpauseMsg) Validate() error { return nil }

// KillMsg terminates a paused service.
type KillMsg struct{}

func (m *KillMsg) Reset()         { *m = KillMsg{} }
func (m *KillMsg) String() string { return proto.CompactTextString(m) }
func (*KillMsg) ProtoMessage()    {}

// Path returns the routing path for this message.
func (KillMsg) Path() string { return pathKillMsg }

// Validate always passes.
func (m *KillMsg) Validate() error { return nil }

func validateCommitment(c []byte) error {
	if len(c) == 0 {
		return errors.Wrap(errors.ErrEmpty, "commitment")
	}
	if len(c) != CommitmentSize {
		return errors.Wrapf(errors.ErrInput, "commitment must be %d bytes, got %d", CommitmentSize, len(c))
	}
	return nil
}
