package remittance

import (
	"time"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/orm"
)

const (
	// BucketName is where the escrow records are stored.
	BucketName = "remittance"
	// StateBucketName is where the lifecycle state singleton is stored.
	StateBucketName = "remitstate"
)

// StateKey is the key of the lifecycle state singleton.
var StateKey = []byte("state")

// Remittance is the escrow record stored under its commitment key.
type Remittance struct {
	// Sender funded the escrow and can cancel it after expiration.
	Sender remit.Address `protobuf:"bytes,1,opt,name=sender,proto3,casttype=github.com/iov-one/remit.Address" json:"sender"`
	// Amount is paid to the recipient on claim. Fee is already deducted.
	Amount coin.Amount `protobuf:"varint,2,opt,name=amount,proto3,casttype=github.com/iov-one/remit/coin.Amount" json:"amount"`
	// Expiration is the moment claim stops and cancel becomes possible.
	Expiration remit.UnixTime `protobuf:"varint,3,opt,name=expiration,proto3,casttype=github.com/iov-one/remit.UnixTime" json:"expiration"`
}

func (m *Remittance) Reset()         { *m = Remittance{} }
func (m *Remittance) String() string { return proto.CompactTextString(m) }
func (*Remittance) ProtoMessage()    {}

var _ orm.Model = (*Remittance)(nil)

// Validate ensures the record is complete.
func (r *Remittance) Validate() error {
	var errs error
	errs = errors.Append(errs, errors.Wrap(r.Sender.Validate(), "sender"))
	if !r.Amount.IsPositive() {
		errs = errors.Append(errs, errors.Wrapf(errors.ErrAmount, "non-positive amount %s", r.Amount))
	}
	if r.Expiration <= 0 {
		errs = errors.Append(errs, errors.Wrap(errors.ErrState, "expiration"))
	}
	return errs
}

// NewBucket returns the bucket of escrow records keyed by commitment.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Remittance{})
}

// State is the administrative lifecycle and fee accounting of the service.
// There is a single instance per chain.
type State struct {
	Owner          remit.Address `protobuf:"bytes,1,opt,name=owner,proto3,casttype=github.com/iov-one/remit.Address" json:"owner"`
	NominatedOwner remit.Address `protobuf:"bytes,2,opt,name=nominated_owner,json=nominatedOwner,proto3,casttype=github.com/iov-one/remit.Address" json:"nominated_owner,omitempty"`
	Paused         bool          `protobuf:"varint,3,opt,name=paused,proto3" json:"paused"`
	Killed         bool          `protobuf:"varint,4,opt,name=killed,proto3" json:"killed"`
	// Fee is charged for every new escrow.
	Fee coin.Amount `protobuf:"varint,5,opt,name=fee,proto3,casttype=github.com/iov-one/remit/coin.Amount" json:"fee"`
	// AccruedFees were collected and not yet withdrawn by the owner.
	AccruedFees coin.Amount `protobuf:"varint,6,opt,name=accrued_fees,json=accruedFees,proto3,casttype=github.com/iov-one/remit/coin.Amount" json:"accrued_fees"`
}

func (m *State) Reset()         { *m = State{} }
func (m *State) String() string { return proto.CompactTextString(m) }
func (*State) ProtoMessage()    {}

var _ orm.Model = (*State)(nil)

// Validate ensures the state is consistent.
func (s *State) Validate() error {
	var errs error
	errs = errors.Append(errs, errors.Wrap(s.Owner.Validate(), "owner"))
	if len(s.NominatedOwner) != 0 {
		errs = errors.Append(errs, errors.Wrap(s.NominatedOwner.Validate(), "nominated owner"))
	}
	if s.Killed && !s.Paused {
		errs = errors.Append(errs, errors.Wrap(errors.ErrState, "killed but not paused"))
	}
	errs = errors.Append(errs, errors.Wrap(s.Fee.Validate(), "fee"))
	errs = errors.Append(errs, errors.Wrap(s.AccruedFees.Validate(), "accrued fees"))
	return errs
}

// NewStateBucket returns the bucket holding the State singleton.
func NewStateBucket() orm.ModelBucket {
	return orm.NewModelBucket(StateBucketName, &State{})
}

const (
	// DefaultMinDuration is used when no configuration was provided.
	DefaultMinDuration = remit.UnixDuration(time.Hour / time.Second)
	// DefaultMaxDuration is used when no configuration was provided.
	DefaultMaxDuration = remit.UnixDuration(28 * 24 * time.Hour / time.Second)
)

// Configuration holds the bounds of an escrow lifetime, in seconds. Both
// bounds are inclusive.
type Configuration struct {
	MinDuration remit.UnixDuration `protobuf:"varint,1,opt,name=min_duration,json=minDuration,proto3,casttype=github.com/iov-one/remit.UnixDuration" json:"min_duration"`
	MaxDuration remit.UnixDuration `protobuf:"varint,2,opt,name=max_duration,json=maxDuration,proto3,casttype=github.com/iov-one/remit.UnixDuration" json:"max_duration"`
}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}

// DefaultConfiguration returns the bounds used when none were configured.
func DefaultConfiguration() Configuration {
	return Configuration{
		MinDuration: DefaultMinDuration,
		MaxDuration: DefaultMaxDuration,
	}
}

// Validate requires a positive minimum not greater than the maximum.
func (c *Configuration) Validate() error {
	if c.MinDuration <= 0 {
		return errors.Wrap(errors.ErrState, "min duration must be positive")
	}
	if c.MaxDuration < c.MinDuration {
		return errors.Wrap(errors.ErrState, "max duration must not be lower than min duration")
	}
	return nil
}

// Check returns an error if the duration is outside of the bounds.
func (c *Configuration) Check(d remit.UnixDuration) error {
	if d < c.MinDuration {
		return errors.Wrapf(ErrDurationTooShort, "%s is below %s", d, c.MinDuration)
	}
	if d > c.MaxDuration {
		return errors.Wrapf(ErrDurationTooLong, "%s is above %s", d, c.MaxDuration)
	}
	return nil
}
