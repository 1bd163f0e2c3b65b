package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Wallet holds the balance of a single account.
type Wallet struct {
	Balance coin.Amount `protobuf:"varint,1,opt,name=balance,proto3,casttype=github.com/iov-one/remit/coin.Amount" json:"balance"`
}

func (m *Wallet) Reset()         { *m = Wallet{} }
func (m *Wallet) String() string { return proto.CompactTextString(m) }
func (*Wallet) ProtoMessage()    {}

var _ orm.Model = (*Wallet)(nil)

// Validate ensures the balance is not negative.
func (w *Wallet) Validate() error {
	if err := w.Balance.Validate(); err != nil {
		return errors.Wrap(err, "balance")
	}
	return nil
}

// NewBucket returns a bucket storing wallets by address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Wallet{})
}
