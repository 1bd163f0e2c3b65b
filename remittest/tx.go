package remittest

import (
	"fmt"

	"github.com/iov-one/remit"
)

// Tx represents a transaction with a single message.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg remit.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ remit.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (remit.Msg, error) {
	return tx.Msg, tx.Err
}

func (tx *Tx) Reset()         { *tx = Tx{} }
func (tx *Tx) String() string { return "remittest.Tx" }
func (*Tx) ProtoMessage()     {}

// Msg represents a message processed within a single transaction.
type Msg struct {
	// RoutePath returned by the path method, consumed by the router.
	RoutePath string `protobuf:"bytes,1,opt,name=route_path,proto3" json:"route_path,omitempty"`
	// Err if set is returned by the Validate method.
	Err error `json:"-"`
}

var _ remit.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Reset()         { *m = Msg{} }
func (m *Msg) String() string { return fmt.Sprintf("remittest.Msg{%s}", m.RoutePath) }
func (*Msg) ProtoMessage()    {}
