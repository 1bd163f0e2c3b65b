package remittest

import "github.com/iov-one/remit"

// Handler is a mock implementation of the remit.Handler interface.
//
// Each method call is counted. Results are returned as configured. If
// WriteKey is set, both methods write it (with WriteValue) to the store
// before returning, which allows to test rollback behaviour.
type Handler struct {
	checkCall   int
	CheckResult remit.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult remit.DeliverResult
	DeliverErr    error

	WriteKey   []byte
	WriteValue []byte

	// Panic if set is raised by every method call.
	Panic interface{}
}

var _ remit.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx remit.Context, db remit.KVStore, tx remit.Tx) (*remit.CheckResult, error) {
	h.checkCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx remit.Context, db remit.KVStore, tx remit.Tx) (*remit.DeliverResult, error) {
	h.deliverCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) write(db remit.KVStore) error {
	if h.Panic != nil {
		panic(h.Panic)
	}
	if h.WriteKey == nil {
		return nil
	}
	return db.Set(h.WriteKey, h.WriteValue)
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
