package gconf

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
)

// RegisterQuery exposes stored configurations under "/conf". Query data is
// the package name.
func RegisterQuery(qr remit.QueryRouter) {
	qr.Register("/conf", queryHandler{})
}

type queryHandler struct{}

var _ remit.QueryHandler = queryHandler{}

func (queryHandler) Query(db remit.ReadOnlyKVStore, mod string, data []byte) ([]remit.Model, error) {
	if mod != remit.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unsupported query mod %q", mod)
	}
	key := dbKey(string(data))
	raw, err := db.Get(key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	return []remit.Model{remit.Pair(key, raw)}, nil
}
