package orm

import (
	"reflect"
	"regexp"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// ModelBucket stores models of a single type under a common prefix.
type ModelBucket struct {
	name   string
	prefix []byte
	model  reflect.Type
}

// NewModelBucket returns a bucket for the models of the same type as the
// given example. Name must be 3 to 10 lowercase letters or underscores.
func NewModelBucket(name string, example Model) ModelBucket {
	if !isBucketName(name) {
		panic("illegal bucket name: " + name)
	}
	tp := reflect.TypeOf(example)
	if tp.Kind() != reflect.Ptr {
		panic("model must be a pointer")
	}
	return ModelBucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		model:  tp,
	}
}

// Name returns the bucket name.
func (b ModelBucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including prefix.
func (b ModelBucket) DBKey(key []byte) []byte {
	return append(append([]byte{}, b.prefix...), key...)
}

// One query the database for a single model instance. Lookup is done
// by the primary key. Result is loaded into given destination model.
// This method returns ErrNotFound if the entity does not exist in the
// database.
// If given model type cannot be used to contain stored entity, ErrType
// is returned.
func (b ModelBucket) One(db remit.ReadOnlyKVStore, key []byte, dest Model) error {
	if reflect.TypeOf(dest) != b.model {
		return errors.Wrapf(errors.ErrType, "%T cannot be represented as %s", dest, b.model)
	}
	raw, err := db.Get(b.DBKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot read from the database")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := proto.Unmarshal(raw, dest); err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot decode: %s", err)
	}
	return nil
}

// Has returns true if an entity with given primary key exists.
func (b ModelBucket) Has(db remit.ReadOnlyKVStore, key []byte) (bool, error) {
	ok, err := db.Has(b.DBKey(key))
	if err != nil {
		return false, errors.Wrap(err, "cannot read from the database")
	}
	return ok, nil
}

// Put saves given model in the database. The model is validated first.
func (b ModelBucket) Put(db remit.KVStore, key []byte, m Model) error {
	if reflect.TypeOf(m) != b.model {
		return errors.Wrapf(errors.ErrType, "cannot store %T in %q bucket", m, b.name)
	}
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := proto.Marshal(m)
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot encode: %s", err)
	}
	if err := db.Set(b.DBKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

// Delete removes an entity with given primary key from the database.
// It returns ErrNotFound if an entity with given key does not exist.
func (b ModelBucket) Delete(db remit.KVStore, key []byte) error {
	ok, err := b.Has(db, key)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "no %q entity", b.name)
	}
	return db.Delete(b.DBKey(key))
}

// Register makes the bucket accessible for abci queries under given path.
// An empty path defaults to "/" + bucket name.
func (b ModelBucket) Register(path string, r remit.QueryRouter) {
	if path == "" {
		path = "/" + b.name
	}
	r.Register(path, b)
}

var _ remit.QueryHandler = ModelBucket{}

// Query returns the raw model stored under the key given as data. Only key
// queries are supported.
func (b ModelBucket) Query(db remit.ReadOnlyKVStore, mod string, data []byte) ([]remit.Model, error) {
	if mod != remit.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unsupported query mod %q", mod)
	}
	key := b.DBKey(data)
	value, err := db.Get(key)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	return []remit.Model{remit.Pair(key, value)}, nil
}
