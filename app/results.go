package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
)

// ResultSet contains a list of keys or values returned by a query.
type ResultSet struct {
	Results [][]byte `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

func (m *ResultSet) Reset()         { *m = ResultSet{} }
func (m *ResultSet) String() string { return proto.CompactTextString(m) }
func (*ResultSet) ProtoMessage()    {}

// Marshal returns the binary representation of the set.
func (m *ResultSet) Marshal() ([]byte, error) {
	return proto.Marshal(m)
}

// Unmarshal loads the set from its binary representation.
func (m *ResultSet) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, m)
}

// ResultsFromKeys returns a ResultSet of all keys
// given a set of models
func ResultsFromKeys(models []remit.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Key
	}
	return &ResultSet{Results: res}
}

// ResultsFromValues returns a ResultSet of all values
// given a set of models
func ResultsFromValues(models []remit.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Value
	}
	return &ResultSet{Results: res}
}

// JoinResults inverts ResultsFromKeys and ResultsFromValues
// and makes then a consistent whole again
func JoinResults(keys, values *ResultSet) ([]remit.Model, error) {
	kref, vref := keys.Results, values.Results
	if len(kref) != len(vref) {
		return nil, errors.Wrapf(errors.ErrState, "result set size mismatch: %d keys, %d values", len(kref), len(vref))
	}
	mods := make([]remit.Model, len(kref))
	for i := range mods {
		mods[i] = remit.Pair(kref[i], vref[i])
	}
	return mods, nil
}

// UnmarshalOneResult will parse a resultset, and
// it if is not empty, unmarshal the first result into o
func UnmarshalOneResult(bz []byte, o proto.Message) error {
	var res ResultSet
	if err := res.Unmarshal(bz); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if len(res.Results) == 0 {
		return nil
	}
	if err := proto.Unmarshal(res.Results[0], o); err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	return nil
}
