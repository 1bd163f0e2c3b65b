package remittance

import (
	"testing"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/orm"
	"github.com/iov-one/remit/remittest"
	"github.com/iov-one/remit/remittest/assert"
)

func TestModelValidation(t *testing.T) {
	addr := remittest.NewCondition().Address()

	cases := map[string]struct {
		model   orm.Model
		wantErr *errors.Error
	}{
		"valid remittance": {
			model: &Remittance{Sender: addr, Amount: 1, Expiration: 100},
		},
		"remittance without sender": {
			model:   &Remittance{Amount: 1, Expiration: 100},
			wantErr: errors.ErrEmpty,
		},
		"remittance with zero amount": {
			model:   &Remittance{Sender: addr, Expiration: 100},
			wantErr: errors.ErrAmount,
		},
		"remittance without expiration": {
			model:   &Remittance{Sender: addr, Amount: 1},
			wantErr: errors.ErrState,
		},
		"valid state": {
			model: &State{Owner: addr, NominatedOwner: addr, Paused: true, Killed: true, Fee: 1, AccruedFees: 5},
		},
		"state without owner": {
			model:   &State{},
			wantErr: errors.ErrEmpty,
		},
		"state with invalid nomination": {
			model:   &State{Owner: addr, NominatedOwner: remit.Address("x")},
			wantErr: errors.ErrInput,
		},
		"killed but not paused": {
			model:   &State{Owner: addr, Killed: true},
			wantErr: errors.ErrState,
		},
		"negative fee": {
			model:   &State{Owner: addr, Fee: -1},
			wantErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.IsErr(t, tc.wantErr, tc.model.Validate())
		})
	}
}

func TestConfiguration(t *testing.T) {
	def := DefaultConfiguration()
	assert.Nil(t, def.Validate())
	assert.Equal(t, remit.UnixDuration(3600), def.MinDuration)
	assert.Equal(t, remit.UnixDuration(2419200), def.MaxDuration)

	assert.IsErr(t, ErrDurationTooShort, def.Check(3599))
	assert.Nil(t, def.Check(3600))
	assert.Nil(t, def.Check(2419200))
	assert.IsErr(t, ErrDurationTooLong, def.Check(2419201))

	bad := Configuration{MinDuration: 10, MaxDuration: 9}
	assert.IsErr(t, errors.ErrState, bad.Validate())
	bad = Configuration{MaxDuration: 9}
	assert.IsErr(t, errors.ErrState, bad.Validate())
}
