package remittance

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/gconf"
)

const optKey = "remittance"

// Genesis is the deployment configuration of the service.
type Genesis struct {
	Owner  remit.Address `json:"owner"`
	Fee    coin.Amount   `json:"fee"`
	Paused bool          `json:"paused"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ remit.Initializer = (*Initializer)(nil)

// FromGenesis stores the initial lifecycle state and the duration bounds.
// Both sections are optional. Without the "remittance" section the service
// stays uninitialized and rejects all operations.
func (Initializer) FromGenesis(opts remit.Options, db remit.KVStore) error {
	conf := DefaultConfiguration()
	switch err := gconf.InitConfig(db, opts, optKey, &conf); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		// Defaults are used when not configured.
	default:
		return errors.Wrap(err, "remittance configuration")
	}

	var gen *Genesis
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot read %q genesis: %s", optKey, err)
	}
	if gen == nil {
		return nil
	}
	state := &State{
		Owner:  gen.Owner,
		Fee:    gen.Fee,
		Paused: gen.Paused,
	}
	if err := NewController(nil).SetState(db, state); err != nil {
		return errors.Wrap(err, "remittance state")
	}
	return nil
}
