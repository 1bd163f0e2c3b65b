package cash

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
// use remit.Address, so address in hex, not base64
type GenesisAccount struct {
	Address remit.Address `json:"address"`
	Balance coin.Amount   `json:"balance"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct {
	control Controller
}

var _ remit.Initializer = Initializer{}

// NewInitializer returns an initializer that issues funds with given
// controller.
func NewInitializer(control Controller) Initializer {
	return Initializer{control: control}
}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (i Initializer) FromGenesis(opts remit.Options, kv remit.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot read %q genesis: %s", optKey, err)
	}
	for _, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrap(err, "genesis account address")
		}
		if err := i.control.IssueCoins(kv, acct.Address, acct.Balance); err != nil {
			return errors.Wrapf(err, "genesis account %s", acct.Address)
		}
	}
	return nil
}
