package cash

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/orm"
)

// CoinMover is an interface for moving funds between accounts.
// It is the settlement primitive other extensions depend on.
type CoinMover interface {
	// MoveCoins transfers the amount from src to dest. It fails without
	// modifying any balance if src does not hold enough funds.
	MoveCoins(db remit.KVStore, src, dest remit.Address, amount coin.Amount) error

	// Balance returns the funds held by given account.
	Balance(db remit.ReadOnlyKVStore, addr remit.Address) (coin.Amount, error)
}

// Controller is the functionality needed by cash.Handler and cash.Initializer.
// Extensions that only move funds should depend on CoinMover.
type Controller interface {
	CoinMover

	// IssueCoins adds the amount to the destination account, creating
	// funds out of thin air. Used only for genesis.
	IssueCoins(db remit.KVStore, dest remit.Address, amount coin.Amount) error
}

// BaseController is a simple implementation of controller
// wallet must return something that supports AsSet
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller using given bucket to store wallets.
func NewController(bucket orm.ModelBucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the funds held by given account. Unknown accounts are
// empty.
func (c BaseController) Balance(db remit.ReadOnlyKVStore, addr remit.Address) (coin.Amount, error) {
	w, err := c.wallet(db, addr)
	if err != nil {
		return 0, err
	}
	return w.Balance, nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// funds, it fails.
func (c BaseController) MoveCoins(db remit.KVStore, src, dest remit.Address, amount coin.Amount) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer of %s", amount)
	}
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}

	sender, err := c.wallet(db, src)
	if err != nil {
		return err
	}
	if sender.Balance, err = sender.Balance.Subtract(amount); err != nil {
		return errors.Wrapf(err, "account %s", src)
	}

	// Both balances are computed before anything is written, so a failed
	// transfer leaves both wallets unchanged. Sending to self shares the
	// wallet so that no value is created.
	recipient := sender
	if !dest.Equals(src) {
		if recipient, err = c.wallet(db, dest); err != nil {
			return err
		}
	}
	if recipient.Balance, err = recipient.Balance.Add(amount); err != nil {
		return errors.Wrapf(err, "account %s", dest)
	}

	if err := c.bucket.Put(db, src, sender); err != nil {
		return err
	}
	return c.bucket.Put(db, dest, recipient)
}

// IssueCoins attempts to add the given amount to the destination address.
// Fails if it overflows the wallet.
func (c BaseController) IssueCoins(db remit.KVStore, dest remit.Address, amount coin.Amount) error {
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if err := amount.Validate(); err != nil {
		return err
	}
	return c.add(db, dest, amount)
}

func (c BaseController) add(db remit.KVStore, dest remit.Address, amount coin.Amount) error {
	recipient, err := c.wallet(db, dest)
	if err != nil {
		return err
	}
	if recipient.Balance, err = recipient.Balance.Add(amount); err != nil {
		return errors.Wrapf(err, "account %s", dest)
	}
	return c.bucket.Put(db, dest, recipient)
}

// wallet returns the wallet stored under addr, or an empty one.
func (c BaseController) wallet(db remit.ReadOnlyKVStore, addr remit.Address) (*Wallet, error) {
	var w Wallet
	switch err := c.bucket.One(db, addr, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return &Wallet{}, nil
	default:
		return nil, err
	}
}
