package client

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/crypto"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/x/cash"
	"github.com/iov-one/remit/x/remittance"
	"github.com/iov-one/remit/x/sigs"
)

// Remittance returns the escrow record stored under given commitment.
// ErrNotFound is returned if there is none.
func (c *Client) Remittance(commitment []byte) (*remittance.Remittance, error) {
	var r remittance.Remittance
	found, err := c.queryOne("/remittances", commitment, &r)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.Wrapf(errors.ErrNotFound, "remittance %X", commitment)
	}
	return &r, nil
}

// ContractState returns the lifecycle state of the remittance service.
func (c *Client) ContractState() (*remittance.State, error) {
	var s remittance.State
	found, err := c.queryOne("/remittance/state", remittance.StateKey, &s)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.Wrap(errors.ErrNotFound, "remittance state")
	}
	return &s, nil
}

// Balance returns the wallet balance of given address. An unknown address
// holds nothing.
func (c *Client) Balance(addr remit.Address) (coin.Amount, error) {
	var w cash.Wallet
	if _, err := c.queryOne("/wallets", addr, &w); err != nil {
		return 0, err
	}
	return w.Balance, nil
}

// NextSequence returns the sequence number the next transaction signed with
// given key must use.
func (c *Client) NextSequence(pubkey *crypto.PublicKey) (int64, error) {
	var u sigs.UserData
	if _, err := c.queryOne("/auth", pubkey.Address(), &u); err != nil {
		return 0, err
	}
	return u.Sequence, nil
}

func (c *Client) queryOne(path string, key []byte, dest proto.Message) (bool, error) {
	models, err := c.QueryModels(path, key)
	if err != nil {
		return false, err
	}
	if len(models) == 0 {
		return false, nil
	}
	if err := proto.Unmarshal(models[0].Value, dest); err != nil {
		return false, errors.Wrap(errors.ErrModel, err.Error())
	}
	return true, nil
}
