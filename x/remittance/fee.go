package remittance

import (
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/errors"
)

// FeeFor splits the deposit into the fee charged and the net amount payable to
// the recipient. The net amount must be positive.
func FeeFor(deposit, fee coin.Amount) (charged, net coin.Amount, err error) {
	if err := fee.Validate(); err != nil {
		return 0, 0, errors.Wrap(err, "fee")
	}
	if deposit <= fee {
		return 0, 0, errors.Wrapf(ErrInsufficientDeposit, "deposit %s, fee %s", deposit, fee)
	}
	net, err = deposit.Subtract(fee)
	if err != nil {
		return 0, 0, err
	}
	return fee, net, nil
}
