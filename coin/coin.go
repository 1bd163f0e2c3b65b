package coin

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/iov-one/remit/errors"
)

// MaxAmount is the largest value any balance can hold.
const MaxAmount Amount = math.MaxInt64

// Amount is a non negative quantity of the native asset, counted in its
// smallest indivisible unit.
type Amount int64

// ParseAmount reads an amount from its decimal representation.
func ParseAmount(s string) (Amount, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrAmount, "cannot parse %q", s)
	}
	a := Amount(n)
	return a, a.Validate()
}

// Validate returns an error if the amount is negative.
func (a Amount) Validate() error {
	if a < 0 {
		return errors.Wrapf(errors.ErrAmount, "negative amount %d", int64(a))
	}
	return nil
}

// IsPositive returns true if the amount is greater than zero.
func (a Amount) IsPositive() bool {
	return a > 0
}

// Add returns the sum of both amounts or an overflow error.
func (a Amount) Add(b Amount) (Amount, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}
	if a > MaxAmount-b {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d + %d", int64(a), int64(b))
	}
	return a + b, nil
}

// Subtract returns a - b. ErrInsufficientAmount is returned if b is
// greater than a.
func (a Amount) Subtract(b Amount) (Amount, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}
	if b > a {
		return 0, errors.Wrapf(errors.ErrInsufficientAmount, "%d - %d", int64(a), int64(b))
	}
	return a - b, nil
}

func (a Amount) String() string {
	return strconv.FormatInt(int64(a), 10)
}

// UnmarshalJSON accepts both a number and a numeric string. Negative values
// are rejected.
func (a *Amount) UnmarshalJSON(raw []byte) error {
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		*a = Amount(n)
		return a.Validate()
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrAmount, "invalid amount format")
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
