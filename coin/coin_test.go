package coin

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/remittest/assert"
)

func TestAmountArithmetic(t *testing.T) {
	cases := map[string]struct {
		op      func() (Amount, error)
		want    Amount
		wantErr *errors.Error
	}{
		"add": {
			op:   func() (Amount, error) { return Amount(10000).Add(250) },
			want: 10250,
		},
		"add overflow": {
			op:      func() (Amount, error) { return MaxAmount.Add(1) },
			wantErr: errors.ErrOverflow,
		},
		"add negative": {
			op:      func() (Amount, error) { return Amount(1).Add(-1) },
			wantErr: errors.ErrAmount,
		},
		"subtract": {
			op:   func() (Amount, error) { return Amount(10000).Subtract(100) },
			want: 9900,
		},
		"subtract to zero": {
			op:   func() (Amount, error) { return Amount(100).Subtract(100) },
			want: 0,
		},
		"subtract too much": {
			op:      func() (Amount, error) { return Amount(99).Subtract(100) },
			wantErr: errors.ErrInsufficientAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := tc.op()
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestAmountJSON(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    Amount
		wantErr *errors.Error
	}{
		"number":          {raw: `10000`, want: 10000},
		"string":          {raw: `"10000"`, want: 10000},
		"negative number": {raw: `-5`, wantErr: errors.ErrAmount},
		"negative string": {raw: `"-5"`, wantErr: errors.ErrAmount},
		"garbage":         {raw: `"ten"`, wantErr: errors.ErrAmount},
		"object":          {raw: `{}`, wantErr: errors.ErrAmount},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got Amount
			err := json.Unmarshal([]byte(tc.raw), &got)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestAmountPredicates(t *testing.T) {
	assert.Equal(t, false, Amount(0).IsPositive())
	assert.Equal(t, true, Amount(1).IsPositive())
	assert.Equal(t, "42", Amount(42).String())
}
