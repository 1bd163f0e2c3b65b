package commands

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/x/remittance"
)

// CommitmentCmd prints the hex encoded commitment key that a sender uses to
// create a remittance for the given recipient and secret. Nothing is sent to
// the node, so the secret never leaves the machine.
func CommitmentCmd(out io.Writer, args []string) error {
	fl := flag.NewFlagSet("commitment", flag.ContinueOnError)
	var (
		chainFl     = fl.String("chain", "", "chain id of the remittance deployment")
		recipientFl = fl.String("recipient", "", "recipient address, hex or bech32: prefixed")
		secretFl    = fl.String("secret", "", "secret shared with the recipient")
		hexFl       = fl.Bool("hex", false, "secret is hex encoded")
	)
	if err := fl.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	if !remit.IsValidChainID(*chainFl) {
		return errors.Wrapf(errors.ErrInput, "invalid chain id %q", *chainFl)
	}
	recipient, err := remit.ParseAddress(*recipientFl)
	if err != nil {
		return errors.Wrap(err, "recipient")
	}
	if err := recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}

	secret := []byte(*secretFl)
	if *hexFl {
		if secret, err = hex.DecodeString(*secretFl); err != nil {
			return errors.Wrap(errors.ErrInput, "secret must be hex encoded")
		}
	}
	if len(secret) == 0 {
		return errors.Wrap(errors.ErrEmpty, "secret")
	}

	key := remittance.CommitmentFor(*chainFl, recipient, secret)
	_, err = fmt.Fprintln(out, hex.EncodeToString(key))
	return err
}
