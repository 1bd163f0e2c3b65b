package commands

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/client"
	"github.com/iov-one/remit/errors"
)

// Connector opens a connection to the node at given address.
type Connector func(remote string) client.Connection

// QueryCmd reads the application state of a running node and prints the
// result as JSON. Supported queries are:
//
//   state                  lifecycle state of the remittance service
//   remittance <hex key>   escrow record stored under the commitment
//   balance <address>      wallet balance
func QueryCmd(connect Connector, out io.Writer, args []string) error {
	fl := flag.NewFlagSet("query", flag.ContinueOnError)
	remoteFl := fl.String("remote", "http://localhost:26657", "tendermint rpc address of the node")
	if err := fl.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if fl.NArg() == 0 {
		return errors.Wrap(errors.ErrInput, "missing query name")
	}

	c := client.NewClient(connect(*remoteFl))

	var (
		res interface{}
		err error
	)
	switch name, rest := fl.Arg(0), fl.Args()[1:]; name {
	case "state":
		res, err = c.ContractState()
	case "remittance":
		if len(rest) != 1 {
			return errors.Wrap(errors.ErrInput, "usage: remittance <hex commitment>")
		}
		key, e := hex.DecodeString(rest[0])
		if e != nil {
			return errors.Wrap(errors.ErrInput, "commitment must be hex encoded")
		}
		res, err = c.Remittance(key)
	case "balance":
		if len(rest) != 1 {
			return errors.Wrap(errors.ErrInput, "usage: balance <address>")
		}
		addr, e := remit.ParseAddress(rest[0])
		if e != nil {
			return errors.Wrap(e, "address")
		}
		bal, e := c.Balance(addr)
		res, err = map[string]interface{}{"address": addr, "balance": bal}, e
	default:
		return errors.Wrapf(errors.ErrInput, "unknown query %q", name)
	}
	if err != nil {
		return err
	}

	js, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	_, err = fmt.Fprintln(out, string(js))
	return err
}
