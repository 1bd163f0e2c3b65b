package client

import (
	"context"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/app"
	"github.com/iov-one/remit/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	rpcclient "github.com/tendermint/tendermint/rpc/client"
)

// Connection is the part of the tendermint rpc client this package depends on.
type Connection interface {
	rpcclient.ABCIClient
	rpcclient.StatusClient
}

// NewHTTPConnection takes a URL and sends all requests to the remote node
func NewHTTPConnection(remote string) Connection {
	return rpcclient.NewHTTP(remote, "/websocket")
}

// Client is a tendermint client wrapped to provide simple access to the
// remittance application state.
//
// Basic accessors are declared here. Application specific queries are
// declared in queries.go
type Client struct {
	conn Connection
}

// NewClient wraps a Client around an existing tendermint client connection.
func NewClient(conn Connection) *Client {
	return &Client{conn: conn}
}

// Status returns current height and other (subjective) status info from this node
func (c *Client) Status(ctx context.Context) (*Status, error) {
	status, err := c.conn.Status()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNetwork, "status: %s", err.Error())
	}
	return &Status{
		Height:     status.SyncInfo.LatestBlockHeight,
		CatchingUp: status.SyncInfo.CatchingUp,
	}, nil
}

// CommitTx submits the serialized transaction and waits until it was
// included in a block. A transaction rejected by the mempool is returned as
// an error, a failed delivery is reported in CommitResult.Err.
func (c *Client) CommitTx(ctx context.Context, tx []byte) (*CommitResult, error) {
	res, err := c.conn.BroadcastTxCommit(tx)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNetwork, "commit tx: %s", err.Error())
	}
	// a checktx error is handled like any other error, it will not make it into a block
	if res.CheckTx.Code != errors.SuccessABCICode {
		return nil, errors.ABCIError(res.CheckTx.Code, res.CheckTx.Log)
	}
	result, err := remit.ParseDeliverOrError(res.DeliverTx)
	return &CommitResult{
		ID:     res.Hash,
		Height: res.Height,
		Result: result,
		Err:    err,
	}, nil
}

// Query is meant to mirror the abci query interface exactly.
// A network failure is reported with the ErrNetwork code.
func (c *Client) Query(query RequestQuery) ResponseQuery {
	res, err := c.conn.ABCIQueryWithOptions(query.Path, query.Data, rpcclient.ABCIQueryOptions{Height: query.Height, Prove: query.Prove})
	if err != nil {
		code, log := errors.ABCIInfo(errors.Wrap(errors.ErrNetwork, err.Error()), false)
		return ResponseQuery{
			Code: code,
			Log:  log,
		}
	}
	return res.Response
}

// QueryModels runs a query and returns all models found. Not finding
// anything is not an error.
func (c *Client) QueryModels(path string, data []byte) ([]remit.Model, error) {
	resp := c.Query(abci.RequestQuery{Path: path, Data: data})
	if resp.Code != errors.SuccessABCICode {
		return nil, errors.ABCIError(resp.Code, resp.Log)
	}
	if len(resp.Key) == 0 {
		return nil, nil
	}

	var keys, vals app.ResultSet
	if err := keys.Unmarshal(resp.Key); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := vals.Unmarshal(resp.Value); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return app.JoinResults(&keys, &vals)
}
