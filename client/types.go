package client

import (
	"github.com/iov-one/remit"
	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
)

// TransactionID is the tendermint hash of a serialized transaction.
type TransactionID = cmn.HexBytes

// RequestQuery and ResponseQuery are the abci query types. Client.Query
// speaks them directly so it can stand in for an in-process application.
type (
	RequestQuery  = abci.RequestQuery
	ResponseQuery = abci.ResponseQuery
)

// CommitResult describes a transaction included in a block. A transaction
// that failed during delivery is still included, so exactly one of Result
// and Err is set.
type CommitResult struct {
	ID     TransactionID
	Height int64
	Result *remit.DeliverResult
	Err    error
}

// Status is the subjective view of the node the client is connected to.
// Queries of a node that is CatchingUp may return stale escrow state.
type Status struct {
	Height     int64
	CatchingUp bool
}
