/*
Package app links together all the various components
to construct the remitd app.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/app"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/gconf"
	"github.com/iov-one/remit/store/iavl"
	"github.com/iov-one/remit/x"
	"github.com/iov-one/remit/x/cash"
	"github.com/iov-one/remit/x/remittance"
	"github.com/iov-one/remit/x/sigs"
	"github.com/iov-one/remit/x/utils"
)

// Name is returned by the abci Info call.
const Name = "remitd"

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewActionTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment nonce even if the message
		// fails, but never leave a half applied transfer behind
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a default router, dispatching to the cash, sigs and
// remittance handlers.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	bank := cash.NewController(cash.NewBucket())
	cash.RegisterRoutes(r, authFn, bank)
	sigs.RegisterRoutes(r, authFn)
	remittance.RegisterRoutes(r, authFn, bank)
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/wallets", "/auth", "/remittances",
// "/remittance/state" and "/gconf"
func QueryRouter() remit.QueryRouter {
	r := remit.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		sigs.RegisterQuery,
		remittance.RegisterQuery,
		gconf.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() remit.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn))
}

// Initializers returns all extensions that read the genesis file.
func Initializers() remit.Initializer {
	return remit.ChainInitializers(
		cash.NewInitializer(cash.NewController(cash.NewBucket())),
		remittance.Initializer{},
	)
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h remit.Handler,
	tx remit.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {
	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, tx, h, debug)
	return base, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (remit.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.NewCommitStore("", "")
	}

	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidently add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name)
}
