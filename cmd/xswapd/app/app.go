/*
Package app links together all the various components
to construct the xswapd app.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/app"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/orm"
	"github.com/noxlabs/xswap/store/iavl"
	"github.com/noxlabs/xswap/x"
	"github.com/noxlabs/xswap/x/aswap"
	"github.com/noxlabs/xswap/x/bridge"
	"github.com/noxlabs/xswap/x/cash"
	"github.com/noxlabs/xswap/x/currency"
	"github.com/noxlabs/xswap/x/outbox"
	"github.com/noxlabs/xswap/x/sigs"
	"github.com/noxlabs/xswap/x/utils"
)

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
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		utils.NewActionTagger(),
		// on DeliverTx, bad tx will increment nonce
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching to all extensions. When issuer is
// not nil only the issuer can register new assets.
func Router(authFn x.Authenticator, issuer xswap.Address) *app.Router {
	r := app.NewRouter()
	bank := cash.NewController()
	registry := currency.NewRegistry()

	cash.RegisterRoutes(r, authFn, bank)
	currency.RegisterRoutes(r, authFn, issuer)
	sigs.RegisterRoutes(r, authFn)
	aswap.RegisterRoutes(r, authFn, bank, registry)
	bridge.RegisterRoutes(r, authFn, bank, registry)
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/wallets", "/tokens", "/auth", "/aswaps",
// "/bridge/...", "/events" and "/"
func QueryRouter() xswap.QueryRouter {
	r := xswap.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		currency.RegisterQuery,
		sigs.RegisterQuery,
		aswap.RegisterQuery,
		bridge.RegisterQuery,
		outbox.RegisterQuery,
		orm.RegisterQuery,
	)
	return r
}

// GenesisInitializer loads the state of every extension from the genesis
// app_state.
func GenesisInitializer() xswap.Initializer {
	return app.ChainInitializers(
		cash.Initializer{},
		&currency.Initializer{},
		aswap.Initializer{},
		bridge.Initializer{},
	)
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack(issuer xswap.Address) xswap.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn, issuer))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h xswap.Handler, tx xswap.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {
	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, errors.Wrap(err, "cannot create database instance")
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, tx, h, debug)
	return base, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (xswap.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MemCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", path)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name)
}
