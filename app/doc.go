/*
Package app contains the pieces needed to turn extensions into an abci
application: a message router, decorator chaining, the StoreApp that
manages committed and cached state, and the BaseApp that dispatches
transactions.
*/
package app
