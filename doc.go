/*
Package xswap defines interfaces used throughout the app, such as: storage,
transactions, handlers etc. It also contains helpers to work with context,
conditions and abci results.

Extensions under x/ build on those interfaces. The application in
cmd/xswapd wires them into a tendermint ABCI application that hosts hashlock
swaps and a reserve backed bridge pool.
*/
package xswap
