/*
Package bridge implements a reserve backed bridge pool.

A user deposits funds to be paid out on another chain. The deposit is held
by the pool, a fee is set aside and the rest is added to the reserves of
the asset. Registered relayers watch the deposit events, pay out on the
destination chain and release funds from the reserves here for transfers
coming the other way.

Relayers are trusted. The pool ensures that a single transfer is released
once and that reserves never go below zero, but it cannot verify what
happened on the other chain.
*/
package bridge
