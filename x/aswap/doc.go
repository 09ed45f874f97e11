/*
Package aswap implements hash time locked swaps.

An initiator locks funds for a recipient under the sha256 hash of a secret
and a timelock. Anyone who knows the secret can complete the swap before the
timelock passes, moving the funds to the recipient and publishing the
secret. After the timelock passes, the initiator can take the funds back.

A swap is identified by an id derived from its hashlock, initiator and
timelock, so the same lock cannot be opened twice. Locked funds are held in
the extension custody account, which no transaction signer can control.
*/
package aswap
