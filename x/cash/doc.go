/*
Package cash is the escrow ledger of the application. It stores the balance
of every account and moves funds between accounts.

Other extensions never write wallets directly. They use a Controller, which
debits and credits in a single step so that no value is created or
destroyed. Minting is only possible from the genesis file.
*/
package cash
