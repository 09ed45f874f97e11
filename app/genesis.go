package app

import (
	"github.com/noxlabs/xswap"
)

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...xswap.Initializer) xswap.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []xswap.Initializer
}

// FromGenesis will pass opts to all Initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts xswap.Options, kv xswap.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}
