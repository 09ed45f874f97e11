package bridge

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/gconf"
)

const relayersOptKey = "bridge_relayers"

// Initializer stores the configuration found under the "conf.bridge"
// genesis key and the initial relayer set listed under "bridge_relayers".
type Initializer struct{}

var _ xswap.Initializer = Initializer{}

func (Initializer) FromGenesis(opts xswap.Options, db xswap.KVStore) error {
	conf := DefaultConfiguration()
	if err := gconf.InitConfig(db, opts, packageName, &conf); err != nil {
		return err
	}

	var relayers []xswap.Address
	if err := opts.ReadOptions(relayersOptKey, &relayers); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	bucket := NewRelayerBucket()
	for i, addr := range relayers {
		r := &Relayer{Metadata: &xswap.Metadata{Schema: 1}, Address: addr}
		if _, err := bucket.Put(db, addr, r); err != nil {
			return errors.Wrapf(err, "relayer %d", i)
		}
	}
	return nil
}
