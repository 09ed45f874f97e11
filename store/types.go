package store

import "github.com/noxlabs/xswap"

// Move references for all storage types into this package
// for shorter names everywhere

type (
	ReadOnlyKVStore  = xswap.ReadOnlyKVStore
	KVStore          = xswap.KVStore
	Iterator         = xswap.Iterator
	CacheableKVStore = xswap.CacheableKVStore
	KVCacheWrap      = xswap.KVCacheWrap
	CommitKVStore    = xswap.CommitKVStore
	CommitID         = xswap.CommitID
	Model            = xswap.Model
)
