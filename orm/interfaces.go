package orm

import (
	"github.com/noxlabs/xswap"
)

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	xswap.Persistent
	Validate() error
}

// Object is what is stored in the bucket.
// Key is joined with the prefix to set the full key.
// Value is the data stored.
//
// Indexers receive an Object to compute the index value.
type Object interface {
	Key() []byte
	Value() Model
}

// Indexer calculates the secondary index key for a given object.
// A nil key means the object is not indexed.
type Indexer func(Object) ([]byte, error)
