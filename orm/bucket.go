package orm

import (
	"fmt"
	"regexp"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
)

var (
	isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString
)

// Bucket is a prefixed subspace of the DB. It stores raw data and
// references its secondary indexes.
//
// This is a generic building block that should generally
// be embedded in a type-safe wrapper to ensure all data
// is the same type.
type Bucket struct {
	name    string
	prefix  []byte
	indexes []Index
}

var _ xswap.QueryHandler = Bucket{}

// NewBucket creates a bucket to store data
func NewBucket(name string) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
	}
}

// Name returns the name of this bucket.
func (b Bucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including prefix
// We copy into a new array rather than use append, as we don't
// want consecutive calls to overwrite the same byte array.
func (b Bucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// WithIndex returns a copy of this bucket with given index attached.
// The index name must be unique within the bucket.
func (b Bucket) WithIndex(name string, indexer Indexer, unique bool) Bucket {
	for _, idx := range b.indexes {
		if idx.name == name {
			panic(fmt.Sprintf("Index %s registered twice", name))
		}
	}
	idx := newIndex(b.name+"_"+name, indexer, unique, b.DBKey)
	idx.name = name
	indexes := make([]Index, len(b.indexes), len(b.indexes)+1)
	copy(indexes, b.indexes)
	b.indexes = append(indexes, idx)
	return b
}

// index returns the index registered under given name or nil.
func (b Bucket) index(name string) *Index {
	for i := range b.indexes {
		if b.indexes[i].name == name {
			return &b.indexes[i]
		}
	}
	return nil
}

// get returns the raw value stored under given key, or nil.
func (b Bucket) get(db xswap.ReadOnlyKVStore, key []byte) ([]byte, error) {
	raw, err := db.Get(b.DBKey(key))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return raw, nil
}

// updateIndexes passes the change to every index of this bucket.
func (b Bucket) updateIndexes(db xswap.KVStore, prev, save Object) error {
	for _, idx := range b.indexes {
		if err := idx.Update(db, prev, save); err != nil {
			return errors.Wrapf(err, "index %s", idx.name)
		}
	}
	return nil
}

// Register registers this Bucket and all indexes.
// You can define a name here for queries, which is
// different than the bucket name used to prefix the data
func (b Bucket) Register(name string, r xswap.QueryRouter) {
	if name == "" {
		name = b.name
	}
	root := "/" + name
	r.Register(root, b)
	for _, idx := range b.indexes {
		r.Register(root+"/"+idx.name, idx)
	}
}

// Query handles queries from the QueryRouter
func (b Bucket) Query(db xswap.ReadOnlyKVStore, mod string, data []byte) ([]xswap.Model, error) {
	switch mod {
	case xswap.KeyQueryMod:
		key := b.DBKey(data)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		// return nothing on miss
		if value == nil {
			return nil, nil
		}
		return []xswap.Model{{Key: key, Value: value}}, nil
	case xswap.PrefixQueryMod:
		return queryPrefix(db, b.DBKey(data))
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
}
