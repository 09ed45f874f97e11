package orm

import (
	"bytes"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
)

const indexPrefix = "_i."

// Index represents a secondary index on some data.
// It is calculated from the object by an Indexer function.
// Multiple objects may share the same index value, unless the index
// is unique.
//
// The index value is mapped to the primary keys of the indexed objects,
// allowing an efficient lookup of all objects with a given property.
type Index struct {
	name   string
	id     []byte
	unique bool
	index  Indexer
	refKey func([]byte) []byte
}

var _ xswap.QueryHandler = Index{}

// newIndex creates an index. refKey translates a primary key into the
// database key of the referenced object.
func newIndex(id string, indexer Indexer, unique bool, refKey func([]byte) []byte) Index {
	return Index{
		name:   id,
		id:     []byte(indexPrefix + id + ":"),
		index:  indexer,
		unique: unique,
		refKey: refKey,
	}
}

// Name returns the name of this index.
func (i Index) Name() string {
	return i.name
}

// IndexKey is the full key we store in the db, including prefix
// We copy into a new array rather than use append, as we don't
// want consecutive calls to overwrite the same byte array.
func (i Index) IndexKey(key []byte) []byte {
	l := len(i.id)
	out := make([]byte, l+len(key))
	copy(out, i.id)
	copy(out[l:], key)
	return out
}

// Update handles updating the reference to the object in
// the secondary index.
//
// prev == nil means insert
// save == nil means delete
// both == nil is error
// if both != nil and prev.Key() != save.Key() this is an error
//
// Otherwise, it will check indexer(prev) and indexer(save)
// and make sure the key is now stored in the right location
func (i Index) Update(db xswap.KVStore, prev Object, save Object) error {
	switch {
	case prev == nil && save == nil:
		return errors.Wrap(errors.ErrHuman, "update requires at least one non-nil object")
	case prev == nil:
		key, err := i.index(save)
		if err != nil {
			return err
		}
		return i.insert(db, key, save.Key())
	case save == nil:
		key, err := i.index(prev)
		if err != nil {
			return err
		}
		return i.remove(db, key, prev.Key())
	default:
		if !bytes.Equal(prev.Key(), save.Key()) {
			return errors.Wrap(errors.ErrImmutable, "cannot modify the primary key of an object")
		}
		oldKey, err := i.index(prev)
		if err != nil {
			return err
		}
		newKey, err := i.index(save)
		if err != nil {
			return err
		}
		if bytes.Equal(oldKey, newKey) {
			return nil
		}
		if err := i.remove(db, oldKey, prev.Key()); err != nil {
			return err
		}
		return i.insert(db, newKey, save.Key())
	}
}

// insert adds a reference for the primary key under the index value. A
// nil index value is not indexed.
func (i Index) insert(db xswap.KVStore, key []byte, pk []byte) error {
	if key == nil {
		return nil
	}
	dbkey := i.IndexKey(key)
	cur, err := db.Get(dbkey)
	if err != nil {
		return err
	}

	if i.unique {
		if cur != nil && !bytes.Equal(cur, pk) {
			return errors.Wrapf(errors.ErrDuplicate, "unique index %s", i.name)
		}
		return db.Set(dbkey, pk)
	}

	var refs MultiRef
	if cur != nil {
		if err := refs.Unmarshal(cur); err != nil {
			return errors.Wrap(err, "cannot load index references")
		}
	}
	if err := refs.Add(pk); err != nil {
		return err
	}
	raw, err := refs.Marshal()
	if err != nil {
		return err
	}
	return db.Set(dbkey, raw)
}

// remove drops the reference of the primary key from the index value.
func (i Index) remove(db xswap.KVStore, key []byte, pk []byte) error {
	if key == nil {
		return nil
	}
	dbkey := i.IndexKey(key)
	cur, err := db.Get(dbkey)
	if err != nil {
		return err
	}
	if cur == nil {
		return errors.Wrap(errors.ErrNotFound, "cannot remove index reference")
	}

	if i.unique {
		if !bytes.Equal(cur, pk) {
			return errors.Wrap(errors.ErrState, "index references another object")
		}
		return db.Delete(dbkey)
	}

	var refs MultiRef
	if err := refs.Unmarshal(cur); err != nil {
		return errors.Wrap(err, "cannot load index references")
	}
	if err := refs.Remove(pk); err != nil {
		return err
	}
	if len(refs.Refs) == 0 {
		return db.Delete(dbkey)
	}
	raw, err := refs.Marshal()
	if err != nil {
		return err
	}
	return db.Set(dbkey, raw)
}

// Keys returns the primary keys of all objects that have given index
// value.
func (i Index) Keys(db xswap.ReadOnlyKVStore, value []byte) ([][]byte, error) {
	raw, err := db.Get(i.IndexKey(value))
	if err != nil {
		return nil, err
	}
	return i.refs(raw)
}

func (i Index) refs(raw []byte) ([][]byte, error) {
	if raw == nil {
		return nil, nil
	}
	if i.unique {
		return [][]byte{raw}, nil
	}
	var refs MultiRef
	if err := refs.Unmarshal(raw); err != nil {
		return nil, errors.Wrap(err, "cannot load index references")
	}
	return refs.Refs, nil
}

// Query handles queries from the QueryRouter. Referenced objects are
// returned, not the index data.
func (i Index) Query(db xswap.ReadOnlyKVStore, mod string, data []byte) ([]xswap.Model, error) {
	var pks [][]byte
	switch mod {
	case xswap.KeyQueryMod:
		keys, err := i.Keys(db, data)
		if err != nil {
			return nil, err
		}
		pks = keys
	case xswap.PrefixQueryMod:
		models, err := queryPrefix(db, i.IndexKey(data))
		if err != nil {
			return nil, err
		}
		for _, m := range models {
			keys, err := i.refs(m.Value)
			if err != nil {
				return nil, err
			}
			pks = append(pks, keys...)
		}
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}

	res := make([]xswap.Model, 0, len(pks))
	for _, pk := range pks {
		key := i.refKey(pk)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, errors.Wrap(errors.ErrState, "index references a missing object")
		}
		res = append(res, xswap.Model{Key: key, Value: value})
	}
	return res, nil
}
