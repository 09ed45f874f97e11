package orm

import (
	"reflect"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
)

// ModelBucket is implemented by buckets that operates on Models rather than
// Objects.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary index key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	One(db xswap.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if a model with given key exists and ErrNotFound
	// otherwise.
	Has(db xswap.ReadOnlyKVStore, key []byte) error

	// ByIndex returns all objects that secondary index with given name and
	// given key. Main index is always unique but secondary indexes can
	// return more than one value for the same key.
	// All matching entities are appended to given destination slice. If no
	// result was found, no error is returned and destination slice is not
	// modified.
	ByIndex(db xswap.ReadOnlyKVStore, indexName string, key []byte, dest ModelSlicePtr) (keys [][]byte, err error)

	// Scan loads into given destination slice all models with a primary
	// key in the [start, end) range, in ascending key order. At most limit
	// entities are loaded, zero means no limit.
	Scan(db xswap.ReadOnlyKVStore, start, end []byte, limit int, dest ModelSlicePtr) (keys [][]byte, err error)

	// Put saves given model in the database. Before inserting into
	// database, model is validated using its Validate method.
	// If the key is nil or zero length then a sequence generator is used
	// to create a unique key value.
	// Using a key that already exists in the database cause the value to
	// be overwritten.
	Put(db xswap.KVStore, key []byte, m Model) ([]byte, error)

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db xswap.KVStore, key []byte) error

	// Register registers this buckets content to be accessible via query
	// requests under the given name.
	Register(name string, r xswap.QueryRouter)
}

// ModelSlicePtr represents a pointer to a slice of models. Think of it as
// *[]Model Because of Go type system, using []Model type would not work for
// us. Instead we use a placeholder type and the validation is done during
// the runtime.
type ModelSlicePtr interface{}

// ModelBucketOption is implemented by any function that can configure
// ModelBucket during creation.
type ModelBucketOption func(mb *modelBucket)

// WithIndex configures the bucket to build an index with given name. All
// entities stored in the bucket are indexed using value returned by the
// indexer function. If an index is unique, there can be only one entity
// referenced per index value.
func WithIndex(name string, indexer Indexer, unique bool) ModelBucketOption {
	return func(mb *modelBucket) {
		mb.b = mb.b.WithIndex(name, indexer, unique)
	}
}

// WithIDSequence configures the bucket to use the given sequence instance
// for generating ID.
func WithIDSequence(s Sequence) ModelBucketOption {
	return func(mb *modelBucket) {
		mb.idSeq = s
	}
}

// NewModelBucket returns a ModelBucket instance. Given model must be a
// pointer and it defines the only type that this bucket accepts.
func NewModelBucket(name string, m Model, opts ...ModelBucketOption) ModelBucket {
	tp := reflect.TypeOf(m)
	if tp.Kind() != reflect.Ptr {
		panic("model must be a pointer")
	}
	mb := &modelBucket{
		b:     NewBucket(name),
		idSeq: NewSequence(name, "id"),
		model: tp,
	}
	for _, fn := range opts {
		fn(mb)
	}
	return mb
}

type modelBucket struct {
	b     Bucket
	idSeq Sequence
	model reflect.Type
}

func (mb *modelBucket) Register(name string, r xswap.QueryRouter) {
	mb.b.Register(name, r)
}

func (mb *modelBucket) One(db xswap.ReadOnlyKVStore, key []byte, dest Model) error {
	raw, err := mb.b.get(db, key)
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if reflect.TypeOf(dest) != mb.model {
		return errors.Wrapf(errors.ErrType, "%T cannot be represented as %v", dest, mb.model)
	}
	// Reset the destination so that no previous state leaks into the
	// loaded model.
	val := reflect.ValueOf(dest).Elem()
	val.Set(reflect.Zero(val.Type()))
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "cannot unmarshal %T", dest)
	}
	return nil
}

func (mb *modelBucket) Has(db xswap.ReadOnlyKVStore, key []byte) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrNotFound, "empty key")
	}
	ok, err := db.Has(mb.b.DBKey(key))
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if !ok {
		return errors.ErrNotFound
	}
	return nil
}

func (mb *modelBucket) ByIndex(db xswap.ReadOnlyKVStore, indexName string, key []byte, destination ModelSlicePtr) ([][]byte, error) {
	idx := mb.b.index(indexName)
	if idx == nil {
		return nil, errors.Wrapf(errors.ErrHuman, "unknown index %q", indexName)
	}
	keys, err := idx.Keys(db, key)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}
	if err := mb.loadAll(db, keys, destination); err != nil {
		return nil, err
	}
	return keys, nil
}

func (mb *modelBucket) Scan(db xswap.ReadOnlyKVStore, start, end []byte, limit int, destination ModelSlicePtr) ([][]byte, error) {
	var dbEnd []byte
	if end == nil {
		_, dbEnd = prefixRange(mb.b.DBKey(nil))
	} else {
		dbEnd = mb.b.DBKey(end)
	}
	itr, err := db.Iterator(mb.b.DBKey(start), dbEnd)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	defer itr.Close()

	prefixLen := len(mb.b.DBKey(nil))
	var keys [][]byte
	for ; itr.Valid(); itr.Next() {
		if limit > 0 && len(keys) == limit {
			break
		}
		keys = append(keys, append([]byte(nil), itr.Key()[prefixLen:]...))
	}
	if len(keys) == 0 {
		return nil, nil
	}
	if err := mb.loadAll(db, keys, destination); err != nil {
		return nil, err
	}
	return keys, nil
}

// loadAll unmarshals models stored under given keys and appends them to
// the destination slice.
func (mb *modelBucket) loadAll(db xswap.ReadOnlyKVStore, keys [][]byte, destination ModelSlicePtr) error {
	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr {
		return errors.Wrap(errors.ErrType, "destination must be a pointer to slice of models")
	}
	if dest.IsNil() {
		return errors.Wrap(errors.ErrImmutable, "got nil pointer")
	}
	dest = dest.Elem()
	if dest.Kind() != reflect.Slice {
		return errors.Wrap(errors.ErrType, "destination must be a pointer to slice of models")
	}

	// It is allowed to pass destination as both []MyModel and []*MyModel
	sliceOfPointers := dest.Type().Elem().Kind() == reflect.Ptr
	if sliceOfPointers {
		if dest.Type().Elem() != mb.model {
			return errors.Wrapf(errors.ErrType, "this bucket operates on %v", mb.model)
		}
	} else if dest.Type().Elem() != mb.model.Elem() {
		return errors.Wrapf(errors.ErrType, "this bucket operates on %v", mb.model)
	}

	for _, key := range keys {
		raw, err := mb.b.get(db, key)
		if err != nil {
			return err
		}
		if raw == nil {
			return errors.Wrap(errors.ErrState, "index references a missing object")
		}
		m := reflect.New(mb.model.Elem())
		if err := m.Interface().(Model).Unmarshal(raw); err != nil {
			return errors.Wrap(err, "cannot unmarshal model")
		}
		if sliceOfPointers {
			dest.Set(reflect.Append(dest, m))
		} else {
			dest.Set(reflect.Append(dest, m.Elem()))
		}
	}
	return nil
}

func (mb *modelBucket) Put(db xswap.KVStore, key []byte, m Model) ([]byte, error) {
	if reflect.TypeOf(m) != mb.model {
		return nil, errors.Wrapf(errors.ErrType, "cannot store %T type in this bucket", m)
	}
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid model")
	}

	if len(key) == 0 {
		var err error
		key, err = mb.idSeq.NextVal(db)
		if err != nil {
			return nil, errors.Wrap(err, "ID sequence")
		}
	}

	raw, err := m.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "cannot marshal model")
	}

	var prev Object
	if len(mb.b.indexes) > 0 {
		old, err := mb.b.get(db, key)
		if err != nil {
			return nil, err
		}
		if old != nil {
			pm := reflect.New(mb.model.Elem()).Interface().(Model)
			if err := pm.Unmarshal(old); err != nil {
				return nil, errors.Wrap(err, "cannot unmarshal previous state")
			}
			prev = NewSimpleObj(key, pm)
		}
		if err := mb.b.updateIndexes(db, prev, NewSimpleObj(key, m)); err != nil {
			return nil, err
		}
	}

	if err := db.Set(mb.b.DBKey(key), raw); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return key, nil
}

func (mb *modelBucket) Delete(db xswap.KVStore, key []byte) error {
	raw, err := mb.b.get(db, key)
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.ErrNotFound
	}
	if len(mb.b.indexes) > 0 {
		pm := reflect.New(mb.model.Elem()).Interface().(Model)
		if err := pm.Unmarshal(raw); err != nil {
			return errors.Wrap(err, "cannot unmarshal previous state")
		}
		if err := mb.b.updateIndexes(db, NewSimpleObj(key, pm), nil); err != nil {
			return err
		}
	}
	if err := db.Delete(mb.b.DBKey(key)); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

var _ ModelBucket = (*modelBucket)(nil)
