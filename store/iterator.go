package store

import (
	"bytes"
)

// source says which of the merged iterators holds the current key
type source int32

const (
	us source = iota
	parent
	both
	none
)

// itemIter merges the items cached in a btree layer with the iterator of
// the parent store. Deleted items hide the parent value of the same key.
type itemIter struct {
	items   []keyer
	idx     int
	parent  Iterator
	reverse bool
}

var _ Iterator = (*itemIter)(nil)

func newItemIter(items []keyer, parent Iterator, reverse bool) *itemIter {
	iter := &itemIter{
		items:   items,
		parent:  parent,
		reverse: reverse,
	}
	iter.skipAllDeleted()
	return iter
}

// Valid returns whether the current position is valid.
// Once invalid, an Iterator is forever invalid.
func (i *itemIter) Valid() bool {
	return i.ourValid() || i.parentValid()
}

// Next moves the iterator to the next sequential key in the database, as
// defined by order of iteration.
//
// If Valid returns false, this method will panic.
func (i *itemIter) Next() {
	switch i.firstKey() {
	case us:
		i.idx++
	case both:
		i.idx++
		i.parent.Next()
	case parent:
		i.parent.Next()
	default:
		panic("Advanced past the end!")
	}
	i.skipAllDeleted()
}

// Key returns the key of the cursor.
// If Valid returns false, this method will panic.
func (i *itemIter) Key() []byte {
	switch i.firstKey() {
	case us, both:
		return i.items[i.idx].Key()
	case parent:
		return i.parent.Key()
	default:
		panic("Advanced past the end!")
	}
}

// Value returns the value of the cursor.
// If Valid returns false, this method will panic.
func (i *itemIter) Value() []byte {
	switch i.firstKey() {
	case us, both:
		return i.items[i.idx].(setItem).value
	case parent:
		return i.parent.Value()
	default:
		panic("Advanced past the end!")
	}
}

// Close releases the Iterator.
func (i *itemIter) Close() {
	i.parent.Close()
	i.items = nil
}

// skipAllDeleted loops on skipDeleted until we hit a
// set item or the end
func (i *itemIter) skipAllDeleted() {
	for i.skipDeleted() {
	}
}

// skipDeleted returns true if it advanced over a deleted item.
func (i *itemIter) skipDeleted() bool {
	src := i.firstKey()
	if src != us && src != both {
		return false
	}
	if _, ok := i.items[i.idx].(deletedItem); !ok {
		return false
	}
	i.idx++
	if src == both {
		i.parent.Next()
	}
	return true
}

// firstKey decides which iterator holds the next key in the iteration
// order.
func (i *itemIter) firstKey() source {
	if !i.parentValid() {
		if !i.ourValid() {
			return none
		}
		return us
	} else if !i.ourValid() {
		return parent
	}

	cmp := bytes.Compare(i.parent.Key(), i.items[i.idx].Key())
	if i.reverse {
		cmp = -cmp
	}
	switch {
	case cmp < 0:
		return parent
	case cmp > 0:
		return us
	default:
		return both
	}
}

func (i *itemIter) ourValid() bool {
	return i.idx < len(i.items)
}

func (i *itemIter) parentValid() bool {
	return (i.parent != nil) && i.parent.Valid()
}
