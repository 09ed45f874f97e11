package orm

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
)

// RegisterQuery will register a root query (literal keys) under "/".
func RegisterQuery(qr xswap.QueryRouter) {
	qr.Register("/", rawQuery{})
}

// rawQuery reads the database without any key translation.
type rawQuery struct{}

func (rawQuery) Query(db xswap.ReadOnlyKVStore, mod string, data []byte) ([]xswap.Model, error) {
	switch mod {
	case xswap.KeyQueryMod:
		if len(data) == 0 {
			return nil, errors.Wrap(errors.ErrEmpty, "key required")
		}
		value, err := db.Get(data)
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, nil
		}
		return []xswap.Model{{Key: data, Value: value}}, nil
	case xswap.PrefixQueryMod:
		return queryPrefix(db, data)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
}

// queryPrefix returns all models whose key starts with given prefix.
func queryPrefix(db xswap.ReadOnlyKVStore, prefix []byte) ([]xswap.Model, error) {
	itr, err := db.Iterator(prefixRange(prefix))
	if err != nil {
		return nil, err
	}
	return consumeIterator(itr), nil
}

func consumeIterator(itr xswap.Iterator) []xswap.Model {
	defer itr.Close()

	var res []xswap.Model
	for ; itr.Valid(); itr.Next() {
		mod := xswap.Model{
			Key:   itr.Key(),
			Value: itr.Value(),
		}
		res = append(res, mod)
	}
	return res
}

// prefixRange turns a prefix into (start, end) to create
// and iterator
func prefixRange(prefix []byte) ([]byte, []byte) {
	// special case: no prefix is whole range
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix and update last byte
	end := make([]byte, len(prefix))
	copy(end, prefix)
	l := len(end) - 1
	end[l]++

	// wait, what if that overflowed?....
	for end[l] == 0 && l > 0 {
		l--
		end[l]++
	}

	// okay, funny guy, you gave us FFF, no end to this range...
	if l == 0 && end[0] == 0 {
		end = nil
	}
	return prefix, end
}
