package outbox

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/orm"
)

var (
	events   = NewEventBucket()
	sequence = orm.NewSequence(bucketName, "id")
)

// Emit appends an event with given payload to the log and returns its
// sequence.
func Emit(ctx xswap.Context, db xswap.KVStore, kind string, payload xswap.Marshaller) (int64, error) {
	raw, err := payload.Marshal()
	if err != nil {
		return 0, errors.Wrapf(err, "marshal %s payload", kind)
	}
	now, err := xswap.BlockUnixTime(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "event time")
	}
	height, _ := xswap.GetHeight(ctx)

	seq, err := sequence.NextInt(db)
	if err != nil {
		return 0, errors.Wrap(err, "event sequence")
	}
	e := &Event{
		Metadata: &xswap.Metadata{Schema: 1},
		Sequence: seq,
		Kind:     kind,
		Height:   height,
		Time:     now,
		Payload:  raw,
	}
	if _, err := events.Put(db, orm.EncodeSequence(seq), e); err != nil {
		return 0, errors.Wrap(err, "save event")
	}
	xswap.GetLogger(ctx).Debug("event emitted", "kind", kind, "seq", seq)
	return seq, nil
}

// After returns at most limit events with a sequence greater than cursor,
// in emission order. Zero limit returns all of them.
func After(db xswap.ReadOnlyKVStore, cursor int64, limit int) ([]*Event, error) {
	if cursor < 0 {
		return nil, errors.Wrap(errors.ErrInput, "negative cursor")
	}
	var res []*Event
	if _, err := events.Scan(db, orm.EncodeSequence(cursor+1), nil, limit, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// Latest returns the sequence of the most recent event, zero if the log is
// empty.
func Latest(db xswap.ReadOnlyKVStore) (int64, error) {
	return sequence.Latest(db)
}

// RegisterQuery registers the log as "/events". Keys are 8 byte big endian
// sequences.
func RegisterQuery(qr xswap.QueryRouter) {
	events.Register("events", qr)
}
