package outbox

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/codec"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/orm"
)

const bucketName = "outbox"

// Event is a single entry of the log.
type Event struct {
	Metadata *xswap.Metadata `json:"metadata"`
	// Sequence is the position of this event in the log, starting at 1.
	Sequence int64 `json:"sequence"`
	// Kind names the payload type, for example "aswap/initiated".
	Kind    string         `json:"kind"`
	Height  int64          `json:"height"`
	Time    xswap.UnixTime `json:"time"`
	Payload []byte         `json:"payload"`
}

var _ orm.Model = (*Event)(nil)

func (e *Event) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", e.Metadata.Validate())
	if e.Sequence < 1 {
		errs = errors.Append(errs, errors.Field("Sequence", errors.ErrInput, "must be positive"))
	}
	if e.Kind == "" {
		errs = errors.Append(errs, errors.Field("Kind", errors.ErrEmpty, "required"))
	}
	errs = errors.AppendField(errs, "Time", e.Time.Validate())
	return errs
}

func (e *Event) Marshal() ([]byte, error) {
	return codec.Marshal(e)
}

func (e *Event) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, e)
}

// Load decodes the payload into given destination.
func (e *Event) Load(dst xswap.Persistent) error {
	if err := dst.Unmarshal(e.Payload); err != nil {
		return errors.Wrapf(err, "%s payload", e.Kind)
	}
	return nil
}

// NewEventBucket returns the bucket that holds the log.
func NewEventBucket() orm.ModelBucket {
	return orm.NewModelBucket(bucketName, &Event{})
}
