package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field attaches a field name to err. It returns nil if err is nil.
//
// Field names follow Go naming, for example Recipient or MaxTimelock. Nested
// fields use dot notation (Amount.Ticker) and list elements their index
// (Tickers.2).
func Field(fieldName string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	// The stack is recorded once, at the innermost wrap.
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) > 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{
		parent: err,
		field:  fieldName,
		desc:   description,
	}
}

// AppendField adds a field error to errorsOrNil. Nothing is added if
// fieldErrOrNil is nil, so message validation can chain calls for every
// field and return the result.
func AppendField(errorsOrNil error, fieldName string, fieldErrOrNil error) error {
	return Append(errorsOrNil, Field(fieldName, fieldErrOrNil, ""))
}

type fieldError struct {
	parent error
	field  string
	desc   string
}

func (err *fieldError) Error() string {
	if err.desc == "" {
		return fmt.Sprintf("field %q: %s", err.field, err.parent)
	}
	return fmt.Sprintf("field %q: %s: %s", err.field, err.desc, err.parent)
}

// Cause implements the causer interface.
func (err *fieldError) Cause() error {
	return err.parent
}

// Field implements fielder interface.
func (err *fieldError) Field() string {
	return err.field
}

type fielder interface {
	Field() string
}

// FieldErrors returns all errors attached to given field name.
func FieldErrors(err error, fieldName string) []error {
	var res []error
	walkFields(err, func(name string, e error) {
		if name == fieldName {
			res = append(res, e)
		}
	})
	return res
}

// FieldNames returns the names of all fields that err carries an error for,
// in the order they were appended. A name is listed once.
func FieldNames(err error) []string {
	var names []string
	seen := make(map[string]struct{})
	walkFields(err, func(name string, _ error) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	})
	return names
}

// walkFields calls fn for every field error found in err. Nested field errors
// below a match are not visited.
func walkFields(err error, fn func(string, error)) {
	for !isNilErr(err) {
		if f, ok := err.(fielder); ok {
			fn(f.Field(), err)
			return
		}
		// Unpack returns all children, including what Cause would.
		if u, ok := err.(unpacker); ok {
			for _, e := range u.Unpack() {
				walkFields(e, fn)
			}
			return
		}
		c, ok := err.(causer)
		if !ok {
			return
		}
		err = c.Cause()
	}
}
