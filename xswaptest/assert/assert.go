package assert

import (
	"reflect"
	"testing"

	"github.com/noxlabs/xswap/errors"
)

// Tester is the part of testing.TB used by the assertions that do not log.
type Tester interface {
	Helper()
	Fatal(...interface{})
	Fatalf(string, ...interface{})
}

// Nil fails the test if given value is not nil.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !isNil(value) {
		// %+v prints the stack of errors that carry one.
		t.Fatalf("want a nil value, got %+v", value)
	}
}

func isNil(value interface{}) (isnil bool) {
	if value == nil {
		return true
	}

	defer func() {
		if recover() != nil {
			isnil = false
		}
	}()

	// The argument must be a chan, func, interface, map, pointer, or slice
	// value; if it is not, IsNil panics.
	isnil = reflect.ValueOf(value).IsNil()

	return isnil
}

// Equal fails the test if two values are not equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("values not equal \nwant %T %v\n got %T %v", want, want, got, got)
	}
}

// Panics will run given function and recover any panic. It will fail the test
// if given function call did not panic.
func Panics(t Tester, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	fn()
}

// FieldError fails the test unless err carries exactly one error for
// fieldName and that error is of the want kind. Use a nil want to require
// that the field has no error at all.
func FieldError(t testing.TB, err error, fieldName string, want *errors.Error) {
	t.Helper()

	errs := errors.FieldErrors(err, fieldName)
	if want == nil {
		if len(errs) != 0 {
			t.Fatalf("want no %q error, got %d: %v", fieldName, len(errs), errs)
		}
		return
	}

	switch len(errs) {
	case 0:
		t.Fatalf("no %q error found, fields with errors: %q", fieldName, errors.FieldNames(err))
	case 1:
		if !want.Is(errs[0]) {
			t.Fatalf("want %q error for %q, got %+v", want, fieldName, errs[0])
		}
	default:
		t.Fatalf("want one %q error, got %d: %v", fieldName, len(errs), errs)
	}
}

// Fields fails the test unless err carries errors for exactly the given
// field names, in any order.
func Fields(t testing.TB, err error, want ...string) {
	t.Helper()

	got := errors.FieldNames(err)
	if len(got) != len(want) {
		t.Fatalf("want errors for %q, got %q", want, got)
	}
	for _, name := range want {
		if len(errors.FieldErrors(err, name)) == 0 {
			t.Fatalf("want errors for %q, got %q", want, got)
		}
	}
}

// IsErr fails the test unless got is of the want kind. Wrapped errors and
// groups match when any of their errors does.
func IsErr(t testing.TB, want, got error) {
	t.Helper()

	if want == got {
		return
	}

	type comparator interface {
		Is(error) bool
	}

	if want, ok := want.(comparator); ok && want.Is(got) {
		return
	}

	t.Fatalf("want %q, got %+v", want, got)
}
