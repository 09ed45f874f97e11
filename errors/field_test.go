package errors

import (
	"reflect"
	"testing"
)

func TestFieldWalk(t *testing.T) {
	amount := Field("Amount", ErrAmount, "too low")
	cases := map[string]struct {
		err       error
		field     string
		wantCount int
		wantKind  *Error
	}{
		"nil error": {
			err:   nil,
			field: "Amount",
		},
		"single field": {
			err:       amount,
			field:     "Amount",
			wantCount: 1,
			wantKind:  ErrAmount,
		},
		"field behind a wrap": {
			err:       Wrap(amount, "deposit"),
			field:     "Amount",
			wantCount: 1,
			wantKind:  ErrAmount,
		},
		"other field only": {
			err:   Field("Recipient", ErrEmpty, ""),
			field: "Amount",
		},
		"group with repeated field": {
			err: Append(
				Field("Tickers.0", ErrCurrency, ""),
				amount,
				Field("Amount", ErrInput, "not a number"),
			),
			field:     "Amount",
			wantCount: 2,
			wantKind:  ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := FieldErrors(tc.err, tc.field)
			if len(got) != tc.wantCount {
				t.Fatalf("want %d errors, got %d: %v", tc.wantCount, len(got), got)
			}
			if tc.wantCount > 0 && !tc.wantKind.Is(got[0]) {
				t.Fatalf("unexpected first error: %v", got[0])
			}
		})
	}
}

func TestFieldNames(t *testing.T) {
	err := Append(
		Field("Recipient", ErrEmpty, ""),
		Wrap(Field("Amount", ErrAmount, "too low"), "deposit"),
		ErrUnauthorized,
		Field("Recipient", ErrInput, "malformed"),
	)
	want := []string{"Recipient", "Amount"}
	if got := FieldNames(err); !reflect.DeepEqual(want, got) {
		t.Fatalf("want %q, got %q", want, got)
	}
	if got := FieldNames(ErrUnauthorized); len(got) != 0 {
		t.Fatalf("want no fields, got %q", got)
	}
}

func TestFieldMessage(t *testing.T) {
	if Field("Amount", nil, "ignored") != nil {
		t.Fatal("want nil for a nil error")
	}
	err := Field("MaxTimelock", ErrInput, "must not exceed %d", 10)
	want := `field "MaxTimelock": must not exceed 10: invalid input`
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
