package shape

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// MaxLen is the largest N accepted. 2N+2 must fit in an int.
const MaxLen = (math.MaxInt32 - 2) / 2

// ErrIneligible is the single kind of shape failure.
var ErrIneligible = errors.New("ineligible shape")

// ShapeError reports why a type cannot carry a hex codec.
type ShapeError struct {
	Type   string
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("zerohex: %s: %v: %s; want a single positional [N]byte field", e.Type, ErrIneligible, e.Reason)
}

func (e *ShapeError) Unwrap() error { return ErrIneligible }

// Validate returns N when d has exactly one positional [N]byte field with
// an integer-literal length.
func Validate(d TypeDescriptor) (int, error) {
	fail := func(format string, args ...any) (int, error) {
		return 0, &ShapeError{Type: d.Name, Reason: fmt.Sprintf(format, args...)}
	}

	if len(d.Fields) != 1 {
		return fail("has %d fields", len(d.Fields))
	}
	f := d.Fields[0]
	if f.Name != "" {
		return fail("field %q is named", f.Name)
	}

	t := f.Type
	switch t.Kind {
	case Array:
	case Slice:
		return fail("field type %s is variable-length", t)
	default:
		return fail("field type %s is not an array", t)
	}

	if t.Elem == nil || t.Elem.Kind != Ident || !isByte(t.Elem.Name) {
		return fail("array element %s is not byte", t.elem())
	}

	n, ok := literalLen(t.Len)
	if !ok {
		return fail("array length %q is not an integer literal", t.Len)
	}
	return n, nil
}

func isByte(name string) bool { return name == "byte" || name == "uint8" }

// literalLen accepts Go integer literal syntax: decimal, 0x, 0o, 0b and
// underscores. Identifiers, expressions and "..." are rejected.
func literalLen(s string) (int, bool) {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil || v > MaxLen {
		return 0, false
	}
	return int(v), true
}
