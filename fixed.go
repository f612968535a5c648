package zerohex

import (
	"reflect"

	"github.com/unkn0wn-root/zerohex/codec"
	"github.com/unkn0wn-root/zerohex/shape"
)

// Fixed is a hex codec for a byte-array type T, checked once at construction.
// It is the reflection-backed alternative to generated methods: use it for
// types you cannot add methods to.
// The zero value is NOT ready to use. Construct with For or MustFor.
//
//	var addr = zerohex.MustFor[[20]byte]()
//	a, err := addr.Parse("0x0101010101010101010101010101010101010101")
//
// Fixed also satisfies codec.Codec[T], storing values as canonical text.
type Fixed[T any] struct {
	name string
	n    int
}

var _ codec.Codec[[0]byte] = Fixed[[0]byte]{}

var byteType = reflect.TypeOf(byte(0))

// For validates T and returns its codec. T must be an array of uint8 (a
// named array type like `type Address [20]byte` is fine); anything else
// fails with a *shape.ShapeError.
func For[T any]() (Fixed[T], error) {
	d := shape.Of(reflect.TypeOf((*T)(nil)).Elem())
	n, err := shape.Validate(d)
	if err != nil {
		return Fixed[T]{}, err
	}
	return Fixed[T]{name: d.Name, n: n}, nil
}

// MustFor is like For but panics on error. Handy for package-level variables.
func MustFor[T any]() Fixed[T] {
	f, err := For[T]()
	if err != nil {
		panic(err)
	}
	return f
}

// Len returns N.
func (f Fixed[T]) Len() int { return f.n }

// Name returns the type name used by Debug.
func (f Fixed[T]) Name() string { return f.name }

// Parse decodes s into a T. An ineligible T fails with a *shape.ShapeError.
func (f Fixed[T]) Parse(s string) (T, error) {
	var v T
	w, err := window(&v)
	if err != nil {
		return v, err
	}
	if err := Decode(w, s); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Format returns the canonical form of v, or "" if T is ineligible.
func (f Fixed[T]) Format(v T) string {
	w, err := window(&v)
	if err != nil {
		return ""
	}
	return Format(w)
}

// Debug returns name(0x…), or "" if T is ineligible.
func (f Fixed[T]) Debug(v T) string {
	w, err := window(&v)
	if err != nil {
		return ""
	}
	return Debug(f.name, w)
}

func (f Fixed[T]) Encode(v T) ([]byte, error) {
	w, err := window(&v)
	if err != nil {
		return nil, err
	}
	return AppendFormat(make([]byte, 0, FormattedLen(len(w))), w), nil
}

func (f Fixed[T]) Decode(b []byte) (T, error) {
	var v T
	w, err := window(&v)
	if err != nil {
		return v, err
	}
	if err := DecodeBytes(w, b); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Framed returns a codec that carries values as a string primitive of
// frame's format, e.g. codec.JSONString or codec.MsgpackString.
func (f Fixed[T]) Framed(frame codec.Codec[string]) codec.Framed[T] {
	return codec.Framed[T]{Text: f, Frame: frame}
}

// window aliases the bytes of *v. T that is not an array of uint8 reaches
// here only through a zero Fixed, and gets the error For would have given.
func window[T any](v *T) ([]byte, error) {
	rv := reflect.ValueOf(v).Elem()
	if rv.Kind() != reflect.Array || rv.Type().Elem() != byteType {
		_, err := For[T]()
		return nil, err
	}
	return rv.Bytes(), nil
}
