package codec

import "encoding"

// Text stores a value as its own text form, with no format framing.
// PV is the pointer type of V, which must implement UnmarshalText:
//
//	var c codec.Text[hextypes.Address, *hextypes.Address]
type Text[V encoding.TextMarshaler, PV interface {
	*V
	encoding.TextUnmarshaler
}] struct{}

func (Text[V, PV]) Encode(v V) ([]byte, error) { return v.MarshalText() }
func (Text[V, PV]) Decode(b []byte) (V, error) {
	var v V
	err := PV(&v).UnmarshalText(b)
	return v, err
}

// String is a trivial codec for Go string values. It assumes UTF-8 and
// performs no validation.
type String struct{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }
