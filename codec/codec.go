// Package codec carries hex values through structured serialization formats.
//
// A hex value always travels as a single string primitive: a JSON string,
// a msgpack str, a CBOR text string, a protobuf StringValue, or the bare
// text. Framed joins a text codec for the value (generated methods via
// Text, or zerohex.Fixed) with one of the Codec[string] frames here.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
