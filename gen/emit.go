// Package gen emits hex codec methods for byte-array types.
//
// Emit is a pure function of (name, N, features). Generator runs the shape
// validator first and emits nothing for an ineligible type. Render joins
// fragments into one gofmt'd file, and Load reads type descriptors out of
// a package directory.
package gen

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Features selects the optional framework adapters. The text methods
// (String, GoString, MarshalText, UnmarshalText) are always emitted.
type Features struct {
	Msgpack bool // EncodeMsgpack / DecodeMsgpack
	CBOR    bool // MarshalCBOR / UnmarshalCBOR
	Proto   bool // Proto / SetProto via wrapperspb.StringValue
}

// Codec is the generated source for one type.
type Codec struct {
	Name   string
	N      int
	Source []byte
}

// Emit returns the codec methods for type name with N bytes. It assumes
// name is an eligible type; use Generator.Generate to validate first.
func Emit(name string, n int, f Features) Codec {
	var g printer
	digits := strconv.Itoa(2 * n)
	lenConst := name + "Len"
	parseFn := "Parse" + name
	if r, _ := utf8.DecodeRuneInString(name); unicode.IsLower(r) {
		parseFn = "parse" + upperFirst(name)
	}

	g.P("// ", lenConst, " is the length of ", name, " in bytes.")
	g.P("const ", lenConst, " = ", n)
	g.P()
	g.P("// ", parseFn, " parses s as ", digits, ` hex digits, optionally prefixed with "0x" or "0X".`)
	g.P("func ", parseFn, "(s string) (", name, ", error) {")
	g.P("var x ", name)
	g.P("if err := zerohex.Decode(x[:], s); err != nil {")
	g.P("return ", name, "{}, err")
	g.P("}")
	g.P("return x, nil")
	g.P("}")
	g.P()
	g.P(`// String returns the canonical form of x: "0x" and `, digits, " lowercase hex digits.")
	g.P("func (x ", name, ") String() string { return zerohex.Format(x[:]) }")
	g.P()
	g.P("// GoString returns ", name, "(0x...), used by the %#v verb.")
	g.P("func (x ", name, ") GoString() string { return zerohex.Debug(", strconv.Quote(name), ", x[:]) }")
	g.P()
	g.P("// MarshalText implements encoding.TextMarshaler.")
	g.P("func (x ", name, ") MarshalText() ([]byte, error) { return zerohex.AppendFormat(nil, x[:]), nil }")
	g.P()
	g.P("// UnmarshalText implements encoding.TextUnmarshaler.")
	g.P("func (x *", name, ") UnmarshalText(text []byte) error { return zerohex.UnmarshalText(x[:], text) }")

	if f.Msgpack {
		g.P()
		g.P("// EncodeMsgpack implements msgpack.CustomEncoder.")
		g.P("func (x ", name, ") EncodeMsgpack(enc *msgpack.Encoder) error { return zerohex.EncodeMsgpack(enc, x[:]) }")
		g.P()
		g.P("// DecodeMsgpack implements msgpack.CustomDecoder.")
		g.P("func (x *", name, ") DecodeMsgpack(dec *msgpack.Decoder) error { return zerohex.DecodeMsgpack(dec, x[:]) }")
	}
	if f.CBOR {
		g.P()
		g.P("// MarshalCBOR implements cbor.Marshaler.")
		g.P("func (x ", name, ") MarshalCBOR() ([]byte, error) { return zerohex.MarshalCBOR(x[:]) }")
		g.P()
		g.P("// UnmarshalCBOR implements cbor.Unmarshaler.")
		g.P("func (x *", name, ") UnmarshalCBOR(data []byte) error { return zerohex.UnmarshalCBOR(x[:], data) }")
	}
	if f.Proto {
		g.P()
		g.P("// Proto returns x as a protobuf string wrapper.")
		g.P("func (x ", name, ") Proto() *wrapperspb.StringValue { return zerohex.ToProto(x[:]) }")
		g.P()
		g.P("// SetProto decodes v into x.")
		g.P("func (x *", name, ") SetProto(v *wrapperspb.StringValue) error { return zerohex.FromProto(x[:], v) }")
	}

	return Codec{Name: name, N: n, Source: g.Bytes()}
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// printer accumulates lines of source; layout is left to go/format.
type printer struct{ buf bytes.Buffer }

func (p *printer) P(v ...any) {
	for _, x := range v {
		fmt.Fprint(&p.buf, x)
	}
	p.buf.WriteByte('\n')
}

func (p *printer) Bytes() []byte { return p.buf.Bytes() }
