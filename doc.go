// Package zerohex implements fixed-length hex codecs for byte-array types.
//
// A type whose underlying type is [N]byte gets a textual codec:
//
//	parse:  "0x0a0b..." or "0a0b..." (2N digits, any case) -> [N]byte
//	format: [N]byte -> "0x0a0b..." (always prefixed, always lowercase)
//
// Any other length is ErrInvalidLength, as is a 2N+2 string that does not
// start with "0x" or "0X". A non-hex character in the digits is
// ErrInvalidHexDigit. Parsing is all-or-nothing.
//
// Components:
//   - shape: decides whether a type is eligible and extracts N.
//   - gen, cmd/zerohex: emit String, GoString, ParseT, MarshalText and
//     UnmarshalText methods (optionally msgpack, CBOR and protobuf adapters)
//     for eligible types. Use it from go:generate:
//
//     //go:generate zerohex -type=Address,Hash -msgpack -cbor
//
//   - Fixed[T]: the same codec without generated code, built by For[T].
//   - codec: byte codecs used to carry hex values through JSON, msgpack,
//     CBOR and protobuf.
//
// The runtime functions in this package (Decode, Format, the adapters)
// operate on a []byte window of length N and are safe for concurrent use.
package zerohex
