package zerohex

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeMsgpack writes the canonical form of src as a msgpack string.
func EncodeMsgpack(enc *msgpack.Encoder, src []byte) error {
	return enc.EncodeString(Format(src))
}

// DecodeMsgpack reads a msgpack string and decodes it into dst.
func DecodeMsgpack(dec *msgpack.Decoder, dst []byte) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	if err := Decode(dst, s); err != nil {
		return fmt.Errorf("msgpack: %w", err)
	}
	return nil
}
