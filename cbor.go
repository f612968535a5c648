package zerohex

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// MarshalCBOR encodes the canonical form of src as a CBOR text string.
func MarshalCBOR(src []byte) ([]byte, error) {
	return cbor.Marshal(Format(src))
}

// UnmarshalCBOR reads a CBOR text string and decodes it into dst.
func UnmarshalCBOR(dst, data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	if err := Decode(dst, s); err != nil {
		return fmt.Errorf("cbor: %w", err)
	}
	return nil
}
