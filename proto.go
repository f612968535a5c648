package zerohex

import (
	"fmt"

	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ToProto returns the canonical form of src as a protobuf string wrapper.
func ToProto(src []byte) *wrapperspb.StringValue {
	return wrapperspb.String(Format(src))
}

// FromProto decodes v into dst. A nil v reads as the empty string.
func FromProto(dst []byte, v *wrapperspb.StringValue) error {
	if err := Decode(dst, v.GetValue()); err != nil {
		return fmt.Errorf("protobuf: %w", err)
	}
	return nil
}
