package codec

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ProtoString frames text as a serialized wrapperspb.StringValue, the
// message the generated Proto and SetProto methods use.
type ProtoString struct{}

func (ProtoString) Encode(s string) ([]byte, error) {
	return proto.Marshal(wrapperspb.String(s))
}
func (ProtoString) Decode(b []byte) (string, error) {
	var m wrapperspb.StringValue
	if err := proto.Unmarshal(b, &m); err != nil {
		return "", err
	}
	return m.GetValue(), nil
}
