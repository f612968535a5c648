package codec

import "github.com/vmihailenco/msgpack/v5"

// MsgpackString frames text as a msgpack str, the same encoding the
// generated EncodeMsgpack produces. The zero value is ready to use.
type MsgpackString struct{}

func (MsgpackString) Encode(s string) ([]byte, error) {
	return msgpack.Marshal(s)
}
func (MsgpackString) Decode(b []byte) (string, error) {
	var s string
	err := msgpack.Unmarshal(b, &s)
	return s, err
}
