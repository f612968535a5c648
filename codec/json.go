package codec

import "encoding/json"

// JSONString frames text as a JSON string. Any other JSON value fails to decode.
type JSONString struct{}

func (JSONString) Encode(s string) ([]byte, error) { return json.Marshal(s) }
func (JSONString) Decode(b []byte) (string, error) {
	var s string
	err := json.Unmarshal(b, &s)
	return s, err
}
