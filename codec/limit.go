package codec

import "fmt"

// Limit wraps another codec and rejects payloads longer than MaxDecode
// before decoding. Encode is forwarded unchanged. MaxDecode <= 0 disables
// the check.
//
// A hex value of N bytes never needs more than 2N+2 bytes of text plus
// the framing of its format, so a tight limit is easy to pick; see MaxText.
type Limit[V any] struct {
	Inner     Codec[V]
	MaxDecode int
}

// MaxText returns the longest text a value of n bytes may arrive as:
// 2n digits behind a two-character prefix.
func MaxText(n int) int { return 2*n + 2 }

func (c Limit[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }
func (c Limit[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("codec: payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
