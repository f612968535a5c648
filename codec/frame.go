package codec

// Framed stores a value as its hex text wrapped in a string primitive.
// Text turns V into text and back; Frame wraps that text.
//
//	c := codec.Framed[hextypes.Address]{
//		Text:  codec.Text[hextypes.Address, *hextypes.Address]{},
//		Frame: codec.MsgpackString{},
//	}
//
// Parse failures from Text are returned unchanged, so errors.Is reaches
// zerohex.ErrInvalidLength and zerohex.ErrInvalidHexDigit.
type Framed[V any] struct {
	Text  Codec[V]
	Frame Codec[string]
}

func (c Framed[V]) Encode(v V) ([]byte, error) {
	text, err := c.Text.Encode(v)
	if err != nil {
		return nil, err
	}
	return c.Frame.Encode(string(text))
}

func (c Framed[V]) Decode(b []byte) (V, error) {
	s, err := c.Frame.Decode(b)
	if err != nil {
		var zero V
		return zero, err
	}
	return c.Text.Decode([]byte(s))
}
