package zerohex

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLength   = errors.New("zerohex: invalid string length")
	ErrInvalidHexDigit = errors.New("zerohex: invalid hex digit")
)

// Kind classifies a ParseError.
type Kind uint8

const (
	InvalidLength Kind = iota + 1
	InvalidHexDigit
)

func (k Kind) String() string {
	switch k {
	case InvalidLength:
		return "invalid length"
	case InvalidHexDigit:
		return "invalid hex digit"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseError is returned when a string is not a hex encoding of exactly N bytes.
type ParseError struct {
	Kind Kind
	Len  int // length of the input
	Want int // unprefixed digit count, 2N

	// InvalidHexDigit only
	Offset int  // offset of the first bad character within the input
	Char   byte // the bad character
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidLength:
		if e.Len == e.Want+2 {
			return fmt.Sprintf("zerohex: invalid string length %d: missing 0x prefix", e.Len)
		}
		return fmt.Sprintf("zerohex: invalid string length %d, want %d or %d", e.Len, e.Want, e.Want+2)
	case InvalidHexDigit:
		return fmt.Sprintf("zerohex: invalid hex digit %q at offset %d", e.Char, e.Offset)
	default:
		return "zerohex: " + e.Kind.String()
	}
}

// Unwrap returns ErrInvalidLength or ErrInvalidHexDigit.
func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case InvalidLength:
		return ErrInvalidLength
	case InvalidHexDigit:
		return ErrInvalidHexDigit
	default:
		return nil
	}
}
