package zerohex

import "encoding/hex"

const prefix = "0x"

// Decode parses s into dst, where N = len(dst). s must be 2N hex digits, or
// "0x"/"0X" followed by 2N hex digits. Upper and lower case digits are both
// accepted. On error dst is left unchanged.
func Decode(dst []byte, s string) error { return decode(dst, s) }

// DecodeBytes is Decode for a byte slice input.
func DecodeBytes(dst, text []byte) error { return decode(dst, text) }

func decode[S ~string | ~[]byte](dst []byte, s S) error {
	n := len(dst)
	off := 0
	switch len(s) {
	case 2 * n:
	case 2*n + 2:
		// only this branch looks at the prefix
		if s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
			return &ParseError{Kind: InvalidLength, Len: len(s), Want: 2 * n}
		}
		off = 2
	default:
		return &ParseError{Kind: InvalidLength, Len: len(s), Want: 2 * n}
	}

	// validate the whole window before writing so dst is never half-filled
	for i := off; i < len(s); i++ {
		if _, ok := fromHexChar(s[i]); !ok {
			return &ParseError{Kind: InvalidHexDigit, Len: len(s), Want: 2 * n, Offset: i, Char: s[i]}
		}
	}
	for i := range dst {
		hi, _ := fromHexChar(s[off+2*i])
		lo, _ := fromHexChar(s[off+2*i+1])
		dst[i] = hi<<4 | lo
	}
	return nil
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Format returns the canonical form of src: "0x" followed by two lowercase
// hex digits per byte.
func Format(src []byte) string {
	return string(AppendFormat(make([]byte, 0, FormattedLen(len(src))), src))
}

// AppendFormat appends the canonical form of src to dst.
func AppendFormat(dst, src []byte) []byte {
	dst = append(dst, prefix...)
	return hex.AppendEncode(dst, src)
}

// FormattedLen is the length of the canonical form of n bytes.
func FormattedLen(n int) int { return 2*n + len(prefix) }

// Debug renders src as name(0x...).
func Debug(name string, src []byte) string {
	b := make([]byte, 0, len(name)+FormattedLen(len(src))+2)
	b = append(b, name...)
	b = append(b, '(')
	b = AppendFormat(b, src)
	b = append(b, ')')
	return string(b)
}

// UnmarshalText decodes text into dst. It backs the UnmarshalText method of
// generated types, which encoding/json, YAML and TOML encoders use for string values.
func UnmarshalText(dst, text []byte) error { return decode(dst, text) }
