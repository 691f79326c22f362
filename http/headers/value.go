package headers

import "github.com/lumen-web/lumen/http/status"

// Value is a header value, restricted to visible ASCII, space and
// horizontal tab.
type Value string

// NewValue validates raw and returns it as a Value. Bytes outside the
// allowed range fail with status.ErrInvalidHeaderValue; nothing is ever
// silently stripped.
func NewValue(raw string) (Value, error) {
	for i := 0; i < len(raw); i++ {
		if !legalValueByte(raw[i]) {
			return "", status.ErrInvalidHeaderValue
		}
	}

	return Value(raw), nil
}

func legalValueByte(c byte) bool {
	return (c >= 0x20 && c <= 0x7e) || c == '\t'
}

func (v Value) String() string {
	return string(v)
}
