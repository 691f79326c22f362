package uri

import (
	"strings"

	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/internal/hexconv"
)

const upperhex = "0123456789ABCDEF"

// unreserved marks the bytes that survive Encode untouched (RFC 3986
// unreserved characters).
var unreserved = func() (lut [256]bool) {
	for c := byte('a'); c <= 'z'; c++ {
		lut[c] = true
		lut[c-'a'+'A'] = true
	}

	for c := byte('0'); c <= '9'; c++ {
		lut[c] = true
	}

	lut['-'], lut['_'], lut['.'], lut['~'] = true, true, true, true

	return lut
}()

// Encode percent-encodes every byte outside the unreserved set.
func Encode(s string) string {
	var escapes int
	for i := 0; i < len(s); i++ {
		if !unreserved[s[i]] {
			escapes++
		}
	}

	if escapes == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*escapes)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved[c] {
			b.WriteByte(c)
			continue
		}

		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}

	return b.String()
}

// Decode translates %XX escapes back into raw bytes. A truncated or
// non-hex escape fails with status.ErrURIDecoding.
func Decode(s string) (string, error) {
	idx := strings.IndexByte(s, '%')
	if idx == -1 {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))

	for idx != -1 {
		if idx+2 >= len(s) {
			return "", status.ErrURIDecoding
		}

		hi, lo := hexconv.Halfbyte[s[idx+1]], hexconv.Halfbyte[s[idx+2]]
		if hi == hexconv.Invalid || lo == hexconv.Invalid {
			return "", status.ErrURIDecoding
		}

		b.WriteString(s[:idx])
		b.WriteByte(hi<<4 | lo)
		s = s[idx+3:]
		idx = strings.IndexByte(s, '%')
	}

	b.WriteString(s)

	return b.String(), nil
}
