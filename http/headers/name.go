package headers

import (
	"github.com/indigo-web/utils/strcomp"

	"github.com/lumen-web/lumen/http/status"
)

// Name is a header name. Two names differing only by ASCII case address the
// same entry; comparison never allocates, so the original casing is kept
// for serialization.
type Name string

// tokenChars marks the bytes allowed in a header name (RFC 9110 tokens).
var tokenChars = func() (lut [256]bool) {
	for _, c := range []byte("!#$%&'*+-.^_`|~") {
		lut[c] = true
	}

	for c := byte('0'); c <= '9'; c++ {
		lut[c] = true
	}

	for c := byte('a'); c <= 'z'; c++ {
		lut[c] = true
		lut[c-'a'+'A'] = true
	}

	return lut
}()

// NewName validates raw and returns it as a Name. Empty names and names
// containing non-token characters fail with status.ErrInvalidHeaderName.
func NewName(raw string) (Name, error) {
	if len(raw) == 0 {
		return "", status.ErrInvalidHeaderName
	}

	for i := 0; i < len(raw); i++ {
		if !tokenChars[raw[i]] {
			return "", status.ErrInvalidHeaderName
		}
	}

	return Name(raw), nil
}

// Equal reports whether two names address the same header, ignoring ASCII
// case.
func (n Name) Equal(other Name) bool {
	return strcomp.EqualFold(string(n), string(other))
}

func (n Name) String() string {
	return string(n)
}
