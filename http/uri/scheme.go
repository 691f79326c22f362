package uri

import "strings"

// Scheme is a URI scheme, stored lowercase.
type Scheme string

const (
	HTTP  Scheme = "http"
	HTTPS Scheme = "https"
)

// SchemeOf normalizes raw into a Scheme. Any token is accepted: ftp, mysql
// and friends are schemes too, they just aren't special-cased anywhere.
func SchemeOf(raw string) Scheme {
	switch {
	case strings.EqualFold(raw, string(HTTP)):
		return HTTP
	case strings.EqualFold(raw, string(HTTPS)):
		return HTTPS
	default:
		return Scheme(strings.ToLower(raw))
	}
}

func (s Scheme) String() string {
	return string(s)
}
