package uri

import (
	"strings"

	"github.com/lumen-web/lumen/http/status"
)

// URI is a parsed request target: optional scheme, optional authority and
// the path with query and fragment. Immutable once constructed; nothing
// here is normalized beyond what Decode does when explicitly invoked.
type URI struct {
	scheme       Scheme
	authority    Authority
	pathQuery    PathAndQuery
	hasScheme    bool
	hasAuthority bool
}

// New assembles a URI from already-validated components. An empty scheme
// means no scheme.
func New(scheme Scheme, pathQuery PathAndQuery) URI {
	return URI{
		scheme:    scheme,
		pathQuery: pathQuery,
		hasScheme: len(scheme) > 0,
	}
}

// Parse parses an absolute or origin-form URI in a single forward scan.
func Parse(s string) (URI, error) {
	var u URI

	if len(strings.TrimSpace(s)) == 0 {
		return u, status.ErrEmptyURI
	}

	// a "://" inside the path or query (say, a URL passed as a query value)
	// is not a scheme separator
	if idx := strings.Index(s, "://"); idx != -1 && !strings.ContainsAny(s[:idx], "/?#") {
		u.scheme = SchemeOf(s[:idx])
		u.hasScheme = true
		s = s[idx+3:]
	}

	if !strings.HasPrefix(s, "/") {
		// an authority section runs up to the first path, query or
		// fragment delimiter
		end := strings.IndexAny(s, "/?#")
		if end == -1 {
			end = len(s)
		}

		authority, err := ParseAuthority(s[:end])
		if err != nil {
			return u, err
		}

		u.authority = authority
		u.hasAuthority = true
		s = s[end:]
	}

	pathQuery, err := ParsePathAndQuery(ensureLeadingSlash(s))
	if err != nil {
		return u, err
	}

	u.pathQuery = pathQuery

	return u, nil
}

// ensureLeadingSlash covers targets like "example.com?q=1" or
// "example.com#top", where everything past the authority still forms a
// valid path-query once rooted.
func ensureLeadingSlash(s string) string {
	if len(s) == 0 || s[0] == '/' {
		return s
	}

	return "/" + s
}

// Scheme returns the scheme, if present.
func (u URI) Scheme() (Scheme, bool) {
	return u.scheme, u.hasScheme
}

// Authority returns the authority, if present.
func (u URI) Authority() (Authority, bool) {
	return u.authority, u.hasAuthority
}

func (u URI) PathAndQuery() PathAndQuery {
	return u.pathQuery
}

func (u URI) String() string {
	var b strings.Builder

	if u.hasScheme {
		b.WriteString(string(u.scheme))
		b.WriteString("://")
	}

	if u.hasAuthority {
		b.WriteString(u.authority.String())
	}

	b.WriteString(u.pathQuery.String())

	return b.String()
}
