package uri

import (
	"iter"
	"strings"

	"github.com/lumen-web/lumen/http/status"
)

// PathAndQuery is the path ["?" query] ["#" fragment] part of a URI.
// Immutable after construction. The query and fragment are kept as raw
// text; decomposition into key/value pairs happens on demand.
type PathAndQuery struct {
	path        string
	query       string
	fragment    string
	hasQuery    bool
	hasFragment bool
}

// NewPathAndQuery constructs the value directly, bypassing the parser.
// A path not starting with a slash here is a bug in the calling code, not
// in any input, hence the panic.
func NewPathAndQuery(path string) PathAndQuery {
	if !strings.HasPrefix(path, "/") {
		panic("uri: path must start with '/'")
	}

	return PathAndQuery{path: path}
}

// ParsePathAndQuery parses s. The fragment is detected before the query,
// so a '?' inside a fragment belongs to the fragment. An empty string
// yields the root path.
func ParsePathAndQuery(s string) (PathAndQuery, error) {
	var pq PathAndQuery

	if len(s) == 0 {
		pq.path = "/"
		return pq, nil
	}

	if s[0] != '/' {
		return pq, status.ErrInvalidPath
	}

	if idx := strings.IndexByte(s, '#'); idx != -1 {
		pq.fragment, pq.hasFragment = s[idx+1:], true
		s = s[:idx]
	}

	if idx := strings.IndexByte(s, '?'); idx != -1 {
		pq.query, pq.hasQuery = s[idx+1:], true
		s = s[:idx]
	}

	pq.path = s

	return pq, nil
}

func (p PathAndQuery) Path() string {
	return p.path
}

// Query returns the raw query string, if one was present.
func (p PathAndQuery) Query() (string, bool) {
	return p.query, p.hasQuery
}

// Fragment returns the fragment, if one was present.
func (p PathAndQuery) Fragment() (string, bool) {
	return p.fragment, p.hasFragment
}

// Segments iterates over the path segments. A trailing slash produces no
// empty trailing segment; the root path produces a single empty segment.
func (p PathAndQuery) Segments() iter.Seq[string] {
	return func(yield func(string) bool) {
		path := strings.TrimPrefix(p.path, "/")
		path = strings.TrimSuffix(path, "/")

		for {
			segment, rest, found := strings.Cut(path, "/")
			if !yield(segment) || !found {
				return
			}

			path = rest
		}
	}
}

// QueryValues iterates over the raw query pairs in arrival order. A pair
// without a literal '=' is silently skipped rather than reported: real
// query strings are malformed often enough that downstream code relies on
// the leniency.
func (p PathAndQuery) QueryValues() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if !p.hasQuery {
			return
		}

		query := p.query
		for len(query) > 0 {
			var pair string
			pair, query, _ = strings.Cut(query, "&")

			key, value, found := strings.Cut(pair, "=")
			if !found {
				continue
			}

			if !yield(key, value) {
				return
			}
		}
	}
}

// QueryMap builds the ordered multimap over the query pairs. The first
// occurrence of a key stores a single value; a repeat upgrades the entry
// to a list, preserving arrival order.
func (p PathAndQuery) QueryMap() *QueryMap {
	m := new(QueryMap)

	for key, value := range p.QueryValues() {
		m.add(key, value)
	}

	return m
}

func (p PathAndQuery) String() string {
	var b strings.Builder
	b.WriteString(p.path)

	if p.hasQuery {
		b.WriteByte('?')
		b.WriteString(p.query)
	}

	if p.hasFragment {
		b.WriteByte('#')
		b.WriteString(p.fragment)
	}

	return b.String()
}
