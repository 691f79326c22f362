package http

import (
	"github.com/lumen-web/lumen/http/headers"
	"github.com/lumen-web/lumen/http/method"
	"github.com/lumen-web/lumen/http/proto"
	"github.com/lumen-web/lumen/http/uri"
)

// Extensions is an open bag for values attached to a request by user code,
// e.g. authentication state computed by a middleware. Lookups are by plain
// string keys, so packages should prefix theirs to avoid collisions.
type Extensions map[string]any

func (e Extensions) Get(key string) (any, bool) {
	value, found := e[key]
	return value, found
}

func (e Extensions) Set(key string, value any) {
	e[key] = value
}

// Parts is the head of a request: everything the request line and the header
// section carry, before any of the body is touched.
type Parts struct {
	Method  method.Method
	URI     uri.URI
	Proto   proto.Protocol
	Headers *headers.Headers
	Ext     Extensions
}

func NewParts() Parts {
	return Parts{
		Method:  method.Unknown,
		Proto:   proto.HTTP11,
		Headers: headers.New(),
		Ext:     make(Extensions),
	}
}
