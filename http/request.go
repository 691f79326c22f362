package http

import (
	"net"

	"github.com/lumen-web/lumen/http/body"
	"github.com/lumen-web/lumen/http/cookie"
)

// Request represents HTTP request
type Request struct {
	Parts
	// Body is a dedicated entity providing access to the message body.
	Body body.Body
	// Remote holds the remote address. Please note that this is generally not a good
	// parameter to identify a user, because there might be proxies in the middle.
	Remote net.Addr
	jar    *cookie.Jar
}

func NewRequest(parts Parts, b body.Body) *Request {
	if b == nil {
		b = body.Empty()
	}

	return &Request{Parts: parts, Body: b}
}

// Cookies returns a jar with the parsed Cookie header pairs, and an error if
// the syntax is malformed. The result is cached across calls
func (r *Request) Cookies() (*cookie.Jar, error) {
	if r.jar != nil {
		return r.jar, nil
	}

	jar := cookie.NewJar()

	// in RFC 6265, 5.4 cookies are explicitly prohibited from being split into
	// list, yet in HTTP/2 it's allowed. I have concerns of some user-agents may
	// despite sending them as a list, even via HTTP/1.1
	for value := range r.Headers.GetAll("cookie") {
		if err := cookie.Parse(jar, value.String()); err != nil {
			return nil, err
		}
	}

	r.jar = jar

	return jar, nil
}
