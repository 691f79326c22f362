package h1

import (
	"io"

	"github.com/lumen-web/lumen/http/body"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/stream"
)

const fixedReadChunk = 4096

// fixedBody streams exactly length bytes off the connection, as advertised
// by the Content-Length header.
type fixedBody struct {
	src       *stream.Reader
	remaining int
}

func NewFixedBody(src *stream.Reader, length int) body.Body {
	return &fixedBody{src: src, remaining: length}
}

func (f *fixedBody) Next() ([]byte, error) {
	if f.remaining == 0 {
		return nil, io.EOF
	}

	n := f.remaining
	if n > fixedReadChunk {
		n = fixedReadChunk
	}

	data, err := f.src.ReadExact(n)
	switch {
	case err == io.EOF || err == nil && len(data) < n:
		return nil, status.ErrUnexpectedEOF
	case err != nil:
		return nil, err
	}

	f.remaining -= n

	return data, nil
}

func (f *fixedBody) SizeHint() (int, bool) {
	return f.remaining, true
}
