package http

import (
	"io"
	"os"
	"path/filepath"

	"github.com/indigo-web/utils/strcomp"
	json "github.com/json-iterator/go"
	"github.com/lumen-web/lumen/http/body"
	"github.com/lumen-web/lumen/http/cookie"
	"github.com/lumen-web/lumen/http/headers"
	"github.com/lumen-web/lumen/http/mime"
	"github.com/lumen-web/lumen/http/status"
)

const defaultFileMIME = mime.OctetStream

// Fields is the raw material a response builder accumulates. The serializer
// consumes it directly
type Fields struct {
	Code        status.Code
	Status      status.Status
	ContentType mime.MIME
	Headers     *headers.Headers
	Cookies     []cookie.Cookie
	Body        body.Body
	buffer      []byte
}

func (f *Fields) Clear() {
	f.Code = status.OK
	f.Status = ""
	f.ContentType = mime.HTML
	f.Headers.Clear()
	f.Cookies = f.Cookies[:0]
	f.Body = nil
	f.buffer = f.buffer[:0]
}

type Response struct {
	fields *Fields
}

// NewResponse returns a new instance of the Response object with status code set
// to 200 OK and text/html content-type
func NewResponse() *Response {
	return &Response{
		&Fields{
			Code:        status.OK,
			ContentType: mime.HTML,
			Headers:     headers.New(),
		},
	}
}

// Code sets a Response code and a corresponding status.
// In case of unknown code, "Unknown Status Code" will be set as a status
// code. In this case you should call Status explicitly
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// Status sets a custom status text. This text does not matter at all, and usually
// totally ignored by client, so there is actually no reasons to use this except some
// rare cases when you need to represent a Response status text somewhere
func (r *Response) Status(status status.Status) *Response {
	r.fields.Status = status
	return r
}

// ContentType sets a custom Content-Type header value.
func (r *Response) ContentType(value mime.MIME) *Response {
	r.fields.ContentType = value
	return r
}

// Header sets header values to a key. In case it already exists the value will
// be appended.
func (r *Response) Header(key string, values ...string) *Response {
	if strcomp.EqualFold(key, "content-type") {
		return r.ContentType(values[0])
	}

	for i := range values {
		r.fields.Headers.Add(headers.Name(key), headers.Value(values[i]))
	}

	return r
}

// String sets the response's body to the passed string
func (r *Response) String(text string) *Response {
	r.fields.Body = body.String(text)
	return r
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself
func (r *Response) Bytes(b []byte) *Response {
	r.fields.Body = body.Bytes(b)
	return r
}

// Stream attaches a body of a possibly unknown length. Responses with no size
// hint are later transferred chunk-encoded
func (r *Response) Stream(b body.Body) *Response {
	r.fields.Body = b
	return r
}

// Reader streams the response body from an io.Reader of unknown length
func (r *Response) Reader(reader io.Reader) *Response {
	return r.Stream(body.Reader(reader))
}

// TryFile tries to open a file for reading and returns a new Response with its
// content as the body. The Content-Type is derived from the file extension
func (r *Response) TryFile(path string) (*Response, error) {
	fd, err := os.Open(path)
	if err != nil {
		// if we can't open it, it doesn't exist
		return r, status.ErrNotFound
	}

	b, err := body.File(fd)
	if err != nil {
		return r, status.ErrInternalServerError
	}

	r.fields.ContentType = mime.Extension[filepath.Ext(path)]
	if len(r.fields.ContentType) == 0 {
		r.fields.ContentType = defaultFileMIME
	}

	return r.Stream(b), nil
}

// File opens a file for reading and streams it as the response body. If an
// error occurred, it'll be silently returned
func (r *Response) File(path string) *Response {
	resp, err := r.TryFile(path)
	if err != nil {
		return r.Error(err)
	}

	return resp
}

// Cookie adds cookies. They'll be later rendered as a set of Set-Cookie headers
func (r *Response) Cookie(cookies ...cookie.Cookie) *Response {
	r.fields.Cookies = append(r.fields.Cookies, cookies...)
	return r
}

// TryJSON receives a model (must be a pointer to the structure) and returns a new Response
// object and an error
func (r *Response) TryJSON(model any) (*Response, error) {
	r.fields.buffer = r.fields.buffer[:0]
	stream := json.ConfigDefault.BorrowStream(r)
	stream.WriteVal(model)
	err := stream.Flush()
	json.ConfigDefault.ReturnStream(stream)
	r.fields.Body = body.Bytes(r.fields.buffer)

	return r.ContentType(mime.JSON), err
}

// JSON does the same as TryJSON does, except returned error is being implicitly wrapped
// by Error
func (r *Response) JSON(model any) *Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return r.Error(err)
	}

	return resp
}

// Write implements io.Writer. It always returns n=len(b) and err=nil
func (r *Response) Write(b []byte) (n int, err error) {
	r.fields.buffer = append(r.fields.buffer, b...)
	return len(b), nil
}

// Error returns a response builder with an error set. If passed err is nil, nothing
// will happen. If an instance of status.Error is passed, the code is taken from it.
// Custom codes can be passed, however only first will be used. By default, the error
// is status.ErrInternalServerError
func (r *Response) Error(err error, code ...status.Code) *Response {
	if err == nil {
		return r
	}

	if httpErr, ok := err.(status.Error); ok {
		return r.
			Code(httpErr.Code).
			ContentType(mime.Plain).
			String(httpErr.Message)
	}

	c := status.InternalServerError
	if len(code) > 0 {
		// peek the first, ignore the rest
		c = code[0]
	}

	return r.
		Code(c).
		ContentType(mime.Plain).
		String(err.Error())
}

// Reveal returns a struct with values, filled by builder. Used mostly in internal purposes
func (r *Response) Reveal() *Fields {
	return r.fields
}

// Clear discards everything was done with Response object before
func (r *Response) Clear() *Response {
	r.fields.Clear()
	return r
}
