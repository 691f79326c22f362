package status

// Kind classifies an error by what the dispatch layer should do about it.
// Parse errors are deterministic consequences of malformed input and map to
// a 400-class response. Limit errors are policy decisions protecting the
// server, so they deserve a more specific code (413, 414, 431). Transport
// errors are passed through from the underlying byte source untouched.
type Kind uint8

const (
	KindParse Kind = iota + 1
	KindLimit
	KindTransport
)

type Error struct {
	Code    Code
	Kind    Kind
	Message string
}

func New(code Code, kind Kind, message string) Error {
	return Error{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

func (e Error) Error() string {
	return e.Message
}

// ErrorKind extracts the Kind of an error, returning KindTransport for
// anything that isn't a status.Error, as such errors can only originate
// from the byte source.
func ErrorKind(err error) Kind {
	if httpErr, ok := err.(Error); ok {
		return httpErr.Kind
	}

	return KindTransport
}

// CodeOf returns the response code an error maps to. Unrecognized errors
// indicate transport failure and don't get a response at all, so the
// fallback is an internal error code.
func CodeOf(err error) Code {
	if httpErr, ok := err.(Error); ok {
		return httpErr.Code
	}

	return InternalServerError
}

var (
	ErrBadRequest         = New(BadRequest, KindParse, "bad request")
	ErrMethodNotAllowed   = New(MethodNotAllowed, KindParse, "method not allowed")
	ErrMethodNotSupported = New(NotImplemented, KindParse, "request method is not supported")
	ErrUnsupportedProto   = New(HTTPVersionNotSupported, KindParse, "HTTP version not supported")
	ErrBadChunk           = New(BadRequest, KindParse, "malformed chunk-encoded data")
	ErrUnknownEncoding    = New(NotImplemented, KindParse, "unknown transfer encoding")
	ErrUnexpectedEOF      = New(BadRequest, KindParse, "source exhausted before the message was complete")

	ErrEmptyURI           = New(BadRequest, KindParse, "empty URI")
	ErrInvalidHost        = New(BadRequest, KindParse, "invalid URI host")
	ErrEmptyHost          = New(BadRequest, KindParse, "empty host in URI")
	ErrInvalidPath        = New(BadRequest, KindParse, "invalid URI path")
	ErrInvalidPort        = New(BadRequest, KindParse, "invalid port in URI")
	ErrURIDecoding        = New(BadRequest, KindParse, "invalid percent-encoded sequence")
	ErrInvalidHeaderName  = New(BadRequest, KindParse, "invalid header name")
	ErrInvalidHeaderValue = New(BadRequest, KindParse, "invalid header value")

	ErrReaderBytesLimit   = New(RequestEntityTooLarge, KindLimit, "reader bytes limit reached")
	ErrReadLimitExceeded  = New(RequestEntityTooLarge, KindLimit, "read limit reached")
	ErrTooLongRequestLine = New(RequestURITooLong, KindLimit, "request line is too long")
	ErrHeadersTooLarge    = New(RequestHeaderFieldsTooLarge, KindLimit, "too large headers section")
	ErrTooManyHeaders     = New(RequestHeaderFieldsTooLarge, KindLimit, "too many headers")
	ErrBodyTooLarge       = New(RequestEntityTooLarge, KindLimit, "request body is too large")

	ErrNotFound            = New(NotFound, KindParse, "not found")
	ErrInternalServerError = New(InternalServerError, KindParse, "internal server error")
	ErrCloseConnection     = New(BadRequest, KindTransport, "actively closing the connection")
)
