package h1

import (
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/lumen-web/lumen/config"
	"github.com/lumen-web/lumen/http"
	"github.com/lumen-web/lumen/http/body"
	"github.com/lumen-web/lumen/http/method"
	"github.com/lumen-web/lumen/http/proto"
	"github.com/lumen-web/lumen/http/status"
	"github.com/valyala/bytebufferpool"
)

// the body must be worth the compressor's window to bother
const gzipThreshold = 1024

// Serializer renders responses into their wire format. The zero value is
// not usable, construct via NewSerializer.
type Serializer struct {
	cfg *config.Config
}

func NewSerializer(cfg *config.Config) *Serializer {
	return &Serializer{cfg: cfg}
}

// Write renders the response head and streams the body into w. The request
// the response answers may be nil, in which case protocol defaults are
// assumed, e.g. for a parse error that left no request behind.
func (s *Serializer) Write(w io.Writer, request *http.Request, fields *http.Fields) error {
	protocol := proto.HTTP11
	headOnly := false
	acceptsGzip := false

	if request != nil {
		if request.Proto != proto.Unknown {
			protocol = request.Proto
		}

		headOnly = request.Method == method.HEAD
		acceptsGzip = strings.Contains(request.Headers.Value("accept-encoding"), "gzip")
	}

	respBody := fields.Body
	size, sized := 0, true
	if respBody != nil {
		size, sized = respBody.SizeHint()
	}

	gzipped := acceptsGzip && respBody != nil && (!sized || size >= gzipThreshold)
	chunked := gzipped || !sized

	// HTTP/1.0 peers don't understand chunked framing: compression is
	// skipped and a body of unknown size is delimited by closing the
	// connection instead
	closeDelimited := false
	if protocol == proto.HTTP10 {
		gzipped, chunked = false, false
		closeDelimited = !sized
	}

	head := bytebufferpool.Get()
	defer bytebufferpool.Put(head)

	head.B = append(head.B, protocol.String()...)
	head.B = append(head.B, ' ')
	head.B = append(head.B, fields.Code.String()...)
	head.B = append(head.B, ' ')
	head.B = append(head.B, reason(fields)...)
	head.B = append(head.B, '\r', '\n')

	appendHeader(head, "Content-Type", fields.ContentType)

	switch {
	case closeDelimited:
		if !fields.Headers.Has("Connection") {
			appendHeader(head, "Connection", "close")
		}
	case chunked:
		appendHeader(head, "Transfer-Encoding", "chunked")
	default:
		appendHeader(head, "Content-Length", strconv.Itoa(size))
	}
	if gzipped {
		appendHeader(head, "Content-Encoding", "gzip")
	}

	for key, value := range fields.Headers.Pairs() {
		appendHeader(head, key.String(), value.String())
	}

	for key, value := range s.cfg.Headers.Default {
		if !fields.Headers.Has(key) {
			appendHeader(head, key, value)
		}
	}

	for _, c := range fields.Cookies {
		appendHeader(head, "Set-Cookie", c.String())
	}

	head.B = append(head.B, '\r', '\n')

	if _, err := w.Write(head.B); err != nil {
		return err
	}

	if headOnly || respBody == nil {
		return nil
	}

	return s.writeBody(w, respBody, gzipped, chunked)
}

func (s *Serializer) writeBody(w io.Writer, b body.Body, gzipped, chunked bool) error {
	dst := w

	var chunker *ChunkedWriter
	if chunked {
		chunker = NewChunkedWriter(w)
		dst = chunker
	}

	var compressor *gzip.Writer
	if gzipped {
		compressor = gzip.NewWriter(dst)
		dst = compressor
	}

	for {
		data, err := b.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if _, err = dst.Write(data); err != nil {
			return err
		}
	}

	if compressor != nil {
		if err := compressor.Close(); err != nil {
			return err
		}
	}
	if chunker != nil {
		return chunker.Close()
	}

	return nil
}

func appendHeader(buf *bytebufferpool.ByteBuffer, key, value string) {
	buf.B = append(buf.B, key...)
	buf.B = append(buf.B, ':', ' ')
	buf.B = append(buf.B, value...)
	buf.B = append(buf.B, '\r', '\n')
}

func reason(fields *http.Fields) status.Status {
	if len(fields.Status) > 0 {
		return fields.Status
	}

	return status.Text(fields.Code)
}
