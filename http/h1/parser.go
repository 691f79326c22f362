package h1

import (
	"io"
	"strconv"
	"strings"

	"github.com/indigo-web/utils/strcomp"
	"github.com/lumen-web/lumen/config"
	"github.com/lumen-web/lumen/http"
	"github.com/lumen-web/lumen/http/body"
	"github.com/lumen-web/lumen/http/headers"
	"github.com/lumen-web/lumen/http/method"
	"github.com/lumen-web/lumen/http/proto"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/http/uri"
	"github.com/lumen-web/lumen/stream"
)

// ParseRequest reads the head of the next message off the stream and
// constructs a request with the body source the headers call for. The body
// is left untouched on the stream until it is actually pulled. An io.EOF is
// returned as-is when the source is exhausted before the first byte of the
// request line, which on a keep-alive connection simply means the peer is
// gone.
func ParseRequest(cfg *config.Config, src *stream.Reader) (*http.Request, error) {
	parts, err := ParseHead(cfg, src)
	if err != nil {
		return nil, err
	}

	b, err := bodyOf(cfg, src, &parts)
	if err != nil {
		return nil, err
	}

	return http.NewRequest(parts, b), nil
}

// ParseHead consumes the request line and the header section, leaving the
// stream positioned exactly at the first body byte.
func ParseHead(cfg *config.Config, src *stream.Reader) (http.Parts, error) {
	parts := http.NewParts()

	if err := parseRequestLine(cfg, src, &parts); err != nil {
		return parts, err
	}

	if err := parseHeaders(cfg, src, parts.Headers); err != nil {
		return parts, err
	}

	return parts, nil
}

func parseRequestLine(cfg *config.Config, src *stream.Reader, parts *http.Parts) error {
	raw, err := src.ReadUntilLimited('\n', cfg.URI.MaxRequestLineSize)
	switch {
	case err == io.EOF:
		return io.EOF
	case err == status.ErrReadLimitExceeded:
		return status.ErrTooLongRequestLine
	case err != nil:
		return err
	}

	line, ok := trimLine(raw)
	if !ok {
		return status.ErrUnexpectedEOF
	}

	methodStr, rest, found := strings.Cut(line, " ")
	if !found {
		return status.ErrBadRequest
	}

	target, protoStr, found := strings.Cut(rest, " ")
	if !found {
		return status.ErrBadRequest
	}

	if parts.Method = method.Parse(methodStr); parts.Method == method.Unknown {
		return status.ErrMethodNotSupported
	}

	decoded, err := uri.Decode(target)
	if err != nil {
		return err
	}

	if parts.URI, err = uri.Parse(decoded); err != nil {
		return err
	}

	if parts.Proto = proto.Parse(protoStr); parts.Proto == proto.Unknown {
		return status.ErrUnsupportedProto
	}

	return nil
}

func parseHeaders(cfg *config.Config, src *stream.Reader, dst *headers.Headers) error {
	var space int

	for {
		if space >= cfg.Headers.MaxSpace {
			return status.ErrHeadersTooLarge
		}

		raw, err := src.ReadUntilLimited('\n', cfg.Headers.MaxSpace-space)
		switch {
		case err == io.EOF:
			return status.ErrUnexpectedEOF
		case err == status.ErrReadLimitExceeded:
			return status.ErrHeadersTooLarge
		case err != nil:
			return err
		}

		space += len(raw)

		line, ok := trimLine(raw)
		if !ok {
			return status.ErrUnexpectedEOF
		}

		if len(line) == 0 {
			return nil
		}

		if dst.Len() == cfg.Headers.MaxNumber {
			return status.ErrTooManyHeaders
		}

		rawName, rawValue, found := strings.Cut(line, ":")
		if !found {
			return status.ErrBadRequest
		}

		name, err := headers.NewName(rawName)
		if err != nil {
			return err
		}

		value, err := headers.NewValue(trimOWS(rawValue))
		if err != nil {
			return err
		}

		dst.Add(name, value)
	}
}

func bodyOf(cfg *config.Config, src *stream.Reader, parts *http.Parts) (body.Body, error) {
	if encoding, found := parts.Headers.Get("transfer-encoding"); found {
		if !strcomp.EqualFold(encoding.String(), "chunked") {
			return nil, status.ErrUnknownEncoding
		}

		return NewChunkedReader(src, cfg.Body.MaxChunkSize, cfg.Body.MaxSize), nil
	}

	if raw, found := parts.Headers.Get("content-length"); found {
		length, err := strconv.Atoi(raw.String())
		if err != nil || length < 0 {
			return nil, status.ErrBadRequest
		}
		if length > cfg.Body.MaxSize {
			return nil, status.ErrBodyTooLarge
		}

		return NewFixedBody(src, length), nil
	}

	// without framing headers there is no body, no matter the method
	return body.Empty(), nil
}

// trimLine strips the line terminator, reporting false if there is none,
// which can only mean the source was exhausted mid-line. Lone LF is
// tolerated the same way a full CRLF is. The line is copied out, as the
// stream re-uses its scratch buffer on every read and the parsed values
// outlive the parse.
func trimLine(raw []byte) (line string, ok bool) {
	if len(raw) == 0 || raw[len(raw)-1] != '\n' {
		return "", false
	}

	raw = raw[:len(raw)-1]
	if len(raw) > 0 && raw[len(raw)-1] == '\r' {
		raw = raw[:len(raw)-1]
	}

	return string(raw), true
}

func trimOWS(s string) string {
	return strings.Trim(s, " \t")
}
