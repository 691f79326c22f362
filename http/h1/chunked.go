package h1

import (
	"io"
	"strconv"

	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/internal/hexconv"
	"github.com/lumen-web/lumen/stream"
	"github.com/valyala/bytebufferpool"
)

// a 64-bit length in hex plus the CRLF
const maxSizeLineLen = 18

// ChunkedReader decodes a chunk-encoded message body pulled from the stream,
// one chunk per call. The trailing CRLF of a chunk is consumed lazily on the
// next call, so the returned slice stays valid exactly as long as the body
// contract promises. Errors are sticky: once a read fails, every following
// call reports the same failure.
type ChunkedReader struct {
	src          *stream.Reader
	maxChunkSize int
	maxBodySize  int
	total        int
	err          error
	pendingCRLF  bool
	done         bool
}

func NewChunkedReader(src *stream.Reader, maxChunkSize, maxBodySize int) *ChunkedReader {
	return &ChunkedReader{src: src, maxChunkSize: maxChunkSize, maxBodySize: maxBodySize}
}

func (c *ChunkedReader) Next() ([]byte, error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.done {
		return nil, io.EOF
	}

	data, err := c.next()
	if err != nil && err != io.EOF {
		c.err = err
	}

	return data, err
}

func (c *ChunkedReader) next() ([]byte, error) {
	if c.pendingCRLF {
		c.pendingCRLF = false

		if err := c.expectCRLF(); err != nil {
			return nil, err
		}
	}

	size, err := c.readSize()
	if err != nil {
		return nil, err
	}

	if size == 0 {
		if err = c.expectCRLF(); err != nil {
			return nil, err
		}

		c.done = true

		return nil, io.EOF
	}

	// per-chunk size is capped in readSize; the decoded total is capped
	// here, so many small chunks can't sneak past the body limit
	c.total += size
	if c.total > c.maxBodySize {
		return nil, status.ErrBodyTooLarge
	}

	data, err := c.src.ReadExact(size)
	switch {
	case err == io.EOF || err == nil && len(data) < size:
		return nil, status.ErrUnexpectedEOF
	case err != nil:
		return nil, err
	}

	c.pendingCRLF = true

	return data, nil
}

func (c *ChunkedReader) SizeHint() (int, bool) {
	return 0, false
}

func (c *ChunkedReader) readSize() (int, error) {
	line, err := c.src.ReadUntilLimited('\n', maxSizeLineLen)
	switch {
	case err == io.EOF:
		return 0, status.ErrUnexpectedEOF
	case err == status.ErrReadLimitExceeded:
		return 0, status.ErrBadChunk
	case err != nil:
		return 0, err
	}

	if line[len(line)-1] != '\n' {
		// the source ran out mid-line
		return 0, status.ErrUnexpectedEOF
	}
	if len(line) < 3 || line[len(line)-2] != '\r' {
		return 0, status.ErrBadChunk
	}

	var size int
	for _, digit := range line[:len(line)-2] {
		half := hexconv.Halfbyte[digit]
		if half == hexconv.Invalid {
			return 0, status.ErrBadChunk
		}

		size = size<<4 | int(half)
		if size > c.maxChunkSize {
			return 0, status.ErrBodyTooLarge
		}
	}

	return size, nil
}

func (c *ChunkedReader) expectCRLF() error {
	term, err := c.src.ReadExact(2)
	switch {
	case err == io.EOF || err == nil && len(term) < 2:
		return status.ErrUnexpectedEOF
	case err != nil:
		return err
	}

	if term[0] != '\r' || term[1] != '\n' {
		return status.ErrBadChunk
	}

	return nil
}

// ChunkedWriter frames everything written to it, one chunk per Write call.
// Close emits the terminating zero-length chunk; any Write afterwards fails.
type ChunkedWriter struct {
	dst    io.Writer
	closed bool
}

func NewChunkedWriter(dst io.Writer) *ChunkedWriter {
	return &ChunkedWriter{dst: dst}
}

func (c *ChunkedWriter) Write(p []byte) (n int, err error) {
	if c.closed {
		return 0, io.ErrClosedPipe
	}

	// a zero-length chunk would terminate the body
	if len(p) == 0 {
		return 0, nil
	}

	frame := bytebufferpool.Get()
	frame.B = strconv.AppendUint(frame.B, uint64(len(p)), 16)
	frame.B = append(frame.B, '\r', '\n')
	frame.B = append(frame.B, p...)
	frame.B = append(frame.B, '\r', '\n')
	_, err = c.dst.Write(frame.B)
	bytebufferpool.Put(frame)

	if err != nil {
		return 0, err
	}

	return len(p), nil
}

func (c *ChunkedWriter) Close() error {
	if c.closed {
		return nil
	}

	c.closed = true
	_, err := io.WriteString(c.dst, "0\r\n\r\n")

	return err
}
