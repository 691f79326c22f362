package stream

import (
	"bytes"
	"io"

	"github.com/lumen-web/lumen/http/status"
)

// DefaultBufferSize is the size of a single read from the underlying source.
const DefaultBufferSize = 4096

// Reader is a buffered reader over an arbitrary byte source, providing the
// primitives the protocol layer is built on: peeking, reading until a
// delimiter (possibly spanning multiple fills), and bounded reads. The
// reader exclusively owns its buffer and the borrowed source for the
// lifetime of one message parse; nobody else may read from the source
// concurrently.
//
// Slices returned by any method stay valid only until the next call on the
// same reader. Callers keeping data around must copy it out.
type Reader struct {
	src   io.Reader
	buf   []byte
	pos   int
	chunk []byte
	out   []byte
	total int
	limit int
	eof   bool
}

func New(src io.Reader) *Reader {
	return NewSized(src, DefaultBufferSize, 0)
}

// NewLimited returns a reader that fails with status.ErrReaderBytesLimit
// once more than limit bytes in total have been pulled from the source,
// regardless of which operation pulled them.
func NewLimited(src io.Reader, limit int) *Reader {
	return NewSized(src, DefaultBufferSize, limit)
}

func NewSized(src io.Reader, bufferSize, limit int) *Reader {
	return &Reader{
		src:   src,
		chunk: make([]byte, bufferSize),
		limit: limit,
	}
}

// TotalRead returns the number of bytes pulled from the source so far.
func (r *Reader) TotalRead() int {
	return r.total
}

// ResetCounter zeroes the total-bytes counter. Used between messages on a
// kept-alive connection, so that the limit applies per message rather than
// per connection.
func (r *Reader) ResetCounter() {
	r.total = 0
}

// Buffered returns the number of bytes sitting in the buffer, already
// pulled from the source but not yet consumed.
func (r *Reader) Buffered() int {
	return len(r.window())
}

// Peek returns up to n buffered bytes without consuming them, filling the
// buffer from the source as needed. Fewer than n bytes are returned only
// if the source is exhausted first.
func (r *Reader) Peek(n int) ([]byte, error) {
	for len(r.window()) < n {
		if err := r.fill(); err != nil {
			if err == io.EOF {
				break
			}

			return nil, err
		}
	}

	w := r.window()
	if len(w) > n {
		w = w[:n]
	}

	return w, nil
}

// ReadUntil consumes and returns all bytes up to and including the first
// occurrence of delim. If the source is exhausted before the delimiter is
// seen, all remaining bytes are returned without an error; io.EOF is
// returned only when there were no bytes left at all.
func (r *Reader) ReadUntil(delim byte) ([]byte, error) {
	return r.readUntil(delim, 0)
}

// ReadUntilLimited is ReadUntil with a cap: if more than limit bytes would
// be consumed before the delimiter is found, it fails with
// status.ErrReadLimitExceeded. The cap is checked incrementally, so memory
// use stays bounded against input that never produces the delimiter.
func (r *Reader) ReadUntilLimited(delim byte, limit int) ([]byte, error) {
	return r.readUntil(delim, limit)
}

func (r *Reader) readUntil(delim byte, limit int) ([]byte, error) {
	r.out = r.out[:0]

	for {
		if i := bytes.IndexByte(r.window(), delim); i != -1 {
			if limit > 0 && len(r.out)+i+1 > limit {
				return nil, status.ErrReadLimitExceeded
			}

			r.out = append(r.out, r.window()[:i+1]...)
			r.discard(i + 1)

			return r.out, nil
		}

		r.out = append(r.out, r.window()...)
		r.discard(len(r.window()))

		if limit > 0 && len(r.out) > limit {
			return nil, status.ErrReadLimitExceeded
		}

		if err := r.fill(); err != nil {
			if err == io.EOF {
				if len(r.out) == 0 {
					return nil, io.EOF
				}

				return r.out, nil
			}

			return nil, err
		}
	}
}

// ReadUntilSequence consumes bytes until the multi-byte delimiter seq is
// seen, returning whether it was found and everything consumed, delimiter
// included. The delimiter is matched correctly even when its bytes straddle
// two fills: a suffix of the buffer that could begin the delimiter is held
// back until enough bytes arrive to confirm or refute the match. If the
// source is exhausted without a match, all bytes are returned with
// found=false.
func (r *Reader) ReadUntilSequence(seq []byte) (found bool, data []byte, err error) {
	r.out = r.out[:0]

	if len(seq) == 0 {
		return true, nil, nil
	}

	for {
		if i := bytes.Index(r.window(), seq); i != -1 {
			end := i + len(seq)
			r.out = append(r.out, r.window()[:end]...)
			r.discard(end)

			return true, r.out, nil
		}

		// everything before a potential partial match of seq at the very
		// end of the buffer is safe to consume
		keep := partialSuffix(r.window(), seq)
		safe := len(r.window()) - keep
		r.out = append(r.out, r.window()[:safe]...)
		r.discard(safe)

		if err = r.fill(); err != nil {
			if err == io.EOF {
				r.out = append(r.out, r.window()...)
				r.discard(len(r.window()))

				return false, r.out, nil
			}

			return false, nil, err
		}
	}
}

// ReadExact consumes and returns exactly n bytes, or fewer without an error
// if the source is exhausted first. The caller must compare the returned
// length against n.
func (r *Reader) ReadExact(n int) ([]byte, error) {
	r.out = r.out[:0]

	for len(r.out) < n {
		w := r.window()
		if take := n - len(r.out); len(w) > take {
			w = w[:take]
		}

		r.out = append(r.out, w...)
		r.discard(len(w))

		if len(r.out) == n {
			break
		}

		if err := r.fill(); err != nil {
			if err == io.EOF {
				break
			}

			return nil, err
		}
	}

	return r.out, nil
}

// ReadToEnd drains the source entirely.
func (r *Reader) ReadToEnd() ([]byte, error) {
	r.out = r.out[:0]

	for {
		r.out = append(r.out, r.window()...)
		r.discard(len(r.window()))

		if err := r.fill(); err != nil {
			if err == io.EOF {
				return r.out, nil
			}

			return nil, err
		}
	}
}

func (r *Reader) window() []byte {
	return r.buf[r.pos:]
}

func (r *Reader) discard(n int) {
	r.pos += n
	if r.pos == len(r.buf) {
		r.buf = r.buf[:0]
		r.pos = 0
	}
}

// fill pulls the next portion of bytes from the source into the buffer.
// I/O errors are surfaced unchanged; crossing the total-bytes limit fails
// with status.ErrReaderBytesLimit, which is a policy error, not an I/O one.
func (r *Reader) fill() error {
	if r.eof {
		return io.EOF
	}

	if r.pos > 0 && r.pos == len(r.buf) {
		r.buf = r.buf[:0]
		r.pos = 0
	}

	n, err := r.src.Read(r.chunk)
	if n > 0 {
		r.total += n
		if r.limit > 0 && r.total > r.limit {
			return status.ErrReaderBytesLimit
		}

		r.buf = append(r.buf, r.chunk[:n]...)
	}

	switch err {
	case nil:
		if n == 0 {
			// a zero-byte read without an error; try again on next call
			return nil
		}

		return nil
	case io.EOF:
		r.eof = true
		if n > 0 {
			return nil
		}

		return io.EOF
	default:
		return err
	}
}

// partialSuffix returns the length of the longest suffix of window that is
// a proper prefix of seq, i.e. the number of trailing bytes that may still
// turn into a full delimiter match once more data arrives.
func partialSuffix(window, seq []byte) int {
	max := len(seq) - 1
	if max > len(window) {
		max = len(window)
	}

	for k := max; k > 0; k-- {
		if bytes.HasSuffix(window, seq[:k]) {
			return k
		}
	}

	return 0
}
