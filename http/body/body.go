package body

import "io"

// Body is a pull-based source of payload chunks. Next returns the
// following piece of the body, or io.EOF exactly once the body logically
// ends; implementations keep returning io.EOF afterwards rather than
// misbehaving. The returned slice stays valid only until the next call.
type Body interface {
	Next() ([]byte, error)
	// SizeHint returns the total byte count when it is known upfront (a
	// file's length, a fully-buffered slice) and ok=false when it cannot
	// be known ahead of streaming.
	SizeHint() (size int, ok bool)
}

// ReadAll drains the body into a single slice, pre-sizing the accumulator
// from the hint when one is available.
func ReadAll(b Body) ([]byte, error) {
	var out []byte
	if size, ok := b.SizeHint(); ok {
		out = make([]byte, 0, size)
	}

	for {
		chunk, err := b.Next()
		switch err {
		case nil:
			out = append(out, chunk...)
		case io.EOF:
			return out, nil
		default:
			return nil, err
		}
	}
}
