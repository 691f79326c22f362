package body

import "io"

// readChunkSize is how much a generic reader-backed body pulls per call.
const readChunkSize = 4096

type readerBody struct {
	src io.Reader
	buf []byte
	eof bool
}

// Reader streams an arbitrary io.Reader as a Body in fixed-size pieces.
// The size cannot be known ahead, so there is no hint.
func Reader(src io.Reader) Body {
	return &readerBody{
		src: src,
		buf: make([]byte, readChunkSize),
	}
}

func (r *readerBody) Next() ([]byte, error) {
	if r.eof {
		return nil, io.EOF
	}

	for {
		n, err := r.src.Read(r.buf)
		if n > 0 {
			if err == io.EOF {
				r.eof = true
			} else if err != nil {
				return nil, err
			}

			return r.buf[:n], nil
		}

		switch err {
		case nil:
			// zero-byte read, try again
		case io.EOF:
			r.eof = true
			return nil, io.EOF
		default:
			return nil, err
		}
	}
}

func (r *readerBody) SizeHint() (int, bool) {
	return 0, false
}
