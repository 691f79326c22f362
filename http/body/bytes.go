package body

import (
	"io"

	"github.com/indigo-web/utils/uf"
)

// buffered is the single-shot in-memory body: all bytes at once, then EOF.
type buffered struct {
	data  []byte
	spent bool
}

// Bytes wraps an in-memory slice into a Body.
func Bytes(data []byte) Body {
	return &buffered{data: data}
}

// String wraps a string into a Body without copying it.
func String(s string) Body {
	return &buffered{data: uf.S2B(s)}
}

// Empty returns a body with no content at all.
func Empty() Body {
	return &buffered{spent: true}
}

func (b *buffered) Next() ([]byte, error) {
	if b.spent {
		return nil, io.EOF
	}

	b.spent = true

	return b.data, nil
}

func (b *buffered) SizeHint() (int, bool) {
	return len(b.data), true
}
