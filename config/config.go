package config

import "time"

type (
	URI struct {
		// MaxRequestLineSize limits the length of the request line, the method,
		// path and protocol included. Please note that setting the boundary too
		// low might result in very ambiguous errors.
		MaxRequestLineSize int
	}

	Headers struct {
		// MaxNumber is the maximum number of headers allowed to be presented
		MaxNumber int
		// MaxSpace limits the amount of memory occupied by the whole headers
		// section of a request, line terminators included.
		MaxSpace int
		// Default headers are headers to be included into every response
		// implicitly, unless explicitly overridden.
		Default map[string]string
	}

	Body struct {
		// MaxSize describes the maximal size of a body that can be processed.
		// Requests advertising a bigger one are rejected upfront, and chunked
		// bodies are cut off as soon as the decoded size crosses the boundary.
		MaxSize int
		// MaxChunkSize limits a single chunk of a chunk-encoded body.
		MaxChunkSize int
	}

	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read
		// from socket
		ReadBufferSize int
		// MaxMessageSize caps the total bytes read off the wire for a single
		// message, head and encoded body included. Zero disables the cap, as
		// Body.MaxSize alone already bounds decoded bodies.
		MaxMessageSize int
		// ReadTimeout controls the maximal lifetime of IDLE connections. If no
		// data was received in this period of time, it'll be closed.
		ReadTimeout time.Duration
	}
)

// Config holds settings used across various parts of lumen, mainly restrictions
// and limitations.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to
// initialize the config manually, because most likely this will result in
// ambiguous errors.
type Config struct {
	URI     URI
	Headers Headers
	Body    Body
	NET     NET
}

// Default returns default config. Those are initially well-balanced, however
// maximal defaults are pretty permitting.
func Default() *Config {
	return &Config{
		URI: URI{
			// allow at most 16kb of request line, which is effectively pretty much
			// tolerant, considering most web-entities limit it to 4-8kb
			MaxRequestLineSize: 16 * 1024,
		},
		Headers: Headers{
			MaxNumber: 50,
			MaxSpace:  16 * 1024, // there might be extremely long cookies
			Default:   make(map[string]string),
		},
		Body: Body{
			MaxSize:      512 * 1024 * 1024, // 512 megabytes
			MaxChunkSize: 16 * 1024 * 1024,
		},
		NET: NET{
			ReadBufferSize: 4 * 1024,
			ReadTimeout:    90 * time.Second,
		},
	}
}
