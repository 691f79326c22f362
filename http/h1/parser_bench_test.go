package h1

import (
	"strings"
	"testing"

	"github.com/lumen-web/lumen/config"
	"github.com/lumen-web/lumen/stream"
)

func BenchmarkParseRequest(b *testing.B) {
	cfg := config.Default()

	for _, bench := range []struct {
		name, raw string
	}{
		{"simple", "GET / HTTP/1.1\r\n\r\n"},
		{"five headers", "GET /path/to/resource HTTP/1.1\r\n" +
			"Host: localhost\r\n" +
			"User-Agent: lumen-bench\r\n" +
			"Accept: */*\r\n" +
			"Accept-Encoding: gzip\r\n" +
			"Connection: keep-alive\r\n\r\n"},
		{"heavy query", "GET /search?q=needle&page=2&sort=desc&filter=recent&lang=en HTTP/1.1\r\n\r\n"},
	} {
		b.Run(bench.name, func(b *testing.B) {
			reader := strings.NewReader(bench.raw)
			b.SetBytes(int64(len(bench.raw)))
			b.ResetTimer()

			for range b.N {
				reader.Reset(bench.raw)

				if _, err := ParseRequest(cfg, stream.New(reader)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
