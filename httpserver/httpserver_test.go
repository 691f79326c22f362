package httpserver

import (
	"bufio"
	"io"
	"net"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lumen-web/lumen/config"
	"github.com/lumen-web/lumen/http"
	"github.com/lumen-web/lumen/http/body"
	"github.com/lumen-web/lumen/http/mime"
)

func startConn(t *testing.T, handler Handler) net.Conn {
	t.Helper()

	client, server := net.Pipe()
	t.Cleanup(func() { _ = client.Close() })

	s := New(config.Default(), zerolog.Nop(), handler)
	go s.serveConn(server)

	return client
}

// readResponse consumes one response off the wire, returning the status
// line, the headers and the sized body.
func readResponse(t *testing.T, r *bufio.Reader) (statusLine string, header map[string]string, respBody string) {
	t.Helper()

	statusLine, err := r.ReadString('\n')
	require.NoError(t, err)
	statusLine = strings.TrimRight(statusLine, "\r\n")

	header = make(map[string]string)
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\r\n")
		if len(line) == 0 {
			break
		}

		key, value, found := strings.Cut(line, ": ")
		require.True(t, found)
		header[strings.ToLower(key)] = value
	}

	length, err := strconv.Atoi(header["content-length"])
	require.NoError(t, err)
	buf := make([]byte, length)
	_, err = io.ReadFull(r, buf)
	require.NoError(t, err)

	return statusLine, header, string(buf)
}

func TestServer(t *testing.T) {
	t.Run("single request", func(t *testing.T) {
		client := startConn(t, func(request *http.Request) *http.Response {
			return http.NewResponse().
				ContentType(mime.Plain).
				String("hello from " + request.URI.PathAndQuery().Path())
		})

		_, err := client.Write([]byte("GET /greet HTTP/1.1\r\nHost: localhost\r\n\r\n"))
		require.NoError(t, err)

		statusLine, _, respBody := readResponse(t, bufio.NewReader(client))
		require.Equal(t, "HTTP/1.1 200 OK", statusLine)
		require.Equal(t, "hello from /greet", respBody)
	})

	t.Run("keep-alive serves multiple requests", func(t *testing.T) {
		client := startConn(t, func(request *http.Request) *http.Response {
			return http.NewResponse().ContentType(mime.Plain).String(request.URI.PathAndQuery().Path())
		})
		r := bufio.NewReader(client)

		for _, path := range []string{"/first", "/second", "/third"} {
			_, err := client.Write([]byte("GET " + path + " HTTP/1.1\r\n\r\n"))
			require.NoError(t, err)

			_, _, respBody := readResponse(t, r)
			require.Equal(t, path, respBody)
		}
	})

	t.Run("unread body is discarded between requests", func(t *testing.T) {
		client := startConn(t, func(request *http.Request) *http.Response {
			// never touches the body
			return http.NewResponse().ContentType(mime.Plain).String(request.URI.PathAndQuery().Path())
		})
		r := bufio.NewReader(client)

		_, err := client.Write([]byte(
			"POST /upload HTTP/1.1\r\nContent-Length: 11\r\n\r\nignore this" +
				"GET /next HTTP/1.1\r\n\r\n"))
		require.NoError(t, err)

		_, _, first := readResponse(t, r)
		require.Equal(t, "/upload", first)
		_, _, second := readResponse(t, r)
		require.Equal(t, "/next", second)
	})

	t.Run("handler reads the body", func(t *testing.T) {
		client := startConn(t, func(request *http.Request) *http.Response {
			data, err := body.ReadAll(request.Body)
			if err != nil {
				return http.NewResponse().Error(err)
			}

			return http.NewResponse().ContentType(mime.Plain).Bytes(data)
		})

		_, err := client.Write([]byte("POST /echo HTTP/1.1\r\nContent-Length: 5\r\n\r\nHello"))
		require.NoError(t, err)

		_, _, respBody := readResponse(t, bufio.NewReader(client))
		require.Equal(t, "Hello", respBody)
	})

	t.Run("connection close is honored", func(t *testing.T) {
		client := startConn(t, func(*http.Request) *http.Response {
			return http.NewResponse()
		})
		r := bufio.NewReader(client)

		_, err := client.Write([]byte("GET / HTTP/1.1\r\nConnection: close\r\n\r\n"))
		require.NoError(t, err)

		_, header, _ := readResponse(t, r)
		require.Equal(t, "close", header["connection"])

		_, err = r.ReadByte()
		require.Equal(t, io.EOF, err)
	})

	t.Run("http/1.0 closes by default", func(t *testing.T) {
		client := startConn(t, func(*http.Request) *http.Response {
			return http.NewResponse()
		})
		r := bufio.NewReader(client)

		_, err := client.Write([]byte("GET / HTTP/1.0\r\n\r\n"))
		require.NoError(t, err)

		readResponse(t, r)
		_, err = r.ReadByte()
		require.Equal(t, io.EOF, err)
	})

	t.Run("http/1.0 keep-alive yields to a close-delimited body", func(t *testing.T) {
		client := startConn(t, func(*http.Request) *http.Response {
			return http.NewResponse().ContentType(mime.Plain).Reader(strings.NewReader("streamed"))
		})
		r := bufio.NewReader(client)

		_, err := client.Write([]byte("GET / HTTP/1.0\r\nConnection: keep-alive\r\n\r\n"))
		require.NoError(t, err)

		statusLine, err := r.ReadString('\n')
		require.NoError(t, err)
		require.Equal(t, "HTTP/1.0 200 OK\r\n", statusLine)

		sawClose := false
		for {
			line, err := r.ReadString('\n')
			require.NoError(t, err)
			if line == "\r\n" {
				break
			}

			sawClose = sawClose || strings.EqualFold(strings.TrimRight(line, "\r\n"), "connection: close")
		}
		require.True(t, sawClose)

		// the body runs until the server hangs up
		rest, err := io.ReadAll(r)
		require.NoError(t, err)
		require.Equal(t, "streamed", string(rest))
	})

	t.Run("malformed request is rejected and the connection dropped", func(t *testing.T) {
		client := startConn(t, func(*http.Request) *http.Response {
			t.Error("the handler must not see a malformed request")
			return nil
		})
		r := bufio.NewReader(client)

		_, err := client.Write([]byte("BREW / HTTP/1.1\r\n\r\n"))
		require.NoError(t, err)

		statusLine, _, _ := readResponse(t, r)
		require.Equal(t, "HTTP/1.1 501 Not Implemented", statusLine)

		_, err = r.ReadByte()
		require.Equal(t, io.EOF, err)
	})

	t.Run("message over the wire cap is rejected", func(t *testing.T) {
		cfg := config.Default()
		cfg.NET.MaxMessageSize = 64

		client, server := net.Pipe()
		t.Cleanup(func() { _ = client.Close() })
		s := New(cfg, zerolog.Nop(), func(*http.Request) *http.Response {
			t.Error("the handler must not see the request")
			return nil
		})
		go s.serveConn(server)
		r := bufio.NewReader(client)

		_, err := client.Write([]byte("GET /" + strings.Repeat("a", 256) + " HTTP/1.1\r\n\r\n"))
		require.NoError(t, err)

		statusLine, _, _ := readResponse(t, r)
		require.Equal(t, "HTTP/1.1 413 Request Entity Too Large", statusLine)

		_, err = r.ReadByte()
		require.Equal(t, io.EOF, err)
	})
}
