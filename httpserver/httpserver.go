package httpserver

import (
	"io"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/indigo-web/utils/strcomp"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/valyala/tcplisten"

	"github.com/lumen-web/lumen/config"
	"github.com/lumen-web/lumen/http"
	"github.com/lumen-web/lumen/http/body"
	"github.com/lumen-web/lumen/http/h1"
	"github.com/lumen-web/lumen/http/proto"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/stream"
)

// Handler produces a response for a fully parsed request head. The body is
// lazy: it has not been read off the wire until the handler pulls it.
type Handler func(*http.Request) *http.Response

// Server runs the HTTP/1.x serving loop: one goroutine per connection, one
// stream reader per connection, requests parsed and answered in order.
type Server struct {
	cfg        *config.Config
	log        zerolog.Logger
	handler    Handler
	serializer *h1.Serializer
}

func New(cfg *config.Config, log zerolog.Logger, handler Handler) *Server {
	return &Server{
		cfg:        cfg,
		log:        log,
		handler:    handler,
		serializer: h1.NewSerializer(cfg),
	}
}

// ListenAndServe binds addr and serves until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	listenCfg := tcplisten.Config{
		ReusePort:   false,
		DeferAccept: true,
		FastOpen:    true,
	}

	sock, err := listenCfg.NewListener("tcp4", addr)
	if err != nil {
		return errors.Wrap(err, "binding the listener")
	}

	s.log.Info().Str("addr", addr).Msg("listening")

	return s.Serve(sock)
}

func (s *Server) Serve(sock net.Listener) error {
	defer sock.Close()

	for {
		conn, err := sock.Accept()
		if err != nil {
			return errors.Wrap(err, "accepting a connection")
		}

		go s.serveConn(conn)
	}
}

func (s *Server) serveConn(conn net.Conn) {
	defer conn.Close()

	log := s.log.With().
		Str("conn", uuid.NewString()).
		Str("remote", conn.RemoteAddr().String()).
		Logger()

	src := stream.NewSized(conn, s.cfg.NET.ReadBufferSize, s.cfg.NET.MaxMessageSize)

	for {
		if s.cfg.NET.ReadTimeout > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(s.cfg.NET.ReadTimeout))
		}

		// the byte-limit, when configured, is per message, not per connection
		src.ResetCounter()

		request, err := h1.ParseRequest(s.cfg, src)
		switch {
		case err == io.EOF:
			// the peer closed between requests, nothing to report
			return
		case err != nil:
			s.reject(conn, log, err)
			return
		}

		request.Remote = conn.RemoteAddr()

		response := s.handler(request)
		if response == nil {
			response = http.NewResponse().Error(status.ErrInternalServerError)
		}

		alive := keepAlive(request)
		if alive && request.Proto == proto.HTTP10 {
			// an unsized body is close-delimited towards an HTTP/1.0
			// peer and takes the connection down with it
			if b := response.Reveal().Body; b != nil {
				if _, sized := b.SizeHint(); !sized {
					alive = false
				}
			}
		}
		if !alive {
			response.Header("Connection", "close")
		}

		if err = s.serializer.Write(conn, request, response.Reveal()); err != nil {
			log.Debug().Err(err).Msg("writing the response")
			return
		}

		// whatever the handler left unread must be consumed off the wire,
		// otherwise the next request line starts mid-body
		if err = discard(request.Body); err != nil {
			log.Debug().Err(err).Msg("discarding the body")
			return
		}

		if !alive {
			return
		}
	}
}

// reject renders an error response when there is something to say to the
// client at all. Transport failures get logged and the connection dropped.
func (s *Server) reject(conn net.Conn, log zerolog.Logger, err error) {
	if status.ErrorKind(err) == status.KindTransport {
		log.Debug().Err(err).Msg("transport failure")
		return
	}

	log.Debug().Err(err).Msg("rejecting a malformed request")

	response := http.NewResponse().Error(err).Header("Connection", "close")
	if err = s.serializer.Write(conn, nil, response.Reveal()); err != nil {
		log.Debug().Err(err).Msg("writing the error response")
	}
}

func keepAlive(request *http.Request) bool {
	switch value := request.Headers.Value("connection"); {
	case strcomp.EqualFold(value, "close"):
		return false
	case strcomp.EqualFold(value, "keep-alive"):
		return true
	default:
		return request.Proto.KeepAliveByDefault()
	}
}

func discard(b body.Body) error {
	for {
		if _, err := b.Next(); err != nil {
			if err == io.EOF {
				return nil
			}

			return err
		}
	}
}
