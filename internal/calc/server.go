package calc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/google/uuid"

	"github.com/wtask/dian/internal/logger"
	"github.com/wtask/dian/pkg/background"
)

// ErrServerClosed - returns by Serve after Shutdown.
var ErrServerClosed = errors.New("calc.Server: closed")

// DefaultRequestSize - max number of bytes read as one request.
const DefaultRequestSize = 99

// Server - calculator server, every connection is served by its own goroutine.
type Server struct {
	scope       *background.Scope
	logger      *slog.Logger
	requestSize int
}

type serverOption func(s *Server) error

// WithLogger - attaches logger for connection events.
func WithLogger(l *slog.Logger) serverOption {
	return func(s *Server) error {
		if l == nil {
			return errors.New("calc.WithLogger: logger is nil")
		}
		s.logger = l
		return nil
	}
}

// WithRequestSize - overwrites default max request size.
func WithRequestSize(size int) serverOption {
	return func(s *Server) error {
		if size <= 0 {
			return fmt.Errorf("calc.WithRequestSize: invalid size (%d)", size)
		}
		s.requestSize = size
		return nil
	}
}

// NewServer - builds calculator server.
func NewServer(options ...serverOption) (*Server, error) {
	s := &Server{
		scope:       background.NewScope(context.Background()),
		logger:      logger.Discard(),
		requestSize: DefaultRequestSize,
	}
	for _, option := range options {
		if option == nil {
			continue
		}
		if err := option(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Serve - accepts connections until Shutdown, the listener is closed on return.
func (s *Server) Serve(listener net.Listener) error {
	if listener == nil {
		return errors.New("calc.Server.Serve: listener is nil")
	}
	stop := context.AfterFunc(s.scope.Context(), func() { listener.Close() })
	defer func() {
		stop()
		listener.Close()
	}()
	for {
		conn, err := listener.Accept()
		if err != nil {
			if s.scope.Context().Err() != nil {
				return ErrServerClosed
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			s.logger.Error("accept failed", logger.Error(err))
			continue
		}
		s.logger.Info("got connection", logger.Remote(conn.RemoteAddr().String()))
		if !s.scope.Go(func(ctx context.Context) { s.serveConn(ctx, conn) }) {
			conn.Close()
			return ErrServerClosed
		}
	}
}

// Shutdown - stops accepting, drops open connections and waits for workers at most timeout.
// Returns the time spent.
func (s *Server) Shutdown(timeout time.Duration) time.Duration {
	from := time.Now()
	s.scope.Cancel()
	if !s.scope.Wait(timeout) {
		s.logger.Warn("shutdown timeout reached, some workers may still be running")
	}
	return time.Since(from)
}

func (s *Server) serveConn(ctx context.Context, conn net.Conn) {
	remote := conn.RemoteAddr().String()
	l := s.logger.With(logger.Session(uuid.NewString()), logger.Remote(remote))
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer func() {
		stop()
		conn.Close()
	}()

	buf := make([]byte, s.requestSize)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			request := string(buf[:n])
			l.Info("message received", slog.String("request", request))
			if _, err := io.WriteString(conn, Reply(request)); err != nil {
				l.Error("send failed", logger.Error(err))
			}
		}
		switch {
		case err == nil:
			continue
		case errors.Is(err, io.EOF):
			l.Info("connection closed")
		case ctx.Err() != nil:
			l.Info("connection dropped on shutdown")
		default:
			l.Error("recv failed", logger.Error(err))
		}
		return
	}
}
