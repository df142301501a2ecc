// Package netutil wraps net package listening and dialing for the
// calculator server and the interactive clients.
package netutil

import (
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/wtask/dian/internal/logger"
)

// Listen - starts listening on every interface at the port (number or service name).
func Listen(port string, l *slog.Logger) (net.Listener, error) {
	if l == nil {
		l = logger.Discard()
	}
	if port == "" {
		return nil, errors.New("netutil.Listen: port is empty")
	}
	listener, err := net.Listen("tcp", net.JoinHostPort("", port))
	if err != nil {
		return nil, fmt.Errorf("netutil.Listen: %w", err)
	}
	l.Info("listening", slog.String("addr", listener.Addr().String()))
	return listener, nil
}

// Dial - connects to the first reachable address of the host.
func Dial(host, port string, l *slog.Logger) (net.Conn, error) {
	if l == nil {
		l = logger.Discard()
	}
	addrs, err := net.LookupHost(host)
	if err != nil {
		return nil, fmt.Errorf("netutil.Dial: %w", err)
	}
	var errs []error
	for _, addr := range addrs {
		conn, err := net.Dial("tcp", net.JoinHostPort(addr, port))
		if err != nil {
			l.Debug("connect attempt failed", slog.String("addr", addr), logger.Error(err))
			errs = append(errs, err)
			continue
		}
		l.Info("connected", logger.Remote(conn.RemoteAddr().String()))
		return conn, nil
	}
	return nil, fmt.Errorf("netutil.Dial: failed to connect: %w", errors.Join(errs...))
}
