//go:build !linux

package sockets

import "log/slog"

// BindAt - returns ErrUnsupported on this platform.
func BindAt(port string, backlog int, l *slog.Logger) (*Listener, error) {
	return nil, ErrUnsupported
}

// Close - returns ErrUnsupported on this platform.
func (l *Listener) Close() error {
	return ErrUnsupported
}

func (Sockets) Accept(listener int) (int, string, error) {
	return -1, "", ErrUnsupported
}

func (Sockets) Recv(fd int, p []byte) (int, error) {
	return 0, ErrUnsupported
}

func (Sockets) Send(fd int, p []byte) error {
	return ErrUnsupported
}

func (Sockets) Close(fd int) error {
	return ErrUnsupported
}

func (Sockets) Wait(fds []int, bound int) ([]int, error) {
	return nil, ErrUnsupported
}
