package sockets

import (
	"errors"
	"net/netip"
)

var (
	// ErrDescriptorLimit - accepted descriptor can't be watched by select(2), the connection is dropped.
	ErrDescriptorLimit = errors.New("sockets: descriptor exceeds select limit")

	// ErrUnsupported - returns on platforms without raw socket support.
	ErrUnsupported = errors.New("sockets: platform is not supported")
)

// DefaultBacklog - listen backlog used when none is configured.
const DefaultBacklog = 10

// Listener - bound and listening socket.
type Listener struct {
	fd   int
	addr netip.AddrPort
}

// FD - returns listening descriptor.
func (l *Listener) FD() int {
	return l.fd
}

// Addr - returns local address the listener is bound to.
func (l *Listener) Addr() netip.AddrPort {
	return l.addr
}

// Sockets - descriptor I/O over blocking sockets.
type Sockets struct{}
