//go:build linux

package sockets

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/netip"

	"golang.org/x/sys/unix"

	"github.com/wtask/dian/internal/chatroom"
	"github.com/wtask/dian/internal/logger"
)

var _ chatroom.Transport = Sockets{}

// BindAt - binds wildcard address at the port (number or service name) and starts listening.
// Dual-stack IPv6 socket is tried first, IPv4 is used when IPv6 is unavailable.
func BindAt(port string, backlog int, l *slog.Logger) (*Listener, error) {
	if l == nil {
		l = logger.Discard()
	}
	if backlog <= 0 {
		backlog = DefaultBacklog
	}
	p, err := net.LookupPort("tcp", port)
	if err != nil {
		return nil, fmt.Errorf("sockets.BindAt: %w", err)
	}
	candidates := []netip.AddrPort{
		netip.AddrPortFrom(netip.IPv6Unspecified(), uint16(p)),
		netip.AddrPortFrom(netip.IPv4Unspecified(), uint16(p)),
	}
	var errs []error
	for _, addr := range candidates {
		fd, err := listen(addr, backlog)
		if err != nil {
			l.Debug("bind attempt failed", slog.String("addr", addr.String()), logger.Error(err))
			errs = append(errs, err)
			continue
		}
		bound := addr
		if sa, err := unix.Getsockname(fd); err == nil {
			bound = addrPort(sa)
		}
		l.Info("listening", slog.String("addr", bound.String()), logger.Conn(fd))
		return &Listener{fd: fd, addr: bound}, nil
	}
	return nil, fmt.Errorf("sockets.BindAt: failed to bind: %w", errors.Join(errs...))
}

// Close - closes listening descriptor.
func (l *Listener) Close() error {
	return unix.Close(l.fd)
}

func listen(addr netip.AddrPort, backlog int) (int, error) {
	family := unix.AF_INET
	if addr.Addr().Is6() {
		family = unix.AF_INET6
	}
	fd, err := unix.Socket(family, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, unix.IPPROTO_TCP)
	if err != nil {
		return -1, fmt.Errorf("socket %s: %w", addr, err)
	}
	fail := func(op string, err error) (int, error) {
		unix.Close(fd)
		return -1, fmt.Errorf("%s %s: %w", op, addr, err)
	}
	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		return fail("setsockopt", err)
	}
	if family == unix.AF_INET6 {
		if err := unix.SetsockoptInt(fd, unix.IPPROTO_IPV6, unix.IPV6_V6ONLY, 0); err != nil {
			return fail("setsockopt", err)
		}
	}
	if fd >= unix.FD_SETSIZE {
		return fail("listen", ErrDescriptorLimit)
	}
	if err := unix.Bind(fd, sockaddr(addr)); err != nil {
		return fail("bind", err)
	}
	if err := unix.Listen(fd, backlog); err != nil {
		return fail("listen", err)
	}
	return fd, nil
}

func sockaddr(addr netip.AddrPort) unix.Sockaddr {
	if addr.Addr().Is4() {
		return &unix.SockaddrInet4{Port: int(addr.Port()), Addr: addr.Addr().As4()}
	}
	return &unix.SockaddrInet6{Port: int(addr.Port()), Addr: addr.Addr().As16()}
}

func addrPort(sa unix.Sockaddr) netip.AddrPort {
	switch sa := sa.(type) {
	case *unix.SockaddrInet4:
		return netip.AddrPortFrom(netip.AddrFrom4(sa.Addr), uint16(sa.Port))
	case *unix.SockaddrInet6:
		return netip.AddrPortFrom(netip.AddrFrom16(sa.Addr).Unmap(), uint16(sa.Port))
	default:
		return netip.AddrPort{}
	}
}

// Accept - accepts one pending connection.
func (Sockets) Accept(listener int) (int, string, error) {
	for {
		fd, sa, err := unix.Accept4(listener, unix.SOCK_CLOEXEC)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return -1, "", fmt.Errorf("accept: %w", err)
		}
		if fd >= unix.FD_SETSIZE {
			unix.Close(fd)
			return -1, "", fmt.Errorf("accept: %w (%d)", ErrDescriptorLimit, fd)
		}
		remote := ""
		if addr := addrPort(sa); addr.IsValid() {
			remote = addr.String()
		}
		return fd, remote, nil
	}
}

// Recv - performs a single read of at most len(p) bytes.
func (Sockets) Recv(fd int, p []byte) (int, error) {
	for {
		n, err := unix.Read(fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("recv: %w", err)
		}
		return n, nil
	}
}

// Send - blocks until the whole of p is written.
func (Sockets) Send(fd int, p []byte) error {
	for len(p) > 0 {
		n, err := unix.SendmsgN(fd, p, nil, nil, unix.MSG_NOSIGNAL)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return fmt.Errorf("send: %w", err)
		}
		p = p[n:]
	}
	return nil
}

// Close - closes the descriptor.
func (Sockets) Close(fd int) error {
	return unix.Close(fd)
}

// Wait - blocks in select(2) until any of fds is readable.
// Interrupted waits are restarted, they are not failures.
func (Sockets) Wait(fds []int, bound int) ([]int, error) {
	var set unix.FdSet
	for {
		set.Zero()
		for _, fd := range fds {
			if fd < 0 || fd >= unix.FD_SETSIZE {
				return nil, fmt.Errorf("select: %w (%d)", ErrDescriptorLimit, fd)
			}
			set.Set(fd)
		}
		_, err := unix.Select(bound+1, &set, nil, nil, nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("select: %w", err)
		}
		break
	}
	ready := make([]int, 0, len(fds))
	for _, fd := range fds {
		if set.IsSet(fd) {
			ready = append(ready, fd)
		}
	}
	return ready, nil
}
