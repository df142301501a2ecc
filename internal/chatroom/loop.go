package chatroom

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/wtask/dian/internal/logger"
)

// State - event loop state.
type State int

const (
	// Idle - the loop is blocked in the readiness wait (or is about to be).
	Idle State = iota
	// Dispatching - the loop is processing descriptors reported ready.
	Dispatching
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dispatching:
		return "dispatching"
	default:
		return "unknown loop state"
	}
}

// Loop - single-threaded relay event loop.
type Loop struct {
	transport   Transport
	registry    *Registry
	broadcaster *Broadcaster
	logger      *slog.Logger
	state       State
}

// New - builds event loop over the transport, listener must be already listening.
func New(t Transport, listener Connection, options ...loopOption) (*Loop, error) {
	if t == nil {
		return nil, errors.New("chatroom.New: transport is nil")
	}
	if listener.ID < 0 {
		return nil, fmt.Errorf("chatroom.New: invalid listener descriptor (%d)", listener.ID)
	}
	l := &Loop{
		transport: t,
		logger:    logger.Discard(),
	}
	if err := setup(l, options...); err != nil {
		return nil, err
	}
	l.registry = NewRegistry(listener, t, l.logger)
	if l.broadcaster == nil {
		l.broadcaster = NewBroadcaster(t, l.logger)
	}
	return l, nil
}

// Registry - returns registry owned by the loop.
// It must not be touched while the loop is running in another goroutine.
func (l *Loop) Registry() *Registry {
	return l.registry
}

// State - returns current loop state.
func (l *Loop) State() State {
	return l.state
}

// Run - runs the loop until the readiness wait fails.
// The returned error is always fatal for the relay.
func (l *Loop) Run() error {
	for {
		if err := l.Step(); err != nil {
			return err
		}
	}
}

// Step - performs one readiness wait and dispatches every descriptor reported ready.
func (l *Loop) Step() error {
	l.state = Idle
	ids := slices.Collect(l.registry.Members())
	ready, err := l.transport.Wait(ids, l.registry.Bound())
	if err != nil {
		l.logger.Error("readiness wait failed", logger.Error(err))
		return fmt.Errorf("%w: %w", ErrWaitFailed, err)
	}

	l.state = Dispatching
	slices.Sort(ready)
	for _, id := range ready {
		if !l.registry.Contains(id) {
			continue
		}
		if l.registry.IsListener(id) {
			l.accept()
			continue
		}
		l.consume(id)
	}
	l.state = Idle
	return nil
}

// accept - accepts exactly one pending connection per listener notification.
func (l *Loop) accept() {
	id, remote, err := l.transport.Accept(l.registry.Listener())
	if err != nil {
		l.logger.Error("accept failed", logger.Error(err))
		return
	}
	if err := l.registry.Add(Connection{ID: id, Remote: remote}); err != nil {
		return
	}
	l.logger.Info("new connection", logger.Remote(remote), logger.Conn(id), slog.Int("members", l.registry.Len()-1))
}

// consume - reads one chunk from the member and relays it.
// The member is removed only when the peer has closed the stream,
// a read error leaves it registered.
func (l *Loop) consume(id int) {
	var buf [MaxMessageSize]byte
	n, err := l.transport.Recv(id, buf[:])
	switch {
	case err != nil:
		l.logger.Error("recv failed", logger.Conn(id), logger.Remote(l.registry.Remote(id)), logger.Error(err))
	case n == 0:
		l.logger.Info("hung up", logger.Conn(id), logger.Remote(l.registry.Remote(id)))
		if err := l.registry.Remove(id); err != nil {
			l.logger.Error("close failed", logger.Conn(id), logger.Error(err))
		}
	default:
		payload := buf[:n]
		l.logger.Info("data from client", logger.Conn(id), logger.Size(n), slog.String("data", string(payload)))
		l.broadcaster.Broadcast(l.registry, id, payload)
	}
}
