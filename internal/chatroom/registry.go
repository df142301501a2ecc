package chatroom

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/wtask/dian/internal/logger"
)

// Connection - registered descriptor with its cached remote address.
type Connection struct {
	ID     int
	Remote string
}

// Registry - set of active connections watched by the event loop, including the listener.
// Registry is not safe for concurrent use, it is owned and mutated by a single Loop.
type Registry struct {
	listener int
	ids      []int // ascending
	conns    map[int]Connection
	closer   Closer
	logger   *slog.Logger
}

// NewRegistry - builds registry which already holds the listener.
func NewRegistry(listener Connection, closer Closer, l *slog.Logger) *Registry {
	if l == nil {
		l = logger.Discard()
	}
	return &Registry{
		listener: listener.ID,
		ids:      []int{listener.ID},
		conns:    map[int]Connection{listener.ID: listener},
		closer:   closer,
		logger:   l,
	}
}

// Add - registers new connection, duplicated id is logged and ignored.
func (r *Registry) Add(c Connection) error {
	i, found := slices.BinarySearch(r.ids, c.ID)
	if found {
		r.logger.Error("duplicate connection", logger.Conn(c.ID), logger.Remote(c.Remote))
		return fmt.Errorf("%w: %d", ErrDuplicateConnection, c.ID)
	}
	r.ids = slices.Insert(r.ids, i, c.ID)
	r.conns[c.ID] = c
	return nil
}

// Remove - closes transport handle of the connection and drops it from the registry.
// The connection is dropped even if close has failed, the close error is returned then.
func (r *Registry) Remove(id int) error {
	if id == r.listener {
		return ErrListenerRemoval
	}
	i, found := slices.BinarySearch(r.ids, id)
	if !found {
		return fmt.Errorf("%w: %d", ErrUnknownConnection, id)
	}
	var err error
	if r.closer != nil {
		err = r.closer.Close(id)
	}
	r.ids = slices.Delete(r.ids, i, i+1)
	delete(r.conns, id)
	return err
}

// Members - ascending sequence of all registered ids, the listener included.
// The sequence reflects the registry state at the moment of iteration.
func (r *Registry) Members() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, id := range r.ids {
			if !yield(id) {
				return
			}
		}
	}
}

// IsListener - reports whether id is the listener.
func (r *Registry) IsListener(id int) bool {
	return id == r.listener
}

// Listener - returns listener id.
func (r *Registry) Listener() int {
	return r.listener
}

// Contains - reports whether id is registered.
func (r *Registry) Contains(id int) bool {
	_, ok := r.conns[id]
	return ok
}

// Remote - returns cached remote address of the connection.
func (r *Registry) Remote(id int) string {
	return r.conns[id].Remote
}

// Len - number of registered ids, the listener included.
func (r *Registry) Len() int {
	return len(r.ids)
}

// Bound - the greatest registered id.
func (r *Registry) Bound() int {
	return r.ids[len(r.ids)-1]
}
