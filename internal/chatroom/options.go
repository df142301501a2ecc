package chatroom

import (
	"errors"
	"log/slog"
)

type loopOption func(l *Loop) error

func setup(l *Loop, options ...loopOption) error {
	for _, option := range options {
		if option == nil {
			continue
		}
		if err := option(l); err != nil {
			return err
		}
	}
	return nil
}

// WithLogger - attaches logger for connection events and I/O errors.
func WithLogger(logger *slog.Logger) loopOption {
	return func(l *Loop) error {
		if logger == nil {
			return errors.New("chatroom.WithLogger: logger is nil")
		}
		l.logger = logger
		return nil
	}
}

// WithBroadcaster - replaces default broadcaster built over the loop transport.
func WithBroadcaster(b *Broadcaster) loopOption {
	return func(l *Loop) error {
		if b == nil {
			return errors.New("chatroom.WithBroadcaster: broadcaster is nil")
		}
		l.broadcaster = b
		return nil
	}
}
