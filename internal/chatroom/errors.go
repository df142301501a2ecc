package chatroom

import "errors"

var (
	// ErrDuplicateConnection - returns when the connection id is registered already.
	ErrDuplicateConnection = errors.New("chatroom.Registry: connection is registered already")

	// ErrUnknownConnection - returns when the connection id is not registered.
	ErrUnknownConnection = errors.New("chatroom.Registry: connection is not registered")

	// ErrListenerRemoval - returns on attempt to remove the listener from the registry.
	ErrListenerRemoval = errors.New("chatroom.Registry: listener can't be removed")

	// ErrWaitFailed - the readiness wait has failed, the loop can't continue.
	ErrWaitFailed = errors.New("chatroom.Loop: readiness wait failed")
)
