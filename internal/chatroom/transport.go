package chatroom

// MaxMessageSize - max number of bytes consumed from a member per read cycle.
// Each consumed chunk is relayed as one independent message.
const MaxMessageSize = 255

// Closer - closes the transport handle of a descriptor.
type Closer interface {
	Close(id int) error
}

// Sender - delivers bytes to a descriptor, blocking until all of p is sent or an error occurs.
type Sender interface {
	Send(id int, p []byte) error
}

// Transport - descriptor level I/O driven by the event loop.
type Transport interface {
	Closer
	Sender
	// Accept - accepts one pending connection on the listener,
	// returns new descriptor and remote address of the peer.
	Accept(listener int) (id int, remote string, err error)
	// Recv - reads at most len(p) bytes, (0, nil) means the peer has closed the stream.
	Recv(id int, p []byte) (int, error)
	// Wait - blocks until at least one of ids is readable and returns the ready ones.
	// bound is the greatest id in ids.
	Wait(ids []int, bound int) ([]int, error)
}
