// Package sockets binds the relay listening socket and performs descriptor
// level I/O for the relay event loop: accept, receive, send, close and the
// blocking readiness wait built on select(2).
//
// Descriptors are plain blocking sockets owned by the caller; nothing here
// is registered with the Go runtime network poller.
package sockets
