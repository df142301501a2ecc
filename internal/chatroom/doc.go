// Package chatroom implements the relay server core: a registry of live
// connections, a single-threaded event loop driven by one blocking
// readiness wait, and the broadcast engine fanning every received chunk
// out to the other members.
//
// The loop never runs more than one goroutine. Everything dispatched after
// a wake-up runs to completion before the next wait, including the chain of
// sends in a broadcast: a recipient whose receive buffer is full blocks the
// whole loop until its send completes or fails.
package chatroom
