// Package background groups goroutines under one cancellation context
// so that they can be stopped and awaited together.
package background

import (
	"context"
	"sync"
	"time"
)

// Scope - abstract concurrency scope
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewScope - concurrency scope builder, scope is cancelled together with parent.
func NewScope(parent context.Context) *Scope {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel}
}

// Context - returns scope context, it is done after Cancel.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Go - runs f in a new goroutine tracked by the scope.
// Returns false without running f if the scope is cancelled already.
func (s *Scope) Go(f func(ctx context.Context)) bool {
	s.mu.Lock()
	if s.closed || s.ctx.Err() != nil {
		s.mu.Unlock()
		return false
	}
	s.wg.Add(1)
	s.mu.Unlock()
	go func() {
		defer s.wg.Done()
		f(s.ctx)
	}()
	return true
}

// Cancel - cancels scope context, no new goroutines are accepted after.
func (s *Scope) Cancel() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cancel()
}

// Wait - waits for all tracked goroutines at most timeout (forever if timeout <= 0).
// Returns false if timeout has expired before all of them completed.
func (s *Scope) Wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	if timeout <= 0 {
		<-done
		return true
	}
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}
