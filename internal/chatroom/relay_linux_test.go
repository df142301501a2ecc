//go:build linux

package chatroom_test

import (
	"errors"
	"fmt"
	"net"
	"os"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wtask/dian/internal/chatroom"
	"github.com/wtask/dian/internal/sockets"
)

type relay struct {
	t        *testing.T
	listener *sockets.Listener
	loop     *chatroom.Loop
}

func newRelay(t *testing.T) *relay {
	t.Helper()
	l, err := sockets.BindAt("0", sockets.DefaultBacklog, nil)
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	loop, err := chatroom.New(sockets.Sockets{}, chatroom.Connection{ID: l.FD()})
	require.NoError(t, err)
	t.Cleanup(func() {
		for id := range loop.Registry().Members() {
			if !loop.Registry().IsListener(id) {
				sockets.Sockets{}.Close(id)
			}
		}
	})
	return &relay{t: t, listener: l, loop: loop}
}

// join - dials the relay and runs one loop cycle to accept the connection.
func (r *relay) join() (net.Conn, int) {
	r.t.Helper()
	before := slices.Collect(r.loop.Registry().Members())
	conn, err := net.DialTimeout("tcp", fmt.Sprintf("127.0.0.1:%d", r.listener.Addr().Port()), time.Second)
	require.NoError(r.t, err)
	r.t.Cleanup(func() { conn.Close() })
	require.NoError(r.t, r.loop.Step())
	for id := range r.loop.Registry().Members() {
		if !slices.Contains(before, id) {
			return conn, id
		}
	}
	r.t.Fatal("connection was not registered")
	return nil, -1
}

func expectMessage(t *testing.T, conn net.Conn, expected string) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 1024)
	received := ""
	for len(received) < len(expected) {
		n, err := conn.Read(buf)
		require.NoError(t, err)
		received += string(buf[:n])
	}
	assert.Equal(t, expected, received)
}

func expectSilence(t *testing.T, conn net.Conn) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(50*time.Millisecond)))
	buf := make([]byte, 1024)
	n, err := conn.Read(buf)
	var netErr net.Error
	if assert.True(t, errors.As(err, &netErr), "unexpected read result %q, %v", buf[:n], err) {
		assert.True(t, netErr.Timeout())
		assert.ErrorIs(t, err, os.ErrDeadlineExceeded)
	}
}

func TestRelay_Scenario(t *testing.T) {
	r := newRelay(t)
	c1, d1 := r.join()
	c2, d2 := r.join()
	c3, d3 := r.join()
	require.Less(t, d1, d2)
	require.Less(t, d2, d3)
	require.Equal(t, 4, r.loop.Registry().Len())

	_, err := c1.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, r.loop.Step())
	expected := fmt.Sprintf("member %d: hello", d1)
	expectMessage(t, c2, expected)
	expectMessage(t, c3, expected)
	expectSilence(t, c1)

	require.NoError(t, c2.Close())
	require.NoError(t, r.loop.Step())
	assert.Equal(t, 3, r.loop.Registry().Len())
	assert.False(t, r.loop.Registry().Contains(d2))

	_, err = c1.Write([]byte("ping"))
	require.NoError(t, err)
	require.NoError(t, r.loop.Step())
	expectMessage(t, c3, fmt.Sprintf("member %d: ping", d1))
	expectSilence(t, c1)
}

func TestRelay_LongMessageIsSplit(t *testing.T) {
	r := newRelay(t)
	c1, d1 := r.join()
	c2, _ := r.join()

	payload := make([]byte, chatroom.MaxMessageSize+10)
	for i := range payload {
		payload[i] = 'a' + byte(i%26)
	}
	_, err := c1.Write(payload)
	require.NoError(t, err)

	// loopback delivers the whole write at once, so two read cycles are needed
	require.NoError(t, r.loop.Step())
	expectMessage(t, c2, fmt.Sprintf("member %d: %s", d1, payload[:chatroom.MaxMessageSize]))
	require.NoError(t, r.loop.Step())
	expectMessage(t, c2, fmt.Sprintf("member %d: %s", d1, payload[chatroom.MaxMessageSize:]))
}

func TestRelay_RunFailsWhenListenerIsGone(t *testing.T) {
	r := newRelay(t)
	require.NoError(t, r.listener.Close())

	err := r.loop.Run()
	assert.ErrorIs(t, err, chatroom.ErrWaitFailed)
}
