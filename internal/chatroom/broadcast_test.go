package chatroom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registryOf(t *testing.T, listener int, members ...int) *Registry {
	t.Helper()
	r := NewRegistry(Connection{ID: listener}, nil, nil)
	for _, id := range members {
		require.NoError(t, r.Add(Connection{ID: id}))
	}
	return r
}

func TestFormat(t *testing.T) {
	cases := []struct {
		sender   int
		payload  string
		expected string
	}{
		{4, "hello", "member 4: hello"},
		{17, "", "member 17: "},
		{5, "line\n", "member 5: line\n"},
		{6, "100%s", "member 6: 100%s"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, string(Format(c.sender, []byte(c.payload))))
	}
}

func TestBroadcaster_ExcludesSenderAndListener(t *testing.T) {
	f := newFakeTransport()
	b := NewBroadcaster(f, nil)
	r := registryOf(t, 3, 4, 5, 6)

	d := b.Broadcast(r, 5, []byte("hey"))
	assert.Equal(t, []int{4, 6}, d.Delivered)
	assert.Empty(t, d.Failed)
	assert.Empty(t, f.sent[3])
	assert.Empty(t, f.sent[5])
	assert.Equal(t, []string{"member 5: hey"}, f.sent[4])
	assert.Equal(t, []string{"member 5: hey"}, f.sent[6])
}

func TestBroadcaster_PartialFailure(t *testing.T) {
	f := newFakeTransport()
	f.sendErr[4] = errors.New("broken pipe")
	f.sendErr[7] = errors.New("connection reset by peer")
	b := NewBroadcaster(f, nil)
	r := registryOf(t, 3, 4, 5, 6, 7, 8)

	d := b.Broadcast(r, 6, []byte("x"))
	assert.Equal(t, []int{5, 8}, d.Delivered)
	assert.Equal(t, []int{4, 7}, d.Failed)
	assert.True(t, r.Contains(4))
	assert.True(t, r.Contains(7))
}

func TestBroadcaster_RepeatedCallDeliversAgain(t *testing.T) {
	f := newFakeTransport()
	b := NewBroadcaster(f, nil)
	r := registryOf(t, 3, 4, 5)

	b.Broadcast(r, 4, []byte("dup"))
	b.Broadcast(r, 4, []byte("dup"))
	assert.Equal(t, []string{"member 4: dup", "member 4: dup"}, f.sent[5])
}

func TestBroadcaster_NoRecipients(t *testing.T) {
	f := newFakeTransport()
	b := NewBroadcaster(f, nil)
	r := registryOf(t, 3, 4)

	d := b.Broadcast(r, 4, []byte("alone"))
	assert.Empty(t, d.Delivered)
	assert.Empty(t, d.Failed)
	assert.Empty(t, f.sent)
}

// recordingSender checks that every recipient gets the very same bytes.
type recordingSender struct {
	order []int
	first []byte
	same  bool
}

func (s *recordingSender) Send(id int, p []byte) error {
	if s.first == nil {
		s.first, s.same = p, true
	} else if &s.first[0] != &p[0] {
		s.same = false
	}
	s.order = append(s.order, id)
	return nil
}

func TestBroadcaster_SharesOneMessage(t *testing.T) {
	s := &recordingSender{}
	b := NewBroadcaster(s, nil)
	r := registryOf(t, 3, 9, 4, 7, 5)

	b.Broadcast(r, 5, []byte("shared"))
	assert.Equal(t, []int{4, 7, 9}, s.order)
	assert.True(t, s.same)
}
