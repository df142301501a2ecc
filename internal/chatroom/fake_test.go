package chatroom

import (
	"errors"
	"fmt"
)

var errNoScript = errors.New("fake: no more scripted wake-ups")

type acceptResult struct {
	id     int
	remote string
	err    error
}

type stream struct {
	data   []byte
	closed bool
}

// fakeTransport - scripted transport: every Wait pops one ready set.
type fakeTransport struct {
	wakeups [][]int
	waitErr error
	waits   []waitCall

	pending []acceptResult
	streams map[int]*stream
	recvErr map[int]error
	sendErr map[int]error
	sent    map[int][]string
	closed  []int
}

type waitCall struct {
	ids   []int
	bound int
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		streams: map[int]*stream{},
		recvErr: map[int]error{},
		sendErr: map[int]error{},
		sent:    map[int][]string{},
	}
}

func (f *fakeTransport) ready(ids ...int) {
	f.wakeups = append(f.wakeups, ids)
}

func (f *fakeTransport) connect(id int) {
	f.pending = append(f.pending, acceptResult{id: id, remote: fmt.Sprintf("127.0.0.1:%d", 40000+id)})
	f.streams[id] = &stream{}
}

func (f *fakeTransport) failAccept(err error) {
	f.pending = append(f.pending, acceptResult{id: -1, err: err})
}

func (f *fakeTransport) write(id int, data string) {
	f.streams[id].data = append(f.streams[id].data, data...)
}

func (f *fakeTransport) hangup(id int) {
	f.streams[id].closed = true
}

func (f *fakeTransport) Accept(listener int) (int, string, error) {
	if len(f.pending) == 0 {
		return -1, "", errors.New("fake: nothing to accept")
	}
	r := f.pending[0]
	f.pending = f.pending[1:]
	return r.id, r.remote, r.err
}

func (f *fakeTransport) Recv(id int, p []byte) (int, error) {
	if err := f.recvErr[id]; err != nil {
		return 0, err
	}
	s, ok := f.streams[id]
	if !ok {
		return 0, errors.New("fake: bad descriptor")
	}
	if len(s.data) == 0 {
		if s.closed {
			return 0, nil
		}
		return 0, errors.New("fake: would block")
	}
	n := copy(p, s.data)
	s.data = s.data[n:]
	return n, nil
}

func (f *fakeTransport) Send(id int, p []byte) error {
	if err := f.sendErr[id]; err != nil {
		return err
	}
	f.sent[id] = append(f.sent[id], string(p))
	return nil
}

func (f *fakeTransport) Close(id int) error {
	f.closed = append(f.closed, id)
	return nil
}

func (f *fakeTransport) Wait(ids []int, bound int) ([]int, error) {
	f.waits = append(f.waits, waitCall{append([]int(nil), ids...), bound})
	if f.waitErr != nil {
		return nil, f.waitErr
	}
	if len(f.wakeups) == 0 {
		return nil, errNoScript
	}
	ready := f.wakeups[0]
	f.wakeups = f.wakeups[1:]
	return ready, nil
}
