package chatroom

import (
	"fmt"
	"log/slog"

	"github.com/wtask/dian/internal/logger"
)

// Delivery - outcome of a single broadcast, ids are in visiting order.
type Delivery struct {
	Delivered []int
	Failed    []int
}

// Broadcaster - delivers a member message to every other member of a registry.
type Broadcaster struct {
	sender Sender
	logger *slog.Logger
}

// NewBroadcaster - builds broadcaster over the given sender.
func NewBroadcaster(s Sender, l *slog.Logger) *Broadcaster {
	if l == nil {
		l = logger.Discard()
	}
	return &Broadcaster{sender: s, logger: l}
}

// Format - builds the relayed form of the payload sent by the member.
func Format(sender int, payload []byte) []byte {
	return fmt.Appendf(nil, "member %d: %s", sender, payload)
}

// Broadcast - sends formatted payload to all members except the listener and the sender,
// in ascending id order. Every recipient gets exactly one send attempt,
// a failed send is logged and does not affect the rest.
func (b *Broadcaster) Broadcast(r *Registry, sender int, payload []byte) Delivery {
	message := Format(sender, payload)
	d := Delivery{}
	for id := range r.Members() {
		if r.IsListener(id) || id == sender {
			continue
		}
		if err := b.sender.Send(id, message); err != nil {
			b.logger.Error("send failed", logger.Conn(id), logger.Remote(r.Remote(id)), logger.Error(err))
			d.Failed = append(d.Failed, id)
			continue
		}
		d.Delivered = append(d.Delivered, id)
	}
	return d
}
