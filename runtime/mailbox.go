// Package runtime handles live delivery: the connection registry, the
// per-connection sessions and the fan-out coordinator. It contains no
// business rules beyond who is online and who gets which message.
package runtime

import (
	"sync"

	"convo/domain"
)

// Mailbox is the bounded delivery queue between the fan-out coordinator
// and one connection's writer loop. Producers push through the registry
// while it holds its read lock; Close is only called after the mailbox
// has been deregistered, so a push can never hit a closed channel.
type Mailbox struct {
	ch   chan domain.Message
	once sync.Once
}

func NewMailbox(capacity int) *Mailbox {
	return &Mailbox{ch: make(chan domain.Message, capacity)}
}

// TryPush enqueues without blocking. A full mailbox reports false and
// the message is dropped for this connection only.
func (m *Mailbox) TryPush(msg domain.Message) bool {
	select {
	case m.ch <- msg:
		return true
	default:
		return false
	}
}

func (m *Mailbox) C() <-chan domain.Message {
	return m.ch
}

func (m *Mailbox) Close() {
	m.once.Do(func() {
		close(m.ch)
	})
}
