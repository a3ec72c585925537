package runtime

import (
	"sync"

	"convo/contract"
	"convo/domain"
)

// Registry is the concurrency-safe multimap from user identity to the
// mailboxes of their live connections. A user with zero connections has
// no entry at all; the last Deregister removes the key.
type Registry struct {
	mu          sync.RWMutex
	connections map[string][]contract.IMailbox
}

func NewRegistry() *Registry {
	return &Registry{connections: make(map[string][]contract.IMailbox)}
}

// Register adds a mailbox to the user's connection set, creating the
// set on first connection.
func (r *Registry) Register(userID string, mailbox contract.IMailbox) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.connections[userID] = append(r.connections[userID], mailbox)
}

// Deregister removes exactly that mailbox. When the user's set becomes
// empty the entry is deleted entirely, so abandoned users leak nothing.
func (r *Registry) Deregister(userID string, mailbox contract.IMailbox) {
	r.mu.Lock()
	defer r.mu.Unlock()

	mailboxes := r.connections[userID]
	for i, mb := range mailboxes {
		if mb == mailbox {
			mailboxes = append(mailboxes[:i], mailboxes[i+1:]...)
			break
		}
	}

	if len(mailboxes) == 0 {
		delete(r.connections, userID)
		return
	}
	r.connections[userID] = mailboxes
}

// ActiveUsers reports how many users hold at least one live connection.
func (r *Registry) ActiveUsers() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.connections)
}

// Deliver pushes the message into every mailbox currently registered
// for the user and reports how many accepted it. A full mailbox is
// skipped without affecting the others; no backpressure reaches the
// caller. Delivering to an unknown user is a no-op.
func (r *Registry) Deliver(userID string, msg domain.Message) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	delivered := 0
	for _, mailbox := range r.connections[userID] {
		if mailbox.TryPush(msg) {
			delivered++
		}
	}
	return delivered
}
