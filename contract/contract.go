//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"github.com/google/uuid"

	"convo/domain"
	"convo/dto"
)

// IMailbox is the per-connection delivery queue as seen by the registry.
// Pushes are non-blocking; a full mailbox reports false and the message
// is dropped for that connection only.
type IMailbox interface {
	TryPush(msg domain.Message) bool
}

// IRegistry maps a user identity to the mailboxes of their live
// connections. A user with no connections has no entry at all.
type IRegistry interface {
	Register(userID string, mailbox IMailbox)
	Deregister(userID string, mailbox IMailbox)
	Deliver(userID string, msg domain.Message) int
}

// IMessageArchive is a best-effort durable sink on the fan-out path.
type IMessageArchive interface {
	Append(msg domain.Message) error
}

// IMessageHistory reads archived messages back, newest first, resuming
// from an opaque cursor.
type IMessageHistory interface {
	History(conversationID uuid.UUID, cursor *string) ([]domain.Message, *string, error)
}

// IInboundHandler receives parsed create-message frames from sessions.
type IInboundHandler interface {
	HandleInbound(ctx context.Context, userID string, req dto.CreateMessageRequest)
}
