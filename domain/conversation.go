package domain

import (
	"time"

	"github.com/google/uuid"
)

type ConversationType string

const (
	ConversationDirect ConversationType = "direct"
	ConversationGroup  ConversationType = "group"
)

func (t ConversationType) Valid() bool {
	return t == ConversationDirect || t == ConversationGroup
}

// Conversation is referenced by participants and messages via its id only.
// Name is meaningful for group conversations; direct ones carry none.
type Conversation struct {
	ID        uuid.UUID        `json:"id"`
	Type      ConversationType `json:"conversation_type"`
	Name      *string          `json:"name,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt *time.Time       `json:"updated_at,omitempty"`
}

// ConversationAggregate bundles a conversation with its resolved
// participant rows and user records, returned as one unit.
type ConversationAggregate struct {
	Conversation Conversation  `json:"conversation"`
	Participants []Participant `json:"participants"`
	Users        []User        `json:"users"`
}
