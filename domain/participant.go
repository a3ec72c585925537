package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant records a user's membership within one conversation.
// JoinedAt stays unset until the user confirms the invite.
type Participant struct {
	UserID         string     `json:"user_id"`
	ConversationID uuid.UUID  `json:"conversation_id"`
	JoinedAt       *time.Time `json:"joined_at,omitempty"`
	LastReadAt     *time.Time `json:"last_read_at,omitempty"`
}
