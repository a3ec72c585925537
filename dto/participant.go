package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateParticipantRequest struct {
	UserID         string    `json:"user_id" binding:"required"`
	ConversationID uuid.UUID `json:"conversation_id" binding:"required"`
}

// UpdateParticipantRequest carries read/join progress. JoinedAt is
// honored only the first time it is supplied for a row.
type UpdateParticipantRequest struct {
	JoinedAt   *time.Time `json:"joined_at,omitempty"`
	LastReadAt *time.Time `json:"last_read_at,omitempty"`
}

type ParticipantResponse struct {
	UserID      string     `json:"user_id"`
	Username    string     `json:"username"`
	DisplayName string     `json:"display_name"`
	JoinedAt    *time.Time `json:"joined_at,omitempty"`
	LastReadAt  *time.Time `json:"last_read_at,omitempty"`
}
