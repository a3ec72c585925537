package dto

import "github.com/google/uuid"

// CreateMessageRequest doubles as the inbound websocket frame. The
// transport fills SenderID from the session identity, so it is not a
// required field on the wire.
type CreateMessageRequest struct {
	ConversationID uuid.UUID `json:"conversation_id" binding:"required"`
	SenderID       string    `json:"sender_id"`
	Content        string    `json:"content" binding:"required,max=4096"`
}

type UpdateMessageRequest struct {
	Content *string `json:"content,omitempty"`
}
