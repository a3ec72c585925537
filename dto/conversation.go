// Package dto defines the request and response shapes exchanged with
// clients. Validation rules live in the binding tags; the websocket
// reader reuses the same tags for inbound frames.
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"convo/domain"
)

type CreateConversationRequest struct {
	ConversationType domain.ConversationType `json:"conversation_type" binding:"required,oneof=direct group"`
	SenderID         string                  `json:"sender_id" binding:"required"`
	Participants     []string                `json:"participants" binding:"required,min=1"`
	Name             *string                 `json:"name,omitempty"`
}

type UpdateConversationRequest struct {
	Name *string `json:"name,omitempty"`
}

type ConversationResponse struct {
	ID               uuid.UUID               `json:"id"`
	ConversationType domain.ConversationType `json:"conversation_type"`
	Name             *string                 `json:"name,omitempty"`
	Participants     []ParticipantResponse   `json:"participants"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        *time.Time              `json:"updated_at,omitempty"`
}

func NewConversationResponse(agg domain.ConversationAggregate) ConversationResponse {
	usersByID := lo.KeyBy(agg.Users, func(u domain.User) string { return u.ID })
	participants := lo.FilterMap(agg.Participants, func(p domain.Participant, _ int) (ParticipantResponse, bool) {
		user, ok := usersByID[p.UserID]
		if !ok {
			return ParticipantResponse{}, false
		}
		return ParticipantResponse{
			UserID:      user.ID,
			Username:    user.Username,
			DisplayName: user.DisplayName,
			JoinedAt:    p.JoinedAt,
			LastReadAt:  p.LastReadAt,
		}, true
	})

	return ConversationResponse{
		ID:               agg.Conversation.ID,
		ConversationType: agg.Conversation.Type,
		Name:             agg.Conversation.Name,
		Participants:     participants,
		CreatedAt:        agg.Conversation.CreatedAt,
		UpdatedAt:        agg.Conversation.UpdatedAt,
	}
}

func NewConversationResponses(aggs []domain.ConversationAggregate) []ConversationResponse {
	return lo.Map(aggs, func(agg domain.ConversationAggregate, _ int) ConversationResponse {
		return NewConversationResponse(agg)
	})
}
