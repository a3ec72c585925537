// Package projection derives read models from the aggregate store.
// It computes, never mutates: the store stays the single writer.
package projection

import (
	"github.com/google/uuid"

	"convo/domain"
)

// UnreadSummary counts the messages a user has not read yet in one
// conversation, based on their last_read_at marker.
type UnreadSummary struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	Unread         int       `json:"unread"`
}

// Unread counts the messages of a conversation newer than the
// participant's read marker. The participant's own messages never
// count as unread; with no marker at all, every foreign message does.
func Unread(participant domain.Participant, messages []domain.Message) int {
	unread := 0
	for _, msg := range messages {
		if msg.SenderID == participant.UserID {
			continue
		}
		if participant.LastReadAt != nil && !msg.CreatedAt.After(*participant.LastReadAt) {
			continue
		}
		unread++
	}
	return unread
}

// UnreadByUser builds one summary per conversation the user belongs
// to. list fetches the full message slice of a conversation.
func UnreadByUser(userID string, aggs []domain.ConversationAggregate,
	list func(conversationID uuid.UUID) ([]domain.Message, error)) ([]UnreadSummary, error) {
	summaries := make([]UnreadSummary, 0, len(aggs))
	for _, agg := range aggs {
		var row domain.Participant
		for _, participant := range agg.Participants {
			if participant.UserID == userID {
				row = participant
				break
			}
		}

		messages, err := list(agg.Conversation.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, UnreadSummary{
			ConversationID: agg.Conversation.ID,
			Unread:         Unread(row, messages),
		})
	}
	return summaries, nil
}
