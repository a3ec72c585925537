package projection

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"convo/domain"
)

func message(sender string, at time.Time) domain.Message {
	return domain.Message{ID: uuid.New(), SenderID: sender, CreatedAt: at}
}

func TestUnread_Counts_Foreign_Messages_After_Marker(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()
	marker := now.Add(-1 * time.Hour)
	participant := domain.Participant{UserID: "alice", LastReadAt: &marker}

	messages := []domain.Message{
		message("bob", now.Add(-2*time.Hour)),    // read
		message("bob", now.Add(-30*time.Minute)), // unread
		message("alice", now),                    // own, never unread
		message("bob", now),                      // unread
	}

	req.Equal(2, Unread(participant, messages))
}

func TestUnread_No_Marker_Counts_Everything_Foreign(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()
	participant := domain.Participant{UserID: "alice"}

	messages := []domain.Message{
		message("bob", now.Add(-2*time.Hour)),
		message("alice", now),
		message("clara", now),
	}

	req.Equal(2, Unread(participant, messages))
}

func TestUnreadByUser_One_Summary_Per_Conversation(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()
	first := uuid.New()
	second := uuid.New()

	aggs := []domain.ConversationAggregate{
		{
			Conversation: domain.Conversation{ID: first},
			Participants: []domain.Participant{{UserID: "alice", ConversationID: first}},
		},
		{
			Conversation: domain.Conversation{ID: second},
			Participants: []domain.Participant{{UserID: "alice", ConversationID: second}},
		},
	}
	byConversation := map[uuid.UUID][]domain.Message{
		first:  {message("bob", now), message("bob", now)},
		second: {message("alice", now)},
	}

	summaries, err := UnreadByUser("alice", aggs, func(id uuid.UUID) ([]domain.Message, error) {
		return byConversation[id], nil
	})

	req.NoError(err)
	req.Len(summaries, 2)
	req.Equal(UnreadSummary{ConversationID: first, Unread: 2}, summaries[0])
	req.Equal(UnreadSummary{ConversationID: second, Unread: 0}, summaries[1])
}
