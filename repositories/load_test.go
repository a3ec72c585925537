package repositories

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"convo/domain"
	"convo/dto"
)

// Churns memberships from many goroutines at once, then verifies the
// participant table and both secondary indices agree three ways at the
// quiescent point. Run with -race.
func TestRepository_Concurrent_Membership_Churn(t *testing.T) {
	req := require.New(t)
	repository := NewInMemoryRepository()

	const goroutines = 8
	const iterations = 50

	userIDs := make([]string, goroutines*2)
	for i := range userIDs {
		userIDs[i] = fmt.Sprintf("user-%02d", i)
		supplied := userIDs[i]
		_, err := repository.CreateUser(dto.CreateUserRequest{
			ID:          &supplied,
			Username:    supplied,
			DisplayName: supplied,
		})
		req.NoError(err)
	}

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := range goroutines {
		go func() {
			defer wg.Done()
			sender := userIDs[g*2]
			peer := userIDs[g*2+1]
			extra := userIDs[(g*2+3)%len(userIDs)]

			for i := range iterations {
				agg, err := repository.CreateConversation(dto.CreateConversationRequest{
					ConversationType: domain.ConversationGroup,
					SenderID:         sender,
					Participants:     []string{sender, peer},
				})
				if err != nil {
					t.Error(err)
					return
				}
				id := agg.Conversation.ID

				if _, err := repository.CreateParticipant(extra, id); err != nil {
					t.Error(err)
					return
				}
				if _, err := repository.ReadConversationsByUser(peer); err != nil {
					t.Error(err)
					return
				}

				// Tear most of it down again, leaving every third
				// conversation in place so residual state is checked too.
				if err := repository.DeleteParticipant(extra, id); err != nil {
					t.Error(err)
					return
				}
				if i%3 != 0 {
					if err := repository.DeleteConversation(id); err != nil {
						t.Error(err)
						return
					}
				}
			}
		}()
	}
	wg.Wait()

	// Row -> both indices
	for key := range repository.participants {
		req.Contains(repository.conversationIndex[key.conversationID], key.userID,
			"participant row without conversation index entry")
		req.Contains(repository.userIndex[key.userID], key.conversationID,
			"participant row without user index entry")
	}

	// Conversation index -> rows, no empty entries left behind
	for conversationID, members := range repository.conversationIndex {
		req.NotEmpty(members)
		for _, userID := range members {
			req.Contains(repository.participants,
				participantKey{userID: userID, conversationID: conversationID},
				"conversation index entry without participant row")
		}
	}

	// User index -> rows, no empty entries left behind
	for userID, conversationIDs := range repository.userIndex {
		req.NotEmpty(conversationIDs)
		for _, conversationID := range conversationIDs {
			req.Contains(repository.participants,
				participantKey{userID: userID, conversationID: conversationID},
				"user index entry without participant row")
		}
	}
}
