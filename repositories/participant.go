package repositories

import (
	"time"

	"github.com/google/uuid"

	"convo/domain"
	"convo/dto"
	"convo/errors"
)

// CreateParticipant adds a member to a conversation, stamping both
// timestamps since an explicit add is a confirmed join. The operation
// is idempotent: an existing row is returned unchanged and the indices
// are left alone, so repeated adds cannot duplicate index entries.
func (r *InMemoryRepository) CreateParticipant(userID string, conversationID uuid.UUID) (domain.Participant, error) {
	r.participantsMu.Lock()
	defer r.participantsMu.Unlock()
	r.conversationIndexMu.Lock()
	defer r.conversationIndexMu.Unlock()
	r.userIndexMu.Lock()
	defer r.userIndexMu.Unlock()

	key := participantKey{userID: userID, conversationID: conversationID}
	if existing, ok := r.participants[key]; ok {
		return existing, nil
	}

	now := time.Now().UTC()
	participant := domain.Participant{
		UserID:         userID,
		ConversationID: conversationID,
		JoinedAt:       &now,
		LastReadAt:     &now,
	}

	r.participants[key] = participant
	r.conversationIndex[conversationID] = appendMissing(r.conversationIndex[conversationID], userID)
	r.userIndex[userID] = appendMissing(r.userIndex[userID], conversationID)

	return participant, nil
}

// UpdateParticipant applies joined_at with first-join-wins semantics:
// once set it is never overwritten. last_read_at is last-write-wins
// with no ordering check against the previous value.
func (r *InMemoryRepository) UpdateParticipant(userID string, conversationID uuid.UUID, req dto.UpdateParticipantRequest) (domain.Participant, error) {
	r.participantsMu.Lock()
	defer r.participantsMu.Unlock()

	key := participantKey{userID: userID, conversationID: conversationID}
	participant, ok := r.participants[key]
	if !ok {
		return domain.Participant{}, errors.NotFound("participant not found")
	}

	if req.JoinedAt != nil && participant.JoinedAt == nil {
		participant.JoinedAt = req.JoinedAt
	}
	if req.LastReadAt != nil {
		participant.LastReadAt = req.LastReadAt
	}

	r.participants[key] = participant
	return participant, nil
}

// DeleteParticipant removes the row and both index entries in one
// critical section. Deleting an absent row succeeds silently.
func (r *InMemoryRepository) DeleteParticipant(userID string, conversationID uuid.UUID) error {
	r.participantsMu.Lock()
	defer r.participantsMu.Unlock()
	r.conversationIndexMu.Lock()
	defer r.conversationIndexMu.Unlock()
	r.userIndexMu.Lock()
	defer r.userIndexMu.Unlock()

	delete(r.participants, participantKey{userID: userID, conversationID: conversationID})

	r.conversationIndex[conversationID] = removeValue(r.conversationIndex[conversationID], userID)
	if len(r.conversationIndex[conversationID]) == 0 {
		delete(r.conversationIndex, conversationID)
	}

	r.userIndex[userID] = removeValue(r.userIndex[userID], conversationID)
	if len(r.userIndex[userID]) == 0 {
		delete(r.userIndex, userID)
	}

	return nil
}
