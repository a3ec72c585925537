package repositories

import (
	"time"

	"github.com/google/uuid"

	"convo/domain"
	"convo/dto"
	"convo/errors"
)

// CreateConversation generates a fresh id and creates one participant
// row per resolvable participant id. Unknown user ids are skipped; the
// handler layer compares cardinality and rejects the request when that
// matters. Only the sender's row gets joined_at/last_read_at; the
// other rows stay pending until the user confirms.
func (r *InMemoryRepository) CreateConversation(req dto.CreateConversationRequest) (domain.ConversationAggregate, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return domain.ConversationAggregate{}, errors.Internal("generating conversation id", err)
	}

	name := req.Name
	if req.ConversationType == domain.ConversationDirect {
		name = nil
	}

	conversation := domain.Conversation{
		ID:        id,
		Type:      req.ConversationType,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	r.conversationsMu.Lock()
	r.conversations[id] = conversation
	r.conversationsMu.Unlock()

	// Participant rows and both indices are mutated in one critical
	// section so no reader observes a half-linked membership.
	r.usersMu.RLock()
	defer r.usersMu.RUnlock()
	r.participantsMu.Lock()
	defer r.participantsMu.Unlock()
	r.conversationIndexMu.Lock()
	defer r.conversationIndexMu.Unlock()
	r.userIndexMu.Lock()
	defer r.userIndexMu.Unlock()

	now := time.Now().UTC()
	var participants []domain.Participant
	var users []domain.User
	for _, userID := range req.Participants {
		user, ok := r.users[userID]
		if !ok {
			continue
		}
		key := participantKey{userID: userID, conversationID: id}
		if _, dup := r.participants[key]; dup {
			continue
		}

		participant := domain.Participant{UserID: userID, ConversationID: id}
		if userID == req.SenderID {
			joined := now
			participant.JoinedAt = &joined
			participant.LastReadAt = &joined
		}

		r.participants[key] = participant
		r.conversationIndex[id] = appendMissing(r.conversationIndex[id], userID)
		r.userIndex[userID] = appendMissing(r.userIndex[userID], id)

		participants = append(participants, participant)
		users = append(users, user)
	}

	return domain.ConversationAggregate{
		Conversation: conversation,
		Participants: participants,
		Users:        users,
	}, nil
}

func (r *InMemoryRepository) ReadConversation(id uuid.UUID) (domain.ConversationAggregate, error) {
	r.conversationsMu.RLock()
	conversation, ok := r.conversations[id]
	r.conversationsMu.RUnlock()
	if !ok {
		return domain.ConversationAggregate{}, errors.NotFound("conversation not found")
	}

	r.usersMu.RLock()
	defer r.usersMu.RUnlock()
	r.participantsMu.RLock()
	defer r.participantsMu.RUnlock()
	r.conversationIndexMu.RLock()
	defer r.conversationIndexMu.RUnlock()

	return r.collectAggregate(conversation), nil
}

// ReadConversationsByUser resolves the user's conversation ids from the
// secondary index. Ids are snapshotted under the index lock alone, then
// each conversation is read in table-lock order; an id whose
// conversation vanished in between is skipped, not an error.
func (r *InMemoryRepository) ReadConversationsByUser(userID string) ([]domain.ConversationAggregate, error) {
	r.userIndexMu.RLock()
	ids := make([]uuid.UUID, len(r.userIndex[userID]))
	copy(ids, r.userIndex[userID])
	r.userIndexMu.RUnlock()

	var result []domain.ConversationAggregate
	for _, id := range ids {
		agg, err := r.ReadConversation(id)
		if errors.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	return result, nil
}

// UpdateConversation renames a group conversation. Renaming a direct
// conversation is a silent no-op that returns the row unchanged, which
// mirrors the handler-level business rule.
func (r *InMemoryRepository) UpdateConversation(id uuid.UUID, req dto.UpdateConversationRequest) (domain.Conversation, error) {
	r.conversationsMu.Lock()
	defer r.conversationsMu.Unlock()

	conversation, ok := r.conversations[id]
	if !ok {
		return domain.Conversation{}, errors.NotFound("conversation not found")
	}

	if conversation.Type == domain.ConversationGroup && req.Name != nil {
		updated := time.Now().UTC()
		conversation.Name = req.Name
		conversation.UpdatedAt = &updated
		r.conversations[id] = conversation
	}

	return conversation, nil
}

// DeleteConversation cascades: the conversation row, every participant
// row keyed by it, and the id pruned from every affected user's index
// entry, all inside one critical section. Deleting an unknown id
// succeeds silently.
func (r *InMemoryRepository) DeleteConversation(id uuid.UUID) error {
	r.conversationsMu.Lock()
	defer r.conversationsMu.Unlock()

	if _, ok := r.conversations[id]; !ok {
		return nil
	}
	delete(r.conversations, id)

	r.participantsMu.Lock()
	defer r.participantsMu.Unlock()
	r.conversationIndexMu.Lock()
	defer r.conversationIndexMu.Unlock()
	r.userIndexMu.Lock()
	defer r.userIndexMu.Unlock()

	userIDs := r.conversationIndex[id]
	delete(r.conversationIndex, id)

	for _, userID := range userIDs {
		delete(r.participants, participantKey{userID: userID, conversationID: id})
		r.userIndex[userID] = removeValue(r.userIndex[userID], id)
		if len(r.userIndex[userID]) == 0 {
			delete(r.userIndex, userID)
		}
	}

	return nil
}

// collectAggregate resolves participant rows and user records for a
// conversation. Callers must hold users, participants and
// conversationIndex read locks.
func (r *InMemoryRepository) collectAggregate(conversation domain.Conversation) domain.ConversationAggregate {
	var participants []domain.Participant
	var users []domain.User
	for _, userID := range r.conversationIndex[conversation.ID] {
		participant, ok := r.participants[participantKey{userID: userID, conversationID: conversation.ID}]
		if !ok {
			continue
		}
		participants = append(participants, participant)
		if user, ok := r.users[userID]; ok {
			users = append(users, user)
		}
	}
	return domain.ConversationAggregate{
		Conversation: conversation,
		Participants: participants,
		Users:        users,
	}
}
