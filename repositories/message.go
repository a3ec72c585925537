package repositories

import (
	"bytes"
	"sort"
	"time"

	"github.com/google/uuid"

	"convo/domain"
	"convo/dto"
	"convo/errors"
)

func (r *InMemoryRepository) CreateMessage(req dto.CreateMessageRequest) (domain.Message, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return domain.Message{}, errors.Internal("generating message id", err)
	}

	message := domain.Message{
		ID:             id,
		ConversationID: req.ConversationID,
		SenderID:       req.SenderID,
		Content:        req.Content,
		CreatedAt:      time.Now().UTC(),
	}

	r.messagesMu.Lock()
	r.messages[id] = message
	r.messagesMu.Unlock()

	return message, nil
}

func (r *InMemoryRepository) ReadMessage(id uuid.UUID) (domain.Message, error) {
	r.messagesMu.RLock()
	defer r.messagesMu.RUnlock()

	message, ok := r.messages[id]
	if !ok {
		return domain.Message{}, errors.NotFound("message not found")
	}
	return message, nil
}

// ListMessages pages through a conversation's messages in creation
// order. The backing map is unordered, so the slice is sorted by
// (created_at, id) before offset and limit apply; the UUIDv7 tiebreak
// keeps same-instant messages stable.
func (r *InMemoryRepository) ListMessages(conversationID uuid.UUID, page dto.Pagination) ([]domain.Message, error) {
	r.messagesMu.RLock()
	var messages []domain.Message
	for _, message := range r.messages {
		if message.ConversationID == conversationID {
			messages = append(messages, message)
		}
	}
	r.messagesMu.RUnlock()

	sort.Slice(messages, func(i, j int) bool {
		if !messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].CreatedAt.Before(messages[j].CreatedAt)
		}
		return bytes.Compare(messages[i].ID[:], messages[j].ID[:]) < 0
	})

	// The HTTP binding rejects negative values, but the contract stays
	// total for programmatic callers: clamp instead of panicking.
	offset := 0
	if page.Offset != nil && *page.Offset > 0 {
		offset = *page.Offset
	}
	if offset >= len(messages) {
		return nil, nil
	}
	messages = messages[offset:]

	if page.Limit != nil && *page.Limit >= 0 && *page.Limit < len(messages) {
		messages = messages[:*page.Limit]
	}
	return messages, nil
}

func (r *InMemoryRepository) UpdateMessage(id uuid.UUID, req dto.UpdateMessageRequest) (domain.Message, error) {
	r.messagesMu.Lock()
	defer r.messagesMu.Unlock()

	message, ok := r.messages[id]
	if !ok {
		return domain.Message{}, errors.NotFound("message not found")
	}

	if req.Content != nil {
		updated := time.Now().UTC()
		message.Content = *req.Content
		message.UpdatedAt = &updated
		r.messages[id] = message
	}

	return message, nil
}

func (r *InMemoryRepository) DeleteMessage(id uuid.UUID) error {
	r.messagesMu.Lock()
	defer r.messagesMu.Unlock()

	delete(r.messages, id)
	return nil
}
