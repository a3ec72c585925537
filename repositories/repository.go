// Package repositories holds the in-memory indexed aggregate store:
// primary tables for users, conversations, participants and messages,
// plus two secondary indices kept consistent with the participant table.
//
// Lock acquisition order, everywhere a critical section spans more than
// one table: conversations, messages, users, participants,
// conversationIndex, userIndex. Never acquire in any other order.
package repositories

import (
	"sync"

	"github.com/google/uuid"

	"convo/domain"
)

type participantKey struct {
	userID         string
	conversationID uuid.UUID
}

type InMemoryRepository struct {
	conversationsMu sync.RWMutex
	conversations   map[uuid.UUID]domain.Conversation

	messagesMu sync.RWMutex
	messages   map[uuid.UUID]domain.Message

	usersMu sync.RWMutex
	users   map[string]domain.User

	participantsMu sync.RWMutex
	participants   map[participantKey]domain.Participant

	// conversation id -> member user ids
	conversationIndexMu sync.RWMutex
	conversationIndex   map[uuid.UUID][]string

	// user id -> conversation ids the user belongs to
	userIndexMu sync.RWMutex
	userIndex   map[string][]uuid.UUID
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		conversations:     make(map[uuid.UUID]domain.Conversation),
		messages:          make(map[uuid.UUID]domain.Message),
		users:             make(map[string]domain.User),
		participants:      make(map[participantKey]domain.Participant),
		conversationIndex: make(map[uuid.UUID][]string),
		userIndex:         make(map[string][]uuid.UUID),
	}
}

func appendMissing[T comparable](values []T, value T) []T {
	for _, v := range values {
		if v == value {
			return values
		}
	}
	return append(values, value)
}

func removeValue[T comparable](values []T, value T) []T {
	out := values[:0]
	for _, v := range values {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}
