package contract

import (
	"github.com/google/uuid"

	"convo/domain"
	"convo/dto"
)

type IConversationRepository interface {
	CreateConversation(req dto.CreateConversationRequest) (domain.ConversationAggregate, error)
	ReadConversation(id uuid.UUID) (domain.ConversationAggregate, error)
	ReadConversationsByUser(userID string) ([]domain.ConversationAggregate, error)
	UpdateConversation(id uuid.UUID, req dto.UpdateConversationRequest) (domain.Conversation, error)
	DeleteConversation(id uuid.UUID) error
}

type IMessageRepository interface {
	CreateMessage(req dto.CreateMessageRequest) (domain.Message, error)
	ReadMessage(id uuid.UUID) (domain.Message, error)
	ListMessages(conversationID uuid.UUID, page dto.Pagination) ([]domain.Message, error)
	UpdateMessage(id uuid.UUID, req dto.UpdateMessageRequest) (domain.Message, error)
	DeleteMessage(id uuid.UUID) error
}

type IParticipantRepository interface {
	CreateParticipant(userID string, conversationID uuid.UUID) (domain.Participant, error)
	UpdateParticipant(userID string, conversationID uuid.UUID, req dto.UpdateParticipantRequest) (domain.Participant, error)
	DeleteParticipant(userID string, conversationID uuid.UUID) error
}

type IUserRepository interface {
	CreateUser(req dto.CreateUserRequest) (domain.User, error)
	ReadUser(id string) (domain.User, error)
	ReadUsers(ids []string) ([]domain.User, error)
	ReadAllUsers() ([]domain.User, error)
	UpdateUser(id string, req dto.UpdateUserRequest) (domain.User, error)
	DeleteUser(id string) error
}

// IRepository is the persistence boundary of the core. The in-memory
// store implements it; a durable backing store can be swapped in as
// long as these contracts hold.
type IRepository interface {
	IConversationRepository
	IMessageRepository
	IParticipantRepository
	IUserRepository
}
