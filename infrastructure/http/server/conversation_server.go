package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"convo/contract"
	"convo/domain"
	"convo/dto"
	"convo/errors"
	"convo/projection"
)

type ConversationServer struct {
	log        *slog.Logger
	repository contract.IRepository
}

func NewConversationServer(log *slog.Logger, repository contract.IRepository) *ConversationServer {
	return &ConversationServer{log: log, repository: repository}
}

// Create rejects the request when any participant id does not resolve
// to an existing user: the store silently skips unknown ids, so the
// cardinality check lives here.
func (s *ConversationServer) Create(c *gin.Context) {
	var req dto.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	req.Participants = lo.Uniq(req.Participants)

	users, err := s.repository.ReadUsers(req.Participants)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(users) != len(req.Participants) {
		respondError(c, errors.InvalidArg("one or more participants do not exist"))
		return
	}

	agg, err := s.repository.CreateConversation(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewConversationResponse(agg))
}

func (s *ConversationServer) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	agg, err := s.repository.ReadConversation(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewConversationResponse(agg))
}

func (s *ConversationServer) ListByUser(c *gin.Context) {
	aggs, err := s.repository.ReadConversationsByUser(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewConversationResponses(aggs))
}

// Unread reports how many messages the user has not read yet in each
// of their conversations, derived from the last_read_at markers.
func (s *ConversationServer) Unread(c *gin.Context) {
	userID := c.Param("id")
	aggs, err := s.repository.ReadConversationsByUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	summaries, err := projection.UnreadByUser(userID, aggs, func(conversationID uuid.UUID) ([]domain.Message, error) {
		return s.repository.ListMessages(conversationID, dto.Pagination{})
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (s *ConversationServer) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	conversation, err := s.repository.UpdateConversation(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conversation)
}

func (s *ConversationServer) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := s.repository.DeleteConversation(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
