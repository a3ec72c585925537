package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"convo/contract"
	"convo/dto"
	"convo/errors"
)

type MessageServer struct {
	log        *slog.Logger
	repository contract.IMessageRepository
	history    contract.IMessageHistory
}

// NewMessageServer takes an optional history reader; nil means the
// durable archive is disabled for this deployment.
func NewMessageServer(log *slog.Logger, repository contract.IMessageRepository,
	history contract.IMessageHistory) *MessageServer {
	return &MessageServer{log: log, repository: repository, history: history}
}

func (s *MessageServer) Create(c *gin.Context) {
	var req dto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	// The websocket path fills the sender from the session; over plain
	// HTTP the client must say who is talking.
	if req.SenderID == "" {
		respondError(c, errors.InvalidArg("sender_id is required"))
		return
	}

	message, err := s.repository.CreateMessage(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

func (s *MessageServer) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	message, err := s.repository.ReadMessage(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

func (s *MessageServer) List(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var page dto.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		respondBindError(c, err)
		return
	}

	messages, err := s.repository.ListMessages(id, page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (s *MessageServer) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	message, err := s.repository.UpdateMessage(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

func (s *MessageServer) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := s.repository.DeleteMessage(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Archive pages through the durable copy of a conversation's messages,
// newest first. The cursor query parameter resumes a previous scan.
func (s *MessageServer) Archive(c *gin.Context) {
	if s.history == nil {
		respondError(c, errors.NotFound("message archive is disabled"))
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var cursor *string
	if raw, found := c.GetQuery("cursor"); found {
		cursor = &raw
	}

	messages, next, err := s.history.History(id, cursor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages, "cursor": next})
}
