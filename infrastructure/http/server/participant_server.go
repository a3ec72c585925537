package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"convo/contract"
	"convo/dto"
)

type ParticipantServer struct {
	log        *slog.Logger
	repository contract.IParticipantRepository
}

func NewParticipantServer(log *slog.Logger, repository contract.IParticipantRepository) *ParticipantServer {
	return &ParticipantServer{log: log, repository: repository}
}

// Create is duplicate-safe: adding a user who is already a member
// returns the existing row untouched.
func (s *ParticipantServer) Create(c *gin.Context) {
	var req dto.CreateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	participant, err := s.repository.CreateParticipant(req.UserID, req.ConversationID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, participant)
}

func (s *ParticipantServer) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	participant, err := s.repository.UpdateParticipant(c.Param("user_id"), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, participant)
}

func (s *ParticipantServer) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := s.repository.DeleteParticipant(c.Param("user_id"), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
