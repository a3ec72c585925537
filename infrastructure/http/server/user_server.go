package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"convo/contract"
	"convo/dto"
)

type UserServer struct {
	log        *slog.Logger
	repository contract.IUserRepository
}

func NewUserServer(log *slog.Logger, repository contract.IUserRepository) *UserServer {
	return &UserServer{log: log, repository: repository}
}

func (s *UserServer) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := s.repository.CreateUser(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (s *UserServer) Get(c *gin.Context) {
	user, err := s.repository.ReadUser(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *UserServer) List(c *gin.Context) {
	users, err := s.repository.ReadAllUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (s *UserServer) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := s.repository.UpdateUser(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *UserServer) Delete(c *gin.Context) {
	if err := s.repository.DeleteUser(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
