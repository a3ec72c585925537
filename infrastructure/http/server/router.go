// Package server exposes the query surface and the websocket endpoint
// over HTTP. Handlers stay thin: bind, delegate to the repositories or
// the runtime, map typed errors to status codes.
package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"convo/contract"
)

func NewRouter(log *slog.Logger, repository contract.IRepository,
	registry contract.IRegistry, handler contract.IInboundHandler,
	history contract.IMessageHistory, mailboxCapacity int) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))

	users := NewUserServer(log, repository)
	conversations := NewConversationServer(log, repository)
	messages := NewMessageServer(log, repository, history)
	participants := NewParticipantServer(log, repository)
	chat := NewChatServer(log, registry, handler, mailboxCapacity)

	router.POST("/users", users.Create)
	router.GET("/users", users.List)
	router.GET("/users/:id", users.Get)
	router.PATCH("/users/:id", users.Update)
	router.DELETE("/users/:id", users.Delete)
	router.GET("/users/:id/conversations", conversations.ListByUser)
	router.GET("/users/:id/unread", conversations.Unread)

	router.POST("/conversations", conversations.Create)
	router.GET("/conversations/:id", conversations.Get)
	router.PATCH("/conversations/:id", conversations.Update)
	router.DELETE("/conversations/:id", conversations.Delete)

	router.POST("/messages", messages.Create)
	router.GET("/messages/:id", messages.Get)
	router.PATCH("/messages/:id", messages.Update)
	router.DELETE("/messages/:id", messages.Delete)
	router.GET("/conversations/:id/messages", messages.List)
	router.GET("/conversations/:id/archive", messages.Archive)

	router.POST("/participants", participants.Create)
	router.PATCH("/conversations/:id/participants/:user_id", participants.Update)
	router.DELETE("/conversations/:id/participants/:user_id", participants.Delete)

	router.GET("/ws/:user_id", chat.Connect)

	return router
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
