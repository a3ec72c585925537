package server

import (
	"log/slog"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"

	"convo/contract"
	"convo/runtime"
)

type ChatServer struct {
	log             *slog.Logger
	registry        contract.IRegistry
	handler         contract.IInboundHandler
	mailboxCapacity int
}

func NewChatServer(log *slog.Logger, registry contract.IRegistry,
	handler contract.IInboundHandler, mailboxCapacity int) *ChatServer {
	return &ChatServer{
		log:             log,
		registry:        registry,
		handler:         handler,
		mailboxCapacity: mailboxCapacity,
	}
}

// Connect upgrades the request and runs a session until the client
// disconnects or a network error occurs. The user identity comes from
// the path; authenticating it is the concern of whatever sits in front
// of this endpoint.
func (s *ChatServer) Connect(c *gin.Context) {
	userID := c.Param("user_id")

	ws, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		s.log.Warn("websocket upgrade failed", "user_id", userID, "error", err)
		return
	}

	session := runtime.NewSession(s.log, userID, wsConn{conn: ws},
		s.registry, s.handler, s.mailboxCapacity)
	if err := session.Run(c.Request.Context()); err != nil {
		s.log.Debug("session ended", "user_id", userID, "error", err)
	}
}
