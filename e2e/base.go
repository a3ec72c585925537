package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	"github.com/coder/websocket"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"

	"convo/domain"
	"convo/dto"
	"convo/infrastructure/http/server"
	"convo/moderation"
	"convo/repositories"
	"convo/runtime"
)

// BaseSuite boots the whole service in-process behind an httptest
// server: real store, real registry, real fan-out, real websocket
// endpoint. Scenarios talk to it exactly like an external client.
type BaseSuite struct {
	suite.Suite
	Config     Config
	Repository *repositories.InMemoryRepository
	ts         *httptest.Server
}

func (s *BaseSuite) SetupTest() {
	cfg, err := LoadConfig()
	s.Require().NoError(err)
	s.Config = cfg

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.Repository = repositories.NewInMemoryRepository()
	registry := runtime.NewRegistry()

	moderator, err := moderation.NewModerator(strings.Split(cfg.CensoredWords, ","), '*')
	s.Require().NoError(err)

	coordinator := runtime.NewCoordinator(log, s.Repository, registry, moderator, nil)
	router := server.NewRouter(log, s.Repository, registry, coordinator, nil, cfg.MailboxCapacity)
	s.ts = httptest.NewServer(router)
	s.Banner(s.T().Name())
}

// Banner prints a colorized scenario header in the test log. Colors
// are switched off with E2E_COLOURS=false for plain CI output.
func (s *BaseSuite) Banner(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

func (s *BaseSuite) TearDownTest() {
	if s.ts != nil {
		s.ts.Close()
	}
}

func (s *BaseSuite) CreateUser(username string) domain.User {
	user, err := s.Repository.CreateUser(dto.CreateUserRequest{
		Username:    username,
		DisplayName: username,
	})
	s.Require().NoError(err)
	return user
}

func (s *BaseSuite) CreateConversation(req dto.CreateConversationRequest) domain.ConversationAggregate {
	agg, err := s.Repository.CreateConversation(req)
	s.Require().NoError(err)
	return agg
}

// Connect opens a websocket session for the user and returns the live
// connection. It is closed automatically if the test forgets to.
func (s *BaseSuite) Connect(ctx context.Context, userID string) *websocket.Conn {
	url := strings.Replace(s.ts.URL, "http", "ws", 1) + "/ws/" + userID
	conn, _, err := websocket.Dial(ctx, url, nil)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.CloseNow() })
	return conn
}

func (s *BaseSuite) SendFrame(ctx context.Context, conn *websocket.Conn, req dto.CreateMessageRequest) {
	frame, err := json.Marshal(req)
	s.Require().NoError(err)
	s.Require().NoError(conn.Write(ctx, websocket.MessageText, frame))
}

// ReceiveMessage blocks until a message frame arrives or the configured
// receive timeout elapses.
func (s *BaseSuite) ReceiveMessage(ctx context.Context, conn *websocket.Conn) domain.Message {
	ctx, cancel := context.WithTimeout(ctx, s.Config.ReceiveTimeout)
	defer cancel()

	typ, frame, err := conn.Read(ctx)
	s.Require().NoError(err)
	s.Require().Equal(websocket.MessageText, typ)

	var msg domain.Message
	s.Require().NoError(json.Unmarshal(frame, &msg))
	return msg
}
