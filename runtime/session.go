package runtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/go-playground/validator/v10"

	"convo/contract"
	"convo/dto"
)

type SessionState int32

const (
	StateConnecting SessionState = iota
	StateOpen
	StateClosing
	StateClosed
)

func (s SessionState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	default:
		return "closed"
	}
}

// Conn is the narrow wire abstraction the session runs over: UTF-8 text
// frames in both directions. The production adapter wraps a websocket;
// tests substitute channel-backed fakes.
type Conn interface {
	ReadFrame(ctx context.Context) ([]byte, error)
	WriteFrame(ctx context.Context, frame []byte) error
	Close() error
}

// Session pairs one connection's reader loop with its writer loop.
// The user identity is supplied by the transport acceptance code and
// trusted as-is; the session performs no authentication.
type Session struct {
	log      *slog.Logger
	userID   string
	conn     Conn
	mailbox  *Mailbox
	registry contract.IRegistry
	handler  contract.IInboundHandler
	validate *validator.Validate
	state    atomic.Int32
}

func NewSession(log *slog.Logger, userID string, conn Conn,
	registry contract.IRegistry, handler contract.IInboundHandler,
	mailboxCapacity int) *Session {
	validate := validator.New()
	// Frames reuse the HTTP binding rules of the dto package.
	validate.SetTagName("binding")

	return &Session{
		log:      log.With("user_id", userID),
		userID:   userID,
		conn:     conn,
		mailbox:  NewMailbox(mailboxCapacity),
		registry: registry,
		handler:  handler,
		validate: validate,
	}
}

func (s *Session) State() SessionState {
	return SessionState(s.state.Load())
}

// Run registers the session's mailbox, drives both loops until one
// exits, then tears down exactly once: whichever loop finishes first
// cancels its sibling through the shared context, and the mailbox is
// closed only after deregistration so in-flight deliveries cannot hit
// a closed channel. Run blocks until the session is fully closed.
func (s *Session) Run(ctx context.Context) error {
	s.registry.Register(s.userID, s.mailbox)
	s.state.Store(int32(StateOpen))
	s.log.Debug("session open")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		defer cancel()
		s.writeLoop(ctx)
	}()
	go func() {
		defer wg.Done()
		defer cancel()
		s.readLoop(ctx)
	}()
	wg.Wait()

	s.state.Store(int32(StateClosing))
	s.registry.Deregister(s.userID, s.mailbox)
	s.mailbox.Close()
	err := s.conn.Close()
	s.state.Store(int32(StateClosed))
	s.log.Debug("session closed")
	return err
}

// writeLoop drains the mailbox and serializes each message onto the
// wire. It terminates when the mailbox closes, a write fails, or the
// session context is canceled.
func (s *Session) writeLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-s.mailbox.C():
			if !ok {
				return
			}
			frame, err := json.Marshal(msg)
			if err != nil {
				s.log.Error("failed to encode outbound message", "error", err)
				continue
			}
			if err := s.conn.WriteFrame(ctx, frame); err != nil {
				s.log.Debug("write failed, closing session", "error", err)
				return
			}
		}
	}
}

// readLoop parses inbound frames into create-message requests. A single
// malformed frame is protocol noise: logged and dropped, never fatal to
// the connection. The loop ends when the wire read fails or the session
// context is canceled.
func (s *Session) readLoop(ctx context.Context) {
	for {
		frame, err := s.conn.ReadFrame(ctx)
		if err != nil {
			s.log.Debug("read failed, closing session", "error", err)
			return
		}

		var req dto.CreateMessageRequest
		if err := json.Unmarshal(frame, &req); err != nil {
			s.log.Warn("dropping malformed frame", "error", err)
			continue
		}
		if err := s.validate.Struct(req); err != nil {
			s.log.Warn("dropping invalid frame", "error", err)
			continue
		}

		s.handler.HandleInbound(ctx, s.userID, req)
	}
}
