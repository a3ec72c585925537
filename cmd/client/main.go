package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/coder/websocket"
	"github.com/google/uuid"

	"convo/domain"
	"convo/dto"
	"convo/internal"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerURL      string `env:"CONVO_SERVER_URL,default=ws://localhost:8080"`
	UserID         string `env:"CONVO_USER_ID,required=true"`
	ConversationID string `env:"CONVO_CONVERSATION_ID,required=true"`
	LogLevel       string `env:"LOG_LEVEL,default=info"`
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "client error: %v\n", err)
	}
	os.Exit(code)
}

// run connects a websocket session for the configured user, prints
// every delivered message and sends each stdin line into the
// configured conversation until interrupted.
func run() (int, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	conversationID, err := uuid.Parse(config.ConversationID)
	if err != nil {
		return exitConfig, fmt.Errorf("invalid conversation id: %w", err)
	}

	log := internal.NewLogger(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	url := strings.TrimSuffix(config.ServerURL, "/") + "/ws/" + config.UserID
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to %s: %w", url, err)
	}
	defer func() {
		log.Info("closing connection")
		_ = conn.Close(websocket.StatusNormalClosure, "client exit")
	}()

	log.Info("connected", "server", config.ServerURL, "conversation_id", conversationID)

	// Reader: print every message delivered to this user.
	go func() {
		for {
			_, frame, err := conn.Read(ctx)
			if err != nil {
				if ctx.Err() == nil {
					log.Error("connection lost", "error", err)
				}
				stop()
				return
			}

			var msg domain.Message
			if err := json.Unmarshal(frame, &msg); err != nil {
				log.Warn("dropping unreadable frame", "error", err)
				continue
			}
			fmt.Printf("[%s] %s: %s\n",
				msg.CreatedAt.Local().Format(time.TimeOnly),
				msg.SenderID,
				msg.Content,
			)
		}
	}()

	// Writer: one frame per stdin line.
	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info("stopping client")
			return exitOK, nil
		case line, ok := <-lines:
			if !ok {
				return exitOK, nil
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			frame, err := json.Marshal(dto.CreateMessageRequest{
				ConversationID: conversationID,
				Content:        line,
			})
			if err != nil {
				return exitRuntime, fmt.Errorf("encoding frame: %w", err)
			}
			if err := conn.Write(ctx, websocket.MessageText, frame); err != nil {
				return exitRuntime, fmt.Errorf("sending frame: %w", err)
			}
		}
	}
}
