package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_RECEIVE_TIMEOUT bounds how long a scenario waits for a frame
	// to arrive on a websocket before failing the step.
	ReceiveTimeout time.Duration `envconfig:"E2E_RECEIVE_TIMEOUT" default:"3s"`
	// E2E_MAILBOX_CAPACITY sizes the per-connection delivery queue.
	MailboxCapacity int `envconfig:"E2E_MAILBOX_CAPACITY" default:"16"`
	// E2E_CENSORED_WORDS seeds the moderation word list, comma separated.
	CensoredWords string `envconfig:"E2E_CENSORED_WORDS" default:"voldemort"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
