package internal

import (
	"fmt"
	"time"
)

type Config struct {
	Host            string        `env:"HOST,required=true"`
	Port            int           `env:"PORT,required=true"`
	LogLevel        string        `env:"LOG_LEVEL,required=true"`
	MailboxCapacity int           `env:"MAILBOX_CAPACITY,required=true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`

	// Zero disables periodic health snapshots.
	MonitoringInterval time.Duration `env:"MONITORING_INTERVAL,default=30s"`

	// Empty disables the durable message archive.
	ArchiveFilepath string `env:"ARCHIVE_FILEPATH"`
	ArchiveLimit    *int   `env:"ARCHIVE_LIMIT"`

	// Comma-separated; empty disables moderation.
	CensoredWords   string `env:"CENSORED_WORDS"`
	CharReplacement string `env:"CHARACTER_REPLACEMENT,default=*"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
