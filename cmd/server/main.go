package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	env "github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"

	"convo/contract"
	"convo/infrastructure/http/server"
	"convo/internal"
	"convo/moderation"
	"convo/observability"
	"convo/repositories"
	"convo/runtime"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so every defer executes before exit.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := internal.NewLogger(config.LogLevel)

	// 2. Core state: store and connection registry
	repository := repositories.NewInMemoryRepository()
	registry := runtime.NewRegistry()

	// 3. Optional durable message archive (BadgerDB)
	var archive contract.IMessageArchive
	var history contract.IMessageHistory
	if config.ArchiveFilepath != "" {
		db, err := badger.Open(badger.DefaultOptions(config.ArchiveFilepath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return fmt.Errorf("archive opening failed: %w", err)
		}
		defer func() {
			log.Info("Closing message archive...")
			_ = db.Close()
		}()
		messageArchive := repositories.NewMessageArchive(db, log, config.ArchiveLimit)
		archive = messageArchive
		history = messageArchive
	}

	// 4. Optional content moderation
	var moderator *moderation.Moderator
	if config.CensoredWords != "" {
		replacement, err := internal.CharacterRune(config.CharReplacement)
		if err != nil {
			return err
		}
		words := strings.Split(config.CensoredWords, ",")
		moderator, err = moderation.NewModerator(words, replacement)
		if err != nil {
			return fmt.Errorf("building moderator: %w", err)
		}
		log.Info(fmt.Sprintf("%d censored words loaded", len(words)))
	}

	// 5. Fan-out pipeline and HTTP surface
	coordinator := runtime.NewCoordinator(log, repository, registry, moderator, archive)
	router := server.NewRouter(log, repository, registry, coordinator, history, config.MailboxCapacity)

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 7. Periodic health snapshots
	if config.MonitoringInterval > 0 {
		monitor := observability.NewMonitor(log, config.MonitoringInterval, registry.ActiveUsers)
		go monitor.Run(ctx)
	}

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	srv := &http.Server{Addr: address, Handler: router}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", address)
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 9. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown failed: %w", err)
	}
	log.Info("Program stopped cleanly")
	return nil
}
