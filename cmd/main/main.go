package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/mattn/go-sqlite3"
	"github.com/minseok-oh/price-tracker/internal/config"
	"github.com/minseok-oh/price-tracker/internal/naver"
	"github.com/minseok-oh/price-tracker/internal/notifier"
	"github.com/minseok-oh/price-tracker/internal/repository/sqlite"
	"github.com/minseok-oh/price-tracker/internal/server"
	"github.com/minseok-oh/price-tracker/internal/services/tracker"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)
	logger.Info("Starting price tracker", "api", cfg.MaskedAPIInfo())

	repo, err := sqlite.NewRepository(ctx, logger, cfg.StoragePath)
	if err != nil {
		log.Fatalf("Failed to init storage: %v", err)
	}
	defer repo.Close()

	// Schema creation is explicit and idempotent.
	if err = repo.Migrate(ctx); err != nil {
		log.Fatalf("Failed to migrate storage: %v", err)
	}

	client := naver.NewClient(logger, cfg.Naver.ClientID, cfg.Naver.ClientSecret, cfg.Naver.Timeout)

	engine := tracker.New(logger, client, repo)
	if cfg.Tg.Token != "" {
		tg, err := notifier.NewTelegram(logger, cfg.Tg.Token, cfg.Tg.ChatID)
		if err != nil {
			log.Fatalf("Failed to init Telegram notifier: %v", err)
		}
		engine.SetNotifier(tg)
	}

	srv := server.New(logger, engine)

	// Start the tool server in a goroutine to allow main to listen for signals.
	errCh := make(chan error, 1)
	go func() {
		if cfg.Server.Transport == config.TransportSSE {
			errCh <- srv.ServeSSE(cfg.Server.Addr)
		} else {
			errCh <- srv.ServeStdio()
		}
	}()

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	// Wait for a shutdown signal or a server failure.
	select {
	case <-ctx.Done():
		logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")
	case err = <-errCh:
		if err != nil {
			logger.Error("Tool server terminated", "error", err)
		}
	}

	// Stop the tool server gracefully.
	srv.Stop(context.Background())

	logger.Info("Application stopped gracefully.")
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
