// Package main implements the entry point for the todo API server,
// which provides user registration, password login and per-user todo
// management over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run database migrations before starting (up, down, status)")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run loads configuration, wires the application together and starts the
// HTTP server. Split out of main so initialization errors flow back as
// values instead of os.Exit calls scattered through setup.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	ctx := context.Background()

	if migrateCmd != "" {
		if err := runMigrations(ctx, db, migrateCmd, appLogger); err != nil {
			if closeErr := db.Close(); closeErr != nil {
				appLogger.Error("Error closing database connection", "error", closeErr)
			}
			return fmt.Errorf("migration %q failed: %w", migrateCmd, err)
		}
		// Status is a read-only inspection; don't start the server after it.
		if migrateCmd == "status" {
			if err := db.Close(); err != nil {
				appLogger.Error("Error closing database connection", "error", err)
			}
			os.Exit(0)
		}
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			appLogger.Error("Error closing database connection", "error", closeErr)
		}
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
