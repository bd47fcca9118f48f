package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/phrazzld/todo-api/migrations"
)

// runMigrations executes the requested goose command against the embedded
// migration files. Supported commands are "up", "down" and "status".
func runMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	goose.SetBaseFS(migrations.Files)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	logger.Info("Running database migrations", "command", command)

	switch command {
	case "up":
		if err := goose.UpContext(ctx, db, "."); err != nil {
			return fmt.Errorf("goose up failed: %w", err)
		}
	case "down":
		if err := goose.DownContext(ctx, db, "."); err != nil {
			return fmt.Errorf("goose down failed: %w", err)
		}
	case "status":
		if err := goose.StatusContext(ctx, db, "."); err != nil {
			return fmt.Errorf("goose status failed: %w", err)
		}
	default:
		return fmt.Errorf("unknown migration command %q (want up, down or status)", command)
	}

	logger.Info("Migration command completed", "command", command)
	return nil
}
