package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/store"
)

// PostgresTodoStore implements the store.TodoStore interface using a
// PostgreSQL database as the storage backend. Every single-row query
// carries the owner's user ID in its WHERE clause, so a todo owned by a
// different user is indistinguishable from a missing one.
type PostgresTodoStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTodoStore creates a new PostgreSQL implementation of the
// TodoStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
func NewPostgresTodoStore(db store.DBTX, logger *slog.Logger) *PostgresTodoStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTodoStore{
		db:     db,
		logger: logger.With(slog.String("component", "todo_store")),
	}
}

// Ensure PostgresTodoStore implements store.TodoStore
var _ store.TodoStore = (*PostgresTodoStore)(nil)

// Create implements store.TodoStore.Create.
// Returns store.ErrInvalidEntity if the owning user does not exist.
func (s *PostgresTodoStore) Create(ctx context.Context, todo *domain.Todo) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := todo.Validate(); err != nil {
		log.Warn("todo validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("user_id", todo.UserID))
		return err
	}

	query := `
		INSERT INTO todos (user_id, title, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		todo.UserID,
		todo.Title,
		todo.Completed,
		todo.CreatedAt,
		todo.UpdatedAt,
	).Scan(&todo.ID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during todo creation",
				slog.Int64("user_id", todo.UserID))
			return fmt.Errorf("%w: user with ID %d not found",
				store.ErrInvalidEntity, todo.UserID)
		}
		log.Error("failed to create todo",
			slog.String("error", err.Error()),
			slog.Int64("user_id", todo.UserID))
		return MapError(err)
	}

	log.Info("todo created successfully",
		slog.Int64("todo_id", todo.ID),
		slog.Int64("user_id", todo.UserID))
	return nil
}

// GetByID implements store.TodoStore.GetByID.
// Returns store.ErrTodoNotFound if no todo with that ID is owned by userID.
func (s *PostgresTodoStore) GetByID(ctx context.Context, userID, id int64) (*domain.Todo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, title, completed, created_at, updated_at
		FROM todos
		WHERE id = $1 AND user_id = $2
	`

	var todo domain.Todo
	err := s.db.QueryRowContext(ctx, query, id, userID).Scan(
		&todo.ID,
		&todo.UserID,
		&todo.Title,
		&todo.Completed,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("todo not found",
				slog.Int64("todo_id", id),
				slog.Int64("user_id", userID))
			return nil, store.ErrTodoNotFound
		}
		log.Error("failed to get todo by ID",
			slog.String("error", err.Error()),
			slog.Int64("todo_id", id))
		return nil, MapError(err)
	}

	return &todo, nil
}

// ListByUser implements store.TodoStore.ListByUser.
// Returns an empty slice when the user owns no todos.
func (s *PostgresTodoStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Todo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, title, completed, created_at, updated_at
		FROM todos
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query todos by user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var todos []*domain.Todo
	for rows.Next() {
		var todo domain.Todo
		err := rows.Scan(
			&todo.ID,
			&todo.UserID,
			&todo.Title,
			&todo.Completed,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan todo row",
				slog.String("error", err.Error()))
			return nil, err
		}
		todos = append(todos, &todo)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if no todos found
	if todos == nil {
		todos = []*domain.Todo{}
	}

	log.Debug("listed todos for user",
		slog.Int64("user_id", userID),
		slog.Int("count", len(todos)))
	return todos, nil
}

// Update implements store.TodoStore.Update.
// Returns store.ErrTodoNotFound if no todo with that ID is owned by the
// todo's user.
func (s *PostgresTodoStore) Update(ctx context.Context, todo *domain.Todo) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := todo.Validate(); err != nil {
		log.Warn("todo validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("todo_id", todo.ID))
		return err
	}

	todo.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE todos
		SET title = $1, completed = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		todo.Title,
		todo.Completed,
		todo.UpdatedAt,
		todo.ID,
		todo.UserID,
	)

	if err != nil {
		log.Error("failed to update todo",
			slog.String("error", err.Error()),
			slog.Int64("todo_id", todo.ID))
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("todo_id", todo.ID))
		return err
	}
	if rowsAffected == 0 {
		log.Debug("todo not found for update",
			slog.Int64("todo_id", todo.ID),
			slog.Int64("user_id", todo.UserID))
		return store.ErrTodoNotFound
	}

	log.Info("todo updated successfully",
		slog.Int64("todo_id", todo.ID),
		slog.Int64("user_id", todo.UserID))
	return nil
}

// Delete implements store.TodoStore.Delete.
// Returns store.ErrTodoNotFound if no todo with that ID is owned by userID.
func (s *PostgresTodoStore) Delete(ctx context.Context, userID, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM todos
		WHERE id = $1 AND user_id = $2
	`

	result, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		log.Error("failed to delete todo",
			slog.String("error", err.Error()),
			slog.Int64("todo_id", id))
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("todo_id", id))
		return err
	}
	if rowsAffected == 0 {
		log.Debug("todo not found for delete",
			slog.Int64("todo_id", id),
			slog.Int64("user_id", userID))
		return store.ErrTodoNotFound
	}

	log.Info("todo deleted successfully",
		slog.Int64("todo_id", id),
		slog.Int64("user_id", userID))
	return nil
}
