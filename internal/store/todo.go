package store

import (
	"context"

	"github.com/phrazzld/todo-api/internal/domain"
)

// TodoStore defines the interface for todo data persistence. Every read and
// mutation that targets a single todo is scoped by the owning user ID; a
// todo owned by another user behaves exactly like a missing one.
type TodoStore interface {
	// Create saves a new todo to the store and assigns its ID.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, todo *domain.Todo) error

	// GetByID retrieves the todo with the given ID owned by userID.
	// Returns ErrTodoNotFound if no such todo exists for that owner.
	GetByID(ctx context.Context, userID, id int64) (*domain.Todo, error)

	// ListByUser returns all todos owned by userID, newest first.
	// Returns an empty slice when the user owns no todos.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Todo, error)

	// Update modifies the title and completion flag of the todo with the
	// given ID owned by userID.
	// Returns ErrTodoNotFound if no such todo exists for that owner.
	Update(ctx context.Context, todo *domain.Todo) error

	// Delete removes the todo with the given ID owned by userID.
	// Returns ErrTodoNotFound if no such todo exists for that owner.
	Delete(ctx context.Context, userID, id int64) error
}
