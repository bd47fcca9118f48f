package domain

import (
	"errors"
	"strings"
	"time"
)

// Common todo validation errors.
var (
	ErrEmptyTitle   = errors.New("title cannot be empty")
	ErrEmptyOwner   = errors.New("todo must have an owning user")
	ErrTitleTooLong = errors.New("title must be at most 500 characters long")
)

// MaxTitleLength bounds todo titles; mirrors the database check constraint.
const MaxTitleLength = 500

// Todo is a single to-do item owned by exactly one user. Rows are only
// reachable through queries scoped to the owner's ID.
type Todo struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTodo creates a Todo owned by the given user and validates it.
// The ID is assigned by the store on insert.
func NewTodo(userID int64, title string, completed bool) (*Todo, error) {
	now := time.Now().UTC()
	todo := &Todo{
		UserID:    userID,
		Title:     title,
		Completed: completed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := todo.Validate(); err != nil {
		return nil, err
	}

	return todo, nil
}

// Validate checks that the Todo carries valid data.
func (t *Todo) Validate() error {
	if t.UserID <= 0 {
		return ErrEmptyOwner
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if len(t.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
