package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service/auth"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"todo not found", store.ErrTodoNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get todo: %w", store.ErrTodoNotFound), http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"empty title", domain.ErrEmptyTitle, http.StatusBadRequest},
		{"unknown error", errors.New("database on fire"), http.StatusInternalServerError},
		{"nil error", nil, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("known errors map to fixed messages", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Invalid token", GetSafeErrorMessage(auth.ErrExpiredToken))
		assert.Equal(t, "invalid email or password", GetSafeErrorMessage(auth.ErrInvalidCredentials))
		assert.Equal(t, "Todo not found", GetSafeErrorMessage(store.ErrTodoNotFound))
		assert.Equal(t, "Email already exists", GetSafeErrorMessage(store.ErrEmailExists))
	})

	t.Run("internal details never surface", func(t *testing.T) {
		t.Parallel()
		raw := errors.New("pq: connection refused on 10.0.0.5")
		got := GetSafeErrorMessage(raw)
		assert.Equal(t, "An unexpected error occurred", got)
		assert.NotContains(t, got, "10.0.0.5")
	})
}
