package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("Alice", "a@x.com", "longpass1")
		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, "a@x.com", user.Email)
		assert.Equal(t, "longpass1", user.Password)
		assert.Empty(t, user.HashedPassword)
		assert.Zero(t, user.ID, "ID is assigned by the store")
		assert.False(t, user.CreatedAt.IsZero())
	})

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "empty name",
			userName: "",
			email:    "a@x.com",
			password: "longpass1",
			wantErr:  ErrEmptyName,
		},
		{
			name:     "whitespace name",
			userName: "   ",
			email:    "a@x.com",
			password: "longpass1",
			wantErr:  ErrEmptyName,
		},
		{
			name:     "empty email",
			userName: "Alice",
			email:    "",
			password: "longpass1",
			wantErr:  ErrEmptyEmail,
		},
		{
			name:     "email without at sign",
			userName: "Alice",
			email:    "ax.com",
			password: "longpass1",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "email without domain dot",
			userName: "Alice",
			email:    "a@xcom",
			password: "longpass1",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "email ending with at sign",
			userName: "Alice",
			email:    "a@",
			password: "longpass1",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "password too short",
			userName: "Alice",
			email:    "a@x.com",
			password: "short1",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "password too long",
			userName: "Alice",
			email:    "a@x.com",
			password: strings.Repeat("x", 73),
			wantErr:  ErrPasswordTooLong,
		},
		{
			name:     "empty password",
			userName: "Alice",
			email:    "a@x.com",
			password: "",
			wantErr:  ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			user, err := NewUser(tt.userName, tt.email, tt.password)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserValidate_StoredUser(t *testing.T) {
	t.Parallel()

	// A user loaded from the store has no plaintext password, only a hash.
	user := &User{
		ID:             1,
		Name:           "Alice",
		Email:          "a@x.com",
		HashedPassword: "$2a$10$somethinghashed",
	}
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), ErrEmptyPassword)
}
