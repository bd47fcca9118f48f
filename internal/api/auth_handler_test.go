package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/todo-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthHandler(users *fakeUserStore) *AuthHandler {
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	jwtService := auth.NewTestJWTService(
		"test-secret-that-is-long-enough-for-testing",
		time.Hour,
		nil,
	)
	return NewAuthHandler(users, jwtService, hasher, hasher)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func registerAlice(t *testing.T, handler *AuthHandler) UserResponse {
	t.Helper()
	rec := postJSON(t, handler.Register, "/api/users", RegisterRequest{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "longpass1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestAuthHandler_Register(t *testing.T) {
	t.Parallel()

	t.Run("creates user with public fields only", func(t *testing.T) {
		t.Parallel()
		users := newFakeUserStore()
		handler := newTestAuthHandler(users)

		rec := postJSON(t, handler.Register, "/api/users", RegisterRequest{
			Name:     "Alice",
			Email:    "a@x.com",
			Password: "longpass1",
		})

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Alice", resp["name"])
		assert.Equal(t, "a@x.com", resp["email"])
		assert.EqualValues(t, 1, resp["id"])
		assert.NotContains(t, resp, "password")
		assert.NotContains(t, resp, "password_hash")
		assert.NotContains(t, rec.Body.String(), "longpass1")
	})

	t.Run("stored credential is a hash, not the plaintext", func(t *testing.T) {
		t.Parallel()
		users := newFakeUserStore()
		handler := newTestAuthHandler(users)

		registerAlice(t, handler)

		stored, err := users.GetByEmail(context.Background(), "a@x.com")
		require.NoError(t, err)
		assert.NotEqual(t, "longpass1", stored.HashedPassword)
		assert.Empty(t, stored.Password, "plaintext must not reach the store")
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(stored.HashedPassword), []byte("longpass1")))
	})

	t.Run("validation failures return field detail", func(t *testing.T) {
		t.Parallel()
		handler := newTestAuthHandler(newFakeUserStore())

		tests := []struct {
			name      string
			req       RegisterRequest
			wantField string
		}{
			{
				name:      "missing name",
				req:       RegisterRequest{Email: "a@x.com", Password: "longpass1"},
				wantField: "name",
			},
			{
				name:      "malformed email",
				req:       RegisterRequest{Name: "Alice", Email: "not-an-email", Password: "longpass1"},
				wantField: "email",
			},
			{
				name:      "short password",
				req:       RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "short1"},
				wantField: "password",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := postJSON(t, handler.Register, "/api/users", tt.req)
				require.Equal(t, http.StatusBadRequest, rec.Code)

				var resp struct {
					Error  string            `json:"error"`
					Fields map[string]string `json:"fields"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "validation failed", resp.Error)
				assert.Contains(t, resp.Fields, tt.wantField)
			})
		}
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		t.Parallel()
		handler := newTestAuthHandler(newFakeUserStore())

		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		handler.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		t.Parallel()
		handler := newTestAuthHandler(newFakeUserStore())
		registerAlice(t, handler)

		rec := postJSON(t, handler.Register, "/api/users", RegisterRequest{
			Name:     "Another Alice",
			Email:    "a@x.com",
			Password: "longpass2",
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials yield a bearer token", func(t *testing.T) {
		t.Parallel()
		handler := newTestAuthHandler(newFakeUserStore())
		alice := registerAlice(t, handler)

		rec := postJSON(t, handler.Login, "/api/login", LoginRequest{
			Email:    "a@x.com",
			Password: "longpass1",
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var resp TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, int64(3600), resp.ExpiresIn)

		// The token resolves back to the registered user's identity.
		jwtService := auth.NewTestJWTService(
			"test-secret-that-is-long-enough-for-testing", time.Hour, nil)
		claims, err := jwtService.ValidateToken(context.Background(), resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, alice.ID, claims.UserID)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		t.Parallel()
		handler := newTestAuthHandler(newFakeUserStore())
		registerAlice(t, handler)

		wrongPassword := postJSON(t, handler.Login, "/api/login", LoginRequest{
			Email:    "a@x.com",
			Password: "wrongpass1",
		})
		unknownEmail := postJSON(t, handler.Login, "/api/login", LoginRequest{
			Email:    "nobody@x.com",
			Password: "longpass1",
		})

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String(),
			"401 bodies must not reveal which check failed")
		assert.Contains(t, wrongPassword.Body.String(), "invalid email or password")
	})

	t.Run("validation failure returns 400", func(t *testing.T) {
		t.Parallel()
		handler := newTestAuthHandler(newFakeUserStore())

		rec := postJSON(t, handler.Login, "/api/login", LoginRequest{
			Email:    "a@x.com",
			Password: "short",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
