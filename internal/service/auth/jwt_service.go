// Package auth implements the credential manager: password hashing and
// verification, and issuance and validation of bearer tokens.
package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed access token asserting the given
	// user's identity until the configured lifetime elapses.
	GenerateToken(ctx context.Context, userID int64) (string, error)

	// ValidateToken checks the signature and expiry of the provided token
	// string and extracts its claims. Returns ErrExpiredToken or
	// ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// TokenLifetime reports the configured validity window of issued
	// tokens. Handlers use it to populate expires_in in login responses.
	TokenLifetime() time.Duration
}

// Claims carries the identity assertion extracted from a validated token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID int64

	// IssuedAt is when the token was minted.
	IssuedAt time.Time

	// ExpiresAt is when the token stops being valid.
	ExpiresAt time.Time

	// ID is the unique token identifier (jti claim).
	ID string
}
