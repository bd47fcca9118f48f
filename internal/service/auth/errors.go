package auth

import "errors"

// Common authentication service errors.
var (
	// ErrInvalidToken indicates the token is malformed or its signature
	// doesn't match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrInvalidCredentials indicates an email/password pair that does not
	// match a stored credential. Callers surface it identically for unknown
	// emails and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
