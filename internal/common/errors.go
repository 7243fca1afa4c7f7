// Package common defines shared constants and sentinel errors used across
// client and server layers of AuthKeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Registration errors. Reported distinctly so the caller can tell
	// which field collided.
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateEmail    = errors.New("email already taken")

	// ErrInvalidCredentials deliberately covers both an unknown username
	// and a wrong password, so the caller cannot probe which users exist.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Token verification errors.
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenMalformed   = errors.New("malformed token")

	// ErrHashing signals a password hashing failure (entropy exhaustion or
	// a structurally corrupt stored hash), never a simple mismatch.
	ErrHashing = errors.New("hashing error")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")
)
