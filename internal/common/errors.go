// Package common defines shared constants and sentinel errors used across
// client and server layers of TabSense. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal      = errors.New("internal error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrorForbidden     = errors.New("forbidden")
	ErrorAlreadyExists = errors.New("already exists")

	// Credential check failures. Unknown username and wrong password are
	// deliberately conflated into this single value so the login error
	// message cannot be used to enumerate accounts.
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Validation errors (bad input shape).
	ErrorNotAudio = errors.New("selected file is not an audio file")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
