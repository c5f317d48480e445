// Package models holds the server-side persistence models.
package models

import "time"

// User is an account record. Records are created at registration and never
// mutated; the password is stored only as a bcrypt hash.
type User struct {
	ID           string
	UserName     string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}
