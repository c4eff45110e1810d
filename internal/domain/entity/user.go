// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core entity in the system, representing a unique "account".
// It carries the credential digest; the presentation-facing data lives in Profile.
type User struct {
	ID           int64     // Numeric identifier for the user.
	Email        string    // The user's login identifier; unique across the system.
	PasswordHash string    // Bcrypt digest of the user's password. Never the plaintext.
	IsActive     bool      // Inactive accounts cannot log in.
	RoleID       int64     // Foreign key to the role assigned to this user.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// UserStats is an aggregate projection over the user table.
type UserStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}
