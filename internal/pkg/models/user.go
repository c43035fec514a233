package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The password hash never leaves the
// service; JSON serialization skips it.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UserSummary is the compact projection returned by signup and login
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// PublicUser is the projection returned to authenticated clients
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Summary returns the compact projection of the user
func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Email: u.Email}
}

// Public returns the public projection of the user
func (u *User) Public() *PublicUser {
	return &PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
