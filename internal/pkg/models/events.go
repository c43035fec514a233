package models

import "time"

// UserCreatedEvent is published after a successful signup
type UserCreatedEvent struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// PasswordResetEvent is published after a successful password reset
type PasswordResetEvent struct {
	UserID  string    `json:"user_id"`
	Email   string    `json:"email"`
	ResetAt time.Time `json:"reset_at"`
}
