package model

import "time"

// User represents a registered account in the database.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents user data safe for API responses (no sensitive fields).
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// MessageResponse is the generic message body used by status-only endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
