package models

import (
	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID   uuid.UUID `json:"id" db:"id"`             // Primary key
	Username string    `json:"username" db:"username"` // Unique username
	Email    string    `json:"email" db:"email"`       // Unique email
	Password string    `json:"-" db:"password"`        // Bcrypt hash, never serialized
}

// UserResponse represents a registered user returned to the client
// swagger:model UserResponse
type UserResponse struct {
	// User identifier
	// example: 3fa85f64-5717-4562-b3fc-2c963f66afa6
	ID string `json:"id"`

	// Username
	// example: alice
	Username string `json:"username"`

	// Email
	// example: alice@example.com
	Email string `json:"email"`
}

// NewUserResponse maps a stored user to its public representation.
func NewUserResponse(u *UserDB) UserResponse {
	return UserResponse{
		ID:       u.UserID.String(),
		Username: u.Username,
		Email:    u.Email,
	}
}
