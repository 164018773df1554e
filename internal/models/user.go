package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrUserAlreadyExists reports a username or email that is already taken.
var ErrUserAlreadyExists = errors.New("username or email already exists")

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	Email        string    `json:"email" db:"email"`           // User email
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt password hash
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
