package models

import (
	"time"
)

// User represents a registered author
type User struct {
	ID           string    `json:"id" db:"id" bson:"_id"`
	Name         string    `json:"name" db:"name" bson:"name"`
	Email        string    `json:"email" db:"email" bson:"email"`
	Bio          string    `json:"bio" db:"bio" bson:"bio"`
	PasswordHash string    `json:"-" db:"password_hash" bson:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at" bson:"updatedAt"`
}

// OwnerSummary is the reduced view of a user attached to posts and comments
type OwnerSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Summary returns the owner summary for u
func (u *User) Summary() *OwnerSummary {
	if u == nil {
		return nil
	}
	return &OwnerSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

const (
	MaxNameLength     = 50
	MaxBioLength      = 500
	MinPasswordLength = 6
)

// RegisterRequest is the body of POST /api/users/register
type RegisterRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// LoginRequest is the body of POST /api/users/login
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// UpdateUserRequest carries the optional profile fields of PUT /api/users/me.
// A nil field is left unchanged.
type UpdateUserRequest struct {
	Name *string `json:"name" form:"name"`
	Bio  *string `json:"bio" form:"bio"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
