package models

import (
	"time"
)

// Session is a bearer token issued at login
type Session struct {
	Token     string    `json:"-" db:"token" bson:"_id"`
	UserID    string    `json:"userId" db:"user_id" bson:"userId"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at" bson:"expiresAt"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" bson:"createdAt"`
}

// Expired reports whether the session is no longer valid at now
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
