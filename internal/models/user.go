// ABOUTME: User model for the multi-profile directory.
// ABOUTME: The reserved "default" user always exists and cannot be deleted.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultUserID is the reserved user that always exists.
const DefaultUserID = "default"

// User identifies one profile namespace within shared storage.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUser creates a user with a generated opaque ID. UUIDs contain no
// underscores, which keeps namespaced keys segment-exact.
func NewUser(name string) *User {
	return &User{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// IsDefault reports whether this is the reserved user.
func (u *User) IsDefault() bool {
	return u.ID == DefaultUserID
}
