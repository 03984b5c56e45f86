// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account and, at the same time, the channel other users subscribe to.
type User struct {
	ID               uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username         string    // Unique handle, stored lowercased.
	Email            string    // Unique contact email, stored lowercased.
	FullName         string    // Display name.
	Avatar           Asset     // Required profile picture.
	CoverImage       *Asset    // Optional channel banner. Nil when never uploaded.
	PasswordHash     string    // bcrypt hash of the password. Never leaves the persistence/usecase layers.
	RefreshTokenHash *string   // SHA-256 of the single active refresh token. Nil when signed out.
	CreatedAt        time.Time // Timestamp of when this user account was created.
	UpdatedAt        time.Time // Timestamp of the last modification to this user's data.
}

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Email    string
}
