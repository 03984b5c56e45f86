// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsernameOrEmail returns the first user whose username or email matches.
	// Empty arguments never match.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)

	// Create persists a new user. Duplicate username or email yields ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// UpdateAccount changes the display name and email.
	UpdateAccount(ctx context.Context, id uuid.UUID, fullName, email string) error

	// UpdatePassword stores a new password hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// UpdateAvatar and UpdateCoverImage replace the stored asset handles.
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatar entity.Asset) error
	UpdateCoverImage(ctx context.Context, id uuid.UUID, cover entity.Asset) error

	// SetRefreshTokenHash unconditionally replaces (or, with nil, clears) the stored refresh token hash.
	SetRefreshTokenHash(ctx context.Context, id uuid.UUID, hash *string) error

	// SwapRefreshTokenHash replaces the stored hash only if it still equals expected.
	// It reports whether the swap happened.
	SwapRefreshTokenHash(ctx context.Context, id uuid.UUID, expected, next string) (bool, error)

	// AppendWatchHistory adds videoID to the user's history unless it is already there.
	AppendWatchHistory(ctx context.Context, userID, videoID uuid.UUID) error

	// RemoveFromWatchHistories drops videoID from every user's history.
	RemoveFromWatchHistories(ctx context.Context, videoID uuid.UUID) error
}
