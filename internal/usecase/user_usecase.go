// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	"github.com/Abhithakur7080/your-video/internal/domain/view"
)

// --- Input DTOs ---

// Upload is a single file taken from a multipart request.
type Upload struct {
	Filename string
	Content  io.Reader
}

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	FullName   string
	Email      string
	Username   string
	Password   string
	Avatar     *Upload // Required.
	CoverImage *Upload // Optional.
}

// LoginInput accepts either the username or the email.
type LoginInput struct {
	Username string
	Email    string
	Password string
}

// ChangePasswordInput defines the data required to change the current password.
type ChangePasswordInput struct {
	OldPassword     string
	NewPassword     string
	ConfirmPassword string
}

// UpdateAccountInput holds the editable profile fields.
type UpdateAccountInput struct {
	FullName string
	Email    string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	User   *entity.User
	Tokens *entity.TokenPair
}

// UserUsecase defines the interface for account and channel operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, identity *entity.Identity) error
	RefreshTokens(ctx context.Context, refreshToken string) (*entity.TokenPair, error)
	ChangePassword(ctx context.Context, identity *entity.Identity, input ChangePasswordInput) error
	CurrentUser(ctx context.Context, identity *entity.Identity) (*entity.User, error)
	UpdateAccount(ctx context.Context, identity *entity.Identity, input UpdateAccountInput) (*entity.User, error)
	UpdateAvatar(ctx context.Context, identity *entity.Identity, file *Upload) (*entity.User, error)
	UpdateCoverImage(ctx context.Context, identity *entity.Identity, file *Upload) (*entity.User, error)
	ChannelProfile(ctx context.Context, identity *entity.Identity, username string) (*view.ChannelProfile, error)
	WatchHistory(ctx context.Context, identity *entity.Identity, page view.PageRequest) (*view.Page[view.VideoCard], error)
}
