package usecase

import (
	"context"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"

	"github.com/google/uuid"
)

// CredentialManager owns the two-token session of a user. A user has at most
// one valid refresh token at a time.
type CredentialManager interface {
	// Issue signs a new pair and makes its refresh token the only valid one.
	Issue(ctx context.Context, userID uuid.UUID) (*entity.TokenPair, error)

	// VerifyAccess resolves an access token to the identity it was issued for.
	VerifyAccess(ctx context.Context, token string) (*entity.Identity, error)

	// Rotate exchanges the current refresh token for a new pair. Presenting
	// any other refresh token fails with TokenReuseDetected.
	Rotate(ctx context.Context, refreshToken string) (*entity.TokenPair, error)

	// Revoke signs the user out by forgetting the stored refresh token.
	Revoke(ctx context.Context, userID uuid.UUID) error
}
