package impl

import (
	"context"
	"testing"

	"github.com/Abhithakur7080/your-video/config"
	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialService_IssueStoresFingerprint(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")

	pair, err := env.credentials.Issue(ctx, alice.UserID)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.RefreshTokenExpiresAt.After(pair.AccessTokenExpiresAt))

	user, err := env.userRepo.FindByID(ctx, alice.UserID)
	require.NoError(t, err)
	require.NotNil(t, user.RefreshTokenHash)
	assert.Equal(t, env.tokens.Fingerprint(pair.RefreshToken), *user.RefreshTokenHash)
	assert.NotEqual(t, pair.RefreshToken, *user.RefreshTokenHash)
}

func TestCredentialService_IssueUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.credentials.Issue(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestCredentialService_VerifyAccess(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")

	pair, err := env.credentials.Issue(ctx, alice.UserID)
	require.NoError(t, err)

	identity, err := env.credentials.VerifyAccess(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, identity.UserID)
	assert.Equal(t, "alice", identity.Username)
	assert.Equal(t, "alice@example.com", identity.Email)
}

func TestCredentialService_VerifyAccessRejects(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")

	pair, err := env.credentials.Issue(ctx, alice.UserID)
	require.NoError(t, err)
	ghostAccess, _, err := env.tokens.GenerateTokens(uuid.New())
	require.NoError(t, err)

	tests := map[string]string{
		"empty":         "",
		"garbage":       "not.a.jwt",
		"refresh token": pair.RefreshToken,
		"unknown user":  ghostAccess.Token,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := env.credentials.VerifyAccess(ctx, token)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		})
	}
}

func TestCredentialService_RotateInvalidatesPresentedToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")

	first, err := env.credentials.Issue(ctx, alice.UserID)
	require.NoError(t, err)

	second, err := env.credentials.Rotate(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	_, err = env.credentials.Rotate(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrTokenReuseDetected)

	// The newest token keeps working after a reuse attempt.
	third, err := env.credentials.Rotate(ctx, second.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, third.AccessToken)
}

func TestCredentialService_IssueReplacesPreviousSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")

	first, err := env.credentials.Issue(ctx, alice.UserID)
	require.NoError(t, err)
	_, err = env.credentials.Issue(ctx, alice.UserID)
	require.NoError(t, err)

	_, err = env.credentials.Rotate(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrTokenReuseDetected)
}

func TestCredentialService_RevokeEndsSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")

	pair, err := env.credentials.Issue(ctx, alice.UserID)
	require.NoError(t, err)
	require.NoError(t, env.credentials.Revoke(ctx, alice.UserID))

	user, err := env.userRepo.FindByID(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Nil(t, user.RefreshTokenHash)

	_, err = env.credentials.Rotate(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrTokenReuseDetected)
}

func TestCredentialService_RotateRejectsInvalidTokens(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")

	pair, err := env.credentials.Issue(ctx, alice.UserID)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":        "",
		"garbage":      "garbage",
		"access token": pair.AccessToken,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := env.credentials.Rotate(ctx, token)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
			assert.NotErrorIs(t, err, domainerrors.ErrTokenReuseDetected)
		})
	}
}

func TestCredentialService_RevokeOnTokenReuse(t *testing.T) {
	env := newTestEnv(t, func(cfg *config.Config) { cfg.Auth.RevokeOnTokenReuse = true })
	ctx := context.Background()
	alice := env.seedUser(t, "alice")

	first, err := env.credentials.Issue(ctx, alice.UserID)
	require.NoError(t, err)
	second, err := env.credentials.Rotate(ctx, first.RefreshToken)
	require.NoError(t, err)

	_, err = env.credentials.Rotate(ctx, first.RefreshToken)
	require.ErrorIs(t, err, domainerrors.ErrTokenReuseDetected)

	// Reuse signed the user out, so the legitimate token is gone too.
	_, err = env.credentials.Rotate(ctx, second.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrTokenReuseDetected)
}
