package impl

import (
	"context"
	"strings"
	"testing"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"
	"github.com/Abhithakur7080/your-video/internal/domain/view"
	"github.com/Abhithakur7080/your-video/internal/testutil"
	"github.com/Abhithakur7080/your-video/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerInput(username string) usecase.RegisterInput {
	return usecase.RegisterInput{
		FullName: "  " + strings.ToUpper(username) + "  ",
		Email:    " " + strings.ToUpper(username) + "@Example.com ",
		Username: " " + strings.ToUpper(username) + " ",
		Password: "s3cret-pass",
		Avatar:   pngUpload("avatar.png"),
	}
}

func TestUserService_Register(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	input := registerInput("alice")
	input.CoverImage = pngUpload("cover.png")

	user, err := env.users.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "ALICE", user.FullName)
	assert.True(t, strings.HasPrefix(user.Avatar.ID, "avatar/"))
	require.NotNil(t, user.CoverImage)
	assert.True(t, strings.HasPrefix(user.CoverImage.ID, "cover-image/"))
	assert.True(t, env.hasher.Check("s3cret-pass", user.PasswordHash))

	assert.ElementsMatch(t, []string{user.Avatar.ID, user.CoverImage.ID}, env.blobKeys(t))
}

func TestUserService_RegisterValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	input := registerInput("alice")
	input.FullName = "   "
	input.Password = ""
	_, err := env.users.Register(ctx, input)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, []string{"fullName is required", "password is required"}, appErr.Details())

	input = registerInput("alice")
	input.Avatar = nil
	_, err = env.users.Register(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Empty(t, env.blobKeys(t))
}

func TestUserService_RegisterDuplicate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	testutil.SeedUser(t, env.db, "alice")

	input := registerInput("alice")
	input.Email = "someone-else@example.com"
	_, err := env.users.Register(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	input = registerInput("bob")
	input.Email = "ALICE@example.com"
	_, err = env.users.Register(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	assert.Empty(t, env.blobKeys(t), "nothing is uploaded for a duplicate account")
}

func TestUserService_RegisterRemovesAvatarWhenCoverIsRejected(t *testing.T) {
	env := newTestEnv(t)

	input := registerInput("alice")
	input.CoverImage = textUpload("cover.txt")

	_, err := env.users.Register(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Empty(t, env.blobKeys(t))
}

func TestUserService_Login(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.Register(ctx, registerInput("alice"))
	require.NoError(t, err)

	byUsername, err := env.users.Login(ctx, usecase.LoginInput{Username: "Alice", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "alice", byUsername.User.Username)

	byEmail, err := env.users.Login(ctx, usecase.LoginInput{Email: "alice@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	// The second login replaced the first session.
	_, err = env.users.RefreshTokens(ctx, byUsername.Tokens.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrTokenReuseDetected)
	_, err = env.users.RefreshTokens(ctx, byEmail.Tokens.RefreshToken)
	assert.NoError(t, err)
}

func TestUserService_LoginFailures(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.Register(ctx, registerInput("alice"))
	require.NoError(t, err)

	_, err = env.users.Login(ctx, usecase.LoginInput{Password: "s3cret-pass"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = env.users.Login(ctx, usecase.LoginInput{Username: "nobody", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	_, err = env.users.Login(ctx, usecase.LoginInput{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Logout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.Register(ctx, registerInput("alice"))
	require.NoError(t, err)
	out, err := env.users.Login(ctx, usecase.LoginInput{Username: "alice", Password: "s3cret-pass"})
	require.NoError(t, err)

	identity := &entity.Identity{UserID: out.User.ID}
	require.NoError(t, env.users.Logout(ctx, identity))

	_, err = env.users.RefreshTokens(ctx, out.Tokens.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrTokenReuseDetected)

	assert.ErrorIs(t, env.users.Logout(ctx, nil), domainerrors.ErrUnauthenticated)
}

func TestUserService_ChangePassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.Register(ctx, registerInput("alice"))
	require.NoError(t, err)
	identity := &entity.Identity{UserID: user.ID}

	err = env.users.ChangePassword(ctx, identity, usecase.ChangePasswordInput{
		OldPassword: "s3cret-pass", NewPassword: "next-pass", ConfirmPassword: "other-pass",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)

	err = env.users.ChangePassword(ctx, identity, usecase.ChangePasswordInput{
		OldPassword: "wrong", NewPassword: "next-pass", ConfirmPassword: "next-pass",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	err = env.users.ChangePassword(ctx, identity, usecase.ChangePasswordInput{
		OldPassword: "s3cret-pass", NewPassword: "next-pass", ConfirmPassword: "next-pass",
	})
	require.NoError(t, err)

	_, err = env.users.Login(ctx, usecase.LoginInput{Username: "alice", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	_, err = env.users.Login(ctx, usecase.LoginInput{Username: "alice", Password: "next-pass"})
	assert.NoError(t, err)
}

func TestUserService_UpdateAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")
	env.seedUser(t, "bob")

	user, err := env.users.UpdateAccount(ctx, alice, usecase.UpdateAccountInput{FullName: "Alice Liddell", Email: "Alice@Wonder.land"})
	require.NoError(t, err)
	assert.Equal(t, "Alice Liddell", user.FullName)
	assert.Equal(t, "alice@wonder.land", user.Email)

	_, err = env.users.UpdateAccount(ctx, alice, usecase.UpdateAccountInput{FullName: "Alice", Email: "bob@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	_, err = env.users.UpdateAccount(ctx, alice, usecase.UpdateAccountInput{FullName: "Alice"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_UpdateAvatarReplacesBlob(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.Register(ctx, registerInput("alice"))
	require.NoError(t, err)
	identity := &entity.Identity{UserID: user.ID}
	old := user.Avatar.ID

	updated, err := env.users.UpdateAvatar(ctx, identity, pngUpload("new.png"))
	require.NoError(t, err)
	assert.NotEqual(t, old, updated.Avatar.ID)
	assert.Equal(t, []string{updated.Avatar.ID}, env.blobKeys(t))

	_, err = env.users.UpdateAvatar(ctx, identity, textUpload("notes.txt"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, []string{updated.Avatar.ID}, env.blobKeys(t))
}

func TestUserService_UpdateCoverImage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.Register(ctx, registerInput("alice"))
	require.NoError(t, err)
	require.Nil(t, user.CoverImage)

	updated, err := env.users.UpdateCoverImage(ctx, &entity.Identity{UserID: user.ID}, pngUpload("cover.png"))
	require.NoError(t, err)
	require.NotNil(t, updated.CoverImage)
	assert.ElementsMatch(t, []string{user.Avatar.ID, updated.CoverImage.ID}, env.blobKeys(t))

	_, err = env.users.UpdateCoverImage(ctx, &entity.Identity{UserID: user.ID}, nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_ChannelProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	testutil.SeedSubscription(t, env.db, bob.UserID, alice.UserID)

	profile, err := env.users.ChannelProfile(ctx, bob, " Alice ")
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, profile.ID)
	assert.EqualValues(t, 1, profile.SubscribersCount)
	assert.True(t, profile.IsSubscribed)

	_, err = env.users.ChannelProfile(ctx, bob, "nobody")
	assert.ErrorIs(t, err, domainerrors.ErrChannelNotFound)

	_, err = env.users.ChannelProfile(ctx, bob, "  ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_WatchHistory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	first := testutil.SeedVideo(t, env.db, alice.UserID, "first")
	second := testutil.SeedVideo(t, env.db, alice.UserID, "second")

	for _, id := range []uuid.UUID{first.ID, second.ID, first.ID} {
		_, err := env.videos.Get(ctx, bob, id)
		require.NoError(t, err)
	}

	history, err := env.users.WatchHistory(ctx, bob, view.NewPageRequest(1, 10, 0))
	require.NoError(t, err)
	require.Len(t, history.Docs, 2)
	assert.Equal(t, "first", history.Docs[0].Title)
	assert.Equal(t, "second", history.Docs[1].Title)

	_, err = env.users.WatchHistory(ctx, nil, view.NewPageRequest(1, 10, 0))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
