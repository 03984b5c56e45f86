package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "github.com/Abhithakur7080/your-video/internal/delivery/context"
	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"
	"github.com/Abhithakur7080/your-video/internal/domain/guard"
	"github.com/Abhithakur7080/your-video/internal/domain/repository"
	"github.com/Abhithakur7080/your-video/internal/domain/service"
	"github.com/Abhithakur7080/your-video/internal/domain/view"
	"github.com/Abhithakur7080/your-video/internal/errors"
	"github.com/Abhithakur7080/your-video/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo    repository.UserRepository
	viewRepo    repository.ViewRepository
	hasher      service.PasswordHasher
	credentials usecase.CredentialManager
	blobs       service.BlobStore
	logger      *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ViewRepo    repository.ViewRepository
	Hasher      service.PasswordHasher
	Credentials usecase.CredentialManager
	BlobStore   service.BlobStore
	Logger      *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:    params.UserRepo,
		viewRepo:    params.ViewRepo,
		hasher:      params.Hasher,
		credentials: params.Credentials,
		blobs:       params.BlobStore,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the input, uploads the images and creates the account.
// Uploaded images are deleted again when the account cannot be created.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	user := &entity.User{
		FullName: strings.TrimSpace(input.FullName),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Username: strings.ToLower(strings.TrimSpace(input.Username)),
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"fullName", user.FullName},
		{"email", user.Email},
		{"username", user.Username},
		{"password", input.Password},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name+" is required")
		}
	}
	if len(missing) > 0 {
		return nil, domainerrors.Validation("All fields are required", missing...)
	}
	if input.Avatar == nil {
		return nil, domainerrors.Required("avatar")
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", user.Username), slog.String("email", user.Email))

	_, err := srv.userRepo.FindByUsernameOrEmail(ctx, user.Username, user.Email)
	switch {
	case err == nil:
		return nil, domainerrors.ErrUserAlreadyExists
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}
	user.PasswordHash = hash

	avatar, err := storeUpload(ctx, srv.blobs, entity.AssetKindAvatar, "avatar", input.Avatar)
	if err != nil {
		return nil, err
	}
	user.Avatar = *avatar

	if input.CoverImage != nil {
		cover, err := storeUpload(ctx, srv.blobs, entity.AssetKindCoverImage, "coverImage", input.CoverImage)
		if err != nil {
			discardAssets(ctx, srv.blobs, srv.log(ctx), *avatar)

			return nil, err
		}
		user.CoverImage = cover
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		discardAssets(ctx, srv.blobs, srv.log(ctx), uploadedUserAssets(user)...)
		srv.log(ctx).Error("Failed to create user", slog.String("username", user.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}
	srv.log(ctx).Info("Registration completed", slog.Any("user_id", user.ID))

	return user, nil
}

// Login authenticates by username or email and issues a fresh token pair.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if strings.TrimSpace(input.Username) == "" && strings.TrimSpace(input.Email) == "" {
		return nil, domainerrors.Required("username or email")
	}
	if input.Password == "" {
		return nil, domainerrors.Required("password")
	}

	user, err := srv.userRepo.FindByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return nil, translate(err, "failed to find user")
	}
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected", slog.Any("user_id", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	tokens, err := srv.credentials.Issue(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens")
	}
	srv.log(ctx).Info("User logged in", slog.Any("user_id", user.ID))

	return &usecase.LoginOutput{User: user, Tokens: tokens}, nil
}

// Logout revokes the caller's refresh token.
func (srv *userService) Logout(ctx context.Context, identity *entity.Identity) error {
	identity, err := guard.RequireIdentity(identity)
	if err != nil {
		return err
	}

	return srv.credentials.Revoke(ctx, identity.UserID)
}

// RefreshTokens rotates the presented refresh token.
func (srv *userService) RefreshTokens(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	return srv.credentials.Rotate(ctx, strings.TrimSpace(refreshToken))
}

// ChangePassword replaces the password after checking the old one.
func (srv *userService) ChangePassword(ctx context.Context, identity *entity.Identity, input usecase.ChangePasswordInput) error {
	identity, err := guard.RequireIdentity(identity)
	if err != nil {
		return err
	}
	if input.OldPassword == "" || input.NewPassword == "" || input.ConfirmPassword == "" {
		return domainerrors.Validation("All fields are required")
	}
	if input.NewPassword != input.ConfirmPassword {
		return domainerrors.ErrPasswordMismatch
	}

	user, err := srv.userRepo.FindByID(ctx, identity.UserID)
	if err != nil {
		return translate(err, "failed to find user")
	}
	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		return domainerrors.Validation("Invalid old password")
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}
	if err := srv.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return translate(err, "failed to update password")
	}
	srv.log(ctx).Info("Password changed", slog.Any("user_id", user.ID))

	return nil
}

// CurrentUser loads the caller's account.
func (srv *userService) CurrentUser(ctx context.Context, identity *entity.Identity) (*entity.User, error) {
	identity, err := guard.RequireIdentity(identity)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, identity.UserID)
	if err != nil {
		return nil, translate(err, "failed to find user")
	}

	return user, nil
}

// UpdateAccount changes the display name and email.
func (srv *userService) UpdateAccount(ctx context.Context, identity *entity.Identity, input usecase.UpdateAccountInput) (*entity.User, error) {
	identity, err := guard.RequireIdentity(identity)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.FullName) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, domainerrors.Validation("All fields are required")
	}

	if err := srv.userRepo.UpdateAccount(ctx, identity.UserID, input.FullName, input.Email); err != nil {
		return nil, translate(err, "failed to update account")
	}

	return srv.CurrentUser(ctx, identity)
}

// UpdateAvatar uploads a new avatar and deletes the previous one.
func (srv *userService) UpdateAvatar(ctx context.Context, identity *entity.Identity, file *usecase.Upload) (*entity.User, error) {
	return srv.replaceImage(ctx, identity, entity.AssetKindAvatar, "avatar", file,
		func(user *entity.User) *entity.Asset { return &user.Avatar },
		srv.userRepo.UpdateAvatar,
	)
}

// UpdateCoverImage uploads a new cover image and deletes the previous one.
func (srv *userService) UpdateCoverImage(ctx context.Context, identity *entity.Identity, file *usecase.Upload) (*entity.User, error) {
	return srv.replaceImage(ctx, identity, entity.AssetKindCoverImage, "coverImage", file,
		func(user *entity.User) *entity.Asset { return user.CoverImage },
		srv.userRepo.UpdateCoverImage,
	)
}

func (srv *userService) replaceImage(
	ctx context.Context,
	identity *entity.Identity,
	kind entity.AssetKind,
	field string,
	file *usecase.Upload,
	current func(*entity.User) *entity.Asset,
	save func(context.Context, uuid.UUID, entity.Asset) error,
) (*entity.User, error) {
	user, err := srv.CurrentUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	asset, err := storeUpload(ctx, srv.blobs, kind, field, file)
	if err != nil {
		return nil, err
	}

	if err := save(ctx, user.ID, *asset); err != nil {
		discardAssets(ctx, srv.blobs, srv.log(ctx), *asset)

		return nil, translate(err, "failed to update "+field)
	}

	if previous := current(user); previous != nil {
		discardAssets(ctx, srv.blobs, srv.log(ctx), *previous)
	}
	srv.log(ctx).Info("Replaced user image", slog.Any("user_id", user.ID), slog.String("kind", string(kind)))

	return srv.CurrentUser(ctx, identity)
}

// ChannelProfile composes the channel page of username as seen by the caller.
func (srv *userService) ChannelProfile(ctx context.Context, identity *entity.Identity, username string) (*view.ChannelProfile, error) {
	identity, err := guard.RequireIdentity(identity)
	if err != nil {
		return nil, err
	}
	username, err = text("username", username)
	if err != nil {
		return nil, err
	}

	profile, err := srv.viewRepo.ChannelProfile(ctx, username, viewerID(identity))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrChannelNotFound
		}

		return nil, errors.Wrap(err, "failed to compose channel profile")
	}

	return profile, nil
}

// WatchHistory lists the videos the caller watched, oldest first.
func (srv *userService) WatchHistory(ctx context.Context, identity *entity.Identity, page view.PageRequest) (*view.Page[view.VideoCard], error) {
	identity, err := guard.RequireIdentity(identity)
	if err != nil {
		return nil, err
	}

	history, err := srv.viewRepo.WatchHistory(ctx, identity.UserID, page)
	if err != nil {
		return nil, translate(err, "failed to compose watch history")
	}

	return history, nil
}

func uploadedUserAssets(user *entity.User) []entity.Asset {
	assets := []entity.Asset{user.Avatar}
	if user.CoverImage != nil {
		assets = append(assets, *user.CoverImage)
	}

	return assets
}
