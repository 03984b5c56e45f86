package impl

import (
	"context"
	"log/slog"

	"github.com/Abhithakur7080/your-video/config"
	deliverycontext "github.com/Abhithakur7080/your-video/internal/delivery/context"
	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"
	"github.com/Abhithakur7080/your-video/internal/domain/repository"
	"github.com/Abhithakur7080/your-video/internal/domain/service"
	"github.com/Abhithakur7080/your-video/internal/errors"
	"github.com/Abhithakur7080/your-video/internal/infra/metrics"
	"github.com/Abhithakur7080/your-video/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// credentialService implements the CredentialManager interface.
type credentialService struct {
	userRepo      repository.UserRepository
	tokenService  service.TokenService
	revokeOnReuse bool
	logger        *slog.Logger
}

// CredentialServiceParams holds dependencies for CredentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialManager {
	revokeOnReuse := false
	if params.Config != nil && params.Config.Auth != nil {
		revokeOnReuse = params.Config.Auth.RevokeOnTokenReuse
	}

	return &credentialService{
		userRepo:      params.UserRepo,
		tokenService:  params.TokenService,
		revokeOnReuse: revokeOnReuse,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Issue signs a new pair and replaces whatever refresh token the user had.
func (srv *credentialService) Issue(ctx context.Context, userID uuid.UUID) (*entity.TokenPair, error) {
	pair, fingerprint, err := srv.sign(userID)
	if err != nil {
		return nil, err
	}

	if err := srv.userRepo.SetRefreshTokenHash(ctx, userID, &fingerprint); err != nil {
		return nil, translate(err, "failed to store refresh token")
	}
	srv.log(ctx).Debug("Issued token pair", slog.Any("user_id", userID))

	return pair, nil
}

// VerifyAccess validates an access token and loads the user it names.
func (srv *credentialService) VerifyAccess(ctx context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
	}
	if claims.Type != service.TokenTypeAccess {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "not an access token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load token subject")
	}

	return &entity.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// Rotate implements rotation-on-use. The stored fingerprint is replaced with a
// compare-and-swap so two concurrent refreshes with the same token cannot both win.
func (srv *credentialService) Rotate(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	if refreshToken == "" {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}
	if claims.Type != service.TokenTypeRefresh {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "not a refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load token subject")
	}

	presented := srv.tokenService.Fingerprint(refreshToken)
	if user.RefreshTokenHash == nil || *user.RefreshTokenHash != presented {
		return nil, srv.reuseDetected(ctx, user.ID)
	}

	pair, fingerprint, err := srv.sign(user.ID)
	if err != nil {
		return nil, err
	}

	swapped, err := srv.userRepo.SwapRefreshTokenHash(ctx, user.ID, presented, fingerprint)
	if err != nil {
		return nil, translate(err, "failed to rotate refresh token")
	}
	if !swapped {
		// Another refresh with the same token got there first.
		return nil, srv.reuseDetected(ctx, user.ID)
	}
	srv.log(ctx).Debug("Rotated refresh token", slog.Any("user_id", user.ID))

	return pair, nil
}

// Revoke clears the stored refresh token.
func (srv *credentialService) Revoke(ctx context.Context, userID uuid.UUID) error {
	if err := srv.userRepo.SetRefreshTokenHash(ctx, userID, nil); err != nil {
		return translate(err, "failed to revoke refresh token")
	}
	srv.log(ctx).Info("Revoked refresh token", slog.Any("user_id", userID))

	return nil
}

func (srv *credentialService) reuseDetected(ctx context.Context, userID uuid.UUID) error {
	metrics.RecordRefreshTokenReuse()
	srv.log(ctx).Warn("Refresh token reuse detected", slog.Any("user_id", userID), slog.Bool("revoke", srv.revokeOnReuse))

	if srv.revokeOnReuse {
		if err := srv.userRepo.SetRefreshTokenHash(ctx, userID, nil); err != nil {
			srv.log(ctx).Error("Failed to revoke session after token reuse", slog.Any("user_id", userID), slog.Any("error", err))
		}
	}

	return domainerrors.ErrTokenReuseDetected
}

func (srv *credentialService) sign(userID uuid.UUID) (*entity.TokenPair, string, error) {
	access, refresh, err := srv.tokenService.GenerateTokens(userID)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to generate tokens")
	}

	return &entity.TokenPair{
		AccessToken:           access.Token,
		AccessTokenExpiresAt:  access.ExpiresAt,
		RefreshToken:          refresh.Token,
		RefreshTokenExpiresAt: refresh.ExpiresAt,
	}, srv.tokenService.Fingerprint(refresh.Token), nil
}
