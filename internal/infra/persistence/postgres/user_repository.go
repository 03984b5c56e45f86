package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"
	"github.com/Abhithakur7080/your-video/internal/domain/repository"
	"github.com/Abhithakur7080/your-video/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
// The read is pinned to the primary so credential checks never see replica lag.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByUsernameOrEmail retrieves the first user matching either handle.
func (repo *userRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	username = normalizeHandle(username)
	email = normalizeHandle(email)
	if username == "" && email == "" {
		return nil, repository.ErrUserNotFound
	}

	tx := repo.db.WithContext(ctx).Clauses(dbresolver.Write)
	switch {
	case username != "" && email != "":
		tx = tx.Where("username = ? OR email = ?", username, email)
	case username != "":
		tx = tx.Where("username = ?", username)
	default:
		tx = tx.Where("email = ?", email)
	}

	var userM model.UserModel
	if err := tx.Order("created_at ASC").First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username or email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.Username = userM.Username
	user.Email = userM.Email
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateAccount changes the display name and email.
func (repo *userRepository) UpdateAccount(ctx context.Context, id uuid.UUID, fullName, email string) error {
	return repo.update(ctx, id, map[string]any{
		"full_name": strings.TrimSpace(fullName),
		"email":     normalizeHandle(email),
	}, "failed to update account")
}

// UpdatePassword stores a new password hash.
func (repo *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return repo.update(ctx, id, map[string]any{"password_hash": passwordHash}, "failed to update password")
}

// UpdateAvatar replaces the avatar handle.
func (repo *userRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, avatar entity.Asset) error {
	return repo.update(ctx, id, map[string]any{
		"avatar_key": avatar.ID,
		"avatar_url": avatar.URL,
	}, "failed to update avatar")
}

// UpdateCoverImage replaces the cover image handle.
func (repo *userRepository) UpdateCoverImage(ctx context.Context, id uuid.UUID, cover entity.Asset) error {
	return repo.update(ctx, id, map[string]any{
		"cover_image_key": cover.ID,
		"cover_image_url": cover.URL,
	}, "failed to update cover image")
}

// SetRefreshTokenHash replaces or clears the stored refresh token hash.
func (repo *userRepository) SetRefreshTokenHash(ctx context.Context, id uuid.UUID, hash *string) error {
	return repo.update(ctx, id, map[string]any{"refresh_token_hash": hash}, "failed to store refresh token")
}

// SwapRefreshTokenHash is a compare-and-swap on the stored hash. Exactly one of
// two concurrent rotations presenting the same token wins.
func (repo *userRepository) SwapRefreshTokenHash(ctx context.Context, id uuid.UUID, expected, next string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND refresh_token_hash = ?", id, expected).
		Updates(map[string]any{"refresh_token_hash": next, "updated_at": time.Now()})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to rotate refresh token")
	}

	return result.RowsAffected == 1, nil
}

// AppendWatchHistory records videoID once per user. Re-watching keeps the original position.
func (repo *userRepository) AppendWatchHistory(ctx context.Context, userID, videoID uuid.UUID) error {
	entry := &model.WatchHistoryModel{UserID: userID, VideoID: videoID, CreatedAt: time.Now()}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(entry).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append watch history")
	}

	return nil
}

// RemoveFromWatchHistories drops videoID from every user's history.
func (repo *userRepository) RemoveFromWatchHistories(ctx context.Context, videoID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&model.WatchHistoryModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove video from watch histories")
	}

	return nil
}

func (repo *userRepository) update(ctx context.Context, id uuid.UUID, values map[string]any, failure string) error {
	values["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage(failure)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, failure)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func normalizeHandle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:               data.ID,
		Username:         data.Username,
		Email:            data.Email,
		FullName:         data.FullName,
		Avatar:           entity.Asset{ID: data.AvatarKey, URL: data.AvatarURL},
		PasswordHash:     data.PasswordHash,
		RefreshTokenHash: data.RefreshTokenHash,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
	if data.CoverImageKey != nil && data.CoverImageURL != nil {
		user.CoverImage = &entity.Asset{ID: *data.CoverImageKey, URL: *data.CoverImageURL}
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:               data.ID,
		Username:         normalizeHandle(data.Username),
		Email:            normalizeHandle(data.Email),
		FullName:         strings.TrimSpace(data.FullName),
		AvatarKey:        data.Avatar.ID,
		AvatarURL:        data.Avatar.URL,
		PasswordHash:     data.PasswordHash,
		RefreshTokenHash: data.RefreshTokenHash,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
	if data.CoverImage != nil {
		userM.CoverImageKey = &data.CoverImage.ID
		userM.CoverImageURL = &data.CoverImage.URL
	}

	return userM
}
