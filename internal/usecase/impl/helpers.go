// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"
	"github.com/Abhithakur7080/your-video/internal/domain/repository"
	"github.com/Abhithakur7080/your-video/internal/domain/service"
	"github.com/Abhithakur7080/your-video/internal/errors"
	"github.com/Abhithakur7080/your-video/internal/usecase"

	"github.com/google/uuid"
)

// notFoundErrors maps repository sentinels to the errors shown to clients.
var notFoundErrors = []struct {
	sentinel error
	domain   error
}{
	{repository.ErrUserNotFound, domainerrors.ErrUserNotFound},
	{repository.ErrVideoNotFound, domainerrors.ErrVideoNotFound},
	{repository.ErrCommentNotFound, domainerrors.ErrCommentNotFound},
	{repository.ErrTweetNotFound, domainerrors.ErrTweetNotFound},
	{repository.ErrPlaylistNotFound, domainerrors.ErrPlaylistNotFound},
}

// translate turns repository sentinels into domain errors and wraps everything else with message.
func translate(err error, message string) error {
	for _, m := range notFoundErrors {
		if errors.Is(err, m.sentinel) {
			return errors.Wrap(m.domain, message)
		}
	}

	return errors.Wrap(err, message)
}

// viewerID is the user id of an optional caller.
func viewerID(identity *entity.Identity) *uuid.UUID {
	if identity == nil || identity.UserID == uuid.Nil {
		return nil
	}
	id := identity.UserID

	return &id
}

// text trims s and fails with a Required validation error when nothing is left.
func text(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", domainerrors.Required(field)
	}

	return s, nil
}

// storeUpload sends file to the blob store. A nil file fails with Required(field).
func storeUpload(ctx context.Context, blobs service.BlobStore, kind entity.AssetKind, field string, file *usecase.Upload) (*entity.Asset, error) {
	if file == nil || file.Content == nil {
		return nil, domainerrors.Required(field)
	}

	asset, err := blobs.Store(ctx, kind, file.Filename, file.Content)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store %s", field)
	}

	return asset, nil
}

// discardAssets deletes blobs that are no longer referenced. Failures only leave an orphaned blob behind.
func discardAssets(ctx context.Context, blobs service.BlobStore, logger *slog.Logger, assets ...entity.Asset) {
	for _, asset := range assets {
		if asset.ID == "" {
			continue
		}
		if err := blobs.Delete(ctx, asset.ID); err != nil {
			logger.Warn("Failed to delete blob", slog.String("blob_id", asset.ID), slog.Any("error", err))
		}
	}
}
