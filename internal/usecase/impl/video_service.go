package impl

import (
	"context"
	"log/slog"

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

// videoService implements the VideoUsecase interface.
type videoService struct {
	videoRepo repository.VideoRepository
	userRepo  repository.UserRepository
	viewRepo  repository.ViewRepository
	blobs     service.BlobStore
	cascade   usecase.CascadeManager
	logger    *slog.Logger
}

// VideoServiceParams holds dependencies for VideoService, injected by Fx.
type VideoServiceParams struct {
	fx.In

	VideoRepo repository.VideoRepository
	UserRepo  repository.UserRepository
	ViewRepo  repository.ViewRepository
	BlobStore service.BlobStore
	Cascade   usecase.CascadeManager
	Logger    *slog.Logger
}

// NewVideoService is the constructor for videoService.
func NewVideoService(params VideoServiceParams) usecase.VideoUsecase {
	return &videoService{
		videoRepo: params.VideoRepo,
		userRepo:  params.UserRepo,
		viewRepo:  params.ViewRepo,
		blobs:     params.BlobStore,
		cascade:   params.Cascade,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *videoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns a page of the feed. Drafts are listed only when the caller filters on their own channel.
func (srv *videoService) List(ctx context.Context, viewer *entity.Identity, input usecase.ListVideosInput) (*view.Page[view.VideoCard], error) {
	sort, ok := view.ParseSort(input.SortBy, input.SortType)
	if !ok {
		return nil, domainerrors.Validation("sortType must be asc or desc")
	}

	feed, err := srv.viewRepo.VideoFeed(ctx, repository.VideoFeedQuery{
		Search:  input.Query,
		OwnerID: input.OwnerID,
		Sort:    sort,
		Page:    input.Page,
		Viewer:  viewerID(viewer),
	})
	if err != nil {
		return nil, translate(err, "failed to compose video feed")
	}

	return feed, nil
}

// Get counts a view, records it in the caller's history and composes the detail.
// A draft is reported as missing to everyone but its owner.
func (srv *videoService) Get(ctx context.Context, viewer *entity.Identity, videoID uuid.UUID) (*view.VideoDetail, error) {
	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, translate(err, "failed to find video")
	}

	viewerUserID := viewerID(viewer)
	if !video.IsPublished && !guard.IsOwner(viewerUserID, video.OwnerID) {
		return nil, domainerrors.ErrVideoNotFound
	}

	if err := srv.videoRepo.IncrementViews(ctx, video.ID); err != nil {
		return nil, translate(err, "failed to count view")
	}
	if viewerUserID != nil {
		if err := srv.userRepo.AppendWatchHistory(ctx, *viewerUserID, video.ID); err != nil {
			return nil, errors.Wrap(err, "failed to record watch history")
		}
	}

	detail, err := srv.viewRepo.VideoDetail(ctx, video.ID, viewerUserID)
	if err != nil {
		return nil, translate(err, "failed to compose video detail")
	}

	return detail, nil
}

// Publish uploads the media and thumbnail and creates a published video.
// Uploaded blobs are deleted again when the video cannot be created.
func (srv *videoService) Publish(ctx context.Context, identity *entity.Identity, input usecase.PublishVideoInput) (*entity.Video, error) {
	identity, err := guard.RequireIdentity(identity)
	if err != nil {
		return nil, err
	}

	video := &entity.Video{OwnerID: identity.UserID, Duration: input.Duration, IsPublished: true}
	if video.Title, err = text("title", input.Title); err != nil {
		return nil, err
	}
	if video.Description, err = text("description", input.Description); err != nil {
		return nil, err
	}
	if input.Duration < 0 {
		return nil, domainerrors.Validation("duration must not be negative")
	}
	if input.VideoFile == nil {
		return nil, domainerrors.Required("videoFile")
	}
	if input.Thumbnail == nil {
		return nil, domainerrors.Required("thumbnail")
	}

	file, err := storeUpload(ctx, srv.blobs, entity.AssetKindVideo, "videoFile", input.VideoFile)
	if err != nil {
		return nil, err
	}
	thumbnail, err := storeUpload(ctx, srv.blobs, entity.AssetKindThumbnail, "thumbnail", input.Thumbnail)
	if err != nil {
		discardAssets(ctx, srv.blobs, srv.log(ctx), *file)

		return nil, err
	}
	video.VideoFile, video.Thumbnail = *file, *thumbnail

	if err := srv.videoRepo.Create(ctx, video); err != nil {
		discardAssets(ctx, srv.blobs, srv.log(ctx), *file, *thumbnail)

		return nil, errors.Wrap(err, "failed to create video")
	}
	srv.log(ctx).Info("Video published", slog.Any("video_id", video.ID), slog.Any("owner_id", video.OwnerID))

	return video, nil
}

// Update edits title and description and optionally swaps the thumbnail.
func (srv *videoService) Update(ctx context.Context, identity *entity.Identity, videoID uuid.UUID, input usecase.UpdateVideoInput) (*entity.Video, error) {
	video, err := srv.ownedVideo(ctx, identity, videoID)
	if err != nil {
		return nil, err
	}

	if video.Title, err = text("title", input.Title); err != nil {
		return nil, err
	}
	if video.Description, err = text("description", input.Description); err != nil {
		return nil, err
	}

	previous := video.Thumbnail
	replaced := false
	if input.Thumbnail != nil {
		thumbnail, err := storeUpload(ctx, srv.blobs, entity.AssetKindThumbnail, "thumbnail", input.Thumbnail)
		if err != nil {
			return nil, err
		}
		video.Thumbnail = *thumbnail
		replaced = true
	}

	if err := srv.videoRepo.UpdateDetails(ctx, video); err != nil {
		if replaced {
			discardAssets(ctx, srv.blobs, srv.log(ctx), video.Thumbnail)
		}

		return nil, translate(err, "failed to update video")
	}
	if replaced {
		discardAssets(ctx, srv.blobs, srv.log(ctx), previous)
	}

	return video, nil
}

// Delete removes the video, then its dependents and blobs. Cleanup failures are
// logged and do not fail the deletion.
func (srv *videoService) Delete(ctx context.Context, identity *entity.Identity, videoID uuid.UUID) error {
	video, err := srv.ownedVideo(ctx, identity, videoID)
	if err != nil {
		return err
	}

	if err := srv.videoRepo.Delete(ctx, video.ID); err != nil {
		return translate(err, "failed to delete video")
	}
	srv.log(ctx).Info("Video deleted", slog.Any("video_id", video.ID))

	if err := srv.cascade.OnDeleteVideo(ctx, video.ID); err != nil {
		srv.log(ctx).Warn("Video cascade incomplete", slog.Any("video_id", video.ID), slog.Any("error", err))
	}
	discardAssets(ctx, srv.blobs, srv.log(ctx), video.VideoFile, video.Thumbnail)

	return nil
}

// TogglePublish flips the publication flag.
func (srv *videoService) TogglePublish(ctx context.Context, identity *entity.Identity, videoID uuid.UUID) (*entity.Video, error) {
	video, err := srv.ownedVideo(ctx, identity, videoID)
	if err != nil {
		return nil, err
	}

	if err := srv.videoRepo.SetPublished(ctx, video.ID, !video.IsPublished); err != nil {
		return nil, translate(err, "failed to toggle publish status")
	}
	video.IsPublished = !video.IsPublished

	return video, nil
}

// ownedVideo loads videoID and checks that identity owns it.
func (srv *videoService) ownedVideo(ctx context.Context, identity *entity.Identity, videoID uuid.UUID) (*entity.Video, error) {
	identity, err := guard.RequireIdentity(identity)
	if err != nil {
		return nil, err
	}

	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, translate(err, "failed to find video")
	}
	if err := guard.RequireOwner(identity, video); err != nil {
		return nil, err
	}

	return video, nil
}
