package impl

import (
	"context"
	"errors"
	"testing"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"
	"github.com/Abhithakur7080/your-video/internal/domain/view"
	mockUsecase "github.com/Abhithakur7080/your-video/internal/mocks/usecase"
	"github.com/Abhithakur7080/your-video/internal/testutil"
	"github.com/Abhithakur7080/your-video/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func publishInput(title string) usecase.PublishVideoInput {
	return usecase.PublishVideoInput{
		Title:       title,
		Description: title + " description",
		Duration:    42,
		VideoFile:   mp4Upload("clip.mp4"),
		Thumbnail:   pngUpload("thumb.png"),
	}
}

func feedTitles(page *view.Page[view.VideoCard]) []string {
	titles := make([]string, 0, len(page.Docs))
	for _, doc := range page.Docs {
		titles = append(titles, doc.Title)
	}

	return titles
}

func TestVideoService_Publish(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice")

	video, err := env.videos.Publish(context.Background(), alice, publishInput("intro"))
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, video.OwnerID)
	assert.True(t, video.IsPublished)
	assert.InDelta(t, 42, video.Duration, 0.001)
	assert.ElementsMatch(t, []string{video.VideoFile.ID, video.Thumbnail.ID}, env.blobKeys(t))
}

func TestVideoService_PublishFailures(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")

	_, err := env.videos.Publish(ctx, nil, publishInput("intro"))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	input := publishInput("  ")
	_, err = env.videos.Publish(ctx, alice, input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	input = publishInput("intro")
	input.Thumbnail = nil
	_, err = env.videos.Publish(ctx, alice, input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	// A rejected thumbnail removes the already stored video file.
	input = publishInput("intro")
	input.Thumbnail = mp4Upload("not-an-image.mp4")
	_, err = env.videos.Publish(ctx, alice, input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	assert.Empty(t, env.blobKeys(t))
	assert.Zero(t, testutil.Count(t, env.db, "videos", "1 = 1"))
}

func TestVideoService_DraftsStayOutOfPublicFeed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")
	draft := testutil.SeedVideo(t, env.db, alice.UserID, "draft", testutil.Unpublished())
	testutil.SeedVideo(t, env.db, alice.UserID, "public")

	feed, err := env.videos.List(ctx, nil, usecase.ListVideosInput{Page: view.NewPageRequest(1, 10, 0)})
	require.NoError(t, err)
	assert.Equal(t, []string{"public"}, feedTitles(feed))

	toggled, err := env.videos.TogglePublish(ctx, alice, draft.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsPublished)

	feed, err = env.videos.List(ctx, nil, usecase.ListVideosInput{Page: view.NewPageRequest(1, 10, 0)})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"public", "draft"}, feedTitles(feed))
}

func TestVideoService_ListSortValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.videos.List(ctx, nil, usecase.ListVideosInput{SortType: "sideways", Page: view.NewPageRequest(1, 10, 0)})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = env.videos.List(ctx, nil, usecase.ListVideosInput{SortBy: "password", Page: view.NewPageRequest(1, 10, 0)})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestVideoService_GetCountsViewAndHistory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	video := testutil.SeedVideo(t, env.db, alice.UserID, "intro", testutil.WithViews(5))

	detail, err := env.videos.Get(ctx, bob, video.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 6, detail.Views)
	assert.False(t, detail.IsOwner)
	assert.EqualValues(t, 1, testutil.Count(t, env.db, "watch_history", "user_id = ? AND video_id = ?", bob.UserID, video.ID))

	detail, err = env.videos.Get(ctx, nil, video.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 7, detail.Views)
	assert.EqualValues(t, 1, testutil.Count(t, env.db, "watch_history", "1 = 1"))
}

func TestVideoService_GetDraft(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	draft := testutil.SeedVideo(t, env.db, alice.UserID, "draft", testutil.Unpublished())

	_, err := env.videos.Get(ctx, bob, draft.ID)
	assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
	_, err = env.videos.Get(ctx, nil, draft.ID)
	assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)

	detail, err := env.videos.Get(ctx, alice, draft.ID)
	require.NoError(t, err)
	assert.True(t, detail.IsOwner)

	_, err = env.videos.Get(ctx, alice, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
}

func TestVideoService_OwnerGatedMutations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	video := testutil.SeedVideo(t, env.db, alice.UserID, "intro")

	_, err := env.videos.Update(ctx, bob, video.ID, usecase.UpdateVideoInput{Title: "mine", Description: "now"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	// Invalid payloads from a non-owner are still Forbidden.
	_, err = env.videos.Update(ctx, bob, video.ID, usecase.UpdateVideoInput{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = env.videos.TogglePublish(ctx, bob, video.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	assert.ErrorIs(t, env.videos.Delete(ctx, bob, video.ID), domainerrors.ErrForbidden)
	assert.EqualValues(t, 1, testutil.Count(t, env.db, "videos", "id = ?", video.ID))
}

func TestVideoService_UpdateReplacesThumbnail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")

	video, err := env.videos.Publish(ctx, alice, publishInput("intro"))
	require.NoError(t, err)
	oldThumbnail := video.Thumbnail.ID

	updated, err := env.videos.Update(ctx, alice, video.ID, usecase.UpdateVideoInput{
		Title: "intro v2", Description: "better", Thumbnail: pngUpload("new.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "intro v2", updated.Title)
	assert.NotEqual(t, oldThumbnail, updated.Thumbnail.ID)
	assert.ElementsMatch(t, []string{video.VideoFile.ID, updated.Thumbnail.ID}, env.blobKeys(t))

	stored, err := env.videoRepo.FindByID(ctx, video.ID)
	require.NoError(t, err)
	assert.Equal(t, "better", stored.Description)
	assert.Equal(t, updated.Thumbnail, stored.Thumbnail)
}

func TestVideoService_DeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")

	video, err := env.videos.Publish(ctx, alice, publishInput("intro"))
	require.NoError(t, err)

	var commentIDs []uuid.UUID
	for _, content := range []string{"one", "two", "three"} {
		c := testutil.SeedComment(t, env.db, bob.UserID, string(entity.CommentParentVideo), video.ID, content)
		commentIDs = append(commentIDs, c.ID)
	}
	testutil.SeedLike(t, env.db, bob.UserID, string(entity.LikeKindVideo), video.ID)
	testutil.SeedLike(t, env.db, alice.UserID, string(entity.LikeKindVideo), video.ID)
	testutil.SeedLike(t, env.db, alice.UserID, string(entity.LikeKindComment), commentIDs[0])
	testutil.SeedPlaylist(t, env.db, alice.UserID, "mix", video.ID)
	require.NoError(t, env.userRepo.AppendWatchHistory(ctx, bob.UserID, video.ID))

	require.NoError(t, env.videos.Delete(ctx, alice, video.ID))

	_, err = env.videoRepo.FindByID(ctx, video.ID)
	assert.Error(t, err)
	for _, id := range commentIDs {
		_, err := env.commentRepo.FindByID(ctx, id)
		assert.Error(t, err)
	}
	assert.Zero(t, testutil.Count(t, env.db, "likes", "1 = 1"))
	assert.Zero(t, testutil.Count(t, env.db, "playlist_videos", "1 = 1"))
	assert.Zero(t, testutil.Count(t, env.db, "watch_history", "1 = 1"))
	assert.Empty(t, env.blobKeys(t))
}

func TestVideoService_DeleteSucceedsWhenCascadeFails(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")
	video := testutil.SeedVideo(t, env.db, alice.UserID, "intro")

	cascade := mockUsecase.NewMockCascadeManager(t)
	cascade.EXPECT().
		OnDeleteVideo(mock.Anything, video.ID).
		Return(errors.New("likes table locked"))
	videos := env.newVideoService(cascade)

	require.NoError(t, videos.Delete(ctx, alice, video.ID))
	assert.Zero(t, testutil.Count(t, env.db, "videos", "id = ?", video.ID))
}
