package impl

import (
	"context"
	"testing"

	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"
	"github.com/Abhithakur7080/your-video/internal/domain/view"
	"github.com/Abhithakur7080/your-video/internal/testutil"
	"github.com/Abhithakur7080/your-video/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaylistService_CreateAndUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")

	_, err := env.playlists.Create(ctx, alice, usecase.PlaylistInput{Name: "mix"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	playlist, err := env.playlists.Create(ctx, alice, usecase.PlaylistInput{Name: " mix ", Description: "favourites"})
	require.NoError(t, err)
	assert.Equal(t, "mix", playlist.Name)
	assert.Empty(t, playlist.VideoIDs)

	_, err = env.playlists.Update(ctx, bob, playlist.ID, usecase.PlaylistInput{Name: "stolen", Description: "mine"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	updated, err := env.playlists.Update(ctx, alice, playlist.ID, usecase.PlaylistInput{Name: "mix 2", Description: "better"})
	require.NoError(t, err)
	assert.Equal(t, "mix 2", updated.Name)

	detail, err := env.playlists.Get(ctx, bob, playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, "better", detail.Description)
	assert.False(t, detail.IsOwner)

	_, err = env.playlists.Get(ctx, nil, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrPlaylistNotFound)
}

func TestPlaylistService_AddVideoRequiresOwningBoth(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	aliceVideo := testutil.SeedVideo(t, env.db, alice.UserID, "alice video")
	bobVideo := testutil.SeedVideo(t, env.db, bob.UserID, "bob video")
	playlist := testutil.SeedPlaylist(t, env.db, alice.UserID, "mix")

	_, err := env.playlists.AddVideo(ctx, alice, playlist.ID, bobVideo.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = env.playlists.AddVideo(ctx, bob, playlist.ID, bobVideo.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = env.playlists.AddVideo(ctx, alice, playlist.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)

	_, err = env.playlists.AddVideo(ctx, alice, uuid.New(), aliceVideo.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPlaylistNotFound)

	assert.Zero(t, testutil.Count(t, env.db, "playlist_videos", "1 = 1"))
}

func TestPlaylistService_AddVideoKeepsEntriesUnique(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")
	first := testutil.SeedVideo(t, env.db, alice.UserID, "first")
	second := testutil.SeedVideo(t, env.db, alice.UserID, "second")
	playlist := testutil.SeedPlaylist(t, env.db, alice.UserID, "mix")

	for _, id := range []uuid.UUID{first.ID, second.ID, first.ID} {
		_, err := env.playlists.AddVideo(ctx, alice, playlist.ID, id)
		require.NoError(t, err)
	}

	got, err := env.playlistRepo.FindByID(ctx, playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first.ID, second.ID}, got.VideoIDs)

	removed, err := env.playlists.RemoveVideo(ctx, alice, playlist.ID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{second.ID}, removed.VideoIDs)
}

func TestPlaylistService_DetailShowsPublishedVideosOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")
	public := testutil.SeedVideo(t, env.db, alice.UserID, "public", testutil.WithViews(10))
	draft := testutil.SeedVideo(t, env.db, alice.UserID, "draft", testutil.Unpublished(), testutil.WithViews(99))
	playlist := testutil.SeedPlaylist(t, env.db, alice.UserID, "mix", public.ID, draft.ID)

	detail, err := env.playlists.Get(ctx, alice, playlist.ID)
	require.NoError(t, err)
	require.Len(t, detail.Videos, 1)
	assert.Equal(t, public.ID, detail.Videos[0].ID)
	assert.EqualValues(t, 1, detail.TotalVideos)
	assert.EqualValues(t, 10, detail.TotalViews)
	assert.True(t, detail.IsOwner)
}

func TestPlaylistService_DeleteAndList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	video := testutil.SeedVideo(t, env.db, alice.UserID, "intro")
	kept := testutil.SeedPlaylist(t, env.db, alice.UserID, "kept", video.ID)
	doomed := testutil.SeedPlaylist(t, env.db, alice.UserID, "doomed", video.ID)

	assert.ErrorIs(t, env.playlists.Delete(ctx, bob, doomed.ID), domainerrors.ErrForbidden)
	require.NoError(t, env.playlists.Delete(ctx, alice, doomed.ID))
	assert.ErrorIs(t, env.playlists.Delete(ctx, alice, doomed.ID), domainerrors.ErrPlaylistNotFound)

	assert.EqualValues(t, 1, testutil.Count(t, env.db, "playlist_videos", "1 = 1"))

	page, err := env.playlists.ListByUser(ctx, bob, alice.UserID, view.NewPageRequest(1, 10, 0))
	require.NoError(t, err)
	require.Len(t, page.Docs, 1)
	assert.Equal(t, kept.ID, page.Docs[0].ID)
	assert.EqualValues(t, 1, page.Docs[0].TotalVideos)

	_, err = env.playlists.ListByUser(ctx, nil, alice.UserID, view.NewPageRequest(1, 10, 0))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
