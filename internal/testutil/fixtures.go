package testutil

import (
	"strings"
	"testing"
	"time"

	"github.com/Abhithakur7080/your-video/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// SeedUser inserts a user named username with a placeholder password hash.
func SeedUser(t testing.TB, db *gorm.DB, username string) *model.UserModel {
	t.Helper()

	m := &model.UserModel{
		Username:     username,
		Email:        username + "@example.com",
		FullName:     strings.ToUpper(username[:1]) + username[1:],
		AvatarKey:    "avatar/" + username + ".png",
		AvatarURL:    "http://media.test/avatar/" + username + ".png",
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, db.Create(m).Error)

	return m
}

// VideoOption tweaks a seeded video.
type VideoOption func(*model.VideoModel)

// Unpublished seeds the video as a draft.
func Unpublished() VideoOption {
	return func(m *model.VideoModel) { m.IsPublished = false }
}

// WithViews sets the view counter.
func WithViews(n int64) VideoOption {
	return func(m *model.VideoModel) { m.Views = n }
}

// WithDescription sets the description.
func WithDescription(d string) VideoOption {
	return func(m *model.VideoModel) { m.Description = d }
}

// CreatedAt pins the creation time.
func CreatedAt(at time.Time) VideoOption {
	return func(m *model.VideoModel) { m.CreatedAt = at }
}

// SeedVideo inserts a published video owned by ownerID.
func SeedVideo(t testing.TB, db *gorm.DB, ownerID uuid.UUID, title string, opts ...VideoOption) *model.VideoModel {
	t.Helper()

	key := uuid.NewString()
	m := &model.VideoModel{
		OwnerID:      ownerID,
		Title:        title,
		Description:  title + " description",
		VideoFileKey: "video/" + key + ".mp4",
		VideoFileURL: "http://media.test/video/" + key + ".mp4",
		ThumbnailKey: "thumbnail/" + key + ".png",
		ThumbnailURL: "http://media.test/thumbnail/" + key + ".png",
		Duration:     61.5,
		IsPublished:  true,
	}
	for _, opt := range opts {
		opt(m)
	}
	require.NoError(t, db.Create(m).Error)

	return m
}

// SeedComment inserts a comment under parentKind/parentID.
func SeedComment(t testing.TB, db *gorm.DB, ownerID uuid.UUID, parentKind string, parentID uuid.UUID, content string) *model.CommentModel {
	t.Helper()

	m := &model.CommentModel{OwnerID: ownerID, ParentKind: parentKind, ParentID: parentID, Content: content}
	require.NoError(t, db.Create(m).Error)

	return m
}

// SeedTweet inserts a tweet.
func SeedTweet(t testing.TB, db *gorm.DB, ownerID uuid.UUID, content string) *model.TweetModel {
	t.Helper()

	m := &model.TweetModel{OwnerID: ownerID, Content: content}
	require.NoError(t, db.Create(m).Error)

	return m
}

// SeedLike inserts a like of kind on targetID.
func SeedLike(t testing.TB, db *gorm.DB, likedBy uuid.UUID, kind string, targetID uuid.UUID) *model.LikeModel {
	t.Helper()

	m := &model.LikeModel{LikedBy: likedBy, Kind: kind, TargetID: targetID}
	require.NoError(t, db.Create(m).Error)

	return m
}

// SeedSubscription makes subscriberID follow channelID.
func SeedSubscription(t testing.TB, db *gorm.DB, subscriberID, channelID uuid.UUID) *model.SubscriptionModel {
	t.Helper()

	m := &model.SubscriptionModel{SubscriberID: subscriberID, ChannelID: channelID}
	require.NoError(t, db.Create(m).Error)

	return m
}

// SeedPlaylist inserts a playlist holding videoIDs in order.
func SeedPlaylist(t testing.TB, db *gorm.DB, ownerID uuid.UUID, name string, videoIDs ...uuid.UUID) *model.PlaylistModel {
	t.Helper()

	m := &model.PlaylistModel{OwnerID: ownerID, Name: name, Description: name + " description"}
	require.NoError(t, db.Create(m).Error)

	base := time.Now()
	for i, id := range videoIDs {
		entry := &model.PlaylistVideoModel{PlaylistID: m.ID, VideoID: id, CreatedAt: base.Add(time.Duration(i) * time.Millisecond)}
		require.NoError(t, db.Create(entry).Error)
	}

	return m
}

// Count returns the number of rows in table matching where.
func Count(t testing.TB, db *gorm.DB, table, where string, args ...any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Table(table).Where(where, args...).Count(&n).Error)

	return n
}
