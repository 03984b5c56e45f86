package repository

import (
	"context"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	"github.com/Abhithakur7080/your-video/internal/domain/view"

	"github.com/google/uuid"
)

// VideoFeedQuery selects the public video feed.
type VideoFeedQuery struct {
	Search  string     // Case-insensitive match over title and description.
	OwnerID *uuid.UUID // Restrict to one channel.
	Sort    view.Sort
	Page    view.PageRequest
	Viewer  *uuid.UUID // Unpublished videos are included only when Viewer == OwnerID.
}

// ViewRepository composes the read models. Every method fails with the
// matching *NotFound sentinel when its root entity does not exist.
type ViewRepository interface {
	VideoFeed(ctx context.Context, q VideoFeedQuery) (*view.Page[view.VideoCard], error)
	VideoDetail(ctx context.Context, videoID uuid.UUID, viewer *uuid.UUID) (*view.VideoDetail, error)
	CommentThread(ctx context.Context, parent entity.CommentParent, viewer *uuid.UUID, page view.PageRequest) (*view.Page[view.CommentView], error)
	TweetTimeline(ctx context.Context, ownerID uuid.UUID, viewer *uuid.UUID, page view.PageRequest) (*view.Page[view.TweetView], error)
	LikedVideos(ctx context.Context, viewerID uuid.UUID, page view.PageRequest) (*view.Page[view.LikedVideo], error)
	PlaylistDetail(ctx context.Context, playlistID uuid.UUID, viewer *uuid.UUID) (*view.PlaylistDetail, error)
	UserPlaylists(ctx context.Context, ownerID uuid.UUID, page view.PageRequest) (*view.Page[view.PlaylistSummary], error)
	ChannelSubscribers(ctx context.Context, channelID uuid.UUID, page view.PageRequest) (*view.Page[view.Subscriber], error)
	SubscribedChannels(ctx context.Context, subscriberID uuid.UUID, page view.PageRequest) (*view.Page[view.SubscribedChannel], error)
	ChannelStats(ctx context.Context, channelID uuid.UUID) (*view.ChannelStats, error)
	ChannelVideos(ctx context.Context, channelID uuid.UUID, page view.PageRequest) (*view.Page[view.ChannelVideo], error)
	ChannelProfile(ctx context.Context, username string, viewer *uuid.UUID) (*view.ChannelProfile, error)
	WatchHistory(ctx context.Context, userID uuid.UUID, page view.PageRequest) (*view.Page[view.VideoCard], error)
}
