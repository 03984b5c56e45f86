package postgres

import (
	"context"
	"strings"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	"github.com/Abhithakur7080/your-video/internal/domain/guard"
	"github.com/Abhithakur7080/your-video/internal/domain/repository"
	"github.com/Abhithakur7080/your-video/internal/domain/view"
	"github.com/Abhithakur7080/your-video/internal/infra/persistence/model"
	"github.com/Abhithakur7080/your-video/internal/infra/persistence/postgres/pipeline"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	likesOnVideo   = "l.kind = 'video' AND l.target_id = v.id"
	likesOnComment = "l.kind = 'comment' AND l.target_id = c.id"
	likesOnTweet   = "l.kind = 'tweet' AND l.target_id = t.id"
)

var videoSortFields = pipeline.SortFields{
	"createdAt": "v.created_at",
	"updatedAt": "v.updated_at",
	"views":     "v.views",
	"duration":  "v.duration",
	"title":     "v.title",
}

// viewRepository composes every read model through the pipeline package.
type viewRepository struct {
	db *gorm.DB
}

// NewViewRepository is the constructor for viewRepository.
func NewViewRepository(db *gorm.DB) repository.ViewRepository {
	return &viewRepository{db: db}
}

func (repo *viewRepository) from(ctx context.Context, table, key string) *pipeline.Pipeline {
	return pipeline.From(ctx, repo.db, table, key)
}

// exists reports whether a row with id lives in the table behind m.
func (repo *viewRepository) exists(ctx context.Context, m any, id uuid.UUID) (bool, error) {
	var n int64
	if err := repo.db.WithContext(ctx).Model(m).Where("id = ?", id).Limit(1).Count(&n).Error; err != nil {
		return false, errors.Wrap(err, "failed to check existence")
	}

	return n > 0, nil
}

func (repo *viewRepository) requireUser(ctx context.Context, id uuid.UUID, notFound error) error {
	ok, err := repo.exists(ctx, &model.UserModel{}, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound
	}

	return nil
}

// VideoFeed lists videos. Drafts are only listed when the viewer filters on their own channel.
func (repo *viewRepository) VideoFeed(ctx context.Context, q repository.VideoFeedQuery) (*view.Page[view.VideoCard], error) {
	ownChannel := q.OwnerID != nil && q.Viewer != nil && *q.OwnerID == *q.Viewer

	p := repo.from(ctx, "videos AS v", "v.id").
		Join(pipeline.InnerJoin("users AS u", "u.id = v.owner_id")).
		Filter(
			pipeline.TextMatch(q.Search, "v.title", "v.description"),
			pipeline.When(q.OwnerID != nil, func(tx *gorm.DB) *gorm.DB {
				return pipeline.Eq("v.owner_id", *q.OwnerID)(tx)
			}),
			pipeline.When(!ownChannel, pipeline.Eq("v.is_published", true)),
		).
		Project(videoCardColumns...).
		Sort(q.Sort, videoSortFields, "v.created_at")

	page, err := pipeline.Page[VideoCardRow](p, q.Page)
	if err != nil {
		return nil, err
	}

	return view.Map(page, VideoCardRow.toView), nil
}

// VideoDetail composes one video with its counters. Publication is enforced by the caller.
func (repo *viewRepository) VideoDetail(ctx context.Context, videoID uuid.UUID, viewer *uuid.UUID) (*view.VideoDetail, error) {
	p := repo.from(ctx, "videos AS v", "v.id").
		Join(pipeline.InnerJoin("users AS u", "u.id = v.owner_id")).
		Filter(pipeline.Eq("v.id", videoID)).
		Project(videoCardColumns...).
		Derive(
			pipeline.Count("likes_count", "likes l", likesOnVideo),
			pipeline.ViewerFlag("is_liked", viewer, "likes l", "l.liked_by = ? AND "+likesOnVideo),
			pipeline.Count("owner_subscribers_count", "subscriptions s", "s.channel_id = u.id"),
			pipeline.ViewerFlag("owner_is_subscribed", viewer, "subscriptions s", "s.subscriber_id = ? AND s.channel_id = u.id"),
		)

	row, err := pipeline.First[videoDetailRow](p)
	if err != nil {
		return nil, notFoundAs(err, repository.ErrVideoNotFound)
	}

	return &view.VideoDetail{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		VideoFile:   row.VideoFile,
		Thumbnail:   row.Thumbnail,
		Duration:    row.Duration,
		Views:       row.Views,
		IsPublished: row.IsPublished,
		LikesCount:  row.LikesCount,
		IsLiked:     row.IsLiked,
		IsOwner:     guard.IsOwner(viewer, row.OwnerID),
		Owner: view.Channel{
			Owner:            row.toOwner(),
			SubscribersCount: row.OwnerSubscribersCount,
			IsSubscribed:     row.OwnerIsSubscribed,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

// CommentThread lists the comments under a video or a tweet, newest first.
func (repo *viewRepository) CommentThread(ctx context.Context, parent entity.CommentParent, viewer *uuid.UUID, req view.PageRequest) (*view.Page[view.CommentView], error) {
	switch parent.Kind {
	case entity.CommentParentVideo:
		ok, err := repo.exists(ctx, &model.VideoModel{}, parent.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, repository.ErrVideoNotFound
		}
	case entity.CommentParentTweet:
		ok, err := repo.exists(ctx, &model.TweetModel{}, parent.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, repository.ErrTweetNotFound
		}
	default:
		return nil, errors.Errorf("unknown comment parent kind %q", parent.Kind)
	}

	p := repo.from(ctx, "comments AS c", "c.id").
		Join(pipeline.InnerJoin("users AS u", "u.id = c.owner_id")).
		Filter(
			pipeline.Eq("c.parent_kind", string(parent.Kind)),
			pipeline.Eq("c.parent_id", parent.ID),
		).
		Project(withColumns([]string{
			"c.id AS id",
			"c.content AS content",
			"c.created_at AS created_at",
			"c.updated_at AS updated_at",
		}, ownerColumns...)...).
		Derive(
			pipeline.Count("likes_count", "likes l", likesOnComment),
			pipeline.ViewerFlag("is_liked", viewer, "likes l", "l.liked_by = ? AND "+likesOnComment),
		).
		Sort(view.Sort{Desc: true}, nil, "c.created_at")

	page, err := pipeline.Page[commentRow](p, req)
	if err != nil {
		return nil, err
	}

	return view.Map(page, func(r commentRow) view.CommentView {
		return view.CommentView{
			ID:         r.ID,
			Content:    r.Content,
			LikesCount: r.LikesCount,
			IsLiked:    r.IsLiked,
			IsOwner:    guard.IsOwner(viewer, r.OwnerID),
			Owner:      r.toOwner(),
			CreatedAt:  r.CreatedAt,
			UpdatedAt:  r.UpdatedAt,
		}
	}), nil
}

// TweetTimeline lists a user's tweets, newest first.
func (repo *viewRepository) TweetTimeline(ctx context.Context, ownerID uuid.UUID, viewer *uuid.UUID, req view.PageRequest) (*view.Page[view.TweetView], error) {
	if err := repo.requireUser(ctx, ownerID, repository.ErrUserNotFound); err != nil {
		return nil, err
	}

	p := repo.from(ctx, "tweets AS t", "t.id").
		Join(pipeline.InnerJoin("users AS u", "u.id = t.owner_id")).
		Filter(pipeline.Eq("t.owner_id", ownerID)).
		Project(withColumns([]string{
			"t.id AS id",
			"t.content AS content",
			"t.created_at AS created_at",
			"t.updated_at AS updated_at",
		}, ownerColumns...)...).
		Derive(
			pipeline.Count("likes_count", "likes l", likesOnTweet),
			pipeline.ViewerFlag("is_liked", viewer, "likes l", "l.liked_by = ? AND "+likesOnTweet),
		).
		Sort(view.Sort{Desc: true}, nil, "t.created_at")

	page, err := pipeline.Page[tweetRow](p, req)
	if err != nil {
		return nil, err
	}

	return view.Map(page, func(r tweetRow) view.TweetView {
		return view.TweetView{
			ID:         r.ID,
			Content:    r.Content,
			LikesCount: r.LikesCount,
			IsLiked:    r.IsLiked,
			IsOwner:    guard.IsOwner(viewer, r.OwnerID),
			Owner:      r.toOwner(),
			CreatedAt:  r.CreatedAt,
			UpdatedAt:  r.UpdatedAt,
		}
	}), nil
}

// LikedVideos lists the published videos the viewer liked, most recent like first.
func (repo *viewRepository) LikedVideos(ctx context.Context, viewerID uuid.UUID, req view.PageRequest) (*view.Page[view.LikedVideo], error) {
	p := repo.from(ctx, "likes AS l", "l.id").
		Join(
			pipeline.InnerJoin("videos AS v", "v.id = l.target_id"),
			pipeline.InnerJoin("users AS u", "u.id = v.owner_id"),
		).
		Filter(
			pipeline.Eq("l.liked_by", viewerID),
			pipeline.Eq("l.kind", string(entity.LikeKindVideo)),
			pipeline.Eq("v.is_published", true),
		).
		Project(withColumns(videoCardColumns, "l.created_at AS liked_at")...).
		Sort(view.Sort{Desc: true}, nil, "l.created_at")

	page, err := pipeline.Page[likedVideoRow](p, req)
	if err != nil {
		return nil, err
	}

	return view.Map(page, func(r likedVideoRow) view.LikedVideo {
		return view.LikedVideo{VideoCard: r.toView(), LikedAt: r.LikedAt}
	}), nil
}

// playlistTotals derive the published video count and views of the playlist aliased "p".
func playlistTotals() []pipeline.Field {
	const entries = "playlist_videos pv JOIN videos pvv ON pvv.id = pv.video_id"
	const published = "pv.playlist_id = p.id AND pvv.is_published = TRUE"

	return []pipeline.Field{
		pipeline.Count("total_videos", entries, published),
		pipeline.Sum("total_views", "pvv.views", entries, published),
	}
}

var playlistColumns = []string{
	"p.id AS id",
	"p.name AS name",
	"p.description AS description",
	"p.created_at AS created_at",
	"p.updated_at AS updated_at",
}

// PlaylistDetail composes a playlist with its owner and its published videos in insertion order.
func (repo *viewRepository) PlaylistDetail(ctx context.Context, playlistID uuid.UUID, viewer *uuid.UUID) (*view.PlaylistDetail, error) {
	p := repo.from(ctx, "playlists AS p", "p.id").
		Join(pipeline.InnerJoin("users AS u", "u.id = p.owner_id")).
		Filter(pipeline.Eq("p.id", playlistID)).
		Project(withColumns(playlistColumns, ownerColumns...)...).
		Derive(playlistTotals()...).
		Derive(
			pipeline.Count("owner_subscribers_count", "subscriptions s", "s.channel_id = u.id"),
			pipeline.ViewerFlag("owner_is_subscribed", viewer, "subscriptions s", "s.subscriber_id = ? AND s.channel_id = u.id"),
		)

	row, err := pipeline.First[playlistDetailRow](p)
	if err != nil {
		return nil, notFoundAs(err, repository.ErrPlaylistNotFound)
	}

	videos := repo.from(ctx, "playlist_videos AS pv", "pv.video_id").
		Join(
			pipeline.InnerJoin("videos AS v", "v.id = pv.video_id"),
			pipeline.InnerJoin("users AS u", "u.id = v.owner_id"),
		).
		Filter(
			pipeline.Eq("pv.playlist_id", playlistID),
			pipeline.Eq("v.is_published", true),
		).
		Project(videoCardColumns...).
		Sort(view.Sort{Desc: false}, nil, "pv.created_at")

	rows, err := pipeline.All[VideoCardRow](videos)
	if err != nil {
		return nil, err
	}

	cards := make([]view.VideoCard, 0, len(rows))
	for _, r := range rows {
		cards = append(cards, r.toView())
	}

	return &view.PlaylistDetail{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		TotalVideos: row.TotalVideos,
		TotalViews:  row.TotalViews,
		IsOwner:     guard.IsOwner(viewer, row.OwnerID),
		Owner: view.Channel{
			Owner:            row.toOwner(),
			SubscribersCount: row.OwnerSubscribersCount,
			IsSubscribed:     row.OwnerIsSubscribed,
		},
		Videos:    cards,
		CreatedAt: row.PlaylistRow.CreatedAt,
		UpdatedAt: row.PlaylistRow.UpdatedAt,
	}, nil
}

// UserPlaylists lists a user's playlists, most recently changed first.
func (repo *viewRepository) UserPlaylists(ctx context.Context, ownerID uuid.UUID, req view.PageRequest) (*view.Page[view.PlaylistSummary], error) {
	if err := repo.requireUser(ctx, ownerID, repository.ErrUserNotFound); err != nil {
		return nil, err
	}

	p := repo.from(ctx, "playlists AS p", "p.id").
		Filter(pipeline.Eq("p.owner_id", ownerID)).
		Project(playlistColumns...).
		Derive(playlistTotals()...).
		Sort(view.Sort{Desc: true}, nil, "p.updated_at")

	page, err := pipeline.Page[PlaylistRow](p, req)
	if err != nil {
		return nil, err
	}

	return view.Map(page, PlaylistRow.toSummary), nil
}

// ChannelSubscribers lists who follows channelID, and whether the channel follows them back.
func (repo *viewRepository) ChannelSubscribers(ctx context.Context, channelID uuid.UUID, req view.PageRequest) (*view.Page[view.Subscriber], error) {
	if err := repo.requireUser(ctx, channelID, repository.ErrUserNotFound); err != nil {
		return nil, err
	}

	p := repo.from(ctx, "subscriptions AS s", "s.id").
		Join(pipeline.InnerJoin("users AS u", "u.id = s.subscriber_id")).
		Filter(pipeline.Eq("s.channel_id", channelID)).
		Project(withColumns(ownerColumns, "s.created_at AS subscribed_at")...).
		Derive(
			pipeline.Count("subscribers_count", "subscriptions s2", "s2.channel_id = u.id"),
			pipeline.ViewerFlag("subscribed_to_subscriber", &channelID, "subscriptions s3", "s3.subscriber_id = ? AND s3.channel_id = u.id"),
		).
		Sort(view.Sort{Desc: true}, nil, "s.created_at")

	page, err := pipeline.Page[subscriberRow](p, req)
	if err != nil {
		return nil, err
	}

	return view.Map(page, func(r subscriberRow) view.Subscriber {
		return view.Subscriber{
			Owner:                  r.toOwner(),
			SubscribersCount:       r.SubscribersCount,
			SubscribedToSubscriber: r.SubscribedToSubscriber,
			SubscribedAt:           r.SubscribedAt,
		}
	}), nil
}

// SubscribedChannels lists the channels subscriberID follows, each with its latest published video.
func (repo *viewRepository) SubscribedChannels(ctx context.Context, subscriberID uuid.UUID, req view.PageRequest) (*view.Page[view.SubscribedChannel], error) {
	if err := repo.requireUser(ctx, subscriberID, repository.ErrUserNotFound); err != nil {
		return nil, err
	}

	p := repo.from(ctx, "subscriptions AS s", "s.id").
		Join(pipeline.InnerJoin("users AS u", "u.id = s.channel_id")).
		Filter(pipeline.Eq("s.subscriber_id", subscriberID)).
		Project(withColumns(ownerColumns, "s.created_at AS subscribed_at")...).
		Derive(pipeline.Count("subscribers_count", "subscriptions s2", "s2.channel_id = u.id")).
		Sort(view.Sort{Desc: true}, nil, "s.created_at")

	page, err := pipeline.Page[subscribedChannelRow](p, req)
	if err != nil {
		return nil, err
	}

	channelIDs := make([]uuid.UUID, 0, len(page.Docs))
	for _, r := range page.Docs {
		channelIDs = append(channelIDs, r.OwnerID)
	}
	latest, err := repo.latestVideos(ctx, channelIDs)
	if err != nil {
		return nil, err
	}

	return view.Map(page, func(r subscribedChannelRow) view.SubscribedChannel {
		return view.SubscribedChannel{
			Owner:            r.toOwner(),
			SubscribersCount: r.SubscribersCount,
			LatestVideo:      latest[r.OwnerID],
			SubscribedAt:     r.SubscribedAt,
		}
	}), nil
}

// latestVideos fetches the newest published video of every channel in one query.
func (repo *viewRepository) latestVideos(ctx context.Context, channelIDs []uuid.UUID) (map[uuid.UUID]*view.LatestVideo, error) {
	latest := make(map[uuid.UUID]*view.LatestVideo, len(channelIDs))
	if len(channelIDs) == 0 {
		return latest, nil
	}

	p := repo.from(ctx, "videos AS v", "v.id").
		Filter(
			pipeline.Where("v.owner_id IN ?", channelIDs),
			pipeline.Eq("v.is_published", true),
			pipeline.Where("v.created_at = (SELECT MAX(v2.created_at) FROM videos v2 WHERE v2.owner_id = v.owner_id AND v2.is_published = TRUE)"),
		).
		Project(
			"v.owner_id AS channel_id",
			"v.id AS id",
			"v.title AS title",
			"v.description AS description",
			"v.video_file_url AS video_file",
			"v.thumbnail_url AS thumbnail",
			"v.duration AS duration",
			"v.views AS views",
			"v.created_at AS created_at",
		).
		Sort(view.Sort{Desc: true}, nil, "v.created_at")

	rows, err := pipeline.All[latestVideoRow](p)
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		// Rows tied on created_at arrive highest id first; keep that one.
		if _, seen := latest[r.ChannelID]; seen {
			continue
		}
		latest[r.ChannelID] = &view.LatestVideo{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			VideoFile:   r.VideoFile,
			Thumbnail:   r.Thumbnail,
			Duration:    r.Duration,
			Views:       r.Views,
			CreatedAt:   r.CreatedAt,
		}
	}

	return latest, nil
}

// ChannelStats totals subscribers, likes on videos, views and videos of a channel.
func (repo *viewRepository) ChannelStats(ctx context.Context, channelID uuid.UUID) (*view.ChannelStats, error) {
	p := repo.from(ctx, "users AS u", "u.id").
		Filter(pipeline.Eq("u.id", channelID)).
		Derive(
			pipeline.Count("total_subscribers", "subscriptions s", "s.channel_id = u.id"),
			pipeline.Count("total_likes", "likes l JOIN videos lv ON lv.id = l.target_id", "l.kind = 'video' AND lv.owner_id = u.id"),
			pipeline.Sum("total_views", "sv.views", "videos sv", "sv.owner_id = u.id"),
			pipeline.Count("total_videos", "videos cv", "cv.owner_id = u.id"),
		)

	row, err := pipeline.First[channelStatsRow](p)
	if err != nil {
		return nil, notFoundAs(err, repository.ErrUserNotFound)
	}

	return &view.ChannelStats{
		TotalSubscribers: row.TotalSubscribers,
		TotalLikes:       row.TotalLikes,
		TotalViews:       row.TotalViews,
		TotalVideos:      row.TotalVideos,
	}, nil
}

// ChannelVideos lists every video of a channel, drafts included, for its dashboard.
func (repo *viewRepository) ChannelVideos(ctx context.Context, channelID uuid.UUID, req view.PageRequest) (*view.Page[view.ChannelVideo], error) {
	if err := repo.requireUser(ctx, channelID, repository.ErrUserNotFound); err != nil {
		return nil, err
	}

	p := repo.from(ctx, "videos AS v", "v.id").
		Filter(pipeline.Eq("v.owner_id", channelID)).
		Project(
			"v.id AS id",
			"v.title AS title",
			"v.description AS description",
			"v.thumbnail_url AS thumbnail",
			"v.duration AS duration",
			"v.views AS views",
			"v.is_published AS is_published",
			"v.created_at AS created_at",
		).
		Derive(pipeline.Count("likes_count", "likes l", likesOnVideo)).
		Sort(view.Sort{Desc: true}, nil, "v.created_at")

	page, err := pipeline.Page[channelVideoRow](p, req)
	if err != nil {
		return nil, err
	}

	return view.Map(page, channelVideoRow.toView), nil
}

// ChannelProfile composes the public page of the user named username.
func (repo *viewRepository) ChannelProfile(ctx context.Context, username string, viewer *uuid.UUID) (*view.ChannelProfile, error) {
	p := repo.from(ctx, "users AS u", "u.id").
		Filter(pipeline.Eq("u.username", strings.ToLower(strings.TrimSpace(username)))).
		Project(
			"u.id AS id",
			"u.username AS username",
			"u.full_name AS full_name",
			"u.email AS email",
			"u.avatar_url AS avatar",
			"u.cover_image_url AS cover_image",
			"u.created_at AS created_at",
		).
		Derive(
			pipeline.Count("subscribers_count", "subscriptions s", "s.channel_id = u.id"),
			pipeline.Count("channels_subscribed_to_count", "subscriptions s", "s.subscriber_id = u.id"),
			pipeline.ViewerFlag("is_subscribed", viewer, "subscriptions s", "s.subscriber_id = ? AND s.channel_id = u.id"),
		)

	row, err := pipeline.First[channelProfileRow](p)
	if err != nil {
		return nil, notFoundAs(err, repository.ErrUserNotFound)
	}

	profile := &view.ChannelProfile{
		ID:                        row.ID,
		Username:                  row.Username,
		FullName:                  row.FullName,
		Email:                     row.Email,
		Avatar:                    row.Avatar,
		SubscribersCount:          row.SubscribersCount,
		ChannelsSubscribedToCount: row.ChannelsSubscribedToCount,
		IsSubscribed:              row.IsSubscribed,
		CreatedAt:                 row.CreatedAt,
	}
	if row.CoverImage != nil {
		profile.CoverImage = *row.CoverImage
	}

	return profile, nil
}

// WatchHistory lists the videos a user watched in the order they were first watched.
func (repo *viewRepository) WatchHistory(ctx context.Context, userID uuid.UUID, req view.PageRequest) (*view.Page[view.VideoCard], error) {
	if err := repo.requireUser(ctx, userID, repository.ErrUserNotFound); err != nil {
		return nil, err
	}

	p := repo.from(ctx, "watch_history AS wh", "wh.video_id").
		Join(
			pipeline.InnerJoin("videos AS v", "v.id = wh.video_id"),
			pipeline.InnerJoin("users AS u", "u.id = v.owner_id"),
		).
		Filter(pipeline.Eq("wh.user_id", userID)).
		Project(videoCardColumns...).
		Sort(view.Sort{Desc: false}, nil, "wh.created_at")

	page, err := pipeline.Page[VideoCardRow](p, req)
	if err != nil {
		return nil, err
	}

	return view.Map(page, VideoCardRow.toView), nil
}

func notFoundAs(err, notFound error) error {
	if errors.Is(err, pipeline.ErrNoRows) {
		return notFound
	}

	return err
}
