package postgres

import (
	"time"

	"github.com/Abhithakur7080/your-video/internal/domain/view"
	"github.com/Abhithakur7080/your-video/internal/util"

	"github.com/google/uuid"
)

// Row structs receive pipeline projections. Column aliases are the snake_case
// names of their fields. Types embedded into other rows are exported because
// GORM only walks exported embedded structs.

// ownerColumns projects the public profile of the user joined as "u".
var ownerColumns = []string{
	"u.id AS owner_id",
	"u.username AS owner_username",
	"u.full_name AS owner_full_name",
	"u.avatar_url AS owner_avatar",
}

type OwnerRow struct {
	OwnerID       uuid.UUID
	OwnerUsername string
	OwnerFullName string
	OwnerAvatar   string
}

func (r OwnerRow) toOwner() view.Owner {
	return view.Owner{ID: r.OwnerID, Username: r.OwnerUsername, FullName: r.OwnerFullName, Avatar: r.OwnerAvatar}
}

// videoCardColumns projects the video joined as "v" plus its owner.
var videoCardColumns = withColumns([]string{
	"v.id AS id",
	"v.title AS title",
	"v.description AS description",
	"v.video_file_url AS video_file",
	"v.thumbnail_url AS thumbnail",
	"v.duration AS duration",
	"v.views AS views",
	"v.is_published AS is_published",
	"v.created_at AS created_at",
	"v.updated_at AS updated_at",
}, ownerColumns...)

// withColumns returns a fresh slice holding base followed by extra.
func withColumns(base []string, extra ...string) []string {
	out := make([]string, 0, len(base)+len(extra))

	return append(append(out, base...), extra...)
}

type VideoCardRow struct {
	ID          uuid.UUID
	Title       string
	Description string
	VideoFile   string
	Thumbnail   string
	Duration    float64
	Views       int64
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	OwnerRow    `gorm:"embedded"`
}

func (r VideoCardRow) toView() view.VideoCard {
	return view.VideoCard{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		VideoFile:   r.VideoFile,
		Thumbnail:   r.Thumbnail,
		Duration:    r.Duration,
		Views:       r.Views,
		IsPublished: r.IsPublished,
		Owner:       r.toOwner(),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type videoDetailRow struct {
	VideoCardRow          `gorm:"embedded"`
	LikesCount            int64
	IsLiked               bool
	OwnerSubscribersCount int64
	OwnerIsSubscribed     bool
}

type likedVideoRow struct {
	VideoCardRow `gorm:"embedded"`
	LikedAt      time.Time
}

type commentRow struct {
	ID         uuid.UUID
	Content    string
	LikesCount int64
	IsLiked    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
	OwnerRow   `gorm:"embedded"`
}

type tweetRow = commentRow

type PlaylistRow struct {
	ID          uuid.UUID
	Name        string
	Description string
	TotalVideos int64
	TotalViews  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r PlaylistRow) toSummary() view.PlaylistSummary {
	return view.PlaylistSummary{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		TotalVideos: r.TotalVideos,
		TotalViews:  r.TotalViews,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type playlistDetailRow struct {
	PlaylistRow           `gorm:"embedded"`
	OwnerRow              `gorm:"embedded"`
	OwnerSubscribersCount int64
	OwnerIsSubscribed     bool
}

type subscriberRow struct {
	OwnerRow               `gorm:"embedded"`
	SubscribersCount       int64
	SubscribedToSubscriber bool
	SubscribedAt           time.Time
}

type subscribedChannelRow struct {
	OwnerRow         `gorm:"embedded"`
	SubscribersCount int64
	SubscribedAt     time.Time
}

type latestVideoRow struct {
	ChannelID   uuid.UUID
	ID          uuid.UUID
	Title       string
	Description string
	VideoFile   string
	Thumbnail   string
	Duration    float64
	Views       int64
	CreatedAt   time.Time
}

type channelStatsRow struct {
	TotalSubscribers int64
	TotalLikes       int64
	TotalViews       int64
	TotalVideos      int64
}

type channelVideoRow struct {
	ID          uuid.UUID
	Title       string
	Description string
	Thumbnail   string
	Duration    float64
	Views       int64
	IsPublished bool
	LikesCount  int64
	CreatedAt   time.Time
}

func (r channelVideoRow) toView() view.ChannelVideo {
	return view.ChannelVideo{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Thumbnail:   r.Thumbnail,
		Duration:    util.FormatDuration(r.Duration),
		Views:       r.Views,
		IsPublished: r.IsPublished,
		LikesCount:  r.LikesCount,
		CreatedAt:   view.NewDateParts(r.CreatedAt),
	}
}

type channelProfileRow struct {
	ID                        uuid.UUID
	Username                  string
	FullName                  string
	Email                     string
	Avatar                    string
	CoverImage                *string
	SubscribersCount          int64
	ChannelsSubscribedToCount int64
	IsSubscribed              bool
	CreatedAt                 time.Time
}
