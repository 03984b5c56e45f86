package view

import (
	"time"

	"github.com/google/uuid"
)

// Owner is the public profile attached wherever a user is joined into a view.
type Owner struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"fullName"`
	Avatar   string    `json:"avatar"`
}

// Channel is an Owner annotated with subscription data relative to the viewer.
type Channel struct {
	Owner
	SubscribersCount int64 `json:"subscribersCount"`
	IsSubscribed     bool  `json:"isSubscribed"`
}

// VideoCard is a video as listed in feeds, history and playlists.
type VideoCard struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Duration    float64   `json:"duration"`
	Views       int64     `json:"views"`
	IsPublished bool      `json:"isPublished"`
	Owner       Owner     `json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// VideoDetail is a single video with counters and viewer flags.
type VideoDetail struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Duration    float64   `json:"duration"`
	Views       int64     `json:"views"`
	IsPublished bool      `json:"isPublished"`
	LikesCount  int64     `json:"likesCount"`
	IsLiked     bool      `json:"isLiked"`
	IsOwner     bool      `json:"isOwner"`
	Owner       Channel   `json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CommentView is a comment with its like counter and viewer flags.
type CommentView struct {
	ID         uuid.UUID `json:"id"`
	Content    string    `json:"content"`
	LikesCount int64     `json:"likesCount"`
	IsLiked    bool      `json:"isLiked"`
	IsOwner    bool      `json:"isOwner"`
	Owner      Owner     `json:"owner"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TweetView is a tweet with its like counter and viewer flags.
type TweetView struct {
	ID         uuid.UUID `json:"id"`
	Content    string    `json:"content"`
	LikesCount int64     `json:"likesCount"`
	IsLiked    bool      `json:"isLiked"`
	IsOwner    bool      `json:"isOwner"`
	Owner      Owner     `json:"owner"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// LikedVideo is an entry of the viewer's liked videos list.
type LikedVideo struct {
	VideoCard
	LikedAt time.Time `json:"likedAt"`
}

// PlaylistSummary is a playlist as listed on a user's page.
type PlaylistSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TotalVideos int64     `json:"totalVideos"`
	TotalViews  int64     `json:"totalViews"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PlaylistDetail is a playlist with its published videos.
type PlaylistDetail struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	TotalVideos int64       `json:"totalVideos"`
	TotalViews  int64       `json:"totalViews"`
	IsOwner     bool        `json:"isOwner"`
	Owner       Channel     `json:"owner"`
	Videos      []VideoCard `json:"videos"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Subscriber is a user following a channel, annotated from the channel's point of view.
type Subscriber struct {
	Owner
	SubscribersCount int64 `json:"subscribersCount"`
	// SubscribedToSubscriber is true when the channel follows this subscriber back.
	SubscribedToSubscriber bool      `json:"subscribedToSubscriber"`
	SubscribedAt           time.Time `json:"subscribedAt"`
}

// LatestVideo is the most recent published upload of a channel.
type LatestVideo struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Duration    float64   `json:"duration"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SubscribedChannel is a channel the user follows, with its latest upload.
type SubscribedChannel struct {
	Owner
	SubscribersCount int64        `json:"subscribersCount"`
	LatestVideo      *LatestVideo `json:"latestVideo"`
	SubscribedAt     time.Time    `json:"subscribedAt"`
}

// ChannelStats are the dashboard totals of a channel.
type ChannelStats struct {
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes"`
	TotalViews       int64 `json:"totalViews"`
	TotalVideos      int64 `json:"totalVideos"`
}

// DateParts splits a timestamp for dashboard rendering.
type DateParts struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// NewDateParts converts t to UTC date parts.
func NewDateParts(t time.Time) DateParts {
	t = t.UTC()

	return DateParts{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// ChannelVideo is a row of the owner's dashboard, published or not.
type ChannelVideo struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	Duration    string    `json:"duration"`
	Views       int64     `json:"views"`
	IsPublished bool      `json:"isPublished"`
	LikesCount  int64     `json:"likesCount"`
	CreatedAt   DateParts `json:"createdAt"`
}

// ChannelProfile is the public channel page of a user.
type ChannelProfile struct {
	ID                        uuid.UUID `json:"id"`
	Username                  string    `json:"username"`
	FullName                  string    `json:"fullName"`
	Email                     string    `json:"email"`
	Avatar                    string    `json:"avatar"`
	CoverImage                string    `json:"coverImage"`
	SubscribersCount          int64     `json:"subscribersCount"`
	ChannelsSubscribedToCount int64     `json:"channelsSubscribedToCount"`
	IsSubscribed              bool      `json:"isSubscribed"`
	CreatedAt                 time.Time `json:"createdAt"`
}
