package handler

import (
	"time"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"

	"github.com/google/uuid"
)

// UserResponse is the public shape of an account. Secrets never leave the server.
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	Avatar     string    `json:"avatar"`
	CoverImage string    `json:"coverImage"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func newUserResponse(u *entity.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Avatar:    u.Avatar.URL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.CoverImage != nil {
		resp.CoverImage = u.CoverImage.URL
	}

	return resp
}

// TokensResponse carries a token pair for clients that do not use cookies.
type TokensResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginResponse is returned on login.
type LoginResponse struct {
	User UserResponse `json:"user"`
	TokensResponse
}

func newTokensResponse(pair *entity.TokenPair) TokensResponse {
	return TokensResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}
}

// VideoResponse is a video as returned by mutations.
type VideoResponse struct {
	ID          uuid.UUID `json:"id"`
	Owner       uuid.UUID `json:"owner"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Duration    float64   `json:"duration"`
	Views       int64     `json:"views"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newVideoResponse(v *entity.Video) VideoResponse {
	return VideoResponse{
		ID:          v.ID,
		Owner:       v.OwnerID,
		Title:       v.Title,
		Description: v.Description,
		VideoFile:   v.VideoFile.URL,
		Thumbnail:   v.Thumbnail.URL,
		Duration:    v.Duration,
		Views:       v.Views,
		IsPublished: v.IsPublished,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

// CommentResponse is a comment as returned by mutations.
type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Owner      uuid.UUID `json:"owner"`
	ParentKind string    `json:"parentKind"`
	ParentID   uuid.UUID `json:"parentId"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func newCommentResponse(c *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		Owner:      c.OwnerID,
		ParentKind: string(c.Parent.Kind),
		ParentID:   c.Parent.ID,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// TweetResponse is a tweet as returned by mutations.
type TweetResponse struct {
	ID        uuid.UUID `json:"id"`
	Owner     uuid.UUID `json:"owner"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newTweetResponse(t *entity.Tweet) TweetResponse {
	return TweetResponse{ID: t.ID, Owner: t.OwnerID, Content: t.Content, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt}
}

// PlaylistResponse is a playlist as returned by mutations.
type PlaylistResponse struct {
	ID          uuid.UUID   `json:"id"`
	Owner       uuid.UUID   `json:"owner"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Videos      []uuid.UUID `json:"videos"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func newPlaylistResponse(p *entity.Playlist) PlaylistResponse {
	videos := p.VideoIDs
	if videos == nil {
		videos = []uuid.UUID{}
	}

	return PlaylistResponse{
		ID:          p.ID,
		Owner:       p.OwnerID,
		Name:        p.Name,
		Description: p.Description,
		Videos:      videos,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
