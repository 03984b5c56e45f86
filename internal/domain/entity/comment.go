package entity

import (
	"time"

	"github.com/google/uuid"
)

// CommentParentKind tells what a comment is attached to.
type CommentParentKind string

const (
	CommentParentVideo CommentParentKind = "video"
	CommentParentTweet CommentParentKind = "tweet"
)

// CommentParent references the video or tweet a comment belongs to.
type CommentParent struct {
	Kind CommentParentKind
	ID   uuid.UUID
}

// Comment is a text reply under a video or a tweet.
type Comment struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Parent    CommentParent
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy returns the owning user id.
func (c *Comment) OwnedBy() uuid.UUID {
	return c.OwnerID
}
