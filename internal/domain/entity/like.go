package entity

import (
	"time"

	"github.com/google/uuid"
)

// LikeKind is the type of entity a like points at.
type LikeKind string

const (
	LikeKindVideo   LikeKind = "video"
	LikeKindComment LikeKind = "comment"
	LikeKindTweet   LikeKind = "tweet"
)

// Valid reports whether k is one of the known target kinds.
func (k LikeKind) Valid() bool {
	switch k {
	case LikeKindVideo, LikeKindComment, LikeKindTweet:
		return true
	default:
		return false
	}
}

// LikeTarget is the single entity a like points at.
type LikeTarget struct {
	Kind LikeKind
	ID   uuid.UUID
}

// Like records that LikedBy likes exactly one target. (LikedBy, Target) is unique.
type Like struct {
	ID        uuid.UUID
	LikedBy   uuid.UUID
	Target    LikeTarget
	CreatedAt time.Time
	UpdatedAt time.Time
}
