package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentModel mirrors the 'comments' table. ParentKind/ParentID form the
// tagged reference to a video or a tweet.
type CommentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ParentKind string    `gorm:"type:varchar(16);not null;index:idx_comments_parent,priority:1"`
	ParentID   uuid.UUID `gorm:"type:uuid;not null;index:idx_comments_parent,priority:2"`
	Content    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}

// BeforeCreate assigns the primary key.
func (m *CommentModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// TweetModel mirrors the 'tweets' table.
type TweetModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TweetModel) TableName() string {
	return "tweets"
}

// BeforeCreate assigns the primary key.
func (m *TweetModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
