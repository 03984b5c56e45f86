package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeModel mirrors the 'likes' table. A user likes a given target at most once.
type LikeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	LikedBy   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_unique,priority:1"`
	Kind      string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_likes_unique,priority:2;index:idx_likes_target,priority:1"`
	TargetID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_unique,priority:3;index:idx_likes_target,priority:2"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}

// BeforeCreate assigns the primary key.
func (m *LikeModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// SubscriptionModel mirrors the 'subscriptions' table.
type SubscriptionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubscriberID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_pair,priority:1"`
	ChannelID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_pair,priority:2;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// BeforeCreate assigns the primary key.
func (m *SubscriptionModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
