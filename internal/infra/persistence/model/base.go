// Package model holds the GORM persistence models. They are exported so the
// GORM Gen tool and the migrator can use them from other packages.
package model

import (
	"github.com/google/uuid"
)

// assignID fills an unset primary key with a time ordered UUIDv7.
// IDs are generated here rather than by the database so every driver behaves the same.
func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	v, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = v

	return nil
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&WatchHistoryModel{},
		&VideoModel{},
		&CommentModel{},
		&TweetModel{},
		&LikeModel{},
		&SubscriptionModel{},
		&PlaylistModel{},
		&PlaylistVideoModel{},
	}
}
