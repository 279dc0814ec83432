package model

import (
	"time"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionModel mirrors the 'subscriptions' table. The composite unique
// index is what makes the toggle a compare-and-swap: at most one live edge
// per (subscriber, channel) pair, enforced by the database.
type SubscriptionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	SubscriberID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_subscriptions_edge,priority:1;index"`
	ChannelID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_subscriptions_edge,priority:2;index"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// ToEntity converts the model to a domain entity.
func (m *SubscriptionModel) ToEntity() *entity.Subscription {
	return &entity.Subscription{
		ID:           m.ID,
		SubscriberID: m.SubscriberID,
		ChannelID:    m.ChannelID,
		CreatedAt:    m.CreatedAt,
	}
}

// LikeModel mirrors the 'likes' table. TargetKind joins the unique index so
// the same UUID can be liked as a video and as a comment without colliding.
type LikeModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_likes_edge,priority:1;index"`
	TargetKind string    `gorm:"type:varchar(16);not null;uniqueIndex:uq_likes_edge,priority:2"`
	TargetID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_likes_edge,priority:3;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}

// ToEntity converts the model to a domain entity.
func (m *LikeModel) ToEntity() *entity.Like {
	return &entity.Like{
		ID:         m.ID,
		UserID:     m.UserID,
		TargetKind: entity.LikeTargetKind(m.TargetKind),
		TargetID:   m.TargetID,
		CreatedAt:  m.CreatedAt,
	}
}

// WatchEntryModel mirrors the 'watch_entries' table. One row per
// (user, video); re-watching refreshes WatchedAt in place.
type WatchEntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_watch_entries,priority:1;index"`
	VideoID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_watch_entries,priority:2;index"`
	WatchedAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (WatchEntryModel) TableName() string {
	return "watch_entries"
}

// ToEntity converts the model to a domain entity.
func (m *WatchEntryModel) ToEntity() *entity.WatchEntry {
	return &entity.WatchEntry{
		ID:        m.ID,
		UserID:    m.UserID,
		VideoID:   m.VideoID,
		WatchedAt: m.WatchedAt,
	}
}
