package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is a directed edge: SubscriberID follows ChannelID. At most
// one live edge may exist per (subscriber, channel) pair; the storage layer
// backs this with a composite unique index.
type Subscription struct {
	ID           uuid.UUID `json:"id"`
	SubscriberID uuid.UUID `json:"subscriberId"`
	ChannelID    uuid.UUID `json:"channelId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToggleState reports the outcome of an edge toggle.
type ToggleState string

const (
	// ToggleCreated means the edge did not exist and was inserted.
	ToggleCreated ToggleState = "created"
	// ToggleRemoved means the edge existed and was hard-deleted.
	ToggleRemoved ToggleState = "removed"
)

// ChannelSummary is the compact channel projection used by subscriber and
// subscribed-channel listings, with the subscriber count folded in.
type ChannelSummary struct {
	ID              uuid.UUID `json:"id"`
	Username        string    `json:"username"`
	FullName        string    `json:"fullName"`
	AvatarURL       string    `json:"avatarUrl"`
	SubscriberCount int64     `json:"subscriberCount"`
}

// ChannelProfile is the full channel page projection.
type ChannelProfile struct {
	*PublicUser
	SubscriberCount   int64        `json:"subscriberCount"`
	SubscribedToCount int64        `json:"subscribedToCount"`
	IsSubscribed      bool         `json:"isSubscribed"`
	Videos            []*VideoView `json:"videos"`
}

// ChannelStats is the dashboard aggregate for a channel owner. Absent
// aggregates present as zero, never as null.
type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes"`
}
