package usecase

import (
	"context"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// ToggleSubscriptionOutput reports the membership state after a toggle.
type ToggleSubscriptionOutput struct {
	State      entity.ToggleState
	Subscribed bool
}

// ToggleLikeOutput reports the membership state after a toggle together
// with the target's like count.
type ToggleLikeOutput struct {
	State     entity.ToggleState
	Liked     bool
	LikeCount int64
}

// EngagementUsecase defines the interface for subscription and like edges.
type EngagementUsecase interface {
	// ToggleSubscription flips the subscriber→channel edge. Subscribing to
	// oneself is rejected.
	ToggleSubscription(ctx context.Context, subscriberID, channelID uuid.UUID) (*ToggleSubscriptionOutput, error)

	// ToggleLike flips the user's like edge on a video, comment or tweet.
	// The target must exist when the edge is created.
	ToggleLike(ctx context.Context, userID uuid.UUID, kind entity.LikeTargetKind, targetID uuid.UUID) (*ToggleLikeOutput, error)

	// ListChannelSubscribers returns the users subscribed to the channel.
	ListChannelSubscribers(ctx context.Context, channelID uuid.UUID) ([]*entity.ChannelSummary, error)

	// ListSubscribedChannels returns the channels the user follows.
	ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.ChannelSummary, error)

	// LikedVideos returns the user's liked, still-published videos.
	LikedVideos(ctx context.Context, userID uuid.UUID) ([]*entity.VideoView, error)
}
