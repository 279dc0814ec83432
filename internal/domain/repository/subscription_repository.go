package repository

import (
	"context"
	"errors"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDuplicateSubscription is returned when the composite unique index
// rejects a second live edge for the same (subscriber, channel) pair.
var ErrDuplicateSubscription = errors.New("subscription already exists")

// SubscriptionRepository defines persistence for subscription edges.
// Edges are created and hard-deleted exclusively through Toggle; they are
// never updated in place.
type SubscriptionRepository interface {
	// Toggle flips the presence of the (subscriber, channel) edge as a
	// compare-and-swap against the unique index: an insert-if-absent whose
	// affected-row count decides between creating and removing. It returns
	// the resulting membership state.
	Toggle(ctx context.Context, subscriberID, channelID uuid.UUID) (entity.ToggleState, *entity.Subscription, error)

	// Exists reports whether a live edge exists for the pair.
	Exists(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)

	// CountByChannel counts live edges pointing at the channel.
	CountByChannel(ctx context.Context, channelID uuid.UUID) (int64, error)

	// CountBySubscriber counts live edges originating from the subscriber.
	CountBySubscriber(ctx context.Context, subscriberID uuid.UUID) (int64, error)

	// ListSubscribers returns compact projections of the users subscribed
	// to the channel, newest edge first.
	ListSubscribers(ctx context.Context, channelID uuid.UUID) ([]*entity.ChannelSummary, error)

	// ListSubscribedChannels returns compact projections of the channels
	// the subscriber follows, each with its own subscriber count.
	ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.ChannelSummary, error)
}
