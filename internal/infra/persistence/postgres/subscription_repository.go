package postgres

import (
	"context"

	"clipstream/internal/domain/entity"
	"clipstream/internal/domain/repository"
	"clipstream/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// Toggle flips the presence of the (subscriber, channel) edge. The insert
// uses ON CONFLICT DO NOTHING against the composite unique index, so the
// affected-row count is the compare-and-swap outcome: one row means the
// edge was created, zero means it already existed and gets deleted instead.
// Two racing toggles therefore settle on exactly one state change each.
func (repo *subscriptionRepository) Toggle(ctx context.Context, subscriberID, channelID uuid.UUID) (entity.ToggleState, *entity.Subscription, error) {
	subscriptionM := &model.SubscriptionModel{
		ID:           uuid.New(),
		SubscriberID: subscriberID,
		ChannelID:    channelID,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "subscriber_id"}, {Name: "channel_id"}},
			DoNothing: true,
		}).
		Create(subscriptionM)
	if result.Error != nil {
		return "", nil, errors.Wrap(result.Error, "failed to toggle subscription")
	}

	if result.RowsAffected > 0 {
		return entity.ToggleCreated, subscriptionM.ToEntity(), nil
	}

	// The edge existed, so this toggle removes it.
	if err := repo.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&model.SubscriptionModel{}).Error; err != nil {
		return "", nil, errors.Wrap(err, "failed to remove subscription")
	}

	return entity.ToggleRemoved, nil, nil
}

// Exists reports whether a live edge exists for the pair.
func (repo *subscriptionRepository) Exists(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check subscription")
	}

	return count > 0, nil
}

// CountByChannel counts live edges pointing at the channel.
func (repo *subscriptionRepository) CountByChannel(ctx context.Context, channelID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count subscribers")
	}

	return count, nil
}

// CountBySubscriber counts live edges originating from the subscriber.
func (repo *subscriptionRepository) CountBySubscriber(ctx context.Context, subscriberID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ?", subscriberID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count subscribed channels")
	}

	return count, nil
}

// channelSummaryRow is the scan target for subscriber listings.
type channelSummaryRow struct {
	ID              uuid.UUID
	Username        string
	FullName        string
	AvatarURL       string
	SubscriberCount int64
}

func (r *channelSummaryRow) toSummary() *entity.ChannelSummary {
	return &entity.ChannelSummary{
		ID:              r.ID,
		Username:        r.Username,
		FullName:        r.FullName,
		AvatarURL:       r.AvatarURL,
		SubscriberCount: r.SubscriberCount,
	}
}

const channelSummaryColumns = "users.id, users.username, users.full_name, users.avatar_url, " +
	"(SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = users.id) AS subscriber_count"

// ListSubscribers returns the users subscribed to the channel, newest edge
// first.
func (repo *subscriptionRepository) ListSubscribers(ctx context.Context, channelID uuid.UUID) ([]*entity.ChannelSummary, error) {
	var rows []*channelSummaryRow

	if err := repo.db.WithContext(ctx).
		Table("subscriptions").
		Select(channelSummaryColumns).
		Joins("JOIN users ON users.id = subscriptions.subscriber_id").
		Where("subscriptions.channel_id = ?", channelID).
		Order("subscriptions.created_at DESC, subscriptions.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subscribers")
	}

	summaries := make([]*entity.ChannelSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, row.toSummary())
	}

	return summaries, nil
}

// ListSubscribedChannels returns the channels the subscriber follows, each
// with its own subscriber count, newest edge first.
func (repo *subscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.ChannelSummary, error) {
	var rows []*channelSummaryRow

	if err := repo.db.WithContext(ctx).
		Table("subscriptions").
		Select(channelSummaryColumns).
		Joins("JOIN users ON users.id = subscriptions.channel_id").
		Where("subscriptions.subscriber_id = ?", subscriberID).
		Order("subscriptions.created_at DESC, subscriptions.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subscribed channels")
	}

	summaries := make([]*entity.ChannelSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, row.toSummary())
	}

	return summaries, nil
}
