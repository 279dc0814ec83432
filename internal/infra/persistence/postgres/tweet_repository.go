package postgres

import (
	"context"

	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/domain/repository"
	"clipstream/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tweetRepository implements the repository.TweetRepository interface.
type tweetRepository struct {
	db *gorm.DB
}

// NewTweetRepository is the constructor for tweetRepository.
func NewTweetRepository(db *gorm.DB) repository.TweetRepository {
	return &tweetRepository{
		db: db,
	}
}

// Create persists a new tweet.
func (repo *tweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	tweetM := model.TweetModelFromEntity(tweet)

	if err := repo.db.WithContext(ctx).Create(tweetM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("tweet owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tweet")
	}

	tweet.CreatedAt = tweetM.CreatedAt
	tweet.UpdatedAt = tweetM.UpdatedAt

	return nil
}

// FindByID retrieves a tweet by its unique ID.
func (repo *tweetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tweet, error) {
	var tweetM model.TweetModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tweetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTweetNotFound
		}

		return nil, errors.Wrap(err, "failed to find tweet by ID")
	}

	return tweetM.ToEntity(), nil
}

// ListByOwner returns one window of the user's tweets joined to the author
// with like counts folded in, newest first with an id tie-break.
func (repo *tweetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*entity.TweetView, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.TweetModel{}).
		Where("owner_id = ?", ownerID).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count tweets")
	}

	var rows []*model.TweetViewRow
	err := repo.db.WithContext(ctx).
		Table("tweets").
		Select("tweets.*, users.username AS owner_username, users.full_name AS owner_full_name, users.avatar_url AS owner_avatar, "+
			"(SELECT COUNT(*) FROM likes WHERE likes.target_kind = 'tweet' AND likes.target_id = tweets.id) AS like_count").
		Joins("JOIN users ON users.id = tweets.owner_id").
		Where("tweets.owner_id = ?", ownerID).
		Order("tweets.created_at DESC, tweets.id DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list tweets")
	}

	views := make([]*entity.TweetView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.ToView())
	}

	return views, total, nil
}

// Update modifies the tweet's content.
func (repo *tweetRepository) Update(ctx context.Context, tweet *entity.Tweet) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TweetModel{}).
		Where("id = ?", tweet.ID).
		Update("content", tweet.Content)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update tweet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTweetNotFound
	}

	return nil
}

// Delete removes the tweet row.
func (repo *tweetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TweetModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete tweet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTweetNotFound
	}

	return nil
}
