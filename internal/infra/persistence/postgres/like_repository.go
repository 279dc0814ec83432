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

// likeRepository implements the repository.LikeRepository interface.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{
		db: db,
	}
}

// Toggle flips the presence of the like edge. Same compare-and-swap shape
// as subscription toggles: insert with ON CONFLICT DO NOTHING, and a zero
// affected-row count means the edge existed and is deleted instead.
func (repo *likeRepository) Toggle(ctx context.Context, userID uuid.UUID, kind entity.LikeTargetKind, targetID uuid.UUID) (entity.ToggleState, *entity.Like, error) {
	likeM := &model.LikeModel{
		ID:         uuid.New(),
		UserID:     userID,
		TargetKind: string(kind),
		TargetID:   targetID,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "target_kind"}, {Name: "target_id"}},
			DoNothing: true,
		}).
		Create(likeM)
	if result.Error != nil {
		return "", nil, errors.Wrap(result.Error, "failed to toggle like")
	}

	if result.RowsAffected > 0 {
		return entity.ToggleCreated, likeM.ToEntity(), nil
	}

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, string(kind), targetID).
		Delete(&model.LikeModel{}).Error; err != nil {
		return "", nil, errors.Wrap(err, "failed to remove like")
	}

	return entity.ToggleRemoved, nil, nil
}

// Exists reports whether a live edge exists for the triple.
func (repo *likeRepository) Exists(ctx context.Context, userID uuid.UUID, kind entity.LikeTargetKind, targetID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, string(kind), targetID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check like")
	}

	return count > 0, nil
}

// CountByTarget counts live edges pointing at one target.
func (repo *likeRepository) CountByTarget(ctx context.Context, kind entity.LikeTargetKind, targetID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("target_kind = ? AND target_id = ?", string(kind), targetID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count likes")
	}

	return count, nil
}

// ListLikedVideos returns the user's liked, still-published videos joined
// to their owners, newest video first. Edges whose video has been deleted
// drop out of the join.
func (repo *likeRepository) ListLikedVideos(ctx context.Context, userID uuid.UUID) ([]*entity.VideoView, error) {
	columns, columnArgs := viewColumns(&userID)

	var rows []*model.VideoViewRow
	err := repo.db.WithContext(ctx).
		Table("likes").
		Select(columns, columnArgs...).
		Joins("JOIN videos ON videos.id = likes.target_id").
		Joins("JOIN users ON users.id = videos.owner_id").
		Where("likes.user_id = ? AND likes.target_kind = 'video' AND videos.published", userID).
		Order("videos.created_at DESC, videos.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list liked videos")
	}

	views := make([]*entity.VideoView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.ToView())
	}

	return views, nil
}

// CountReceivedByOwner counts like edges across all content owned by the
// user: videos, comments and tweets.
func (repo *likeRepository) CountReceivedByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Table("likes").
		Where(`(likes.target_kind = 'video' AND likes.target_id IN (SELECT id FROM videos WHERE owner_id = ?))
			OR (likes.target_kind = 'comment' AND likes.target_id IN (SELECT id FROM comments WHERE owner_id = ?))
			OR (likes.target_kind = 'tweet' AND likes.target_id IN (SELECT id FROM tweets WHERE owner_id = ?))`,
			ownerID, ownerID, ownerID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count received likes")
	}

	return count, nil
}

// DeleteByTarget prunes all edges pointing at a deleted target.
func (repo *likeRepository) DeleteByTarget(ctx context.Context, kind entity.LikeTargetKind, targetID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("target_kind = ? AND target_id = ?", string(kind), targetID).
		Delete(&model.LikeModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete likes by target")
	}

	return nil
}
