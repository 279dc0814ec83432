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

// commentRepository implements the repository.CommentRepository interface.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{
		db: db,
	}
}

// Create persists a new comment.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := model.CommentModelFromEntity(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrVideoNotFound.WrapMessage("comment references a missing video")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

// FindByID retrieves a comment by its unique ID.
func (repo *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&commentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by ID")
	}

	return commentM.ToEntity(), nil
}

// ListByVideo returns one window of the video's comments joined to their
// authors, newest first with an id tie-break, plus the total count.
func (repo *commentRepository) ListByVideo(ctx context.Context, videoID uuid.UUID, offset, limit int) ([]*entity.CommentView, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("video_id = ?", videoID).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count comments")
	}

	var rows []*model.CommentViewRow
	err := repo.db.WithContext(ctx).
		Table("comments").
		Select("comments.*, users.username AS owner_username, users.full_name AS owner_full_name, users.avatar_url AS owner_avatar").
		Joins("JOIN users ON users.id = comments.owner_id").
		Where("comments.video_id = ?", videoID).
		Order("comments.created_at DESC, comments.id DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list comments")
	}

	views := make([]*entity.CommentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.ToView())
	}

	return views, total, nil
}

// Update modifies the comment's content.
func (repo *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("id = ?", comment.ID).
		Update("content", comment.Content)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// Delete removes the comment row.
func (repo *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CommentModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// DeleteByVideo prunes all comments of a deleted video.
func (repo *commentRepository) DeleteByVideo(ctx context.Context, videoID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&model.CommentModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete comments by video")
	}

	return nil
}
