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

// sortColumns maps the allowed sort fields to their SQL columns. Anything
// outside this map never reaches the query builder.
var sortColumns = map[entity.VideoSortField]string{
	entity.SortByCreatedAt: "videos.created_at",
	entity.SortByViews:     "videos.views",
	entity.SortByDuration:  "videos.duration",
	entity.SortByTitle:     "videos.title",
}

const likeCountSubquery = "(SELECT COUNT(*) FROM likes WHERE likes.target_kind = 'video' AND likes.target_id = videos.id)"

// videoRepository implements the repository.VideoRepository interface.
type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository is the constructor for videoRepository.
func NewVideoRepository(db *gorm.DB) repository.VideoRepository {
	return &videoRepository{
		db: db,
	}
}

// Create persists a new video.
func (repo *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	videoM := model.VideoModelFromEntity(video)

	if err := repo.db.WithContext(ctx).Create(videoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("video owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create video")
	}

	video.CreatedAt = videoM.CreatedAt
	video.UpdatedAt = videoM.UpdatedAt

	return nil
}

// FindByID retrieves the raw video row, unpublished included.
func (repo *videoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	var videoM model.VideoModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&videoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to find video by ID")
	}

	return videoM.ToEntity(), nil
}

// FindViewByID retrieves the composed projection: the video joined to its
// owner with the like count folded in.
func (repo *videoRepository) FindViewByID(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*entity.VideoView, error) {
	var row model.VideoViewRow

	query := repo.viewQuery(ctx, viewerID).Where("videos.id = ?", id)
	if err := query.Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find video view")
	}
	if row.ID == uuid.Nil {
		return nil, repository.ErrVideoNotFound
	}

	return row.ToView(), nil
}

// List returns one window of the candidate set plus the total count before
// windowing. The sort is deterministic: the requested column first, then
// the id as a tie-break, so paging never skips or repeats rows.
func (repo *videoRepository) List(ctx context.Context, listQuery repository.VideoListQuery) ([]*entity.VideoView, int64, error) {
	sortColumn, ok := sortColumns[listQuery.SortBy]
	if !ok {
		return nil, 0, errors.Errorf("unsupported sort field %q", listQuery.SortBy)
	}

	base := repo.db.WithContext(ctx).Table("videos")
	if listQuery.OwnerID != nil {
		base = base.Where("videos.owner_id = ?", *listQuery.OwnerID)
	}
	if listQuery.PublishedOnly {
		base = base.Where("videos.published")
	}
	if listQuery.Search != "" {
		pattern := "%" + listQuery.Search + "%"
		base = base.Where("videos.title ILIKE ? OR videos.description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count videos")
	}

	direction := "ASC"
	if listQuery.SortDesc {
		direction = "DESC"
	}

	columns, columnArgs := viewColumns(listQuery.ViewerID)

	var rows []*model.VideoViewRow
	err := base.
		Select(columns, columnArgs...).
		Joins("JOIN users ON users.id = videos.owner_id").
		Order(sortColumn + " " + direction).
		Order("videos.id " + direction).
		Offset(listQuery.Offset).
		Limit(listQuery.Limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list videos")
	}

	views := make([]*entity.VideoView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.ToView())
	}

	return views, total, nil
}

// Update modifies the video's mutable columns.
func (repo *videoRepository) Update(ctx context.Context, video *entity.Video) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("id = ?", video.ID).
		Updates(map[string]any{
			"title":         video.Title,
			"description":   video.Description,
			"thumbnail_url": video.ThumbnailURL,
			"published":     video.Published,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update video")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// Delete removes the video row.
func (repo *videoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VideoModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete video")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// IncrementViews bumps the counter in a single atomic UPDATE. There is no
// read-modify-write, so concurrent views never lose increments.
func (repo *videoRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment views")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// CountByOwner counts the owner's videos, unpublished included.
func (repo *videoRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count videos by owner")
	}

	return count, nil
}

// SumViewsByOwner totals the view counters across the owner's videos.
// COALESCE keeps an owner with no videos at zero instead of NULL.
func (repo *videoRepository) SumViewsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Select("COALESCE(SUM(views), 0)").
		Where("owner_id = ?", ownerID).
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum views by owner")
	}

	return total, nil
}

func (repo *videoRepository) viewQuery(ctx context.Context, viewerID *uuid.UUID) *gorm.DB {
	columns, columnArgs := viewColumns(viewerID)

	return repo.db.WithContext(ctx).
		Table("videos").
		Select(columns, columnArgs...).
		Joins("JOIN users ON users.id = videos.owner_id")
}

func viewColumns(viewerID *uuid.UUID) (string, []any) {
	columns := "videos.*, " +
		"users.username AS owner_username, users.full_name AS owner_full_name, users.avatar_url AS owner_avatar, " +
		likeCountSubquery + " AS like_count, "

	if viewerID != nil {
		return columns + "EXISTS(SELECT 1 FROM likes WHERE likes.target_kind = 'video' AND likes.target_id = videos.id AND likes.user_id = ?) AS is_liked",
			[]any{*viewerID}
	}

	return columns + "FALSE AS is_liked", nil
}
