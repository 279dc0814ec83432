package postgres

import (
	"context"
	"time"

	"clipstream/internal/domain/entity"
	"clipstream/internal/domain/repository"
	"clipstream/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// watchHistoryRepository implements the repository.WatchHistoryRepository interface.
type watchHistoryRepository struct {
	db *gorm.DB
}

// NewWatchHistoryRepository is the constructor for watchHistoryRepository.
func NewWatchHistoryRepository(db *gorm.DB) repository.WatchHistoryRepository {
	return &watchHistoryRepository{
		db: db,
	}
}

// Record upserts the (user, video) entry. A re-watch refreshes watched_at
// in place, which moves the entry to the front of the history without ever
// duplicating it.
func (repo *watchHistoryRepository) Record(ctx context.Context, userID, videoID uuid.UUID) error {
	entryM := &model.WatchEntryModel{
		ID:        uuid.New(),
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: time.Now(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
			DoUpdates: clause.Assignments(map[string]any{"watched_at": entryM.WatchedAt}),
		}).
		Create(entryM).Error; err != nil {
		return errors.Wrap(err, "failed to record watch entry")
	}

	return nil
}

// watchEntryRow is the scan target for history listings.
type watchEntryRow struct {
	model.VideoViewRow
	EntryID   uuid.UUID
	WatchedAt time.Time
}

// ListByUser returns one window of the history joined to the watched videos
// and their owners, most recently watched first. Entries whose video has
// been deleted drop out of the join.
func (repo *watchHistoryRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.WatchEntryView, int64, error) {
	base := repo.db.WithContext(ctx).
		Table("watch_entries").
		Joins("JOIN videos ON videos.id = watch_entries.video_id").
		Where("watch_entries.user_id = ?", userID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count watch entries")
	}

	columns, columnArgs := viewColumns(&userID)

	var rows []*watchEntryRow
	err := base.
		Select(columns+", watch_entries.id AS entry_id, watch_entries.watched_at", columnArgs...).
		Joins("JOIN users ON users.id = videos.owner_id").
		Order("watch_entries.watched_at DESC, watch_entries.id DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list watch entries")
	}

	entries := make([]*entity.WatchEntryView, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &entity.WatchEntryView{
			WatchEntry: entity.WatchEntry{
				ID:        row.EntryID,
				UserID:    userID,
				VideoID:   row.VideoModel.ID,
				WatchedAt: row.WatchedAt,
			},
			Video: row.VideoViewRow.ToView(),
		})
	}

	return entries, total, nil
}

// DeleteByVideo prunes history entries of a deleted video.
func (repo *watchHistoryRepository) DeleteByVideo(ctx context.Context, videoID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&model.WatchEntryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete watch entries by video")
	}

	return nil
}
