package repository

import (
	"context"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// WatchHistoryRepository defines persistence for per-user watch history.
type WatchHistoryRepository interface {
	// Record upserts the (user, video) entry: a first watch inserts it, a
	// re-watch refreshes WatchedAt so the entry moves to the front.
	Record(ctx context.Context, userID, videoID uuid.UUID) error

	// ListByUser returns one window of the history, most recent first,
	// joined to the watched videos and their owners. Entries whose video
	// has been deleted are skipped.
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.WatchEntryView, int64, error)

	// DeleteByVideo prunes history entries of a deleted video.
	DeleteByVideo(ctx context.Context, videoID uuid.UUID) error
}
