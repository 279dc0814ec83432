package repository

import (
	"context"
	"errors"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVideoNotFound is returned when a video is not found.
var ErrVideoNotFound = errors.New("video not found")

// VideoListQuery describes a listing candidate set. The repository applies
// the filter, a deterministic sort (SortBy plus an id tie-break) and the
// window, and returns the total count before windowing.
type VideoListQuery struct {
	// OwnerID restricts the set to one owner's videos when non-nil.
	OwnerID *uuid.UUID
	// PublishedOnly excludes unpublished videos (public listings).
	PublishedOnly bool
	// Search is a case-insensitive substring filter over title OR description.
	Search string
	// SortBy must be a valid entity.VideoSortField; callers validate it
	// before the query is built.
	SortBy   entity.VideoSortField
	SortDesc bool
	// ViewerID, when non-nil, folds an is-liked flag per row.
	ViewerID *uuid.UUID

	Offset int
	Limit  int
}

// VideoRepository defines persistence and read-model composition for videos.
type VideoRepository interface {
	Create(ctx context.Context, video *entity.Video) error

	// FindByID retrieves the raw video row, unpublished included.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error)

	// FindViewByID retrieves the composed projection (owner + like count,
	// plus the viewer's is-liked flag when a viewer is given).
	FindViewByID(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*entity.VideoView, error)

	// List returns one window of the candidate set and the total count of
	// the set before windowing.
	List(ctx context.Context, query VideoListQuery) ([]*entity.VideoView, int64, error)

	Update(ctx context.Context, video *entity.Video) error
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementViews bumps the view counter by one as a single atomic
	// update; it is never a read-modify-write.
	IncrementViews(ctx context.Context, id uuid.UUID) error

	// CountByOwner and SumViewsByOwner feed the channel dashboard.
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	SumViewsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}
