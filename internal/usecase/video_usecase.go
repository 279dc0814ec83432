package usecase

import (
	"context"

	"clipstream/internal/domain/entity"
	"clipstream/internal/domain/pagination"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PublishVideoInput defines the data required to publish a new video. Both
// files are mandatory; the video's duration is probed from the uploaded file.
type PublishVideoInput struct {
	Title       string
	Description string
	VideoFile   FileUpload
	Thumbnail   FileUpload
}

// ListVideosInput describes a public video listing request.
type ListVideosInput struct {
	pagination.Params
	// Search is a case-insensitive substring filter over title and description.
	Search string
	// SortBy must be one of the allowed sort fields; empty defaults to createdAt.
	SortBy string
	// SortOrder is "asc" or "desc"; empty defaults to desc.
	SortOrder string
	// OwnerID, when non-nil, restricts the listing to one channel.
	OwnerID *uuid.UUID
}

// UpdateVideoInput carries video metadata updates. Empty fields are left
// unchanged; a nil Thumbnail keeps the current one.
type UpdateVideoInput struct {
	Title       string
	Description string
	Thumbnail   *FileUpload
}

// VideoUsecase defines the interface for video lifecycle and listing
// operations.
type VideoUsecase interface {
	// Publish stores both media files and creates the video. A failed
	// upload aborts the operation; no video row is created.
	Publish(ctx context.Context, ownerID uuid.UUID, input PublishVideoInput) (*entity.VideoView, error)

	// List returns one page of published videos matching the filters.
	// ViewerID, when non-nil, folds a per-row is-liked flag.
	List(ctx context.Context, viewerID *uuid.UUID, input ListVideosInput) (*pagination.Page[*entity.VideoView], error)

	// ListOwn returns one page of the owner's videos, unpublished included.
	ListOwn(ctx context.Context, ownerID uuid.UUID, input ListVideosInput) (*pagination.Page[*entity.VideoView], error)

	// Get returns the composed projection. Unpublished videos are visible
	// to their owner only. A successful authenticated read increments the
	// view counter and records a watch-history entry.
	Get(ctx context.Context, viewerID *uuid.UUID, videoID uuid.UUID) (*entity.VideoView, error)

	// Update, Delete and TogglePublish are owner-only mutations.
	Update(ctx context.Context, ownerID, videoID uuid.UUID, input UpdateVideoInput) (*entity.VideoView, error)
	Delete(ctx context.Context, ownerID, videoID uuid.UUID) error
	TogglePublish(ctx context.Context, ownerID, videoID uuid.UUID) (*entity.Video, error)
}
