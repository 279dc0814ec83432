package usecase

import (
	"context"

	"clipstream/internal/domain/entity"
	"clipstream/internal/domain/pagination"

	"github.com/google/uuid"
)

// CommentUsecase defines the interface for video comment operations.
type CommentUsecase interface {
	// Add creates a comment on a published video.
	Add(ctx context.Context, ownerID, videoID uuid.UUID, content string) (*entity.CommentView, error)

	// ListByVideo returns one page of the video's comments, newest first.
	ListByVideo(ctx context.Context, videoID uuid.UUID, params pagination.Params) (*pagination.Page[*entity.CommentView], error)

	// Update and Delete are owner-only mutations.
	Update(ctx context.Context, ownerID, commentID uuid.UUID, content string) (*entity.CommentView, error)
	Delete(ctx context.Context, ownerID, commentID uuid.UUID) error
}
