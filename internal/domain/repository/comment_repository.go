package repository

import (
	"context"
	"errors"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCommentNotFound is returned when a comment is not found.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines persistence for video comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// ListByVideo returns one window of the video's comments joined to
	// their authors' non-sensitive fields, newest first with an id
	// tie-break, plus the total count before windowing.
	ListByVideo(ctx context.Context, videoID uuid.UUID, offset, limit int) ([]*entity.CommentView, int64, error)

	Update(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByVideo prunes all comments of a deleted video.
	DeleteByVideo(ctx context.Context, videoID uuid.UUID) error
}
