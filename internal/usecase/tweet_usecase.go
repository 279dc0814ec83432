package usecase

import (
	"context"

	"clipstream/internal/domain/entity"
	"clipstream/internal/domain/pagination"

	"github.com/google/uuid"
)

// TweetUsecase defines the interface for channel tweet operations.
type TweetUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, content string) (*entity.TweetView, error)

	// ListByUser returns one page of the user's tweets, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, params pagination.Params) (*pagination.Page[*entity.TweetView], error)

	// Update and Delete are owner-only mutations.
	Update(ctx context.Context, ownerID, tweetID uuid.UUID, content string) (*entity.TweetView, error)
	Delete(ctx context.Context, ownerID, tweetID uuid.UUID) error
}
