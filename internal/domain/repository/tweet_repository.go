package repository

import (
	"context"
	"errors"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTweetNotFound is returned when a tweet is not found.
var ErrTweetNotFound = errors.New("tweet not found")

// TweetRepository defines persistence for channel tweets.
type TweetRepository interface {
	Create(ctx context.Context, tweet *entity.Tweet) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tweet, error)

	// ListByOwner returns the user's tweets joined to the author with like
	// counts folded in, newest first with an id tie-break.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*entity.TweetView, int64, error)

	Update(ctx context.Context, tweet *entity.Tweet) error
	Delete(ctx context.Context, id uuid.UUID) error
}
