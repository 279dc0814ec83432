package repository

import (
	"context"
	"errors"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDuplicateLike is returned when the composite unique index rejects a
// second live edge for the same (user, target kind, target id) triple.
var ErrDuplicateLike = errors.New("like already exists")

// LikeRepository defines persistence for like edges. The target is a
// tagged union: exactly one of video, comment or tweet, discriminated by
// entity.LikeTargetKind.
type LikeRepository interface {
	// Toggle flips the presence of the like edge as a compare-and-swap
	// against the unique index and returns the resulting membership state.
	Toggle(ctx context.Context, userID uuid.UUID, kind entity.LikeTargetKind, targetID uuid.UUID) (entity.ToggleState, *entity.Like, error)

	// Exists reports whether a live edge exists for the triple.
	Exists(ctx context.Context, userID uuid.UUID, kind entity.LikeTargetKind, targetID uuid.UUID) (bool, error)

	// CountByTarget counts live edges pointing at one target.
	CountByTarget(ctx context.Context, kind entity.LikeTargetKind, targetID uuid.UUID) (int64, error)

	// ListLikedVideos returns the viewer's liked, still-published videos
	// joined to their owners, in video creation-time descending order.
	// Dangling edges (deleted targets) are skipped.
	ListLikedVideos(ctx context.Context, userID uuid.UUID) ([]*entity.VideoView, error)

	// CountReceivedByOwner counts like edges across all content owned by
	// the user: their videos, comments and tweets.
	CountReceivedByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// DeleteByTarget prunes all edges pointing at a deleted target.
	DeleteByTarget(ctx context.Context, kind entity.LikeTargetKind, targetID uuid.UUID) error
}
