package usecase

import (
	"context"

	"clipstream/internal/domain/entity"
	"clipstream/internal/domain/pagination"

	"github.com/google/uuid"
)

// ChannelUsecase defines the interface for channel pages and the owner
// dashboard.
type ChannelUsecase interface {
	// Profile composes the channel page for the given username. ViewerID,
	// when non-nil, determines the isSubscribed flag; for anonymous
	// viewers it is always false.
	Profile(ctx context.Context, viewerID *uuid.UUID, username string) (*entity.ChannelProfile, error)

	// Stats returns the owner's dashboard aggregates. A channel with no
	// content reports zeros across the board.
	Stats(ctx context.Context, ownerID uuid.UUID) (*entity.ChannelStats, error)

	// WatchHistory returns one page of the user's watch history, most
	// recently watched first.
	WatchHistory(ctx context.Context, userID uuid.UUID, params pagination.Params) (*pagination.Page[*entity.WatchEntryView], error)
}
