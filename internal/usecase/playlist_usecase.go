package usecase

import (
	"context"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreatePlaylistInput defines the data required to create a playlist.
type CreatePlaylistInput struct {
	Name        string
	Description string
}

// UpdatePlaylistInput carries playlist metadata updates. Empty fields are
// left unchanged.
type UpdatePlaylistInput struct {
	Name        string
	Description string
}

// PlaylistUsecase defines the interface for playlist curation.
type PlaylistUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, input CreatePlaylistInput) (*entity.Playlist, error)

	// Get resolves the playlist with its member videos in curated order.
	Get(ctx context.Context, playlistID uuid.UUID) (*entity.PlaylistView, error)

	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error)

	// Update, Delete, AddVideo and RemoveVideo are owner-only mutations.
	Update(ctx context.Context, ownerID, playlistID uuid.UUID, input UpdatePlaylistInput) (*entity.Playlist, error)
	Delete(ctx context.Context, ownerID, playlistID uuid.UUID) error
	AddVideo(ctx context.Context, ownerID, playlistID, videoID uuid.UUID) (*entity.PlaylistView, error)
	RemoveVideo(ctx context.Context, ownerID, playlistID, videoID uuid.UUID) (*entity.PlaylistView, error)
}
