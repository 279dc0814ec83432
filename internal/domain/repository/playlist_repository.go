package repository

import (
	"context"
	"errors"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for playlist persistence.
var (
	// ErrPlaylistNotFound is returned when a playlist is not found.
	ErrPlaylistNotFound = errors.New("playlist not found")
	// ErrDuplicatePlaylistVideo is returned when a video is already in the playlist.
	ErrDuplicatePlaylistVideo = errors.New("video already in playlist")
	// ErrVideoNotInPlaylist is returned when removing a video that is not a member.
	ErrVideoNotInPlaylist = errors.New("video not in playlist")
)

// PlaylistRepository defines persistence for playlists and their ordered
// video membership.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *entity.Playlist) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error)

	// FindViewByID resolves the playlist's member videos in curated order,
	// skipping videos that no longer exist.
	FindViewByID(ctx context.Context, id uuid.UUID) (*entity.PlaylistView, error)

	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error)
	Update(ctx context.Context, playlist *entity.Playlist) error
	Delete(ctx context.Context, id uuid.UUID) error

	// AddVideo appends the video at the end of the playlist; adding a video
	// twice fails with ErrDuplicatePlaylistVideo.
	AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error
	RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error

	// RemoveVideoEverywhere prunes a deleted video from all playlists.
	RemoveVideoEverywhere(ctx context.Context, videoID uuid.UUID) error
}
