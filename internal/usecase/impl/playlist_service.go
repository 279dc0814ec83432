package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "clipstream/internal/delivery/context"
	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/domain/repository"
	"clipstream/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// playlistService implements the PlaylistUsecase interface.
type playlistService struct {
	txManager    repository.TransactionManager
	playlistRepo repository.PlaylistRepository
	videoRepo    repository.VideoRepository
	logger       *slog.Logger
}

// PlaylistServiceParams holds dependencies for playlistService, injected by Fx.
type PlaylistServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PlaylistRepo repository.PlaylistRepository
	VideoRepo    repository.VideoRepository
	Logger       *slog.Logger
}

// NewPlaylistService is the constructor for playlistService.
func NewPlaylistService(params PlaylistServiceParams) usecase.PlaylistUsecase {
	return &playlistService{
		txManager:    params.TxManager,
		playlistRepo: params.PlaylistRepo,
		videoRepo:    params.VideoRepo,
		logger:       params.Logger,
	}
}

func (srv *playlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create makes a new empty playlist.
func (srv *playlistService) Create(ctx context.Context, ownerID uuid.UUID, input usecase.CreatePlaylistInput) (*entity.Playlist, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("playlist name is required")
	}

	playlist := &entity.Playlist{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Description: input.Description,
	}
	if err := srv.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, errors.Wrap(err, "failed to create playlist")
	}

	srv.log(ctx).Info("Playlist created", slog.Any("playlist_id", playlist.ID))

	return playlist, nil
}

// Get resolves the playlist with its member videos in curated order.
func (srv *playlistService) Get(ctx context.Context, playlistID uuid.UUID) (*entity.PlaylistView, error) {
	view, err := srv.playlistRepo.FindViewByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaylistNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPlaylistNotFound, "playlist not found")
		}

		return nil, errors.Wrap(err, "failed to load playlist")
	}

	return view, nil
}

// ListByOwner returns the user's playlists.
func (srv *playlistService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	playlists, err := srv.playlistRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list playlists")
	}

	return playlists, nil
}

// Update edits the playlist metadata. Only the owner may update.
func (srv *playlistService) Update(ctx context.Context, ownerID, playlistID uuid.UUID, input usecase.UpdatePlaylistInput) (*entity.Playlist, error) {
	playlist, err := srv.findOwned(ctx, srv.playlistRepo, ownerID, playlistID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		playlist.Name = name
	}
	if input.Description != "" {
		playlist.Description = input.Description
	}

	if err := srv.playlistRepo.Update(ctx, playlist); err != nil {
		return nil, errors.Wrap(err, "failed to update playlist")
	}

	return playlist, nil
}

// Delete removes the playlist and its membership rows. Only the owner may
// delete.
func (srv *playlistService) Delete(ctx context.Context, ownerID, playlistID uuid.UUID) error {
	if _, err := srv.findOwned(ctx, srv.playlistRepo, ownerID, playlistID); err != nil {
		return err
	}

	if err := srv.playlistRepo.Delete(ctx, playlistID); err != nil {
		return errors.Wrap(err, "failed to delete playlist")
	}

	srv.log(ctx).Info("Playlist deleted", slog.Any("playlist_id", playlistID))

	return nil
}

// AddVideo appends a video at the end of the playlist. Adding the same
// video twice is a conflict.
func (srv *playlistService) AddVideo(ctx context.Context, ownerID, playlistID, videoID uuid.UUID) (*entity.PlaylistView, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		playlistRepo := repoFactory.PlaylistRepo()

		if _, err := srv.findOwned(ctx, playlistRepo, ownerID, playlistID); err != nil {
			return err
		}

		if _, err := repoFactory.VideoRepo().FindByID(ctx, videoID); err != nil {
			if errors.Is(err, repository.ErrVideoNotFound) {
				return errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
			}

			return errors.Wrap(err, "failed to find video")
		}

		if err := playlistRepo.AddVideo(ctx, playlistID, videoID); err != nil {
			if errors.Is(err, repository.ErrDuplicatePlaylistVideo) {
				return errors.Wrap(domainerrors.ErrConflict, "video already in playlist")
			}

			return errors.Wrap(err, "failed to add video to playlist")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return srv.Get(ctx, playlistID)
}

// RemoveVideo takes a video out of the playlist. Only the owner may remove.
func (srv *playlistService) RemoveVideo(ctx context.Context, ownerID, playlistID, videoID uuid.UUID) (*entity.PlaylistView, error) {
	if _, err := srv.findOwned(ctx, srv.playlistRepo, ownerID, playlistID); err != nil {
		return nil, err
	}

	if err := srv.playlistRepo.RemoveVideo(ctx, playlistID, videoID); err != nil {
		if errors.Is(err, repository.ErrVideoNotInPlaylist) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "video not in playlist")
		}

		return nil, errors.Wrap(err, "failed to remove video from playlist")
	}

	return srv.Get(ctx, playlistID)
}

func (srv *playlistService) findOwned(ctx context.Context, playlistRepo repository.PlaylistRepository, ownerID, playlistID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := playlistRepo.FindByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaylistNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPlaylistNotFound, "playlist not found")
		}

		return nil, errors.Wrap(err, "failed to find playlist")
	}

	if playlist.OwnerID != ownerID {
		return nil, errors.Wrap(domainerrors.ErrPermissionDenied, "not the playlist owner")
	}

	return playlist, nil
}
