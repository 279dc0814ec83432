package postgres

import (
	"context"

	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/domain/repository"
	"clipstream/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// playlistRepository implements the repository.PlaylistRepository interface.
type playlistRepository struct {
	db *gorm.DB
}

// NewPlaylistRepository is the constructor for playlistRepository.
func NewPlaylistRepository(db *gorm.DB) repository.PlaylistRepository {
	return &playlistRepository{
		db: db,
	}
}

// Create persists a new playlist.
func (repo *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	playlistM := model.PlaylistModelFromEntity(playlist)

	if err := repo.db.WithContext(ctx).Create(playlistM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create playlist")
	}

	playlist.CreatedAt = playlistM.CreatedAt
	playlist.UpdatedAt = playlistM.UpdatedAt

	return nil
}

// FindByID retrieves a playlist by its unique ID.
func (repo *playlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
	var playlistM model.PlaylistModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&playlistM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaylistNotFound
		}

		return nil, errors.Wrap(err, "failed to find playlist by ID")
	}

	return playlistM.ToEntity(), nil
}

// FindViewByID resolves the playlist's member videos in curated order.
// Videos that no longer exist simply drop out of the join.
func (repo *playlistRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*entity.PlaylistView, error) {
	playlist, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	columns, columnArgs := viewColumns(nil)

	var rows []*model.VideoViewRow
	err = repo.db.WithContext(ctx).
		Table("playlist_videos").
		Select(columns, columnArgs...).
		Joins("JOIN videos ON videos.id = playlist_videos.video_id").
		Joins("JOIN users ON users.id = videos.owner_id").
		Where("playlist_videos.playlist_id = ?", id).
		Order("playlist_videos.position ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load playlist videos")
	}

	videos := make([]*entity.VideoView, 0, len(rows))
	for _, row := range rows {
		videos = append(videos, row.ToView())
	}

	return &entity.PlaylistView{
		Playlist: *playlist,
		Videos:   videos,
	}, nil
}

// ListByOwner returns the user's playlists, newest first.
func (repo *playlistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	var playlistModels []*model.PlaylistModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&playlistModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list playlists by owner")
	}

	playlists := make([]*entity.Playlist, 0, len(playlistModels))
	for _, playlistM := range playlistModels {
		playlists = append(playlists, playlistM.ToEntity())
	}

	return playlists, nil
}

// Update modifies the playlist's metadata.
func (repo *playlistRepository) Update(ctx context.Context, playlist *entity.Playlist) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlaylistModel{}).
		Where("id = ?", playlist.ID).
		Updates(map[string]any{
			"name":        playlist.Name,
			"description": playlist.Description,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update playlist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaylistNotFound
	}

	return nil
}

// Delete removes the playlist and its membership rows.
func (repo *playlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("playlist_id = ?", id).
		Delete(&model.PlaylistVideoModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete playlist membership")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PlaylistModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete playlist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaylistNotFound
	}

	return nil
}

// AddVideo appends the video at the end of the playlist. The position is
// max+1 so curated order survives removals in the middle; it is computed
// inside the INSERT so concurrent appends cannot read the same maximum.
func (repo *playlistRepository) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Exec(
		`INSERT INTO playlist_videos (playlist_id, video_id, position, created_at)
		 SELECT ?, ?, COALESCE(MAX(position), 0) + 1, CURRENT_TIMESTAMP
		 FROM playlist_videos WHERE playlist_id = ?`,
		playlistID, videoID, playlistID,
	).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePlaylistVideo
		}

		return errors.Wrap(err, "failed to add video to playlist")
	}

	return nil
}

// RemoveVideo takes the video out of the playlist.
func (repo *playlistRepository) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideoModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove video from playlist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVideoNotInPlaylist
	}

	return nil
}

// RemoveVideoEverywhere prunes a deleted video from all playlists.
func (repo *playlistRepository) RemoveVideoEverywhere(ctx context.Context, videoID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&model.PlaylistVideoModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to prune video from playlists")
	}

	return nil
}
