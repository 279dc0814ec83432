package model

import (
	"time"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaylistModel mirrors the 'playlists' table.
type PlaylistModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlaylistModel) TableName() string {
	return "playlists"
}

// ToEntity converts the model to a domain entity.
func (m *PlaylistModel) ToEntity() *entity.Playlist {
	return &entity.Playlist{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// PlaylistModelFromEntity converts a domain entity to the model.
func PlaylistModelFromEntity(playlist *entity.Playlist) *PlaylistModel {
	return &PlaylistModel{
		ID:          playlist.ID,
		OwnerID:     playlist.OwnerID,
		Name:        playlist.Name,
		Description: playlist.Description,
		CreatedAt:   playlist.CreatedAt,
		UpdatedAt:   playlist.UpdatedAt,
	}
}

// PlaylistVideoModel mirrors the 'playlist_videos' membership table.
// Position preserves curated order; the unique index rejects duplicates.
type PlaylistVideoModel struct {
	PlaylistID uuid.UUID `gorm:"type:uuid;primary_key;uniqueIndex:uq_playlist_videos,priority:1"`
	VideoID    uuid.UUID `gorm:"type:uuid;primary_key;uniqueIndex:uq_playlist_videos,priority:2;index"`
	Position   int       `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlaylistVideoModel) TableName() string {
	return "playlist_videos"
}
