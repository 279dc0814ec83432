package model

import (
	"strings"
	"time"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

func lower(s string) string {
	return strings.ToLower(s)
}

// VideoModel mirrors the 'videos' table.
type VideoModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	VideoURL     string    `gorm:"type:text;not null"`
	ThumbnailURL string    `gorm:"type:text;not null"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	Duration     float64   `gorm:"not null;default:0"`
	Views        int64     `gorm:"not null;default:0"`
	Published    bool      `gorm:"not null;default:true;index"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (VideoModel) TableName() string {
	return "videos"
}

// ToEntity converts the model to a domain entity.
func (m *VideoModel) ToEntity() *entity.Video {
	return &entity.Video{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		VideoURL:     m.VideoURL,
		ThumbnailURL: m.ThumbnailURL,
		Title:        m.Title,
		Description:  m.Description,
		Duration:     m.Duration,
		Views:        m.Views,
		Published:    m.Published,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// VideoModelFromEntity converts a domain entity to the model.
func VideoModelFromEntity(video *entity.Video) *VideoModel {
	return &VideoModel{
		ID:           video.ID,
		OwnerID:      video.OwnerID,
		VideoURL:     video.VideoURL,
		ThumbnailURL: video.ThumbnailURL,
		Title:        video.Title,
		Description:  video.Description,
		Duration:     video.Duration,
		Views:        video.Views,
		Published:    video.Published,
		CreatedAt:    video.CreatedAt,
		UpdatedAt:    video.UpdatedAt,
	}
}

// VideoViewRow is the scan target for listing queries that join videos to
// their owners and fold in like counts. It is read-only.
type VideoViewRow struct {
	VideoModel
	LikeCount     int64
	IsLiked       bool
	OwnerUsername string
	OwnerFullName string
	OwnerAvatar   string
}

// ToView converts the row to the domain projection.
func (r *VideoViewRow) ToView() *entity.VideoView {
	return &entity.VideoView{
		Video:     *r.VideoModel.ToEntity(),
		LikeCount: r.LikeCount,
		IsLiked:   r.IsLiked,
		Owner: &entity.Owner{
			ID:        r.OwnerID,
			Username:  r.OwnerUsername,
			FullName:  r.OwnerFullName,
			AvatarURL: r.OwnerAvatar,
		},
	}
}
