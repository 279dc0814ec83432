package entity

import (
	"time"

	"github.com/google/uuid"
)

// Video represents an uploaded video. OwnerID is a weak reference: deleting
// the owner does not cascade here.
type Video struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"ownerId"`
	VideoURL     string    `json:"videoUrl"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Duration     float64   `json:"duration"` // seconds
	Views        int64     `json:"views"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// VideoView is the read-optimized listing projection: the video joined to
// its owner with the like count folded in. It is never written back.
type VideoView struct {
	Video
	LikeCount int64  `json:"likeCount"`
	Owner     *Owner `json:"owner"`
	// IsLiked is only meaningful when the projection was composed for an
	// authenticated viewer; it stays false for anonymous reads.
	IsLiked bool `json:"isLiked,omitempty"`
}

// VideoSortField enumerates the allowed listing sort keys. Anything outside
// this set is rejected before a query is issued.
type VideoSortField string

const (
	SortByCreatedAt VideoSortField = "createdAt"
	SortByViews     VideoSortField = "views"
	SortByDuration  VideoSortField = "duration"
	SortByTitle     VideoSortField = "title"
)

// Valid reports whether the sort field is in the allow-list.
func (f VideoSortField) Valid() bool {
	switch f {
	case SortByCreatedAt, SortByViews, SortByDuration, SortByTitle:
		return true
	}

	return false
}
