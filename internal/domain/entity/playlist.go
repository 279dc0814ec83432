package entity

import (
	"time"

	"github.com/google/uuid"
)

// Playlist is an ordered, user-curated collection of videos.
type Playlist struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PlaylistView is a playlist with its member videos resolved, in curated
// order. Videos that no longer exist are skipped during the join.
type PlaylistView struct {
	Playlist
	Videos []*VideoView `json:"videos"`
}
