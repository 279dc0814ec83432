package entity

import (
	"time"

	"github.com/google/uuid"
)

// WatchEntry records that a user watched a video. The history is
// deduplicated: re-watching moves the entry to the front by refreshing
// WatchedAt rather than inserting a second row.
type WatchEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	VideoID   uuid.UUID `json:"videoId"`
	WatchedAt time.Time `json:"watchedAt"`
}

// WatchEntryView joins a history entry to the watched video's projection.
type WatchEntryView struct {
	WatchEntry
	Video *VideoView `json:"video"`
}
