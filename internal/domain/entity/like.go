package entity

import (
	"time"

	"github.com/google/uuid"
)

// LikeTargetKind discriminates the tagged-union target of a like edge.
// Exactly one kind applies to any edge; the kind participates in the
// composite unique key so the same ID under different kinds never collides.
type LikeTargetKind string

const (
	LikeTargetVideo   LikeTargetKind = "video"
	LikeTargetComment LikeTargetKind = "comment"
	LikeTargetTweet   LikeTargetKind = "tweet"
)

// Valid reports whether the kind is one of the three known targets.
func (k LikeTargetKind) Valid() bool {
	switch k {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
		return true
	}

	return false
}

// Like is a directed edge from a user to a single video, comment or tweet.
// At most one live edge per (user, target kind, target id) triple.
type Like struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"userId"`
	TargetKind LikeTargetKind `json:"targetKind"`
	TargetID   uuid.UUID      `json:"targetId"`
	CreatedAt  time.Time      `json:"createdAt"`
}
