package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a text comment on a video. VideoID and OwnerID are weak
// references; a comment whose video has been deleted is an orphan, not an
// invariant violation.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	VideoID   uuid.UUID `json:"videoId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommentView joins a comment to the non-sensitive fields of its author.
type CommentView struct {
	Comment
	Owner *Owner `json:"owner"`
}
