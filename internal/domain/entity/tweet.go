package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tweet is a short text update posted by a user to their channel.
type Tweet struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TweetView joins a tweet to its author and folds in the like count.
type TweetView struct {
	Tweet
	LikeCount int64  `json:"likeCount"`
	Owner     *Owner `json:"owner"`
}
