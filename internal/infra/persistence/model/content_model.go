package model

import (
	"time"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentModel mirrors the 'comments' table.
type CommentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	VideoID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}

// ToEntity converts the model to a domain entity.
func (m *CommentModel) ToEntity() *entity.Comment {
	return &entity.Comment{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		VideoID:   m.VideoID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CommentModelFromEntity converts a domain entity to the model.
func CommentModelFromEntity(comment *entity.Comment) *CommentModel {
	return &CommentModel{
		ID:        comment.ID,
		OwnerID:   comment.OwnerID,
		VideoID:   comment.VideoID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// CommentViewRow is the scan target for comment listings joined to authors.
type CommentViewRow struct {
	CommentModel
	OwnerUsername string
	OwnerFullName string
	OwnerAvatar   string
}

// ToView converts the row to the domain projection.
func (r *CommentViewRow) ToView() *entity.CommentView {
	return &entity.CommentView{
		Comment: *r.CommentModel.ToEntity(),
		Owner: &entity.Owner{
			ID:        r.OwnerID,
			Username:  r.OwnerUsername,
			FullName:  r.OwnerFullName,
			AvatarURL: r.OwnerAvatar,
		},
	}
}

// TweetModel mirrors the 'tweets' table.
type TweetModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TweetModel) TableName() string {
	return "tweets"
}

// ToEntity converts the model to a domain entity.
func (m *TweetModel) ToEntity() *entity.Tweet {
	return &entity.Tweet{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// TweetModelFromEntity converts a domain entity to the model.
func TweetModelFromEntity(tweet *entity.Tweet) *TweetModel {
	return &TweetModel{
		ID:        tweet.ID,
		OwnerID:   tweet.OwnerID,
		Content:   tweet.Content,
		CreatedAt: tweet.CreatedAt,
		UpdatedAt: tweet.UpdatedAt,
	}
}

// TweetViewRow is the scan target for tweet listings joined to authors with
// like counts folded in.
type TweetViewRow struct {
	TweetModel
	LikeCount     int64
	OwnerUsername string
	OwnerFullName string
	OwnerAvatar   string
}

// ToView converts the row to the domain projection.
func (r *TweetViewRow) ToView() *entity.TweetView {
	return &entity.TweetView{
		Tweet:     *r.TweetModel.ToEntity(),
		LikeCount: r.LikeCount,
		Owner: &entity.Owner{
			ID:        r.OwnerID,
			Username:  r.OwnerUsername,
			FullName:  r.OwnerFullName,
			AvatarURL: r.OwnerAvatar,
		},
	}
}
