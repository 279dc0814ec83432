// Package model contains the GORM-specific structs mirroring the database
// tables. Mapping to and from domain entities happens at the repository
// boundary so the rest of the application never sees GORM types.
package model

import (
	"time"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. UsernameLower backs the
// case-insensitive uniqueness of handles.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	Username      string    `gorm:"type:varchar(100);not null"`
	UsernameLower string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_users_username_lower"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email"`
	FullName      string    `gorm:"type:varchar(100);not null"`
	AvatarURL     string    `gorm:"type:text"`
	CoverImageURL string    `gorm:"type:text"`

	PasswordHash     string `gorm:"type:varchar(255);not null"`
	RefreshTokenHash string `gorm:"type:varchar(64)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts the model to a domain entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:               m.ID,
		Username:         m.Username,
		Email:            m.Email,
		FullName:         m.FullName,
		AvatarURL:        m.AvatarURL,
		CoverImageURL:    m.CoverImageURL,
		PasswordHash:     m.PasswordHash,
		RefreshTokenHash: m.RefreshTokenHash,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// UserModelFromEntity converts a domain entity to the model.
func UserModelFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:               user.ID,
		Username:         user.Username,
		UsernameLower:    lower(user.Username),
		Email:            user.Email,
		FullName:         user.FullName,
		AvatarURL:        user.AvatarURL,
		CoverImageURL:    user.CoverImageURL,
		PasswordHash:     user.PasswordHash,
		RefreshTokenHash: user.RefreshTokenHash,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	}
}
