// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. Every channel is a user: the
// "channel" side of a subscription edge is simply another user's ID.
type User struct {
	ID            uuid.UUID // The unique identifier for the user.
	Username      string    // Unique handle; uniqueness is enforced case-insensitively.
	Email         string    // Unique contact email, also accepted as a login identifier.
	FullName      string    // Display name shown on profiles and owner projections.
	AvatarURL     string    // Durable URL of the avatar image.
	CoverImageURL string    // Durable URL of the channel cover image.

	// PasswordHash and RefreshTokenHash are credential material. They must
	// never appear in any projection handed to a client; Sanitized() is the
	// only User shape the delivery layer is allowed to serialize.
	PasswordHash     string
	RefreshTokenHash string // SHA-256 hash of the single active refresh token; empty means no session.

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicUser is the sanitized projection of a User, safe to embed in
// responses and in owner sub-documents of other projections.
type PublicUser struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	FullName      string    `json:"fullName"`
	AvatarURL     string    `json:"avatarUrl"`
	CoverImageURL string    `json:"coverImageUrl"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Sanitized strips credential fields from the user.
func (u *User) Sanitized() *PublicUser {
	if u == nil {
		return nil
	}

	return &PublicUser{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		FullName:      u.FullName,
		AvatarURL:     u.AvatarURL,
		CoverImageURL: u.CoverImageURL,
		CreatedAt:     u.CreatedAt,
	}
}

// Owner is the compact owner sub-projection attached to videos, comments
// and tweets. It intentionally carries nothing beyond display fields.
type Owner struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName"`
	AvatarURL string    `json:"avatarUrl"`
}
