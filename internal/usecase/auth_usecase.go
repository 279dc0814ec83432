// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// FileUpload carries one uploaded file through the application layer. The
// reader is consumed at most once, by the media store.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Email    string
	FullName string
	Password string
	Avatar   *FileUpload
	Cover    *FileUpload
}

// LoginInput defines the data required to log in. Identifier accepts a
// username or an email address.
type LoginInput struct {
	Identifier string
	Password   string
}

// ChangePasswordInput carries a password change request.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// UpdateAccountInput carries profile field updates. Empty fields are left
// unchanged.
type UpdateAccountInput struct {
	FullName string
	Email    string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's public projection.
type RegisterOutput struct {
	User *entity.PublicUser
}

// TokenPairOutput returns the tokens minted by login or rotation together
// with the account they belong to.
type TokenPairOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.PublicUser
}

// AuthUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*TokenPairOutput, error)

	// RefreshTokens rotates the single refresh-token slot: the incoming
	// token must hash-equal the stored slot exactly, otherwise the request
	// is rejected as a reuse of a superseded token.
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenPairOutput, error)

	// Logout clears the refresh-token slot, invalidating the session.
	Logout(ctx context.Context, userID uuid.UUID) error

	ChangePassword(ctx context.Context, userID uuid.UUID, input ChangePasswordInput) error
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.PublicUser, error)
	UpdateAccount(ctx context.Context, userID uuid.UUID, input UpdateAccountInput) (*entity.PublicUser, error)
	UpdateAvatar(ctx context.Context, userID uuid.UUID, file FileUpload) (*entity.PublicUser, error)
	UpdateCoverImage(ctx context.Context, userID uuid.UUID, file FileUpload) (*entity.PublicUser, error)
}
