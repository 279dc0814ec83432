// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a user by username, matched case-insensitively.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByLogin retrieves a user by username or email, for credential checks.
	FindByLogin(ctx context.Context, usernameOrEmail string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// UpdateRefreshTokenHash overwrites the user's single refresh-token
	// slot (last-writer-wins). An empty hash clears the slot.
	UpdateRefreshTokenHash(ctx context.Context, userID uuid.UUID, tokenHash string) error
}
