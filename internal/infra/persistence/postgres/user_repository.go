package postgres

import (
	"context"
	"strings"

	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/domain/repository"
	"clipstream/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return userM.ToEntity(), nil
}

// FindByUsername retrieves a user by username, matched case-insensitively.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("username_lower = ?", strings.ToLower(username)).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return userM.ToEntity(), nil
}

// FindByLogin retrieves a user by username or email. Usernames match
// case-insensitively; emails match exactly.
func (repo *userRepository) FindByLogin(ctx context.Context, usernameOrEmail string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("username_lower = ? OR email = ?", strings.ToLower(usernameOrEmail), usernameOrEmail).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by login")
	}

	return userM.ToEntity(), nil
}

// Create persists a new user. Unique index violations on username or email
// surface as the domain's already-exists error.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := model.UserModelFromEntity(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user row.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := model.UserModelFromEntity(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"username":           userM.Username,
			"username_lower":     userM.UsernameLower,
			"email":              userM.Email,
			"full_name":          userM.FullName,
			"avatar_url":         userM.AvatarURL,
			"cover_image_url":    userM.CoverImageURL,
			"password_hash":      userM.PasswordHash,
			"refresh_token_hash": userM.RefreshTokenHash,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already registered")
		}

		return errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateRefreshTokenHash overwrites the user's single refresh-token slot.
func (repo *userRepository) UpdateRefreshTokenHash(ctx context.Context, userID uuid.UUID, tokenHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("refresh_token_hash", tokenHash)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update refresh token hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
