// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "clipstream/internal/delivery/context"
	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/domain/repository"
	"clipstream/internal/domain/service"
	"clipstream/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mediaStore   service.MediaStore
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	MediaStore   service.MediaStore
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mediaStore:   params.MediaStore,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. The avatar upload is mandatory and runs
// before the user row is written, so a failed upload never leaves a
// half-created account.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Registering account", slog.String("username", input.Username))

	if input.Avatar == nil {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("avatar file is required")
	}

	// Pre-flight the uniqueness checks so a taken username or email fails
	// before any blob is stored. The transaction re-checks and the unique
	// indexes backstop the remaining race.
	if err := ensureIdentityFree(ctx, srv.userRepo, input.Username, input.Email); err != nil {
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	avatar, err := srv.mediaStore.Upload(ctx, service.MediaKindAvatar, input.Avatar.Filename, input.Avatar.ContentType, input.Avatar.Reader)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	coverURL := ""
	if input.Cover != nil {
		cover, err := srv.mediaStore.Upload(ctx, service.MediaKindCover, input.Cover.Filename, input.Cover.ContentType, input.Cover.Reader)
		if err != nil {
			srv.discardUpload(ctx, avatar.URL)

			return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
		}
		coverURL = cover.URL
	}

	user := &entity.User{
		ID:            uuid.New(),
		Username:      input.Username,
		Email:         input.Email,
		FullName:      input.FullName,
		AvatarURL:     avatar.URL,
		CoverImageURL: coverURL,
		PasswordHash:  passwordHash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := ensureIdentityFree(ctx, userRepo, input.Username, input.Email); err != nil {
			return err
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.discardUpload(ctx, avatar.URL)
		srv.discardUpload(ctx, coverURL)
		srv.log(ctx).Error("Registration failed", slog.Any("error", err), slog.String("username", input.Username))

		return nil, err
	}

	srv.log(ctx).Info("Account registered", slog.Any("user_id", user.ID))

	return &usecase.RegisterOutput{User: user.Sanitized()}, nil
}

// ensureIdentityFree rejects a username or email that is already taken.
func ensureIdentityFree(ctx context.Context, userRepo repository.UserRepository, username, email string) error {
	if _, err := userRepo.FindByUsername(ctx, username); err == nil {
		return errors.Wrap(domainerrors.ErrUserAlreadyExists, "username already taken")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check username")
	}

	if _, err := userRepo.FindByLogin(ctx, email); err == nil {
		return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check email")
	}

	return nil
}

// discardUpload best-effort removes a blob that belongs to no account.
func (srv *authService) discardUpload(ctx context.Context, url string) {
	if url == "" {
		return
	}

	if err := srv.mediaStore.Delete(ctx, url); err != nil {
		srv.log(ctx).Warn("Failed to delete orphaned upload", slog.Any("error", err), slog.String("url", url))
	}
}

// Login verifies the credentials and mints a token pair. The refresh token
// hash overwrites the user's single session slot, so logging in from a new
// device invalidates the previous session.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.TokenPairOutput, error) {
	user, err := srv.userRepo.FindByLogin(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown account")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	output, err := srv.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.Any("user_id", user.ID))

	return output, nil
}

// RefreshTokens rotates the session. The incoming token must verify as a
// refresh token and its hash must equal the stored slot exactly; a token
// that was already rotated away no longer matches and is rejected, which is
// how reuse of a stolen or stale token surfaces.
func (srv *authService) RefreshTokens(ctx context.Context, refreshToken string) (*usecase.TokenPairOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	var output *usecase.TokenPairOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "account no longer exists")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if user.RefreshTokenHash == "" || user.RefreshTokenHash != srv.tokenService.HashToken(refreshToken) {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "token does not match active session")
		}

		accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		if err := userRepo.UpdateRefreshTokenHash(ctx, user.ID, srv.tokenService.HashToken(newRefreshToken)); err != nil {
			return errors.Wrap(err, "failed to store refresh token")
		}

		output = &usecase.TokenPairOutput{
			AccessToken:  accessToken,
			RefreshToken: newRefreshToken,
			User:         user.Sanitized(),
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Token refresh rejected", slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// Logout clears the refresh-token slot. The access token keeps working
// until it expires; only the session's renewability is revoked.
func (srv *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := srv.userRepo.UpdateRefreshTokenHash(ctx, userID, ""); err != nil {
		return errors.Wrap(err, "failed to clear refresh token")
	}

	srv.log(ctx).Info("User logged out", slog.Any("user_id", userID))

	return nil
}

// ChangePassword verifies the old password before storing the new hash.
func (srv *authService) ChangePassword(ctx context.Context, userID uuid.UUID, input usecase.ChangePasswordInput) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "account not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "old password mismatch")
		}

		newHash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}

		user.PasswordHash = newHash
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		return nil
	})
}

// CurrentUser returns the authenticated account's public projection.
func (srv *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.PublicUser, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user.Sanitized(), nil
}

// UpdateAccount updates the mutable profile fields. Empty input fields keep
// their current values.
func (srv *authService) UpdateAccount(ctx context.Context, userID uuid.UUID, input usecase.UpdateAccountInput) (*entity.PublicUser, error) {
	var updated *entity.PublicUser

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "account not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.FullName != "" {
			user.FullName = input.FullName
		}
		if input.Email != "" && input.Email != user.Email {
			if _, err := userRepo.FindByLogin(ctx, input.Email); err == nil {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
			} else if !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to check email")
			}
			user.Email = input.Email
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update account")
		}

		updated = user.Sanitized()

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// UpdateAvatar stores the new image and swaps the avatar URL. The previous
// object is deleted best-effort after the row update succeeds.
func (srv *authService) UpdateAvatar(ctx context.Context, userID uuid.UUID, file usecase.FileUpload) (*entity.PublicUser, error) {
	return srv.replaceImage(ctx, userID, service.MediaKindAvatar, file,
		func(u *entity.User) *string { return &u.AvatarURL })
}

// UpdateCoverImage stores the new image and swaps the cover URL.
func (srv *authService) UpdateCoverImage(ctx context.Context, userID uuid.UUID, file usecase.FileUpload) (*entity.PublicUser, error) {
	return srv.replaceImage(ctx, userID, service.MediaKindCover, file,
		func(u *entity.User) *string { return &u.CoverImageURL })
}

func (srv *authService) replaceImage(ctx context.Context, userID uuid.UUID, kind service.MediaKind, file usecase.FileUpload, field func(*entity.User) *string) (*entity.PublicUser, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	uploaded, err := srv.mediaStore.Upload(ctx, kind, file.Filename, file.ContentType, file.Reader)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	slot := field(user)
	previousURL := *slot
	*slot = uploaded.URL

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	if previousURL != "" {
		if err := srv.mediaStore.Delete(ctx, previousURL); err != nil {
			srv.log(ctx).Warn("Failed to delete replaced image", slog.Any("error", err), slog.String("url", previousURL))
		}
	}

	return user.Sanitized(), nil
}

func (srv *authService) issueTokens(ctx context.Context, user *entity.User) (*usecase.TokenPairOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.userRepo.UpdateRefreshTokenHash(ctx, user.ID, srv.tokenService.HashToken(refreshToken)); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.Sanitized(),
	}, nil
}
