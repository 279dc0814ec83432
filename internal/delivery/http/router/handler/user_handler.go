package handler

import (
	"context"
	"log/slog"
	"net/http"

	"clipstream/internal/delivery/http/middleware"
	"clipstream/internal/delivery/http/response"
	"clipstream/internal/domain/entity"
	"clipstream/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account and session handlers.
type UserHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.AuthUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type updateAccountRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// Register handles the account registration request. The body is a
// multipart form carrying the profile fields plus an avatar image and an
// optional cover image.
func (h *UserHandler) Register(c echo.Context) error {
	input := usecase.RegisterInput{
		Username: c.FormValue("username"),
		Email:    c.FormValue("email"),
		FullName: c.FormValue("fullName"),
		Password: c.FormValue("password"),
	}

	avatar, closeAvatar, err := formFile(c, "avatar")
	if err == nil {
		defer closeAvatar()
		input.Avatar = avatar
	}

	cover, closeCover, err := formFile(c, "coverImage")
	if err == nil {
		defer closeCover()
		input.Cover = cover
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "Account registered successfully")
}

// Login handles the login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// RefreshToken handles the token rotation request.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var req refreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RefreshTokens(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// Logout clears the current session's refresh token.
func (h *UserHandler) Logout(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	if err := h.uc.Logout(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// ChangePassword handles the password change request.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password change input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err := h.uc.ChangePassword(c.Request().Context(), userID, usecase.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

// CurrentUser returns the authenticated account's public projection.
func (h *UserHandler) CurrentUser(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Current user fetched successfully")
}

// UpdateAccount handles the profile field update request.
func (h *UserHandler) UpdateAccount(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateAccount(c.Request().Context(), userID, usecase.UpdateAccountInput{
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Account updated successfully")
}

// UpdateAvatar replaces the account's avatar image.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	return h.updateImage(c, "avatar", h.uc.UpdateAvatar)
}

// UpdateCoverImage replaces the account's cover image.
func (h *UserHandler) UpdateCoverImage(c echo.Context) error {
	return h.updateImage(c, "coverImage", h.uc.UpdateCoverImage)
}

func (h *UserHandler) updateImage(
	c echo.Context,
	field string,
	update func(ctx context.Context, userID uuid.UUID, file usecase.FileUpload) (*entity.PublicUser, error),
) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	file, closeFile, err := formFile(c, field)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "An image file is required under the "+field+" field")
	}
	defer closeFile()

	user, err := update(c.Request().Context(), userID, *file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Image updated successfully")
}
