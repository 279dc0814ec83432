package handler

import (
	"log/slog"
	"net/http"

	"clipstream/internal/delivery/http/middleware"
	"clipstream/internal/delivery/http/response"
	"clipstream/internal/domain/service"
	"clipstream/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChannelHandler holds dependencies for channel page and dashboard handlers.
type ChannelHandler struct {
	uc        usecase.ChannelUsecase
	shareCode service.ShareCodeService
	logger    *slog.Logger
}

// NewChannelHandler is the constructor for ChannelHandler, injected by Fx.
func NewChannelHandler(uc usecase.ChannelUsecase, shareCode service.ShareCodeService, logger *slog.Logger) *ChannelHandler {
	return &ChannelHandler{uc: uc, shareCode: shareCode, logger: logger}
}

// Profile composes the channel page for a username. The isSubscribed flag
// reflects the caller when a valid token is presented.
func (h *ChannelHandler) Profile(c echo.Context) error {
	username := c.Param("username")

	profile, err := h.uc.Profile(c.Request().Context(), middleware.OptionalUserID(c), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Channel profile fetched successfully")
}

// ShareCode renders a PNG QR code linking to the channel page.
func (h *ChannelHandler) ShareCode(c echo.Context) error {
	username := c.Param("username")

	// Resolve the channel first so unknown usernames 404 instead of
	// producing a code that points nowhere.
	profile, err := h.uc.Profile(c.Request().Context(), nil, username)
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.shareCode.ChannelShareQR(profile.Username)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Stats returns the caller's dashboard aggregates.
func (h *ChannelHandler) Stats(c echo.Context) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	stats, err := h.uc.Stats(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Channel stats fetched successfully")
}

// WatchHistory returns one page of the caller's watch history.
func (h *ChannelHandler) WatchHistory(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	page, err := h.uc.WatchHistory(c.Request().Context(), userID, pageParams(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Watch history fetched successfully")
}
