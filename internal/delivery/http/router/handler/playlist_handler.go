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

// PlaylistHandler holds dependencies for playlist handlers.
type PlaylistHandler struct {
	uc     usecase.PlaylistUsecase
	logger *slog.Logger
}

// NewPlaylistHandler is the constructor for PlaylistHandler, injected by Fx.
func NewPlaylistHandler(uc usecase.PlaylistUsecase, logger *slog.Logger) *PlaylistHandler {
	return &PlaylistHandler{uc: uc, logger: logger}
}

type playlistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create creates an empty playlist.
func (h *PlaylistHandler) Create(c echo.Context) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req playlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid playlist input")
	}

	playlist, err := h.uc.Create(c.Request().Context(), ownerID, usecase.CreatePlaylistInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, playlist, "Playlist created successfully")
}

// Get resolves the playlist with its member videos in curated order.
func (h *PlaylistHandler) Get(c echo.Context) error {
	playlistID, err := pathUUID(c, "playlistId")
	if err != nil {
		return err
	}

	view, err := h.uc.Get(c.Request().Context(), playlistID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Playlist fetched successfully")
}

// ListByOwner returns a channel's playlists.
func (h *PlaylistHandler) ListByOwner(c echo.Context) error {
	ownerID, err := pathUUID(c, "userId")
	if err != nil {
		return err
	}

	playlists, err := h.uc.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, playlists, "Playlists fetched successfully")
}

// Update rewrites the playlist's metadata.
func (h *PlaylistHandler) Update(c echo.Context) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	playlistID, err := pathUUID(c, "playlistId")
	if err != nil {
		return err
	}

	var req playlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid playlist input")
	}

	playlist, err := h.uc.Update(c.Request().Context(), ownerID, playlistID, usecase.UpdatePlaylistInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, playlist, "Playlist updated successfully")
}

// Delete removes the playlist. Member videos are untouched.
func (h *PlaylistHandler) Delete(c echo.Context) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	playlistID, err := pathUUID(c, "playlistId")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), ownerID, playlistID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Playlist deleted successfully")
}

// AddVideo appends a video to the playlist.
func (h *PlaylistHandler) AddVideo(c echo.Context) error {
	return h.mutateMembership(c, h.uc.AddVideo, "Video added to playlist successfully")
}

// RemoveVideo removes a video from the playlist.
func (h *PlaylistHandler) RemoveVideo(c echo.Context) error {
	return h.mutateMembership(c, h.uc.RemoveVideo, "Video removed from playlist successfully")
}

func (h *PlaylistHandler) mutateMembership(
	c echo.Context,
	mutate func(ctx context.Context, ownerID, playlistID, videoID uuid.UUID) (*entity.PlaylistView, error),
	message string,
) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	playlistID, err := pathUUID(c, "playlistId")
	if err != nil {
		return err
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	view, err := mutate(c.Request().Context(), ownerID, playlistID, videoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, message)
}
