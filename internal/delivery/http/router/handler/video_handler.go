package handler

import (
	"log/slog"
	"net/http"

	"clipstream/internal/delivery/http/middleware"
	"clipstream/internal/delivery/http/response"
	"clipstream/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VideoHandler holds dependencies for video handlers.
type VideoHandler struct {
	uc     usecase.VideoUsecase
	logger *slog.Logger
}

// NewVideoHandler is the constructor for VideoHandler, injected by Fx.
func NewVideoHandler(uc usecase.VideoUsecase, logger *slog.Logger) *VideoHandler {
	return &VideoHandler{uc: uc, logger: logger}
}

type updateVideoRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
}

func listVideosInput(c echo.Context) usecase.ListVideosInput {
	return usecase.ListVideosInput{
		Params:    pageParams(c),
		Search:    c.QueryParam("query"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortType"),
	}
}

// Publish handles the video publication request. The body is a multipart
// form carrying title and description plus the video file and a thumbnail.
func (h *VideoHandler) Publish(c echo.Context) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	videoFile, closeVideo, err := formFile(c, "videoFile")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "A video file is required under the videoFile field")
	}
	defer closeVideo()

	thumbnail, closeThumbnail, err := formFile(c, "thumbnail")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "A thumbnail image is required under the thumbnail field")
	}
	defer closeThumbnail()

	view, err := h.uc.Publish(c.Request().Context(), ownerID, usecase.PublishVideoInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		VideoFile:   *videoFile,
		Thumbnail:   *thumbnail,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Video published successfully")
}

// List returns one page of published videos. Anonymous viewers get
// is-liked flags of false. A userId query parameter restricts the
// listing to one channel's published catalogue.
func (h *VideoHandler) List(c echo.Context) error {
	input := listVideosInput(c)
	if raw := c.QueryParam("userId"); raw != "" {
		ownerID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "userId must be a valid UUID")
		}
		input.OwnerID = &ownerID
	}

	page, err := h.uc.List(c.Request().Context(), middleware.OptionalUserID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Videos fetched successfully")
}

// ListOwn returns one page of the caller's own videos, drafts included.
func (h *VideoHandler) ListOwn(c echo.Context) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	page, err := h.uc.ListOwn(c.Request().Context(), ownerID, listVideosInput(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Videos fetched successfully")
}

// Get returns one video's composed projection.
func (h *VideoHandler) Get(c echo.Context) error {
	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	view, err := h.uc.Get(c.Request().Context(), middleware.OptionalUserID(c), videoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Video fetched successfully")
}

// Update handles video metadata updates with an optional thumbnail
// replacement.
func (h *VideoHandler) Update(c echo.Context) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	var req updateVideoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid video update input")
	}

	input := usecase.UpdateVideoInput{
		Title:       req.Title,
		Description: req.Description,
	}

	if thumbnail, closeThumbnail, err := formFile(c, "thumbnail"); err == nil {
		defer closeThumbnail()
		input.Thumbnail = thumbnail
	}

	view, err := h.uc.Update(c.Request().Context(), ownerID, videoID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Video updated successfully")
}

// Delete removes the video and everything attached to it.
func (h *VideoHandler) Delete(c echo.Context) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), ownerID, videoID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Video deleted successfully")
}

// TogglePublish flips the video's published flag.
func (h *VideoHandler) TogglePublish(c echo.Context) error {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	video, err := h.uc.TogglePublish(c.Request().Context(), ownerID, videoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, video, "Publish state toggled successfully")
}
