package handler

import (
	"log/slog"
	"net/http"

	"clipstream/internal/delivery/http/middleware"
	"clipstream/internal/delivery/http/response"
	"clipstream/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CommentHandler holds dependencies for comment handlers.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{uc: uc, logger: logger}
}

type commentRequest struct {
	Content string `json:"content" validate:"required"`
}

// Add creates a comment on a video.
func (h *CommentHandler) Add(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.Add(c.Request().Context(), userID, videoID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Comment added successfully")
}

// ListByVideo returns one page of the video's comments, newest first.
func (h *CommentHandler) ListByVideo(c echo.Context) error {
	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	page, err := h.uc.ListByVideo(c.Request().Context(), videoID, pageParams(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Comments fetched successfully")
}

// Update rewrites the comment's content.
func (h *CommentHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	commentID, err := pathUUID(c, "commentId")
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.Update(c.Request().Context(), userID, commentID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Comment updated successfully")
}

// Delete removes the comment.
func (h *CommentHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	commentID, err := pathUUID(c, "commentId")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, commentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted successfully")
}
