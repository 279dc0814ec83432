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

// TweetHandler holds dependencies for tweet handlers.
type TweetHandler struct {
	uc     usecase.TweetUsecase
	logger *slog.Logger
}

// NewTweetHandler is the constructor for TweetHandler, injected by Fx.
func NewTweetHandler(uc usecase.TweetUsecase, logger *slog.Logger) *TweetHandler {
	return &TweetHandler{uc: uc, logger: logger}
}

type tweetRequest struct {
	Content string `json:"content" validate:"required"`
}

// Create posts a tweet on the caller's channel.
func (h *TweetHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req tweetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tweet input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.Create(c.Request().Context(), userID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Tweet created successfully")
}

// ListByUser returns one page of a channel's tweets, newest first.
func (h *TweetHandler) ListByUser(c echo.Context) error {
	userID, err := pathUUID(c, "userId")
	if err != nil {
		return err
	}

	page, err := h.uc.ListByUser(c.Request().Context(), userID, pageParams(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Tweets fetched successfully")
}

// Update rewrites the tweet's content.
func (h *TweetHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	tweetID, err := pathUUID(c, "tweetId")
	if err != nil {
		return err
	}

	var req tweetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tweet input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.Update(c.Request().Context(), userID, tweetID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Tweet updated successfully")
}

// Delete removes the tweet.
func (h *TweetHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	tweetID, err := pathUUID(c, "tweetId")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, tweetID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Tweet deleted successfully")
}
