package handler

import (
	"log/slog"
	"net/http"

	"clipstream/internal/delivery/http/middleware"
	"clipstream/internal/delivery/http/response"
	"clipstream/internal/domain/entity"
	"clipstream/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EngagementHandler holds dependencies for subscription and like handlers.
type EngagementHandler struct {
	uc     usecase.EngagementUsecase
	logger *slog.Logger
}

// NewEngagementHandler is the constructor for EngagementHandler, injected by Fx.
func NewEngagementHandler(uc usecase.EngagementUsecase, logger *slog.Logger) *EngagementHandler {
	return &EngagementHandler{uc: uc, logger: logger}
}

// ToggleSubscription flips the caller's subscription to a channel.
func (h *EngagementHandler) ToggleSubscription(c echo.Context) error {
	subscriberID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	channelID, err := pathUUID(c, "channelId")
	if err != nil {
		return err
	}

	output, err := h.uc.ToggleSubscription(c.Request().Context(), subscriberID, channelID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Subscription toggled successfully")
}

// ListChannelSubscribers returns the users subscribed to a channel.
func (h *EngagementHandler) ListChannelSubscribers(c echo.Context) error {
	channelID, err := pathUUID(c, "channelId")
	if err != nil {
		return err
	}

	subscribers, err := h.uc.ListChannelSubscribers(c.Request().Context(), channelID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subscribers, "Subscribers fetched successfully")
}

// ListSubscribedChannels returns the channels the caller follows.
func (h *EngagementHandler) ListSubscribedChannels(c echo.Context) error {
	subscriberID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	channels, err := h.uc.ListSubscribedChannels(c.Request().Context(), subscriberID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, channels, "Subscribed channels fetched successfully")
}

// ToggleVideoLike flips the caller's like on a video.
func (h *EngagementHandler) ToggleVideoLike(c echo.Context) error {
	return h.toggleLike(c, entity.LikeTargetVideo, "videoId")
}

// ToggleCommentLike flips the caller's like on a comment.
func (h *EngagementHandler) ToggleCommentLike(c echo.Context) error {
	return h.toggleLike(c, entity.LikeTargetComment, "commentId")
}

// ToggleTweetLike flips the caller's like on a tweet.
func (h *EngagementHandler) ToggleTweetLike(c echo.Context) error {
	return h.toggleLike(c, entity.LikeTargetTweet, "tweetId")
}

func (h *EngagementHandler) toggleLike(c echo.Context, kind entity.LikeTargetKind, param string) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	targetID, err := pathUUID(c, param)
	if err != nil {
		return err
	}

	output, err := h.uc.ToggleLike(c.Request().Context(), userID, kind, targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Like toggled successfully")
}

// LikedVideos returns the caller's liked, still-published videos.
func (h *EngagementHandler) LikedVideos(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	videos, err := h.uc.LikedVideos(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, videos, "Liked videos fetched successfully")
}
