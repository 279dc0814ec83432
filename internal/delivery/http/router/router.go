// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"clipstream/internal/delivery/http/middleware"
	"clipstream/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	VideoHandler      *handler.VideoHandler
	CommentHandler    *handler.CommentHandler
	TweetHandler      *handler.TweetHandler
	PlaylistHandler   *handler.PlaylistHandler
	EngagementHandler *handler.EngagementHandler
	ChannelHandler    *handler.ChannelHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	user       *handler.UserHandler
	video      *handler.VideoHandler
	comment    *handler.CommentHandler
	tweet      *handler.TweetHandler
	playlist   *handler.PlaylistHandler
	engagement *handler.EngagementHandler
	channel    *handler.ChannelHandler
	auth       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		user:       params.UserHandler,
		video:      params.VideoHandler,
		comment:    params.CommentHandler,
		tweet:      params.TweetHandler,
		playlist:   params.PlaylistHandler,
		engagement: params.EngagementHandler,
		channel:    params.ChannelHandler,
		auth:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	// Session routes; refresh carries its own credential in the body.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.user.Register)
		authGroup.POST("/login", r.user.Login)
		authGroup.POST("/refresh", r.user.RefreshToken)
		authGroup.POST("/logout", r.user.Logout, r.auth.Authenticate)
	}

	// Account routes, all authenticated.
	userGroup := api.Group("/users", r.auth.Authenticate)
	{
		userGroup.GET("/me", r.user.CurrentUser)
		userGroup.PATCH("/me", r.user.UpdateAccount)
		userGroup.POST("/me/password", r.user.ChangePassword)
		userGroup.PATCH("/me/avatar", r.user.UpdateAvatar)
		userGroup.PATCH("/me/cover", r.user.UpdateCoverImage)
	}

	// Public channel pages; an optional token folds in viewer state.
	channelGroup := api.Group("/channels")
	{
		channelGroup.GET("/:username", r.channel.Profile, r.auth.OptionalAuthenticate)
		channelGroup.GET("/:username/share-code", r.channel.ShareCode)
		channelGroup.GET("/:channelId/subscribers", r.engagement.ListChannelSubscribers)
	}

	// Video routes. Reads are public with optional viewer state; writes
	// require the owner's token.
	videoGroup := api.Group("/videos")
	{
		videoGroup.GET("", r.video.List, r.auth.OptionalAuthenticate)
		videoGroup.GET("/mine", r.video.ListOwn, r.auth.Authenticate)
		videoGroup.POST("", r.video.Publish, r.auth.Authenticate)
		videoGroup.GET("/:videoId", r.video.Get, r.auth.OptionalAuthenticate)
		videoGroup.PATCH("/:videoId", r.video.Update, r.auth.Authenticate)
		videoGroup.DELETE("/:videoId", r.video.Delete, r.auth.Authenticate)
		videoGroup.PATCH("/:videoId/publish", r.video.TogglePublish, r.auth.Authenticate)

		videoGroup.GET("/:videoId/comments", r.comment.ListByVideo)
		videoGroup.POST("/:videoId/comments", r.comment.Add, r.auth.Authenticate)
	}

	commentGroup := api.Group("/comments", r.auth.Authenticate)
	{
		commentGroup.PATCH("/:commentId", r.comment.Update)
		commentGroup.DELETE("/:commentId", r.comment.Delete)
	}

	tweetGroup := api.Group("/tweets")
	{
		tweetGroup.POST("", r.tweet.Create, r.auth.Authenticate)
		tweetGroup.GET("/user/:userId", r.tweet.ListByUser)
		tweetGroup.PATCH("/:tweetId", r.tweet.Update, r.auth.Authenticate)
		tweetGroup.DELETE("/:tweetId", r.tweet.Delete, r.auth.Authenticate)
	}

	playlistGroup := api.Group("/playlists")
	{
		playlistGroup.POST("", r.playlist.Create, r.auth.Authenticate)
		playlistGroup.GET("/:playlistId", r.playlist.Get)
		playlistGroup.GET("/user/:userId", r.playlist.ListByOwner)
		playlistGroup.PATCH("/:playlistId", r.playlist.Update, r.auth.Authenticate)
		playlistGroup.DELETE("/:playlistId", r.playlist.Delete, r.auth.Authenticate)
		playlistGroup.POST("/:playlistId/videos/:videoId", r.playlist.AddVideo, r.auth.Authenticate)
		playlistGroup.DELETE("/:playlistId/videos/:videoId", r.playlist.RemoveVideo, r.auth.Authenticate)
	}

	// Engagement edges, all authenticated.
	engagementGroup := api.Group("", r.auth.Authenticate)
	{
		engagementGroup.POST("/subscriptions/:channelId", r.engagement.ToggleSubscription)
		engagementGroup.GET("/subscriptions", r.engagement.ListSubscribedChannels)
		engagementGroup.POST("/likes/videos/:videoId", r.engagement.ToggleVideoLike)
		engagementGroup.POST("/likes/comments/:commentId", r.engagement.ToggleCommentLike)
		engagementGroup.POST("/likes/tweets/:tweetId", r.engagement.ToggleTweetLike)
		engagementGroup.GET("/likes/videos", r.engagement.LikedVideos)
	}

	// Owner dashboard and watch history.
	dashboardGroup := api.Group("/dashboard", r.auth.Authenticate)
	{
		dashboardGroup.GET("/stats", r.channel.Stats)
		dashboardGroup.GET("/history", r.channel.WatchHistory)
	}
}
