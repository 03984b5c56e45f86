// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/Abhithakur7080/your-video/config"
	"github.com/Abhithakur7080/your-video/internal/delivery/api/middleware"
	"github.com/Abhithakur7080/your-video/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const defaultMetricsPath = "/metrics"

type RouterParams struct {
	fx.In

	HealthHandler       *handler.HealthHandler
	UserHandler         *handler.UserHandler
	VideoHandler        *handler.VideoHandler
	CommentHandler      *handler.CommentHandler
	TweetHandler        *handler.TweetHandler
	LikeHandler         *handler.LikeHandler
	SubscriptionHandler *handler.SubscriptionHandler
	PlaylistHandler     *handler.PlaylistHandler
	DashboardHandler    *handler.DashboardHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler       *handler.HealthHandler
	userHandler         *handler.UserHandler
	videoHandler        *handler.VideoHandler
	commentHandler      *handler.CommentHandler
	tweetHandler        *handler.TweetHandler
	likeHandler         *handler.LikeHandler
	subscriptionHandler *handler.SubscriptionHandler
	playlistHandler     *handler.PlaylistHandler
	dashboardHandler    *handler.DashboardHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:       params.HealthHandler,
		userHandler:         params.UserHandler,
		videoHandler:        params.VideoHandler,
		commentHandler:      params.CommentHandler,
		tweetHandler:        params.TweetHandler,
		likeHandler:         params.LikeHandler,
		subscriptionHandler: params.SubscriptionHandler,
		playlistHandler:     params.PlaylistHandler,
		dashboardHandler:    params.DashboardHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.authMiddleware.Authenticate
	optional := r.authMiddleware.Optional

	apiV1 := e.Group("/api/v1")

	apiV1.GET("/healthcheck", r.healthHandler.HealthCheck)

	// Account routes, throttled per client IP
	usersGroup := apiV1.Group("/users", middleware.NewRateLimiter(r.config.RateLimit))
	{
		usersGroup.POST("/register", r.userHandler.Register)
		usersGroup.POST("/login", r.userHandler.Login)
		usersGroup.POST("/refresh-token", r.userHandler.RefreshToken)

		usersGroup.POST("/logout", r.userHandler.Logout, auth)
		usersGroup.POST("/change-password", r.userHandler.ChangePassword, auth)
		usersGroup.GET("/current-user", r.userHandler.CurrentUser, auth)
		usersGroup.PATCH("/update-account", r.userHandler.UpdateAccount, auth)
		usersGroup.PATCH("/avatar", r.userHandler.UpdateAvatar, auth)
		usersGroup.PATCH("/cover-image", r.userHandler.UpdateCoverImage, auth)
		usersGroup.GET("/c/:username", r.userHandler.ChannelProfile, auth)
		usersGroup.GET("/history", r.userHandler.WatchHistory, auth)
	}

	videosGroup := apiV1.Group("/videos")
	{
		videosGroup.GET("", r.videoHandler.List, optional)
		videosGroup.POST("", r.videoHandler.Publish, auth)
		videosGroup.GET("/:videoId", r.videoHandler.Get, optional)
		videosGroup.PATCH("/:videoId", r.videoHandler.Update, auth)
		videosGroup.DELETE("/:videoId", r.videoHandler.Delete, auth)
		videosGroup.PATCH("/toggle/publish/:videoId", r.videoHandler.TogglePublish, auth)
	}

	commentsGroup := apiV1.Group("/comments", auth)
	{
		commentsGroup.GET("/:videoId", r.commentHandler.ListVideoComments)
		commentsGroup.POST("/:videoId", r.commentHandler.AddVideoComment)
		commentsGroup.GET("/t/:tweetId", r.commentHandler.ListTweetComments)
		commentsGroup.POST("/t/:tweetId", r.commentHandler.AddTweetComment)
		commentsGroup.PATCH("/c/:commentId", r.commentHandler.Update)
		commentsGroup.DELETE("/c/:commentId", r.commentHandler.Delete)
	}

	tweetsGroup := apiV1.Group("/tweets", auth)
	{
		tweetsGroup.POST("", r.tweetHandler.Create)
		tweetsGroup.GET("/user/:userId", r.tweetHandler.ListByUser)
		tweetsGroup.PATCH("/:tweetId", r.tweetHandler.Update)
		tweetsGroup.DELETE("/:tweetId", r.tweetHandler.Delete)
	}

	likesGroup := apiV1.Group("/likes", auth)
	{
		likesGroup.POST("/toggle/v/:videoId", r.likeHandler.ToggleVideoLike)
		likesGroup.POST("/toggle/c/:commentId", r.likeHandler.ToggleCommentLike)
		likesGroup.POST("/toggle/t/:tweetId", r.likeHandler.ToggleTweetLike)
		likesGroup.GET("/videos", r.likeHandler.LikedVideos)
	}

	subscriptionsGroup := apiV1.Group("/subscriptions", auth)
	{
		subscriptionsGroup.POST("/c/:channelId", r.subscriptionHandler.Toggle)
		subscriptionsGroup.GET("/c/:channelId", r.subscriptionHandler.Subscribers)
		subscriptionsGroup.GET("/u/:subscriberId", r.subscriptionHandler.SubscribedChannels)
	}

	playlistGroup := apiV1.Group("/playlist")
	{
		playlistGroup.POST("", r.playlistHandler.Create, auth)
		playlistGroup.GET("/:playlistId", r.playlistHandler.Get, optional)
		playlistGroup.PATCH("/:playlistId", r.playlistHandler.Update, auth)
		playlistGroup.DELETE("/:playlistId", r.playlistHandler.Delete, auth)
		playlistGroup.PATCH("/add/:videoId/:playlistId", r.playlistHandler.AddVideo, auth)
		playlistGroup.PATCH("/remove/:videoId/:playlistId", r.playlistHandler.RemoveVideo, auth)
		playlistGroup.GET("/user/:userId", r.playlistHandler.ListByUser, auth)
	}

	dashboardGroup := apiV1.Group("/dashboard", auth)
	{
		dashboardGroup.GET("/stats", r.dashboardHandler.Stats)
		dashboardGroup.GET("/videos", r.dashboardHandler.Videos)
	}
}

// RegisterOpsRoutes exposes the Prometheus scrape endpoint and the local media directory when configured.
func (r *router) RegisterOpsRoutes(e *echo.Echo) {
	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		path := r.config.Metrics.Path
		if path == "" {
			path = defaultMetricsPath
		}
		e.GET(path, echo.WrapHandler(promhttp.Handler()))
	}

	if r.config.Storage != nil && r.config.Storage.ServeDir != "" && r.config.Storage.ServePath != "" {
		e.Static(r.config.Storage.ServePath, r.config.Storage.ServeDir)
	}
}
