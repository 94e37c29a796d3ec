package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"videotube/domain/repository"
	httpHandler "videotube/interfaces/http"
	"videotube/interfaces/middleware"
)

func InitiateRouter(
	userHandler httpHandler.IUserHandler,
	videoHandler httpHandler.IVideoHandler,
	commentHandler httpHandler.ICommentHandler,
	tweetHandler httpHandler.ITweetHandler,
	likeHandler httpHandler.ILikeHandler,
	subscriptionHandler httpHandler.ISubscriptionHandler,
	playlistHandler httpHandler.IPlaylistHandler,
	dashboardHandler httpHandler.IDashboardHandler,
	userRepository repository.IUser,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	users := v1.Group("/users")
	users.POST("/register", userHandler.Register)
	users.POST("/login", userHandler.Login)
	users.POST("/refresh-token", userHandler.RefreshToken)

	auth := middleware.Auth(userRepository)

	usersAuth := v1.Group("/users", auth)
	usersAuth.POST("/logout", userHandler.Logout)
	usersAuth.POST("/change-password", userHandler.ChangePassword)
	usersAuth.GET("/current-user", userHandler.CurrentUser)
	usersAuth.PATCH("/update-account", userHandler.UpdateAccount)
	usersAuth.PATCH("/avatar", userHandler.UpdateAvatar)
	usersAuth.PATCH("/cover-image", userHandler.UpdateCoverImage)
	usersAuth.GET("/c/:username", userHandler.ChannelProfile)
	usersAuth.GET("/history", userHandler.WatchHistory)

	videos := v1.Group("/videos", auth)
	videos.GET("", videoHandler.List)
	videos.POST("", videoHandler.Upload)
	videos.GET("/:videoId", videoHandler.Detail)
	videos.PATCH("/:videoId", videoHandler.Update)
	videos.DELETE("/:videoId", videoHandler.Delete)
	videos.PATCH("/:videoId/toggle-publish", videoHandler.TogglePublish)
	videos.POST("/:videoId/watch", videoHandler.Watch)

	comments := v1.Group("/comments", auth)
	comments.GET("/:videoId", commentHandler.ListByVideo)
	comments.POST("/:videoId", commentHandler.Add)
	comments.PATCH("/c/:commentId", commentHandler.Update)
	comments.DELETE("/c/:commentId", commentHandler.Delete)

	tweets := v1.Group("/tweets", auth)
	tweets.POST("", tweetHandler.Create)
	tweets.GET("", tweetHandler.Feed)
	tweets.GET("/user/:userId", tweetHandler.ListByUser)
	tweets.PATCH("/:tweetId", tweetHandler.Update)
	tweets.DELETE("/:tweetId", tweetHandler.Delete)

	likes := v1.Group("/likes", auth)
	likes.POST("/toggle/v/:videoId", likeHandler.ToggleVideoLike)
	likes.POST("/toggle/c/:commentId", likeHandler.ToggleCommentLike)
	likes.POST("/toggle/t/:tweetId", likeHandler.ToggleTweetLike)
	likes.GET("/videos", likeHandler.LikedVideos)

	subscriptions := v1.Group("/subscriptions", auth)
	subscriptions.POST("/c/:channelId", subscriptionHandler.Toggle)
	subscriptions.GET("/c/:channelId", subscriptionHandler.Subscribers)
	subscriptions.GET("/u", subscriptionHandler.SubscribedChannels)

	playlists := v1.Group("/playlists", auth)
	playlists.POST("", playlistHandler.Create)
	playlists.GET("/:playlistId", playlistHandler.Get)
	playlists.PATCH("/:playlistId", playlistHandler.Update)
	playlists.DELETE("/:playlistId", playlistHandler.Delete)
	playlists.PATCH("/add/:videoId/:playlistId", playlistHandler.AddVideo)
	playlists.PATCH("/remove/:videoId/:playlistId", playlistHandler.RemoveVideo)
	playlists.GET("/user/:userId", playlistHandler.ListByUser)

	dashboard := v1.Group("/dashboard", auth)
	dashboard.GET("/stats", dashboardHandler.Stats)
	dashboard.GET("/videos", dashboardHandler.Videos)

	return router
}
