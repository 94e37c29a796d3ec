package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"videotube/infrastructure/cache"
	"videotube/infrastructure/clients/cloudinary"
	"videotube/infrastructure/configuration"
	"videotube/infrastructure/logger"
	"videotube/infrastructure/persistence"
	httpHandler "videotube/interfaces/http"
	"videotube/server"
	"videotube/usecase"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	configuration.LoadEnvFromFile("config.env", ".env")
	app := configuration.C.App

	mongoClient, err := persistence.NewMongoDb(
		configuration.C.Database.Mongo.Host,
		configuration.C.Database.Mongo.Port,
		configuration.C.Database.Mongo.User,
		configuration.C.Database.Mongo.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("MongoDB initialization failed")
		os.Exit(1)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		logger.GetLogger().WithField("error", err).Error("MongoDB ping failed")
		os.Exit(1)
	}
	logger.GetLogger().Info("MongoDB connected successfully")

	db := mongoClient.Database(configuration.C.Database.Mongo.Name)
	if err := persistence.EnsureIndexes(ctx, db); err != nil {
		logger.GetLogger().WithField("error", err).Error("Index creation failed")
		os.Exit(1)
	}

	// Redis is optional; a nil client disables the dashboard cache.
	redisClient, err := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)
	if err != nil {
		logger.GetLogger().Warn("Redis not available - continuing without the stats cache")
		redisClient = nil
	}

	blobStore := cloudinary.NewClient(
		configuration.C.Cloudinary.CloudName,
		configuration.C.Cloudinary.APIKey,
		configuration.C.Cloudinary.APISecret,
	)

	userRepository := persistence.NewUserRepository(db)
	videoRepository := persistence.NewVideoRepository(db)
	commentRepository := persistence.NewCommentRepository(db)
	tweetRepository := persistence.NewTweetRepository(db)
	playlistRepository := persistence.NewPlaylistRepository(db)
	likeRepository := persistence.NewLikeRepository(db)
	subscriptionRepository := persistence.NewSubscriptionRepository(db)

	tokenConfig := usecase.TokenConfig{
		AccessSecret:  app.SecretKey,
		RefreshSecret: app.RefreshSecretKey,
		AccessTTL:     time.Duration(app.AccessTokenTTLMinutes) * time.Minute,
		RefreshTTL:    time.Duration(app.RefreshTokenTTLDays) * 24 * time.Hour,
	}

	authUsecase := usecase.NewAuthUsecase(userRepository, blobStore, tokenConfig)
	userUsecase := usecase.NewUserUsecase(userRepository, blobStore)
	videoUsecase := usecase.NewVideoUsecase(videoRepository, commentRepository, likeRepository, userRepository, blobStore)
	commentUsecase := usecase.NewCommentUsecase(commentRepository, videoRepository, likeRepository)
	tweetUsecase := usecase.NewTweetUsecase(tweetRepository, likeRepository)
	likeUsecase := usecase.NewLikeUsecase(likeRepository, videoRepository, commentRepository, tweetRepository)
	subscriptionUsecase := usecase.NewSubscriptionUsecase(subscriptionRepository, userRepository)
	playlistUsecase := usecase.NewPlaylistUsecase(playlistRepository, videoRepository)

	var statsCache usecase.IStatsCache
	if redisClient != nil {
		statsCache = cache.NewStatsCache(redisClient, 30*time.Second)
	}
	dashboardUsecase := usecase.NewDashboardUsecase(userRepository, videoRepository, subscriptionRepository, likeRepository, statsCache)

	router := server.InitiateRouter(
		httpHandler.NewUserHandler(authUsecase, userUsecase),
		httpHandler.NewVideoHandler(videoUsecase),
		httpHandler.NewCommentHandler(commentUsecase),
		httpHandler.NewTweetHandler(tweetUsecase),
		httpHandler.NewLikeHandler(likeUsecase),
		httpHandler.NewSubscriptionHandler(subscriptionUsecase),
		httpHandler.NewPlaylistHandler(playlistUsecase),
		httpHandler.NewDashboardHandler(dashboardUsecase),
		userRepository,
	)

	logger.GetLogger().WithFields(map[string]interface{}{
		"port": app.Port, "tls": app.TLSEnabled,
	}).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", app.Port),
			Handler: router,
		}
		if app.TLSEnabled {
			if app.TLSCertFile == "" || app.TLSKeyFile == "" {
				logger.GetLogger().Error("TLS enabled but cert or key path empty; falling back to HTTP")
				if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			}
			if err := httpServer.ListenAndServeTLS(app.TLSCertFile, app.TLSKeyFile); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		logger.GetLogger().WithField("error", err).Warn("MongoDB disconnect failed")
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
