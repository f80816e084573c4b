package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo"

	"video_tube/config"
	basehdl "video_tube/internal/api/base/handler"
	commenthdl "video_tube/internal/api/comment/handler"
	commentrouter "video_tube/internal/api/comment/router"
	commentsvc "video_tube/internal/api/comment/service"
	likehdl "video_tube/internal/api/like/handler"
	likerouter "video_tube/internal/api/like/router"
	likesvc "video_tube/internal/api/like/service"
	"video_tube/internal/api/middleware"
	playlisthdl "video_tube/internal/api/playlist/handler"
	playlistrouter "video_tube/internal/api/playlist/router"
	playlistsvc "video_tube/internal/api/playlist/service"
	apirouter "video_tube/internal/api/router"
	subscriptionhdl "video_tube/internal/api/subscription/handler"
	subscriptionrouter "video_tube/internal/api/subscription/router"
	subscriptionsvc "video_tube/internal/api/subscription/service"
	tweethdl "video_tube/internal/api/tweet/handler"
	tweetrouter "video_tube/internal/api/tweet/router"
	tweetsvc "video_tube/internal/api/tweet/service"
	videohdl "video_tube/internal/api/video/handler"
	videorouter "video_tube/internal/api/video/router"
	videosvc "video_tube/internal/api/video/service"
	"video_tube/internal/database"
	"video_tube/internal/global"
	"video_tube/internal/logger"
	"video_tube/internal/media"
)

// App gom các thành phần đã khởi tạo của ứng dụng
type App struct {
	Config *config.Configuration
	Client *mongo.Client
	Fiber  *fiber.App
}

// InitApp khởi tạo tuần tự: validator, database, indexes, media store,
// services, handlers rồi đăng ký routes. Mọi dependency được truyền tường minh.
func InitApp(cfg *config.Configuration) (*App, error) {
	log := logger.GetAppLogger()

	// Validator dùng chung cho mọi handler
	global.InitValidator()
	log.Info("Validator initialized")

	// Kết nối MongoDB
	client, err := database.GetInstance(cfg)
	if err != nil {
		return nil, err
	}
	log.Info("MongoDB connected")

	// Đăng ký collections
	collections, err := database.NewCollections(client, cfg)
	if err != nil {
		return nil, err
	}

	// Tạo indexes (unique index cho toggle là chốt chặn bất biến, phải có trước khi nhận request)
	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.CreateIndexes(indexCtx, client.Database(cfg.MongoDB_DBName)); err != nil {
		return nil, err
	}
	log.Info("MongoDB indexes created")

	// Media store (S3-compatible)
	store, err := media.NewMinioStore(cfg)
	if err != nil {
		return nil, err
	}
	log.Info("Media store initialized")

	// Services
	videoService, err := videosvc.NewVideoService(collections, store)
	if err != nil {
		return nil, err
	}
	commentService, err := commentsvc.NewCommentService(collections)
	if err != nil {
		return nil, err
	}
	likeService, err := likesvc.NewLikeService(collections)
	if err != nil {
		return nil, err
	}
	tweetService, err := tweetsvc.NewTweetService(collections)
	if err != nil {
		return nil, err
	}
	playlistService, err := playlistsvc.NewPlaylistService(collections)
	if err != nil {
		return nil, err
	}
	subscriptionService, err := subscriptionsvc.NewSubscriptionService(collections)
	if err != nil {
		return nil, err
	}

	// Handlers
	videoHandler := videohdl.NewVideoHandler(videoService)
	commentHandler := commenthdl.NewCommentHandler(commentService)
	likeHandler := likehdl.NewLikeHandler(likeService)
	tweetHandler := tweethdl.NewTweetHandler(tweetService)
	playlistHandler := playlisthdl.NewPlaylistHandler(playlistService)
	subscriptionHandler := subscriptionhdl.NewSubscriptionHandler(subscriptionService)
	systemHandler := basehdl.NewSystemHandler(client)

	// Fiber app + routes
	app := InitFiberApp(cfg)
	authMW := middleware.AuthMiddleware(cfg.JwtSecret)

	err = apirouter.SetupRoutes(app,
		videorouter.Register(videoHandler, authMW),
		commentrouter.Register(commentHandler, authMW),
		likerouter.Register(likeHandler, authMW),
		tweetrouter.Register(tweetHandler, authMW),
		playlistrouter.Register(playlistHandler, authMW),
		subscriptionrouter.Register(subscriptionHandler, authMW),
		registerSystem(systemHandler),
	)
	if err != nil {
		return nil, err
	}
	log.Info("Routes registered")

	return &App{
		Config: cfg,
		Client: client,
		Fiber:  app,
	}, nil
}

// registerSystem đăng ký route hệ thống (health check, không qua auth)
func registerSystem(h *basehdl.SystemHandler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		v1.Get("/system/health", h.HandleHealth)
		return nil
	}
}
