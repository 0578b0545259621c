package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/busraislam39/tiktwinwebapp/internal/blobstore"
	"github.com/busraislam39/tiktwinwebapp/internal/config"
	"github.com/busraislam39/tiktwinwebapp/internal/db"
	"github.com/busraislam39/tiktwinwebapp/internal/handler"
	"github.com/busraislam39/tiktwinwebapp/internal/middleware"
	"github.com/busraislam39/tiktwinwebapp/internal/repository"
	"github.com/busraislam39/tiktwinwebapp/internal/router"
	"github.com/busraislam39/tiktwinwebapp/internal/service"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "tiktwin-api")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}

	blobs, err := newBlobStore(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialize media storage: %v", err)
	}

	handler.InitMetrics(pool)

	cache := service.NewCacheService(cfg.RedisURL)

	userRepo := repository.NewUserRepo(pool)
	videoRepo := repository.NewVideoRepo(pool)
	commentRepo := repository.NewCommentRepo(pool)
	ratingRepo := repository.NewRatingRepo(pool)

	authSvc := service.NewAuthService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	userSvc := service.NewUserService(userRepo, authSvc)
	videoSvc := service.NewVideoService(videoRepo, commentRepo, ratingRepo, blobs, cache)
	commentSvc := service.NewCommentService(commentRepo, videoSvc)
	ratingSvc := service.NewRatingService(ratingRepo, videoSvc)

	app := fiber.New(fiber.Config{
		AppName:      "TikTwin API",
		ServerHeader: "TikTwin",
		BodyLimit:    service.MaxUploadBytes + 1024*1024,
	})

	router.Setup(app, &router.Handlers{
		Auth:    handler.NewAuthHandler(userSvc),
		Video:   handler.NewVideoHandler(videoSvc),
		Comment: handler.NewCommentHandler(commentSvc),
		Rating:  handler.NewRatingHandler(ratingSvc),
		Health:  handler.NewHealthHandler(pool, cache.Client()),
	}, authSvc, cfg.CORSOrigins)

	log.Printf("tiktwin backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}

func newBlobStore(ctx context.Context, cfg *config.Config) (blobstore.Store, error) {
	if cfg.MediaBackend == "s3" {
		return blobstore.NewS3Store(ctx, cfg.S3Bucket, cfg.S3Prefix, cfg.MediaBaseURL)
	}
	return blobstore.NewLocalStore(cfg.MediaDir, cfg.MediaBaseURL)
}
