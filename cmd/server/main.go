package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/teremets90/cashdrive-app/internal/auth"
	"github.com/teremets90/cashdrive-app/internal/config"
	"github.com/teremets90/cashdrive-app/internal/database"
	"github.com/teremets90/cashdrive-app/internal/handlers"
	"github.com/teremets90/cashdrive-app/internal/logger"
	"github.com/teremets90/cashdrive-app/internal/middleware"
	"github.com/teremets90/cashdrive-app/internal/repository"
	"github.com/teremets90/cashdrive-app/internal/routes"
	"github.com/teremets90/cashdrive-app/internal/services"
	"github.com/teremets90/cashdrive-app/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	dev := cfg.App.Env == "development"

	zlog, err := logger.New(dev)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		zlog.Fatal("postgres connect", zap.Error(err))
	}
	zlog.Info("connected to postgres")

	rdb, err := database.ConnectRedis(cfg)
	if err != nil {
		zlog.Warn("redis unavailable, login rate limiting disabled", zap.Error(err))
		rdb = nil
	}

	blobs, err := storage.NewS3Store(context.Background(), cfg.AWS.Region, cfg.AWS.Bucket)
	if err != nil {
		zlog.Fatal("s3 init", zap.Error(err))
	}

	codec := auth.NewCodec(cfg.Auth.Secret, cfg.TokenTTL)

	userRepo := repository.NewUserRepo(db)
	challengeRepo := repository.NewChallengeRepo(db)
	progressRepo := repository.NewProgressRepo(db)

	authSvc := services.NewAuthService(userRepo, codec, rdb, cfg.Auth.LoginRatePerMin)
	userSvc := services.NewUserService(userRepo)
	challengeSvc := services.NewChallengeService(challengeRepo, progressRepo)
	progressSvc := services.NewProgressService(challengeRepo, progressRepo)
	ratingSvc := services.NewRatingService(userRepo, challengeRepo, progressRepo)

	h := handlers.New(authSvc, userSvc, challengeSvc, progressSvc, ratingSvc, blobs, codec, zlog)

	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})
	app.Use(middleware.RequestLogger(zlog))
	routes.Register(app, h, codec, userRepo)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.App.Port)
		zlog.Info("starting server", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			zlog.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	zlog.Info("shutdown requested")

	_ = app.ShutdownWithTimeout(cfg.ShutdownTimeout)
	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	zlog.Info("shutdown completed")
}
