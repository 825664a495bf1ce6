package main

import (
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/linkfolio-dev/linkfolio/db"
	"github.com/linkfolio-dev/linkfolio/internal/ai"
	"github.com/linkfolio-dev/linkfolio/internal/auth"
	"github.com/linkfolio-dev/linkfolio/internal/config"
	"github.com/linkfolio-dev/linkfolio/internal/handlers"
	"github.com/linkfolio-dev/linkfolio/internal/logger"
	"github.com/linkfolio-dev/linkfolio/internal/router"
	"github.com/linkfolio-dev/linkfolio/internal/scheduler"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		panic("Error loading .env file: " + err.Error())
	}

	logger.InitLogger()
	defer logger.Sync()

	cfg := config.Load()

	if err := auth.InitJWTSecret(); err != nil {
		logger.Log.Fatal("JWT secret missing", zap.Error(err))
	}

	sentryActive := false
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN})
		if err != nil {
			logger.Log.Error("Failed to initialize Sentry", zap.Error(err))
		} else {
			sentryActive = true
			defer sentry.Flush(2 * time.Second)
		}
	}

	if err := db.ConnectDatabase(cfg.DatabaseURL); err != nil {
		logger.Log.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.MigrateDatabase(); err != nil {
		logger.Log.Fatal("Failed to migrate database", zap.Error(err))
	}

	if err := db.SeedDemoProfile(cfg.DemoUserID); err != nil {
		logger.Log.Fatal("Failed to seed demo profile", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Log.Fatal("Failed to create upload directory", zap.Error(err))
	}

	handlers.DemoUserID = cfg.DemoUserID
	handlers.UploadDir = cfg.UploadDir
	handlers.AIClient = ai.NewClient(cfg.PerplexityAPIKey)

	scheduler.Initialize()
	defer scheduler.Shutdown()

	r := router.NewRouter(router.Options{
		UploadDir:    cfg.UploadDir,
		SentryActive: sentryActive,
	})

	logger.Log.Info("Starting server", zap.String("port", cfg.Port))

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Failed to start server", zap.Error(err))
	}
}
