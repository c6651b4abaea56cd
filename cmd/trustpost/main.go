package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NeuralTrust/TrustPost/pkg/app/submission"
	"github.com/NeuralTrust/TrustPost/pkg/common"
	"github.com/NeuralTrust/TrustPost/pkg/config"
	"github.com/NeuralTrust/TrustPost/pkg/dependency_container"
	"github.com/NeuralTrust/TrustPost/pkg/infra/cache/channel"
	"github.com/NeuralTrust/TrustPost/pkg/infra/database"
	infraLogger "github.com/NeuralTrust/TrustPost/pkg/infra/logger"
	_ "github.com/NeuralTrust/TrustPost/pkg/infra/migrations"
	"github.com/NeuralTrust/TrustPost/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustPost/pkg/server"
	"github.com/NeuralTrust/TrustPost/pkg/server/router"
	"github.com/NeuralTrust/TrustPost/pkg/version"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// @title TrustPost API
// @version 0.4.0
// @description Content moderation and media safety for user submissions.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config"
	}
	if err := config.Load(configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	logger, closeLogger, err := infraLogger.NewLogger(infraLogger.Options{
		Component: "trustpost",
		Level:     cfg.Server.LogLevel,
		ToFile:    cfg.Server.LogToFile,
	})
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer closeLogger()

	logger.WithField("version", version.GetInfo().Version).Info("starting trustpost")

	if cfg.Metrics.Enabled {
		prometheus.Initialize()
	}

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	container, err := dependency_container.NewContainer(ctx, dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
		DB:     db,
	})
	if err != nil {
		logger.Fatalf("failed to initialize dependency container: %v", err)
	}

	go func() {
		logger.Info("listening for submission progress events")
		container.RedisListener.Listen(ctx, channel.SubmissionProgressChannel)
	}()

	go sweepProgress(ctx, container.ProgressHub, logger)

	srv := server.NewAPIServer(server.APIServerDI{
		Config: cfg,
		Logger: logger,
		Routers: []router.ServerRouter{
			router.NewAPIRouter(&container.MiddlewareTransport, &container.HandlerTransport, cfg.Server.EnableDocs),
			router.NewWebsocketRouter(&container.MiddlewareTransport, container.WSHandlerTransport),
		},
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("error shutting down server")
	}
	if err := container.AuditLogsService.Close(); err != nil {
		logger.WithError(err).Error("error flushing audit logs")
	}
	if err := container.Redis.Close(); err != nil {
		logger.WithError(err).Warn("error closing redis client")
	}
	logger.Info("server gracefully stopped")
}

func sweepProgress(ctx context.Context, hub *submission.ProgressHub, logger *logrus.Logger) {
	ticker := time.NewTicker(common.ProgressSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := hub.Sweep(); n > 0 {
				logger.WithField("evicted", n).Debug("swept progress streams")
			}
		}
	}
}
