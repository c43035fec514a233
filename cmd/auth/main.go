package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/inviteflow/auth-service/internal/pkg/config"
	"github.com/inviteflow/auth-service/internal/pkg/database"
	"github.com/inviteflow/auth-service/internal/pkg/health"
	"github.com/inviteflow/auth-service/internal/pkg/logger"
	natspkg "github.com/inviteflow/auth-service/internal/pkg/nats"
	"github.com/inviteflow/auth-service/internal/pkg/server"
	"github.com/inviteflow/auth-service/services/auth/gateway"
	"github.com/inviteflow/auth-service/services/auth/handler"
	httpHandler "github.com/inviteflow/auth-service/services/auth/handler/http"
	"github.com/inviteflow/auth-service/services/auth/repository"
	"github.com/inviteflow/auth-service/services/auth/usecase"
)

func main() {
	appName := "auth-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/auth.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	shutdownManager := server.NewShutdownManager(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	shutdownManager.Register(func(context.Context) error { return postgresClient.Close() })

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelMigrate()
	if err := postgresClient.RunMigrations(migrateCtx); err != nil {
		zapLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	shutdownManager.Register(func(context.Context) error { return redisClient.Close() })

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	shutdownManager.Register(func(context.Context) error {
		natsClient.Close()
		return nil
	})

	// Initialize repository
	authRepo := repository.NewAuthRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateway
	authGW := gateway.NewAuthGW(natsClient, configs.SMTP)

	// Initialize usecase
	authUC := usecase.NewAuthUC(authRepo, authRepo, authGW, configs)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUC)
	userHandler := httpHandler.NewUserHandler(authUC)
	Handler := handler.NewHandler(authHandler, userHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(echoMiddleware.RequestID())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version)
	Handler.RegisterRoutes(e)

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port, shutdownTimeout)

	// Blocks until SIGINT or SIGTERM, then drains in-flight requests
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown error", zap.Error(err))
	}

	cleanupCtx, cancelCleanup := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelCleanup()
	if err := shutdownManager.Shutdown(cleanupCtx); err != nil {
		zapLogger.Error("Component shutdown error", zap.Error(err))
	}
}
