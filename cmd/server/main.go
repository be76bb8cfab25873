package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/mcoot/snakegame-go/internal/api"
	apimiddleware "github.com/mcoot/snakegame-go/internal/api/middleware"
	"github.com/mcoot/snakegame-go/internal/factory"
	"github.com/mcoot/snakegame-go/internal/services/token"
	redisstorage "github.com/mcoot/snakegame-go/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Token signing secret is mandatory; without it every issued token
	// would be forgeable
	secret := os.Getenv("AUTH_SECRET")
	if secret == "" {
		logger.Error("AUTH_SECRET is required")
		os.Exit(1)
	}

	tokenCfg := token.DefaultConfig()
	tokenCfg.Secret = secret
	if alg := os.Getenv("AUTH_ALGORITHM"); alg != "" {
		tokenCfg.Algorithm = alg
	}
	if raw := os.Getenv("AUTH_TOKEN_TTL_MINUTES"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			logger.Error("AUTH_TOKEN_TTL_MINUTES must be a positive integer", slog.String("value", raw))
			os.Exit(1)
		}
		tokenCfg.TTL = time.Duration(minutes) * time.Minute
	}

	// Build factory config from environment
	cfg := factory.Config{
		TokenConfig: tokenCfg,
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	corsCfg := apimiddleware.DefaultCORSConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsCfg.AllowedOrigins = strings.Split(origins, ",")
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:   logger,
		Accounts: app.Accounts,
		Scores:   app.Scores,
		Tokens:   app.Tokens,
		CORS:     corsCfg,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			logger.Error("PORT must be an integer", slog.String("value", raw))
			os.Exit(1)
		}
		serverConfig.Port = port
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
