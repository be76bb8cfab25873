// Package factory wires the application's services together.
package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/snakegame-go/internal/dependencies/clock"
	"github.com/mcoot/snakegame-go/internal/services/account"
	"github.com/mcoot/snakegame-go/internal/services/score"
	"github.com/mcoot/snakegame-go/internal/services/token"
	"github.com/mcoot/snakegame-go/internal/storage"
	"github.com/mcoot/snakegame-go/internal/storage/memory"
	redisstorage "github.com/mcoot/snakegame-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	Tokens   *token.Service
	Accounts *account.Service
	Scores   *score.Service
}

// Config holds configuration for the application factory
type Config struct {
	// TokenConfig holds the token service configuration. Secret is
	// required; TTL and Algorithm fall back to token.DefaultConfig()
	TokenConfig token.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()

	tokenCfg := cfg.TokenConfig
	if tokenCfg.TTL == 0 {
		tokenCfg.TTL = token.DefaultConfig().TTL
	}
	if tokenCfg.Algorithm == "" {
		tokenCfg.Algorithm = token.DefaultConfig().Algorithm
	}

	return newWithDependencies(store, clk, tokenCfg, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, tokenCfg token.Config, logger *slog.Logger) (*App, error) {
	tokens, err := token.New(tokenCfg, clk)
	if err != nil {
		return nil, err
	}

	accounts := account.New(store, tokens, clk, logger)
	scores := score.New(store, clk, logger)

	return &App{
		Storage:  store,
		Clock:    clk,
		Tokens:   tokens,
		Accounts: accounts,
		Scores:   scores,
	}, nil
}
