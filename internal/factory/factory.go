package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/qrhunt/internal/dependencies/clock"
	"github.com/mcoot/qrhunt/internal/services/hunt"
	"github.com/mcoot/qrhunt/internal/services/leaderboard"
	"github.com/mcoot/qrhunt/internal/services/qrcode"
	"github.com/mcoot/qrhunt/internal/storage"
	"github.com/mcoot/qrhunt/internal/storage/memory"
	redisstorage "github.com/mcoot/qrhunt/internal/storage/redis"
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
	Clock  clock.Clock
	Logger *slog.Logger

	// Services
	QRCodeService      *qrcode.Service
	HuntController     *hunt.Controller
	LeaderboardService *leaderboard.Service
}

// Config holds configuration for the application factory
type Config struct {
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

	logger.Info("storage configured", slog.String("type", storageType))

	return newWithDependencies(store, clock.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, logger *slog.Logger) *App {
	qrService := qrcode.New()
	huntController := hunt.NewController(store, qrService, logger)
	leaderboardService := leaderboard.New(store, clk, logger)

	return &App{
		Storage:            store,
		Clock:              clk,
		Logger:             logger,
		QRCodeService:      qrService,
		HuntController:     huntController,
		LeaderboardService: leaderboardService,
	}
}

// Close releases storage connections, if the backend holds any
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
