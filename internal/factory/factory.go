package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/soalpich/soalpich-web/internal/gateway"
	"github.com/soalpich/soalpich-web/internal/session"
	"github.com/soalpich/soalpich-web/internal/storage"
	"github.com/soalpich/soalpich-web/internal/storage/memory"
	redisstorage "github.com/soalpich/soalpich-web/internal/storage/redis"
	sqlitestorage "github.com/soalpich/soalpich-web/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// TokenStore persists bearer tokens across requests
	TokenStore storage.TokenStore

	// Gateway talks to the remote quiz backend
	Gateway *gateway.Client

	// Sessions drives the auth lifecycle
	Sessions *session.Manager
}

// Config holds configuration for the application factory
type Config struct {
	// BackendURL is the base URL of the quiz backend API
	BackendURL string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the token store backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file path (required if StorageType is "sqlite")
	SQLitePath string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	if cfg.BackendURL == "" {
		return nil, errors.New("BackendURL is required")
	}

	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create token store based on type
	var store storage.TokenStore
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
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlitestorage.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'sqlite'")
	}

	gw := gateway.NewClient(cfg.BackendURL)

	return &App{
		TokenStore: store,
		Gateway:    gw,
		Sessions:   session.NewManager(gw, store, logger),
	}, nil
}
