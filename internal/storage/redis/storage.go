package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/soalpich/soalpich-web/internal/model"
	"github.com/soalpich/soalpich-web/internal/storage"
)

// Storage is a Redis-backed implementation of the token store
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.TokenStore = (*Storage)(nil)

func (s *Storage) SaveToken(ctx context.Context, sessionID, token string) error {
	return s.client.Set(ctx, tokenKey(sessionID), token, s.cfg.TokenTTL).Err()
}

func (s *Storage) GetToken(ctx context.Context, sessionID string) (string, error) {
	token, err := s.client.Get(ctx, tokenKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrTokenNotFound
		}
		return "", err
	}
	return token, nil
}

func (s *Storage) DeleteToken(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, tokenKey(sessionID)).Err()
}
