package memory

import (
	"context"
	"sync"

	"github.com/soalpich/soalpich-web/internal/model"
	"github.com/soalpich/soalpich-web/internal/storage"
)

// Storage is an in-memory implementation of the token store
type Storage struct {
	mu     sync.RWMutex
	tokens map[string]string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		tokens: make(map[string]string),
	}
}

// Ensure Storage implements the interface
var _ storage.TokenStore = (*Storage)(nil)

func (s *Storage) SaveToken(ctx context.Context, sessionID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[sessionID] = token
	return nil
}

func (s *Storage) GetToken(ctx context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.tokens[sessionID]
	if !ok {
		return "", model.ErrTokenNotFound
	}
	return token, nil
}

func (s *Storage) DeleteToken(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, sessionID)
	return nil
}
