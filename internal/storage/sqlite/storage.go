package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/soalpich/soalpich-web/internal/model"
	"github.com/soalpich/soalpich-web/internal/storage"
)

// Storage is a SQLite-backed implementation of the token store.
// Tokens survive server restarts, mirroring the durable browser storage
// of a traditional client.
type Storage struct {
	db *sql.DB
}

// New opens (or creates) a SQLite database at the given path
func New(path string) (*Storage, error) {
	if path == "" {
		return nil, errors.New("database path is empty")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("ensure db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure sqlite: %w", err)
	}

	s := &Storage{db: db}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Storage) initSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS session_tokens (
		session_id TEXT PRIMARY KEY,
		token TEXT NOT NULL
	);`)
	if err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Close closes the database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.TokenStore = (*Storage)(nil)

func (s *Storage) SaveToken(ctx context.Context, sessionID, token string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO session_tokens (session_id, token) VALUES (?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET token = excluded.token`,
		sessionID, token)
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *Storage) GetToken(ctx context.Context, sessionID string) (string, error) {
	var token string
	err := s.db.QueryRowContext(ctx,
		`SELECT token FROM session_tokens WHERE session_id = ?`, sessionID).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", model.ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get token: %w", err)
	}
	return token, nil
}

func (s *Storage) DeleteToken(ctx context.Context, sessionID string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM session_tokens WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}
