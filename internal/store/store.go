// Package store keeps the little durable state the site has: the
// mini-game high score, in a sqlite key/value table.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// HighScoreKey is the fixed key the high score lives under.
const HighScoreKey = "portfolioGameHighScore"

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and prepares the
// schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// sqlite serialises writers anyway; one connection keeps ":memory:"
	// databases shared across calls.
	db.SetMaxOpenConns(1)

	createKV := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value INTEGER NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.ExecContext(ctx, createKV); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// HighScore returns the stored high score, or 0 if none was recorded.
func (s *Store) HighScore(ctx context.Context) (int, error) {
	var v int
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, HighScoreKey).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read high score: %w", err)
	}
	return v, nil
}

// SaveHighScore writes score only if it beats the stored value, in a
// single statement, and reports whether a write happened.
func (s *Store) SaveHighScore(ctx context.Context, score int) (bool, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		WHERE excluded.value > kv.value
	`, HighScoreKey, score, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("save high score: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("save high score: %w", err)
	}
	return n > 0, nil
}

// ResetHighScore forgets the stored high score.
func (s *Store) ResetHighScore(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, HighScoreKey); err != nil {
		return fmt.Errorf("reset high score: %w", err)
	}
	return nil
}
