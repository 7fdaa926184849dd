// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/tuicard/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for review history and recent-file bookkeeping.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS review_sessions (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			deck_path TEXT NOT NULL,
			cards INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			incorrect INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS recent_files (
			path TEXT PRIMARY KEY,
			opened_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_review_sessions_ended_at ON review_sessions(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_review_sessions_deck_path ON review_sessions(deck_path);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertReview stores a completed review pass.
func (s *Store) InsertReview(ctx context.Context, stats model.ReviewStats) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO review_sessions (started_at, ended_at, deck_path, cards, correct, incorrect, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		stats.StartedAt.Format(time.RFC3339Nano),
		stats.EndedAt.Format(time.RFC3339Nano),
		stats.DeckPath,
		stats.Cards,
		stats.Correct,
		stats.Incorrect,
		stats.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListReviews returns review aggregates filtered by stats config.
func (s *Store) ListReviews(ctx context.Context, cfg model.StatsConfig) ([]model.ReviewAggregate, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Deck != "" {
		clauses = append(clauses, "deck_path = ?")
		args = append(args, cfg.Deck)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, ended_at, deck_path, cards, correct, incorrect, duration_ms
		FROM review_sessions
		WHERE %s
		ORDER BY ended_at ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var reviews []model.ReviewAggregate
	for rows.Next() {
		var agg model.ReviewAggregate
		var endedAt string
		if err := rows.Scan(&agg.ReviewID, &endedAt, &agg.DeckPath, &agg.Cards, &agg.Correct, &agg.Incorrect, &agg.DurationMs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		agg.EndedAt = parsed
		reviews = append(reviews, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}

// TouchRecent records that a deck file was opened now.
func (s *Store) TouchRecent(ctx context.Context, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO recent_files (path, opened_at) VALUES (?, ?)
		 ON CONFLICT(path) DO UPDATE SET opened_at = excluded.opened_at`,
		path, time.Now().Format(time.RFC3339Nano))
	return err
}

// LastOpened returns the most recently opened deck path, or "" when none.
func (s *Store) LastOpened(ctx context.Context) (string, error) {
	var path string
	err := s.db.QueryRowContext(ctx,
		`SELECT path FROM recent_files ORDER BY opened_at DESC LIMIT 1`).Scan(&path)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return path, nil
}

// RecentFiles lists recently opened deck paths, most recent first.
func (s *Store) RecentFiles(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT path FROM recent_files ORDER BY opened_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return paths, nil
}
