// Package storage keeps the history of level runs in SQLite.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type Outcome string

const (
	OutcomeComplete Outcome = "complete"
	OutcomeDied     Outcome = "died"
	OutcomeQuit     Outcome = "quit"
)

// Run is the result of one attempt at a level.
type Run struct {
	ID        int64
	Level     int
	Outcome   Outcome
	Frames    int
	Kills     int
	Health    int
	Ammo      int
	CreatedAt time.Time
}

type Store struct {
	db *sql.DB
}

// Open creates or opens the database at path, creating parent directories
// and the schema as needed. A leading ~ expands to the home directory.
func Open(path string) (*Store, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: connect: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			frames INTEGER NOT NULL,
			kills INTEGER NOT NULL DEFAULT 0,
			health INTEGER NOT NULL DEFAULT 0,
			ammo INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level, outcome, frames);
	`)
	return err
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun inserts r and returns its id.
func (s *Store) RecordRun(ctx context.Context, r Run) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (level, outcome, frames, kills, health, ammo) VALUES (?, ?, ?, ?, ?, ?)`,
		r.Level, string(r.Outcome), r.Frames, r.Kills, r.Health, r.Ammo,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: record run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: inserted id: %w", err)
	}
	return id, nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, level, outcome, frames, kills, health, ammo, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: iterate runs: %w", err)
	}
	return runs, nil
}

// BestRun returns the fastest completed run of a level. ok is false when the
// level was never completed.
func (s *Store) BestRun(ctx context.Context, level int) (Run, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, level, outcome, frames, kills, health, ammo, created_at
		 FROM runs
		 WHERE level = ? AND outcome = ?
		 ORDER BY frames ASC, id ASC
		 LIMIT 1`,
		level, string(OutcomeComplete),
	)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, false, nil
	}
	if err != nil {
		return Run{}, false, err
	}
	return r, true, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var outcome string
	var createdAt any
	if err := sc.Scan(&r.ID, &r.Level, &outcome, &r.Frames, &r.Kills, &r.Health, &r.Ammo, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("storage: scan run: %w", err)
	}
	r.Outcome = Outcome(outcome)
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return r, nil
}
