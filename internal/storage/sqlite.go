// Package storage keeps the tower score history in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished run. Score is the tower height in pillows.
type ScoreEntry struct {
	ID        int64
	Mode      string
	Score     int
	Feathers  int
	Misses    int
	Duration  time.Duration
	CreatedAt time.Time
}

// RunResult is what the game reports when a run ends.
type RunResult struct {
	Mode     string
	Score    int
	Feathers int
	Misses   int
	Duration time.Duration
}

// ModeStats contains aggregated statistics for a mode.
type ModeStats struct {
	Mode          string
	Runs          int
	HighScore     int
	AvgScore      float64
	TotalPillows  int64
	TotalFeathers int64
	LastPlayed    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			feathers INTEGER NOT NULL DEFAULT 0,
			misses INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(mode, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a bare score for the given mode.
func (s *Store) SaveScore(mode string, score int) (int64, error) {
	return s.SaveRun(RunResult{Mode: mode, Score: score})
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r RunResult) (int64, error) {
	if r.Mode == "" {
		return 0, errors.New("storage: run has no mode")
	}
	result, err := s.db.Exec(
		"INSERT INTO runs (mode, score, feathers, misses, duration_ms) VALUES (?, ?, ?, ?, ?)",
		r.Mode, r.Score, r.Feathers, r.Misses, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores retrieves the best limit runs for the mode, highest first.
func (s *Store) TopScores(mode string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, mode, score, feathers, misses, duration_ms, created_at
		 FROM runs
		 WHERE mode = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		mode, limit,
	)
}

// RecentRuns retrieves the latest runs across all modes.
func (s *Store) RecentRuns(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, mode, score, feathers, misses, duration_ms, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Score, &e.Feathers, &e.Misses, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the tallest tower for the mode, or 0.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs WHERE mode = ?", mode).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all runs for the mode.
func (s *Store) ClearScores(mode string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE mode = ?", mode); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats aggregates every run of the mode.
func (s *Store) Stats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), COALESCE(SUM(feathers), 0), MAX(created_at)
		 FROM runs WHERE mode = ?`,
		mode,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.TotalPillows, &stats.TotalFeathers, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// AllStats returns statistics for every mode that has been played.
func (s *Store) AllStats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), MAX(score), AVG(score), SUM(score), SUM(feathers), MAX(created_at)
		 FROM runs
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var m ModeStats
		var lastPlayed any
		if err := rows.Scan(&m.Mode, &m.Runs, &m.HighScore, &m.AvgScore, &m.TotalPillows, &m.TotalFeathers, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		m.LastPlayed = parseTime(lastPlayed)
		stats[m.Mode] = &m
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime handles both driver representations of DATETIME.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
