// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/cenkalti/backoff/v5"
	"modernc.org/sqlite" // Pure Go SQLite driver
	sqlite3 "modernc.org/sqlite/lib"
)

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	Lines     int
	CreatedAt time.Time
}

// GameResult is everything recorded when a game ends.
type GameResult struct {
	GameID string
	Score  int
	Lines  int
	Pieces map[string]int // Locked piece count per shape name
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			lines INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS pieces (
			score_id INTEGER NOT NULL REFERENCES scores(id) ON DELETE CASCADE,
			shape TEXT NOT NULL,
			locked INTEGER NOT NULL,
			PRIMARY KEY (score_id, shape)
		);
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

// SaveScore records a score without piece counts.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score, lines int) (int64, error) {
	return s.SaveResult(GameResult{GameID: gameID, Score: score, Lines: lines})
}

// SaveResult records a finished game and its per-shape counts in one
// transaction. Returns the ID of the inserted score record.
func (s *Store) SaveResult(result GameResult) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO scores (game_id, score, lines) VALUES (?, ?, ?)",
		result.GameID, result.Score, result.Lines,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for shape, count := range result.Pieces {
		if count <= 0 {
			continue
		}
		if _, err := tx.Exec(
			"INSERT INTO pieces (score_id, shape, locked) VALUES (?, ?, ?)",
			id, shape, count,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save piece count for %s: %w", shape, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit result: %w", err)
	}

	return id, nil
}

// SaveResultRetry is SaveResult that retries while another connection holds
// the write lock, as happens when many SSH sessions finish at once. Other
// errors are returned immediately. notify may be nil.
func (s *Store) SaveResultRetry(ctx context.Context, result GameResult, notify func(error, time.Duration)) (int64, error) {
	exp := &backoff.ExponentialBackOff{
		InitialInterval:     20 * time.Millisecond,
		RandomizationFactor: 0.2,
		Multiplier:          1.5,
		MaxInterval:         500 * time.Millisecond,
	}
	opts := []backoff.RetryOption{
		backoff.WithBackOff(exp),
		backoff.WithMaxElapsedTime(2 * time.Second),
	}
	if notify != nil {
		opts = append(opts, backoff.WithNotify(notify))
	}

	return backoff.Retry(ctx, func() (int64, error) {
		id, err := s.SaveResult(result)
		if err != nil && !isBusy(err) {
			return 0, backoff.Permanent(err)
		}
		return id, err
	}, opts...)
}

// isBusy reports whether err is SQLite refusing a write because the
// database is locked. Extended result codes keep the primary code in the
// low byte.
func isBusy(err error) bool {
	var serr *sqlite.Error
	if !errors.As(err, &serr) {
		return false
	}
	switch serr.Code() & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return true
	}
	return false
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending, then lines descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, lines, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, lines DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Lines, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ShapeCount is the total number of locked pieces of one shape.
type ShapeCount struct {
	Shape string
	Count int
}

// ShapeTotals sums locked piece counts per shape across every saved game,
// ordered by shape name.
func (s *Store) ShapeTotals(gameID string) ([]ShapeCount, error) {
	rows, err := s.db.Query(
		`SELECT p.shape, SUM(p.locked)
		 FROM pieces p
		 JOIN scores s ON s.id = p.score_id
		 WHERE s.game_id = ?
		 GROUP BY p.shape`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query shape totals: %w", err)
	}
	defer rows.Close()

	var totals []ShapeCount
	for rows.Next() {
		var sc ShapeCount
		if err := rows.Scan(&sc.Shape, &sc.Count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan shape row: %w", err)
		}
		totals = append(totals, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Shape < totals[j].Shape
	})
	return totals, nil
}

// ClearScores deletes all scores and piece counts for the given game.
func (s *Store) ClearScores(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"DELETE FROM pieces WHERE score_id IN (SELECT id FROM scores WHERE game_id = ?)",
		gameID,
	); err != nil {
		return fmt.Errorf("storage: cannot clear piece counts: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit clear: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	BestLines  int
	TotalLines int64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0),
		        COALESCE(MAX(lines), 0), COALESCE(SUM(lines), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore,
		&stats.BestLines, &stats.TotalLines)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles the driver returning either time.Time or a string.
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
