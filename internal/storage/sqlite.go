// Package storage provides SQLite-based persistence for game scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/pmoroz/brickgame/internal/engine"
)

// Store manages the SQLite database connection for score persistence.
// It implements engine.ScoreStore: the machine reads the best score once
// per run and submits once per run, only when the best was beaten.
type Store struct {
	db *sql.DB
}

// HighScore is the persisted best for one game.
type HighScore struct {
	GameID    string
	Best      int
	UpdatedAt time.Time
}

// Play is one finished run: its final score and how it ended.
type Play struct {
	ID        int64
	GameID    string
	Score     int
	Outcome   string // "victory", "defeat", "quit"
	CreatedAt time.Time
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			game_id TEXT PRIMARY KEY,
			best INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS plays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_plays_game_id ON plays(game_id);
		CREATE INDEX IF NOT EXISTS idx_plays_top ON plays(game_id, score DESC);
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

// Best returns the persisted best score for the given game.
// A game that was never played has a best of 0.
func (s *Store) Best(gameID string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT best FROM high_scores WHERE game_id = ?",
		gameID,
	).Scan(&best)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// Submit records a new best score for the given game. The row only moves
// upward: a submission below the stored best is ignored, so a stale caller
// cannot lower the record.
func (s *Store) Submit(gameID string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (game_id, best, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id) DO UPDATE SET
			best = excluded.best,
			updated_at = excluded.updated_at
		 WHERE excluded.best > high_scores.best`,
		gameID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot submit score: %w", err)
	}
	return nil
}

// Ensure Store satisfies the machine's persistence boundary
var _ engine.ScoreStore = (*Store)(nil)

// EnsureGames seeds a zero best-score row for every listed game that has
// none yet, so a fresh machine shows a full scoreboard. Existing rows are
// untouched.
func (s *Store) EnsureGames(gameIDs []string) error {
	for _, id := range gameIDs {
		_, err := s.db.Exec(
			"INSERT OR IGNORE INTO high_scores (game_id) VALUES (?)",
			id,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot seed score row for %s: %w", id, err)
		}
	}
	return nil
}

// RecordPlay appends one finished run to the play history.
// Returns the ID of the inserted record.
func (s *Store) RecordPlay(gameID string, score int, outcome string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO plays (game_id, score, outcome) VALUES (?, ?, ?)",
		gameID, score, outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record play: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// AllBest retrieves the stored best for every game, ordered by game ID.
func (s *Store) AllBest() ([]HighScore, error) {
	rows, err := s.db.Query(
		`SELECT game_id, best, updated_at
		 FROM high_scores
		 ORDER BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query high scores: %w", err)
	}
	defer rows.Close()

	var entries []HighScore
	for rows.Next() {
		var h HighScore
		var updatedAt any
		if err := rows.Scan(&h.GameID, &h.Best, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		h.UpdatedAt = parseTimestamp(updatedAt)
		entries = append(entries, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// TopPlays retrieves the top N plays for the given game, ordered by score
// descending.
func (s *Store) TopPlays(gameID string, limit int) ([]Play, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, outcome, created_at
		 FROM plays
		 WHERE game_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query plays: %w", err)
	}
	defer rows.Close()

	var entries []Play
	for rows.Next() {
		var p Play
		var createdAt any
		if err := rows.Scan(&p.ID, &p.GameID, &p.Score, &p.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// GameStats contains aggregated statistics for a game's play history.
type GameStats struct {
	GameID     string
	PlayCount  int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Stats retrieves aggregated play statistics for a specific game.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM plays WHERE game_id = ?`,
		gameID,
	).Scan(&stats.PlayCount, &stats.HighScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM plays WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// ClearGame deletes the stored best and the play history for a game.
func (s *Store) ClearGame(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM high_scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear best score: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM plays WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear plays: %w", err)
	}
	return nil
}

// parseTimestamp handles both time.Time and string values from the driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
