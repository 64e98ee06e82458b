// Package storage provides SQLite-based persistence for finished puzzles.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for solve records.
type Store struct {
	db *sql.DB
}

// SolveRecord is one puzzle solved by hand.
type SolveRecord struct {
	ID         string
	GameID     string
	Player     string
	Level      int
	Moves      int
	Optimal    int
	DurationMs int64
	CreatedAt  time.Time
}

// Duration returns the solve time.
func (r SolveRecord) Duration() time.Duration {
	return time.Duration(r.DurationMs) * time.Millisecond
}

// LevelStats aggregates the solves recorded for one level.
type LevelStats struct {
	Level      int
	Solves     int
	BestMoves  int
	AvgMoves   float64
	FastestMs  int64
	LastPlayed time.Time
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS solves (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL,
			level INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			optimal INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_solves_level ON solves(level);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(level, moves, duration_ms);
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

// SaveSolve records a finished puzzle and returns its generated ID.
// A zero CreatedAt is set to the current time.
func (s *Store) SaveSolve(rec SolveRecord) (string, error) {
	if rec.Level < 1 || rec.Moves < 1 {
		return "", fmt.Errorf("storage: invalid solve record (level %d, moves %d)", rec.Level, rec.Moves)
	}

	id := uuid.NewString()
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO solves (id, game_id, player, level, moves, optimal, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, rec.GameID, rec.Player, rec.Level, rec.Moves, rec.Optimal, rec.DurationMs,
		created.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save solve: %w", err)
	}

	return id, nil
}

// TopSolves retrieves the best solves for a level: fewest moves first,
// then fastest, then oldest.
func (s *Store) TopSolves(level, limit int) ([]SolveRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, level, moves, optimal, duration_ms, created_at
		 FROM solves
		 WHERE level = ?
		 ORDER BY moves ASC, duration_ms ASC, created_at ASC
		 LIMIT ?`,
		level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var records []SolveRecord
	for rows.Next() {
		rec, err := scanSolve(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// BestSolve returns the top solve for a level, or nil if there is none.
func (s *Store) BestSolve(level int) (*SolveRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, game_id, player, level, moves, optimal, duration_ms, created_at
		 FROM solves
		 WHERE level = ?
		 ORDER BY moves ASC, duration_ms ASC, created_at ASC
		 LIMIT 1`,
		level,
	)

	rec, err := scanSolve(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// LevelStats returns aggregated statistics keyed by level.
func (s *Store) LevelStats() (map[int]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level, COUNT(*), MIN(moves), AVG(moves), MIN(duration_ms), MAX(created_at)
		 FROM solves
		 GROUP BY level`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[int]*LevelStats)
	for rows.Next() {
		var ls LevelStats
		var lastPlayed any
		if err := rows.Scan(&ls.Level, &ls.Solves, &ls.BestMoves, &ls.AvgMoves, &ls.FastestMs, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastPlayed = parseTime(lastPlayed)
		stats[ls.Level] = &ls
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearSolves deletes all solves for the given level.
func (s *Store) ClearSolves(level int) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE level = ?", level)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(sc scanner) (SolveRecord, error) {
	var rec SolveRecord
	var createdAt any
	err := sc.Scan(&rec.ID, &rec.GameID, &rec.Player, &rec.Level, &rec.Moves,
		&rec.Optimal, &rec.DurationMs, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, err
	}
	if err != nil {
		return rec, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

// parseTime handles both driver-decoded times and raw text columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	case []byte:
		return parseTime(string(t))
	}
	return time.Time{}
}
