// Package storage provides SQLite-based persistence for finished level attempts.
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

// Attempt outcomes stored in level_results.status.
const (
	StatusWon  = "won"
	StatusLost = "lost"
)

// Store manages the SQLite database connection for attempt history.
type Store struct {
	db *sql.DB
}

// LevelResult is one finished attempt at a level.
type LevelResult struct {
	ID           int64
	LevelID      int
	Theme        string
	Status       string // StatusWon or StatusLost
	Moves        int
	ShufflesUsed int
	PeeksUsed    int
	Seed         int64
	CreatedAt    time.Time
}

// Won reports whether the attempt cleared the level.
func (r LevelResult) Won() bool {
	return r.Status == StatusWon
}

// LevelSummary aggregates every attempt recorded for one level.
type LevelSummary struct {
	LevelID    int
	Attempts   int
	Wins       int
	BestMoves  int // fewest moves among wins, 0 when never won
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS level_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id INTEGER NOT NULL,
			theme TEXT NOT NULL,
			status TEXT NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			shuffles_used INTEGER NOT NULL DEFAULT 0,
			peeks_used INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_level_results_level ON level_results(level_id);
		CREATE INDEX IF NOT EXISTS idx_level_results_best ON level_results(level_id, status, moves);
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

// SaveResult records a finished attempt and returns its row ID.
func (s *Store) SaveResult(r LevelResult) (int64, error) {
	if r.Status != StatusWon && r.Status != StatusLost {
		return 0, fmt.Errorf("storage: cannot save result: unknown status %q", r.Status)
	}

	result, err := s.db.Exec(
		`INSERT INTO level_results
		 (level_id, theme, status, moves, shuffles_used, peeks_used, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.LevelID, r.Theme, r.Status, r.Moves, r.ShufflesUsed, r.PeeksUsed, r.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const resultColumns = `id, level_id, theme, status, moves, shuffles_used, peeks_used, seed, created_at`

// BestResults returns the fewest-moves win for every level that has one,
// ordered by level. Ties go to the earlier attempt.
func (s *Store) BestResults() ([]LevelResult, error) {
	rows, err := s.db.Query(
		`SELECT ` + resultColumns + `
		 FROM level_results r
		 WHERE status = 'won'
		   AND id = (
		     SELECT id FROM level_results b
		     WHERE b.level_id = r.level_id AND b.status = 'won'
		     ORDER BY b.moves ASC, b.id ASC
		     LIMIT 1
		   )
		 ORDER BY level_id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best results: %w", err)
	}
	return scanResults(rows)
}

// RecentResults returns the latest attempts, newest first.
func (s *Store) RecentResults(limit int) ([]LevelResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM level_results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent results: %w", err)
	}
	return scanResults(rows)
}

// ResultsForLevel returns every attempt at one level, oldest first.
func (s *Store) ResultsForLevel(levelID int) ([]LevelResult, error) {
	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM level_results
		 WHERE level_id = ?
		 ORDER BY id ASC`,
		levelID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level results: %w", err)
	}
	return scanResults(rows)
}

// Summary aggregates attempts for one level.
// A level that was never played yields a zero summary with LevelID set.
func (s *Store) Summary(levelID int) (LevelSummary, error) {
	summary := LevelSummary{LevelID: levelID}

	var best sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN status = 'won' THEN 1 ELSE 0 END), 0),
		        MIN(CASE WHEN status = 'won' THEN moves END)
		 FROM level_results WHERE level_id = ?`,
		levelID,
	).Scan(&summary.Attempts, &summary.Wins, &best)
	if err != nil {
		return summary, fmt.Errorf("storage: cannot summarize level %d: %w", levelID, err)
	}
	if best.Valid {
		summary.BestMoves = int(best.Int64)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM level_results WHERE level_id = ? ORDER BY id DESC LIMIT 1`,
		levelID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return summary, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		summary.LastPlayed = parseTimestamp(lastPlayed)
	}

	return summary, nil
}

// ClearResults deletes the history of one level, or of every level when levelID is 0.
func (s *Store) ClearResults(levelID int) error {
	var err error
	if levelID == 0 {
		_, err = s.db.Exec("DELETE FROM level_results")
	} else {
		_, err = s.db.Exec("DELETE FROM level_results WHERE level_id = ?", levelID)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

func scanResults(rows *sql.Rows) ([]LevelResult, error) {
	defer rows.Close()

	var results []LevelResult
	for rows.Next() {
		var r LevelResult
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.LevelID,
			&r.Theme,
			&r.Status,
			&r.Moves,
			&r.ShufflesUsed,
			&r.PeeksUsed,
			&r.Seed,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// parseTimestamp handles both driver-decoded times and raw SQLite text.
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
