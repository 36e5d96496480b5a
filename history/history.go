// Package history records scrape and export runs in a local SQLite
// database. It is used by the booksdata CLI; the scraping library itself
// never persists anything.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Run is one recorded scrape or export invocation.
type Run struct {
	RunID     uuid.UUID     `json:"run_id"`
	Category  string        `json:"category"`
	Format    string        `json:"format"`
	RowCount  int           `json:"row_count"`
	Path      string        `json:"path,omitempty"` // destination file, empty for in-memory output
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Error     string        `json:"error,omitempty"`
}

// Succeeded returns true if the run completed without an error.
func (r *Run) Succeeded() bool {
	return r.Error == ""
}

// Store manages run history using SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates a new history store with the given database path.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the runs table if it doesn't exist.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		category TEXT NOT NULL,
		format TEXT NOT NULL,
		row_count INTEGER NOT NULL DEFAULT 0,
		path TEXT,
		started_at TEXT NOT NULL,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		error TEXT
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add records a run. A zero RunID gets a fresh UUID; the (possibly
// updated) run is returned.
func (s *Store) Add(run Run) (*Run, error) {
	if run.RunID == uuid.Nil {
		run.RunID = uuid.New()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}

	query := `
		INSERT INTO runs (
			run_id, category, format, row_count, path,
			started_at, duration_ms, error
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		run.RunID.String(),
		run.Category,
		run.Format,
		run.RowCount,
		run.Path,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.Duration.Milliseconds(),
		run.Error,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert run: %w", err)
	}

	return &run, nil
}

// List returns the most recent runs, newest first. A limit of 0 or less
// means no limit.
func (s *Store) List(limit int) ([]Run, error) {
	query := `
		SELECT run_id, category, format, row_count, path,
		       started_at, duration_ms, error
		FROM runs
		ORDER BY started_at DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var runIDStr, startedAtStr string
		var path, errText sql.NullString
		var durationMS int64
		var run Run

		if err := rows.Scan(
			&runIDStr, &run.Category, &run.Format, &run.RowCount,
			&path, &startedAtStr, &durationMS, &errText,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		run.RunID, err = uuid.Parse(runIDStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse run_id %q: %w", runIDStr, err)
		}

		run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse started_at %q: %w", startedAtStr, err)
		}

		run.Path = path.String
		run.Error = errText.String
		run.Duration = time.Duration(durationMS) * time.Millisecond

		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return runs, nil
}
