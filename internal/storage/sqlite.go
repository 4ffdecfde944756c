// Package storage provides SQLite-based persistence for simulation runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/katalvlaran/gridnav/geom"
	"github.com/katalvlaran/gridnav/scenario"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunEntry is one stored run.
type RunEntry struct {
	ID         int64
	Scenario   string
	Agents     int
	Reached    int
	Frames     int
	Collisions int
	Elapsed    time.Duration
	CreatedAt  time.Time
}

// AgentEntry is one agent's stored outcome.
type AgentEntry struct {
	RunID         int64
	Name          string
	Start         geom.Point
	Goal          geom.Point
	End           geom.Point
	Reachable     bool
	Reached       bool
	FirstComplete bool
	Recomputes    int
	Travelled     float64
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

	// Test connection
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scenario TEXT NOT NULL,
			agents INTEGER NOT NULL,
			reached INTEGER NOT NULL,
			frames INTEGER NOT NULL,
			collisions INTEGER NOT NULL DEFAULT 0,
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_scenario ON runs(scenario);

		CREATE TABLE IF NOT EXISTS agent_results (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			start_x INTEGER NOT NULL,
			start_y INTEGER NOT NULL,
			goal_x INTEGER NOT NULL,
			goal_y INTEGER NOT NULL,
			end_x INTEGER NOT NULL,
			end_y INTEGER NOT NULL,
			reachable INTEGER NOT NULL,
			reached INTEGER NOT NULL,
			first_complete INTEGER NOT NULL,
			recomputes INTEGER NOT NULL,
			travelled REAL NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_agent_results_run ON agent_results(run_id);
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

// SaveRun records a report and its agent results in one transaction.
// Returns the ID of the inserted run.
func (s *Store) SaveRun(r scenario.Report) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (scenario, agents, reached, frames, collisions, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Scenario, len(r.Agents), r.Reached(), r.Frames, r.Collisions, r.Elapsed.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for _, a := range r.Agents {
		_, err := tx.Exec(
			`INSERT INTO agent_results
			 (run_id, name, start_x, start_y, goal_x, goal_y, end_x, end_y,
			  reachable, reached, first_complete, recomputes, travelled)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, a.Name,
			a.Start.X, a.Start.Y,
			a.Goal.X, a.Goal.Y,
			a.End.X, a.End.Y,
			a.Reachable, a.Reached, a.FirstComplete,
			a.Recomputes, a.Travelled,
		)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot save agent %s: %w", a.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, scenario, agents, reached, frames, collisions, elapsed_ms, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var elapsedMS int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Scenario, &e.Agents, &e.Reached, &e.Frames,
			&e.Collisions, &elapsedMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// AgentResults retrieves the agent outcomes of one run in insertion order.
func (s *Store) AgentResults(runID int64) ([]AgentEntry, error) {
	rows, err := s.db.Query(
		`SELECT run_id, name, start_x, start_y, goal_x, goal_y, end_x, end_y,
		        reachable, reached, first_complete, recomputes, travelled
		 FROM agent_results
		 WHERE run_id = ?
		 ORDER BY rowid`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query agent results: %w", err)
	}
	defer rows.Close()

	var entries []AgentEntry
	for rows.Next() {
		var e AgentEntry
		if err := rows.Scan(
			&e.RunID, &e.Name,
			&e.Start.X, &e.Start.Y,
			&e.Goal.X, &e.Goal.Y,
			&e.End.X, &e.End.Y,
			&e.Reachable, &e.Reached, &e.FirstComplete,
			&e.Recomputes, &e.Travelled,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
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
