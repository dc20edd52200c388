package bench

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // pure Go SQLite driver
)

// schema holds benchmark run history.
const schema = `
CREATE TABLE IF NOT EXISTS runs (
    run_id     TEXT PRIMARY KEY,
    ts         INTEGER NOT NULL,  -- unix seconds, UTC
    scenario   TEXT NOT NULL,
    solver     TEXT NOT NULL,
    agents     INTEGER NOT NULL,
    valid      INTEGER NOT NULL,
    total_cost INTEGER NOT NULL,
    trials     INTEGER NOT NULL,
    runtime_ms REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_scenario ON runs(scenario);
CREATE INDEX IF NOT EXISTS idx_runs_solver ON runs(solver);
`

// Store persists benchmark results to a SQLite database.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the database at path and applies the
// schema.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	// SQLite allows a single writer; keep the pool at one connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Insert writes one result.
func (s *Store) Insert(res Result) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, ts, scenario, solver, agents, valid, total_cost, trials, runtime_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.RunID,
		res.Timestamp.Unix(),
		res.Scenario,
		res.Solver,
		res.Agents,
		boolToInt(res.Valid),
		res.TotalCost,
		res.Trials,
		float64(res.Runtime.Microseconds())/1000.0,
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", res.RunID, err)
	}
	return nil
}

// InsertAll writes results in one transaction.
func (s *Store) InsertAll(results []Result) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	stmt, err := tx.Prepare(
		`INSERT INTO runs (run_id, ts, scenario, solver, agents, valid, total_cost, trials, runtime_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for _, res := range results {
		if _, err := stmt.Exec(
			res.RunID,
			res.Timestamp.Unix(),
			res.Scenario,
			res.Solver,
			res.Agents,
			boolToInt(res.Valid),
			res.TotalCost,
			res.Trials,
			float64(res.Runtime.Microseconds())/1000.0,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert run %s: %w", res.RunID, err)
		}
	}
	return tx.Commit()
}

// BySolver returns all recorded results for one solver, newest first.
func (s *Store) BySolver(solver string) ([]Result, error) {
	rows, err := s.db.Query(
		`SELECT run_id, ts, scenario, solver, agents, valid, total_cost, trials, runtime_ms
		 FROM runs WHERE solver = ? ORDER BY ts DESC`, solver)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()
	return scanResults(rows)
}

// ByScenario returns all recorded results for one scenario, newest
// first.
func (s *Store) ByScenario(scenario string) ([]Result, error) {
	rows, err := s.db.Query(
		`SELECT run_id, ts, scenario, solver, agents, valid, total_cost, trials, runtime_ms
		 FROM runs WHERE scenario = ? ORDER BY ts DESC`, scenario)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()
	return scanResults(rows)
}

// Count returns the number of stored runs.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func scanResults(rows *sql.Rows) ([]Result, error) {
	var results []Result
	for rows.Next() {
		var res Result
		var ts int64
		var valid int
		var runtimeMs float64
		if err := rows.Scan(&res.RunID, &ts, &res.Scenario, &res.Solver,
			&res.Agents, &valid, &res.TotalCost, &res.Trials, &runtimeMs); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		res.Timestamp = unixUTC(ts)
		res.Valid = valid != 0
		res.Runtime = msToDuration(runtimeMs)
		results = append(results, res)
	}
	return results, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func unixUTC(ts int64) time.Time {
	return time.Unix(ts, 0).UTC()
}

func msToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
