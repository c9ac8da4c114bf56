package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the run history in a SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) the database at dbPath. ":memory:" gives
// a private in-memory database.
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	// one connection, otherwise every pooled connection to ":memory:" sees its own database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger.With("component", "store"),
	}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.Debug("sql", "op", "migrate")
	return migrate(ctx, s.db)
}

// CreateRun inserts the run and its jobs in one transaction.
func (s *SQLiteStore) CreateRun(ctx context.Context, run *Run) error {
	s.logger.Debug("sql", "op", "insert", "table", "runs", "id", run.ID)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, algorithm, time_quantum, job_count, avg_waiting, avg_turnaround, total_time, idle_time, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Algorithm, run.TimeQuantum, run.JobCount, run.AverageWaitingTime, run.AverageTurnAroundTime,
		run.TotalTime, run.IdleTime, run.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for i, j := range run.Jobs {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_jobs (run_id, position, process_id, arrival_time, burst_time, priority, waiting_time, turnaround_time)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID, i, j.ProcessId, j.ArrivalTime, j.BurstTime, j.Priority, j.WaitingTime, j.TurnAroundTime,
		)
		if err != nil {
			return fmt.Errorf("insert run job %s: %w", j.ProcessId, err)
		}
	}
	return tx.Commit()
}

// GetRun returns the run with its jobs, or nil when no such run exists.
func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*Run, error) {
	s.logger.Debug("sql", "op", "select", "table", "runs", "id", id)

	row := s.db.QueryRowContext(ctx,
		`SELECT id, algorithm, time_quantum, job_count, avg_waiting, avg_turnaround, total_time, idle_time, created_at
		 FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT process_id, arrival_time, burst_time, priority, waiting_time, turnaround_time
		 FROM run_jobs WHERE run_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	run.Jobs = make([]RunJob, 0, run.JobCount)
	for rows.Next() {
		var j RunJob
		if err := rows.Scan(&j.ProcessId, &j.ArrivalTime, &j.BurstTime, &j.Priority, &j.WaitingTime, &j.TurnAroundTime); err != nil {
			return nil, err
		}
		run.Jobs = append(run.Jobs, j)
	}
	return run, rows.Err()
}

// ListRuns returns the most recent runs first, without their jobs.
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	s.logger.Debug("sql", "op", "list", "table", "runs", "limit", limit)

	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, algorithm, time_quantum, job_count, avg_waiting, avg_turnaround, total_time, idle_time, created_at
		 FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*Run, error) {
	var run Run
	var createdAt string
	err := row.Scan(&run.ID, &run.Algorithm, &run.TimeQuantum, &run.JobCount,
		&run.AverageWaitingTime, &run.AverageTurnAroundTime, &run.TotalTime, &run.IdleTime, &createdAt)
	if err != nil {
		return nil, err
	}
	run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("run %s: created_at: %w", run.ID, err)
	}
	return &run, nil
}
