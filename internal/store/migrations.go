package store

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id               TEXT PRIMARY KEY,
		algorithm        TEXT NOT NULL,
		time_quantum     INTEGER NOT NULL DEFAULT 0,
		job_count        INTEGER NOT NULL,
		avg_waiting      REAL NOT NULL,
		avg_turnaround   REAL NOT NULL,
		total_time       INTEGER NOT NULL,
		idle_time        INTEGER NOT NULL,
		created_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS run_jobs (
		run_id           TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		position         INTEGER NOT NULL,
		process_id       TEXT NOT NULL,
		arrival_time     INTEGER NOT NULL,
		burst_time       INTEGER NOT NULL,
		priority         INTEGER NOT NULL,
		waiting_time     INTEGER NOT NULL,
		turnaround_time  INTEGER NOT NULL,
		PRIMARY KEY (run_id, position)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
