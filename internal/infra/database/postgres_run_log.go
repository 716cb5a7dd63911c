// internal/infra/database/postgres_run_log.go
package database

import (
	"context"
	"database/sql"
	"fmt"

	"casework_notifier/internal/domain/audit"
)

// PostgresRunLog records one row per engine run in the scan_runs table.
// The audit trail is how we answer "did yesterday's scan fire, and how
// many reminders went out" without grepping logs.
type PostgresRunLog struct {
	db *sql.DB
}

func NewPostgresRunLog(db *sql.DB) *PostgresRunLog {
	return &PostgresRunLog{db: db}
}

func (l *PostgresRunLog) Record(ctx context.Context, r audit.Report) error {
	query := `INSERT INTO scan_runs (kind, started_at, finished_at, sheets_scanned, rows_seen, reminders_sent, rows_skipped, failures)
               VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := l.db.ExecContext(ctx, query,
		r.Kind, r.StartedAt, r.FinishedAt, r.SheetsScanned, r.RowsSeen, r.RemindersSent, r.RowsSkipped, r.Failures)
	if err != nil {
		return fmt.Errorf("error recording scan run: %w", err)
	}
	return nil
}
