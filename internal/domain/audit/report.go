package audit

import (
	"context"
	"time"
)

// Run kinds recorded in the scan_runs table.
const (
	KindContacts  = "contacts"
	KindSummaries = "summaries"
)

// Report summarizes one engine run for the audit log.
type Report struct {
	Kind          string
	StartedAt     time.Time
	FinishedAt    time.Time
	SheetsScanned int
	RowsSeen      int
	RemindersSent int
	RowsSkipped   int
	Failures      int
}

// Log records run reports. Recording is best-effort: callers log a
// failure and continue, it never affects the outcome of a scan.
type Log interface {
	Record(ctx context.Context, r Report) error
}
