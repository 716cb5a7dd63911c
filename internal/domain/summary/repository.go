package summary

import "context"

// Repository defines tabular access to the court-summary sheet.
// Summaries are read-only from the engine's perspective; nothing is
// written back.
type Repository interface {
	Rows(ctx context.Context) ([]Row, error)
}
