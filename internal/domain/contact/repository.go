package contact

import (
	"context"
	"time"
)

// Repository defines tabular access to the monthly contact sheets.
type Repository interface {
	// Sheets lists the monthly contact sheets present in the tracker, in
	// workbook order. Sheets whose names don't parse as a month are not
	// included.
	Sheets(ctx context.Context) ([]Sheet, error)

	// Rows returns the data rows of one monthly sheet, top to bottom.
	Rows(ctx context.Context, sheet Sheet) ([]Row, error)

	// MarkReminderSent writes sentOn into the row's last-reminder column.
	// Called only after a successful send.
	MarkReminderSent(ctx context.Context, sheet Sheet, rowIndex int, sentOn time.Time) error
}
