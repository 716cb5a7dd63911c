package roster

import (
	"context"
	"errors"
)

// Worker is a directory entry resolved from the roster sheets.
type Worker struct {
	DisplayName     string
	Email           string
	SupervisorName  string
	SupervisorEmail string
	Region          string // optional, blank for rosters without a region column
}

// ErrWorkerNotFound is returned when no roster sheet yields a match,
// including when a roster sheet itself is absent.
var ErrWorkerNotFound = errors.New("worker not found in any roster")

// Directory resolves display names to contact records.
//
// FindByName scans the roster sheets in their configured priority order;
// within each, matching is exact on the trimmed, case-sensitive display
// name. When the same name appears in more than one roster, the earlier
// sheet's record wins. This first-match priority is documented behavior,
// not an accident: rosters are ordered most-authoritative first.
type Directory interface {
	FindByName(ctx context.Context, displayName string) (*Worker, error)
}
