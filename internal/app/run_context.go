package app

import (
	"context"
	"strings"
	"time"

	"casework_notifier/internal/domain/roster"
	"casework_notifier/internal/domain/settings"
)

// RunContext is the immutable per-run view of resolved configuration.
// It is built once at the start of a scheduled invocation and passed to
// every engine; nothing refreshes it mid-run, so all rows in a run see
// the same settings, the same "today" and the same completion set.
type RunContext struct {
	Settings map[string]string
	Location *time.Location
	Today    time.Time // date-only, in Location

	// MainWorker is the pre-configured primary caseworker. Rows assigned
	// to this name skip the roster lookup entirely.
	MainWorker roster.Worker
	Manager    roster.Worker

	TrackerURL string
	Completed  settings.CompletionSet
	CatchUpDay time.Weekday
}

// resolveWorker returns contact details for an assigned worker,
// short-circuiting the roster scan for the configured main worker.
func resolveWorker(ctx context.Context, rc *RunContext, dir roster.Directory, name string) (*roster.Worker, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == rc.MainWorker.DisplayName {
		w := rc.MainWorker
		return &w, nil
	}
	return dir.FindByName(ctx, trimmed)
}
