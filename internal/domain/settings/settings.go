package settings

import (
	"context"
	"errors"
)

// Well-known keys in the configuration store. The store is a flat,
// case-sensitive key → string mapping sourced from the tracker's
// "Variables" sheet.
const (
	KeyMainWorkerName  = "main_worker_name"
	KeyMainWorkerEmail = "main_worker_email"
	KeySupervisorName  = "supervisor_name"
	KeySupervisorEmail = "supervisor_email"
	KeyManagerName     = "manager_name"
	KeyManagerEmail    = "manager_email"
	KeyTrackerURL      = "tracker_url"
	KeyTimezone        = "timezone"
	KeyCompletedMonths = "completed_months"
)

// RequiredKeys must all be resolvable before any scan runs. Every key
// except KeyCompletedMonths must also be non-blank; the completed list
// may legitimately be empty.
var RequiredKeys = []string{
	KeyMainWorkerName,
	KeyMainWorkerEmail,
	KeySupervisorName,
	KeySupervisorEmail,
	KeyManagerName,
	KeyManagerEmail,
	KeyTrackerURL,
	KeyTimezone,
	KeyCompletedMonths,
}

var (
	// ErrTierMiss signals that a tier holds no usable snapshot and the
	// resolver should fall through to the next one.
	ErrTierMiss = errors.New("settings tier has no snapshot")

	// ErrConfigUnavailable is fatal to a run: required settings could not
	// be resolved through any tier or the source of truth.
	ErrConfigUnavailable = errors.New("required configuration unavailable")
)

// Tier is one layer of the cache → durable-store fallback chain. A tier
// always holds a whole snapshot or nothing; partial updates don't exist,
// which keeps a racing refresh benign (last writer wins a consistent map).
type Tier interface {
	Load(ctx context.Context) (map[string]string, error)
	Store(ctx context.Context, values map[string]string) error
	Invalidate(ctx context.Context) error
}

// Source is the source-of-truth table. Reading it is the only point the
// authoritative mapping changes; WriteValue overwrites the row for key in
// place when present and appends otherwise, never duplicating keys.
type Source interface {
	ReadAll(ctx context.Context) (map[string]string, error)
	WriteValue(ctx context.Context, key, value string) error
}
