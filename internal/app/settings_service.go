// internal/app/settings_service.go
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"casework_notifier/internal/domain/period"
	"casework_notifier/internal/domain/settings"

	"github.com/sirupsen/logrus"
)

// SettingsService is the configuration resolver: it walks the tier chain
// (in-process cache, then the durable store) and falls back to the
// source-of-truth Variables sheet, writing the rebuilt snapshot back
// through the chain on a miss.
type SettingsService struct {
	tiers      []settings.Tier // fastest first
	source     settings.Source
	catchUpDay time.Weekday
	logger     *logrus.Entry

	// now is swappable in tests.
	now func() time.Time
}

func NewSettingsService(source settings.Source, tiers []settings.Tier, catchUpDay time.Weekday, logger *logrus.Entry) *SettingsService {
	return &SettingsService{
		tiers:      tiers,
		source:     source,
		catchUpDay: catchUpDay,
		logger:     logger,
		now:        time.Now,
	}
}

// Resolve returns a snapshot containing every key in required, trying
// each tier in order before falling back to the source of truth. It
// fails with settings.ErrConfigUnavailable only when the source itself
// cannot satisfy the required keys.
func (s *SettingsService) Resolve(ctx context.Context, required []string) (map[string]string, error) {
	for _, tier := range s.tiers {
		snapshot, err := tier.Load(ctx)
		if err != nil {
			if err != settings.ErrTierMiss {
				s.logger.WithError(err).Warn("Settings tier load failed, falling through")
			}
			continue
		}
		if len(missingKeys(snapshot, required)) == 0 {
			return snapshot, nil
		}
		// An incomplete snapshot means the tier is stale; keep falling.
	}
	return s.refreshFromSource(ctx, required)
}

// ForceRefresh skips the tiers and rebuilds straight from the source of
// truth, always writing through.
func (s *SettingsService) ForceRefresh(ctx context.Context) (map[string]string, error) {
	return s.refreshFromSource(ctx, settings.RequiredKeys)
}

// refreshFromSource is the only point the authoritative snapshot changes.
// Tier write-through is best-effort: a failed cache or durable write is
// logged and never fails the caller.
func (s *SettingsService) refreshFromSource(ctx context.Context, required []string) (map[string]string, error) {
	snapshot, err := s.source.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading settings source of truth: %w", err)
	}
	if missing := missingKeys(snapshot, required); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing keys: %s", settings.ErrConfigUnavailable, strings.Join(missing, ", "))
	}
	for _, tier := range s.tiers {
		if err := tier.Store(ctx, snapshot); err != nil {
			s.logger.WithError(err).Warn("Settings tier write-through failed")
		}
	}
	return snapshot, nil
}

// UpdateValue overwrites the source-of-truth row for key (or appends one
// when absent), then invalidates and re-primes the tiers so subsequent
// Resolve calls observe the new value.
func (s *SettingsService) UpdateValue(ctx context.Context, key, value string) error {
	if err := s.source.WriteValue(ctx, key, value); err != nil {
		return fmt.Errorf("updating setting %q: %w", key, err)
	}
	for _, tier := range s.tiers {
		if err := tier.Invalidate(ctx); err != nil {
			s.logger.WithError(err).Warn("Settings tier invalidation failed")
		}
	}
	if _, err := s.refreshFromSource(ctx, nil); err != nil {
		// Tiers are already invalidated, so the next Resolve will read
		// through; the update itself has succeeded.
		s.logger.WithError(err).Warn("Settings re-prime after update failed")
	}
	s.logger.WithField("key", key).Info("Setting updated")
	return nil
}

// BuildRunContext resolves the required keys and assembles the immutable
// per-run configuration view.
func (s *SettingsService) BuildRunContext(ctx context.Context) (*RunContext, error) {
	snapshot, err := s.Resolve(ctx, settings.RequiredKeys)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(snapshot[settings.KeyTimezone])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid timezone %q: %v", settings.ErrConfigUnavailable, snapshot[settings.KeyTimezone], err)
	}

	rc := &RunContext{
		Settings:   snapshot,
		Location:   loc,
		Today:      period.DateOnly(s.now().In(loc)),
		TrackerURL: snapshot[settings.KeyTrackerURL],
		Completed:  settings.ParseCompletionSet(snapshot[settings.KeyCompletedMonths]),
		CatchUpDay: s.catchUpDay,
	}
	rc.MainWorker.DisplayName = snapshot[settings.KeyMainWorkerName]
	rc.MainWorker.Email = snapshot[settings.KeyMainWorkerEmail]
	rc.MainWorker.SupervisorName = snapshot[settings.KeySupervisorName]
	rc.MainWorker.SupervisorEmail = snapshot[settings.KeySupervisorEmail]
	rc.Manager.DisplayName = snapshot[settings.KeyManagerName]
	rc.Manager.Email = snapshot[settings.KeyManagerEmail]
	return rc, nil
}

// missingKeys lists required keys that are absent or blank. The
// completed-months list is the one key allowed to be blank: an empty
// list is a legitimate state at the start of a year.
func missingKeys(snapshot map[string]string, required []string) []string {
	var missing []string
	for _, key := range required {
		value, ok := snapshot[key]
		if !ok {
			missing = append(missing, key)
			continue
		}
		if key != settings.KeyCompletedMonths && strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}
