package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"casework_notifier/internal/domain/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsService(source settings.Source, tiers ...settings.Tier) *SettingsService {
	return NewSettingsService(source, tiers, time.Monday, testLogger())
}

func TestResolveCacheHitSkipsSource(t *testing.T) {
	cache := &fakeTier{snapshot: validSnapshot()}
	durable := &fakeTier{}
	source := &fakeSource{values: validSnapshot()}
	svc := newSettingsService(source, cache, durable)

	got, err := svc.Resolve(context.Background(), settings.RequiredKeys)
	require.NoError(t, err)
	assert.Equal(t, "dana@agency.test", got[settings.KeyMainWorkerEmail])
	assert.Zero(t, source.reads)
	assert.Zero(t, durable.loads, "first tier satisfied the lookup")
}

func TestResolveFallsThroughToDurable(t *testing.T) {
	cache := &fakeTier{}
	durable := &fakeTier{snapshot: validSnapshot()}
	source := &fakeSource{values: validSnapshot()}
	svc := newSettingsService(source, cache, durable)

	_, err := svc.Resolve(context.Background(), settings.RequiredKeys)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.loads)
	assert.Equal(t, 1, durable.loads)
	assert.Zero(t, source.reads)
}

func TestResolveMissReadsSourceAndWritesThrough(t *testing.T) {
	cache := &fakeTier{}
	durable := &fakeTier{}
	source := &fakeSource{values: validSnapshot()}
	svc := newSettingsService(source, cache, durable)

	got, err := svc.Resolve(context.Background(), settings.RequiredKeys)
	require.NoError(t, err)
	assert.Equal(t, 1, source.reads)
	// Write-through on read-miss: both tiers now hold the snapshot.
	assert.Equal(t, got, cache.snapshot)
	assert.Equal(t, got, durable.snapshot)
}

func TestResolveIncompleteTierFallsThrough(t *testing.T) {
	stale := validSnapshot()
	delete(stale, settings.KeyManagerEmail)
	cache := &fakeTier{snapshot: stale}
	source := &fakeSource{values: validSnapshot()}
	svc := newSettingsService(source, cache)

	got, err := svc.Resolve(context.Background(), settings.RequiredKeys)
	require.NoError(t, err)
	assert.Equal(t, "pat@agency.test", got[settings.KeyManagerEmail])
	assert.Equal(t, 1, source.reads)
}

func TestResolveConfigUnavailable(t *testing.T) {
	incomplete := validSnapshot()
	incomplete[settings.KeySupervisorEmail] = "   " // blank counts as missing
	delete(incomplete, settings.KeyTrackerURL)
	source := &fakeSource{values: incomplete}
	svc := newSettingsService(source, &fakeTier{})

	_, err := svc.Resolve(context.Background(), settings.RequiredKeys)
	require.Error(t, err)
	assert.ErrorIs(t, err, settings.ErrConfigUnavailable)
	assert.Contains(t, err.Error(), settings.KeySupervisorEmail)
	assert.Contains(t, err.Error(), settings.KeyTrackerURL)
}

func TestResolveCompletedMonthsMayBeBlank(t *testing.T) {
	snapshot := validSnapshot()
	snapshot[settings.KeyCompletedMonths] = ""
	source := &fakeSource{values: snapshot}
	svc := newSettingsService(source, &fakeTier{})

	_, err := svc.Resolve(context.Background(), settings.RequiredKeys)
	assert.NoError(t, err)
}

func TestResolveTierLoadErrorFallsThrough(t *testing.T) {
	cache := &fakeTier{loadErr: errors.New("cache wedged")}
	durable := &fakeTier{snapshot: validSnapshot()}
	svc := newSettingsService(&fakeSource{values: validSnapshot()}, cache, durable)

	_, err := svc.Resolve(context.Background(), settings.RequiredKeys)
	assert.NoError(t, err)
}

func TestWriteThroughFailureIsNotFatal(t *testing.T) {
	cache := &fakeTier{storeErr: errors.New("cache write failed")}
	source := &fakeSource{values: validSnapshot()}
	svc := newSettingsService(source, cache)

	_, err := svc.Resolve(context.Background(), settings.RequiredKeys)
	assert.NoError(t, err)
}

func TestForceRefreshSkipsTiers(t *testing.T) {
	cache := &fakeTier{snapshot: validSnapshot()}
	source := &fakeSource{values: validSnapshot()}
	svc := newSettingsService(source, cache)

	_, err := svc.ForceRefresh(context.Background())
	require.NoError(t, err)
	assert.Zero(t, cache.loads)
	assert.Equal(t, 1, source.reads)
}

// Round-trip: a value written via the update path is observed by the next
// resolve, even with a previously warm cache.
func TestUpdateValueRoundTrip(t *testing.T) {
	cache := &fakeTier{snapshot: validSnapshot()}
	durable := &fakeTier{snapshot: validSnapshot()}
	source := &fakeSource{values: validSnapshot()}
	svc := newSettingsService(source, cache, durable)

	require.NoError(t, svc.UpdateValue(context.Background(), settings.KeyCompletedMonths, "January,February"))

	assert.Equal(t, "January,February", source.values[settings.KeyCompletedMonths])
	assert.Equal(t, 1, cache.invalidations)
	assert.Equal(t, 1, durable.invalidations)

	got, err := svc.Resolve(context.Background(), settings.RequiredKeys)
	require.NoError(t, err)
	assert.Equal(t, "January,February", got[settings.KeyCompletedMonths])
}

func TestUpdateValueSourceFailure(t *testing.T) {
	svc := newSettingsService(&failingSource{}, &fakeTier{})
	err := svc.UpdateValue(context.Background(), "k", "v")
	assert.Error(t, err)
}

type failingSource struct{}

func (failingSource) ReadAll(context.Context) (map[string]string, error) {
	return nil, errors.New("workbook unreachable")
}

func (failingSource) WriteValue(context.Context, string, string) error {
	return errors.New("workbook unreachable")
}

func TestBuildRunContext(t *testing.T) {
	snapshot := validSnapshot()
	snapshot[settings.KeyCompletedMonths] = "January"
	source := &fakeSource{values: snapshot}
	svc := newSettingsService(source, &fakeTier{})
	svc.now = func() time.Time { return time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC) }

	rc, err := svc.BuildRunContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, date(2024, 3, 12), rc.Today)
	assert.Equal(t, "Dana Jones", rc.MainWorker.DisplayName)
	assert.Equal(t, "sam@agency.test", rc.MainWorker.SupervisorEmail)
	assert.Equal(t, "pat@agency.test", rc.Manager.Email)
	assert.Equal(t, "https://tracker.test/sheet", rc.TrackerURL)
	assert.True(t, rc.Completed.Contains("January"))
	assert.Equal(t, time.Monday, rc.CatchUpDay)
}

func TestBuildRunContextBadTimezone(t *testing.T) {
	snapshot := validSnapshot()
	snapshot[settings.KeyTimezone] = "Mars/Olympus_Mons"
	svc := newSettingsService(&fakeSource{values: snapshot}, &fakeTier{})

	_, err := svc.BuildRunContext(context.Background())
	assert.ErrorIs(t, err, settings.ErrConfigUnavailable)
}
