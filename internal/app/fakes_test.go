package app

import (
	"context"
	"io"
	"time"

	"casework_notifier/internal/domain/audit"
	"casework_notifier/internal/domain/contact"
	"casework_notifier/internal/domain/mail"
	"casework_notifier/internal/domain/roster"
	"casework_notifier/internal/domain/settings"
	"casework_notifier/internal/domain/summary"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l.WithField("test", true)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// --- settings fakes ---

type fakeTier struct {
	snapshot      map[string]string
	loads         int
	stores        int
	invalidations int
	loadErr       error
	storeErr      error
}

func (t *fakeTier) Load(ctx context.Context) (map[string]string, error) {
	t.loads++
	if t.loadErr != nil {
		return nil, t.loadErr
	}
	if t.snapshot == nil {
		return nil, settings.ErrTierMiss
	}
	return copySnapshot(t.snapshot), nil
}

func (t *fakeTier) Store(ctx context.Context, values map[string]string) error {
	t.stores++
	if t.storeErr != nil {
		return t.storeErr
	}
	t.snapshot = copySnapshot(values)
	return nil
}

func (t *fakeTier) Invalidate(ctx context.Context) error {
	t.invalidations++
	t.snapshot = nil
	return nil
}

type fakeSource struct {
	values  map[string]string
	reads   int
	readErr error
}

func (s *fakeSource) ReadAll(ctx context.Context) (map[string]string, error) {
	s.reads++
	if s.readErr != nil {
		return nil, s.readErr
	}
	return copySnapshot(s.values), nil
}

func (s *fakeSource) WriteValue(ctx context.Context, key, value string) error {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[key] = value
	return nil
}

func copySnapshot(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// validSnapshot covers every required key.
func validSnapshot() map[string]string {
	return map[string]string{
		settings.KeyMainWorkerName:  "Dana Jones",
		settings.KeyMainWorkerEmail: "dana@agency.test",
		settings.KeySupervisorName:  "Sam Lee",
		settings.KeySupervisorEmail: "sam@agency.test",
		settings.KeyManagerName:     "Pat Moore",
		settings.KeyManagerEmail:    "pat@agency.test",
		settings.KeyTrackerURL:      "https://tracker.test/sheet",
		settings.KeyTimezone:        "UTC",
		settings.KeyCompletedMonths: "",
	}
}

// --- roster fake ---

type fakeDirectory struct {
	workers map[string]*roster.Worker
	lookups []string
}

func (d *fakeDirectory) FindByName(ctx context.Context, name string) (*roster.Worker, error) {
	d.lookups = append(d.lookups, name)
	if w, ok := d.workers[name]; ok {
		copied := *w
		return &copied, nil
	}
	return nil, roster.ErrWorkerNotFound
}

// --- mail fake ---

type fakeSender struct {
	sent    []mail.Message
	failFor func(msg mail.Message) error
}

func (s *fakeSender) Send(ctx context.Context, msg mail.Message) error {
	if s.failFor != nil {
		if err := s.failFor(msg); err != nil {
			return err
		}
	}
	s.sent = append(s.sent, msg)
	return nil
}

// --- repository fakes ---

type fakeContactRepo struct {
	sheets    []contact.Sheet
	rows      map[string][]contact.Row
	marked    map[string][]int
	sheetsErr error
	rowsErr   map[string]error
}

func (r *fakeContactRepo) Sheets(ctx context.Context) ([]contact.Sheet, error) {
	if r.sheetsErr != nil {
		return nil, r.sheetsErr
	}
	return r.sheets, nil
}

func (r *fakeContactRepo) Rows(ctx context.Context, sheet contact.Sheet) ([]contact.Row, error) {
	if err := r.rowsErr[sheet.Name]; err != nil {
		return nil, err
	}
	return r.rows[sheet.Name], nil
}

func (r *fakeContactRepo) MarkReminderSent(ctx context.Context, sheet contact.Sheet, rowIndex int, sentOn time.Time) error {
	if r.marked == nil {
		r.marked = make(map[string][]int)
	}
	r.marked[sheet.Name] = append(r.marked[sheet.Name], rowIndex)
	return nil
}

type fakeSummaryRepo struct {
	rows []summary.Row
	err  error
}

func (r *fakeSummaryRepo) Rows(ctx context.Context) ([]summary.Row, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.rows, nil
}

// --- audit fake ---

type fakeAuditLog struct {
	reports []audit.Report
}

func (l *fakeAuditLog) Record(ctx context.Context, r audit.Report) error {
	l.reports = append(l.reports, r)
	return nil
}
