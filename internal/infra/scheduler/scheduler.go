package scheduler

import (
	"context"
	"time"

	"casework_notifier/internal/app"
	"casework_notifier/internal/infra/alert"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ScanScheduler owns the two recurring jobs: a settings refresh every few
// hours and the daily reminder scan. The host cron serializes nothing by
// itself, but jobs are short and the workbook adapter guards its own
// open-mutate-save window.
type ScanScheduler struct {
	cronEngine  *cron.Cron
	settings    *app.SettingsService
	contacts    *app.ContactReminderService
	summaries   *app.SummaryReminderService
	alerts      alert.Notifier
	logger      *logrus.Entry
	specRefresh string
	specScan    string
}

func NewScanScheduler(
	settingsSvc *app.SettingsService,
	contacts *app.ContactReminderService,
	summaries *app.SummaryReminderService,
	alerts alert.Notifier,
	logger *logrus.Entry,
	specRefresh string, // e.g. "0 */4 * * *"
	specScan string, // e.g. "0 7 * * *"
) *ScanScheduler {
	return &ScanScheduler{
		cronEngine:  cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		settings:    settingsSvc,
		contacts:    contacts,
		summaries:   summaries,
		alerts:      alerts,
		logger:      logger,
		specRefresh: specRefresh,
		specScan:    specScan,
	}
}

func (s *ScanScheduler) Start() {
	s.logger.Info("Starting scan scheduler...")

	// Periodic settings refresh: keeps the cache and durable tiers warm
	// so the daily scan rarely has to read the workbook for configuration.
	_, err := s.cronEngine.AddFunc(s.specRefresh, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if _, err := s.settings.ForceRefresh(ctx); err != nil {
			s.logger.WithError(err).Error("Scheduled settings refresh failed")
			return
		}
		s.logger.Info("Settings refreshed from source of truth")
	})
	if err != nil {
		s.logger.WithError(err).Fatal("Could not add settings refresh cron job")
	}

	// Daily reminder scan.
	_, err = s.cronEngine.AddFunc(s.specScan, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
		defer cancel()
		s.RunScan(ctx)
	})
	if err != nil {
		s.logger.WithError(err).Fatal("Could not add daily scan cron job")
	}

	s.cronEngine.Start()
	s.logger.Info("Scan scheduler started with jobs")
}

// RunScan executes one full scan: resolve configuration, then contacts,
// then summaries. Exported so the -once mode shares the exact job body.
// A configuration failure aborts the whole scan with a single alert; a
// source failure in one engine still lets the other engine run.
func (s *ScanScheduler) RunScan(ctx context.Context) {
	runCtx, err := s.settings.BuildRunContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Scan aborted: could not resolve configuration")
		s.alerts.RunAborted(ctx, "daily scan", err)
		return
	}
	s.logger.WithField("today", runCtx.Today.Format("2006-01-02")).Info("Daily scan starting")

	if err := s.contacts.Run(ctx, runCtx); err != nil {
		s.logger.WithError(err).Error("Contact scan aborted")
		s.alerts.RunAborted(ctx, "contact scan", err)
	}
	if err := s.summaries.Run(ctx, runCtx); err != nil {
		s.logger.WithError(err).Error("Summary scan aborted")
		s.alerts.RunAborted(ctx, "summary scan", err)
	}
	s.logger.Info("Daily scan finished")
}

func (s *ScanScheduler) Stop() {
	s.logger.Info("Stopping scan scheduler...")
	ctx := s.cronEngine.Stop() // Stops new jobs, waits for running jobs.
	<-ctx.Done()               // Wait for graceful shutdown
	s.logger.Info("Scan scheduler gracefully stopped")
}
