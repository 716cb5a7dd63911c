// internal/app/contact_service.go
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"casework_notifier/internal/domain/audit"
	"casework_notifier/internal/domain/contact"
	"casework_notifier/internal/domain/period"
	"casework_notifier/internal/domain/roster"
	"casework_notifier/internal/domain/settings"

	"github.com/sirupsen/logrus"
)

// ContactReminderService scans the monthly contact sheets and sends
// graduated reminders for children not yet seen this month. Per sheet it
// decides Skip(future period) / Skip(already complete) / Scan, and after
// a full scan on the catch-up day with zero sends it marks the period
// complete in the configuration store.
type ContactReminderService struct {
	repo       contact.Repository
	directory  roster.Directory
	dispatcher *Dispatcher
	settings   *SettingsService
	auditLog   audit.Log
	logger     *logrus.Entry
}

func NewContactReminderService(
	repo contact.Repository,
	directory roster.Directory,
	dispatcher *Dispatcher,
	settingsSvc *SettingsService,
	auditLog audit.Log,
	logger *logrus.Entry,
) *ContactReminderService {
	return &ContactReminderService{
		repo:       repo,
		directory:  directory,
		dispatcher: dispatcher,
		settings:   settingsSvc,
		auditLog:   auditLog,
		logger:     logger,
	}
}

// Run executes one full contact scan. An error return means the source
// table itself was unreachable; everything row-level is absorbed, logged
// and counted.
func (s *ContactReminderService) Run(ctx context.Context, rc *RunContext) error {
	report := audit.Report{Kind: audit.KindContacts, StartedAt: time.Now()}

	sheets, err := s.repo.Sheets(ctx)
	if err != nil {
		return fmt.Errorf("listing contact sheets: %w", err)
	}

	currentPeriod := period.Of(rc.Today)
	for _, sheet := range sheets {
		sheetPeriod := period.Period{Year: rc.Today.Year(), Month: sheet.Month}
		label := sheetPeriod.Label()
		sheetLogger := s.logger.WithField("sheet", sheet.Name)

		if sheetPeriod.After(currentPeriod) {
			sheetLogger.Debug("Future period, skipping sheet")
			continue
		}
		if rc.Completed.Contains(label) {
			sheetLogger.Debug("Period already reconciled, skipping sheet")
			continue
		}

		sent, err := s.scanSheet(ctx, rc, sheet, &report)
		if err != nil {
			sheetLogger.WithError(err).Error("Sheet scan failed")
			report.Failures++
			continue
		}
		report.SheetsScanned++

		// Completion aggregation: only evaluated after the whole sheet
		// finished, and only on the weekly catch-up day, so the zero-sent
		// check is accurate for this run.
		if rc.Today.Weekday() == rc.CatchUpDay && sent == 0 {
			s.markPeriodComplete(ctx, rc, label, sheetLogger)
		}
	}

	report.FinishedAt = time.Now()
	s.recordRun(ctx, report)
	return nil
}

func (s *ContactReminderService) scanSheet(ctx context.Context, rc *RunContext, sheet contact.Sheet, report *audit.Report) (sent int, err error) {
	rows, err := s.repo.Rows(ctx, sheet)
	if err != nil {
		return 0, err
	}

	for _, row := range rows {
		report.RowsSeen++
		rowLogger := s.logger.WithFields(logrus.Fields{
			"sheet": sheet.Name,
			"row":   row.Index,
			"child": row.ChildName,
		})

		if row.ChildName == "" || row.DateSeen.IsZero() || row.SeenBy == "" {
			rowLogger.Debug("Malformed row, skipping")
			report.RowsSkipped++
			continue
		}
		if strings.TrimSpace(row.DateEntered) != "" {
			// Obligation already satisfied; never remind on these rows.
			report.RowsSkipped++
			continue
		}

		cls := contact.Classify(row.DateSeen, rc.Today)
		if cls.Tier == contact.TierPostPeriod && rc.Today.Weekday() != rc.CatchUpDay {
			// Prior-period backlog is throttled to once a week.
			report.RowsSkipped++
			continue
		}

		worker, err := resolveWorker(ctx, rc, s.directory, row.SeenBy)
		if err != nil {
			rowLogger.WithError(err).WithField("worker", row.SeenBy).Warn("Worker lookup failed, skipping row")
			report.RowsSkipped++
			continue
		}

		to, bcc := contactRecipients(cls.Tier, worker, rc)
		subject, body := contactMessage(rc, row, cls, worker)
		if err := s.dispatcher.Dispatch(ctx, to, bcc, subject, body); err != nil {
			rowLogger.WithError(err).Error("Reminder delivery failed")
			report.Failures++
			continue
		}

		if err := s.repo.MarkReminderSent(ctx, sheet, row.Index, rc.Today); err != nil {
			// The mail went out; losing the bookkeeping write means a
			// possible duplicate tomorrow, not a lost reminder.
			rowLogger.WithError(err).Error("Could not record reminder date")
		}
		sent++
		report.RemindersSent++
		rowLogger.WithField("tier", cls.Tier).Info("Contact reminder sent")
	}
	return sent, nil
}

func (s *ContactReminderService) markPeriodComplete(ctx context.Context, rc *RunContext, label string, logger *logrus.Entry) {
	if !rc.Completed.Add(label) {
		return // already present, set union is a no-op
	}
	if err := s.settings.UpdateValue(ctx, settings.KeyCompletedMonths, rc.Completed.String()); err != nil {
		logger.WithError(err).Error("Could not persist completed period")
		return
	}
	logger.WithField("period", label).Info("Period marked complete")
}

func (s *ContactReminderService) recordRun(ctx context.Context, report audit.Report) {
	if s.auditLog == nil {
		return
	}
	if err := s.auditLog.Record(ctx, report); err != nil {
		s.logger.WithError(err).Warn("Could not record contact run report")
	}
}

// contactRecipients builds the visible and bcc sets for a tier. Standard
// reminders keep the supervisor on bcc and never copy the manager; the
// reprimanding and post-period tiers put the supervisor on the visible
// line and bcc the manager.
func contactRecipients(tier contact.Tier, w *roster.Worker, rc *RunContext) (to, bcc []string) {
	if tier == contact.TierStandard {
		return []string{w.Email}, []string{w.SupervisorEmail}
	}
	return []string{w.Email, w.SupervisorEmail}, []string{rc.Manager.Email}
}
