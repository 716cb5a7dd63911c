// internal/app/summary_service.go
package app

import (
	"context"
	"fmt"
	"time"

	"casework_notifier/internal/domain/audit"
	"casework_notifier/internal/domain/roster"
	"casework_notifier/internal/domain/summary"

	"github.com/sirupsen/logrus"
)

// SummaryReminderService scans the court-summary sheet and sends
// deadline reminders on the ordered tier ladder: day-before and due-day
// to the worker alone, 1-6 days late adds the supervisor, 7+ days late
// adds the manager. Summaries carry no persisted send state; the tier is
// a pure function of today against the due date, so exactly one email
// fires per qualifying day.
type SummaryReminderService struct {
	repo       summary.Repository
	directory  roster.Directory
	dispatcher *Dispatcher
	auditLog   audit.Log
	logger     *logrus.Entry
}

func NewSummaryReminderService(
	repo summary.Repository,
	directory roster.Directory,
	dispatcher *Dispatcher,
	auditLog audit.Log,
	logger *logrus.Entry,
) *SummaryReminderService {
	return &SummaryReminderService{
		repo:       repo,
		directory:  directory,
		dispatcher: dispatcher,
		auditLog:   auditLog,
		logger:     logger,
	}
}

// Run executes one full summary scan. Row-level problems are absorbed;
// only an unreachable summary sheet returns an error.
func (s *SummaryReminderService) Run(ctx context.Context, rc *RunContext) error {
	report := audit.Report{Kind: audit.KindSummaries, StartedAt: time.Now()}

	rows, err := s.repo.Rows(ctx)
	if err != nil {
		return fmt.Errorf("listing summary rows: %w", err)
	}
	report.SheetsScanned = 1

	for _, row := range rows {
		report.RowsSeen++
		rowLogger := s.logger.WithFields(logrus.Fields{
			"row":  row.Index,
			"case": row.CaseName,
		})

		if row.Submitted || row.DueDate.IsZero() {
			report.RowsSkipped++
			continue
		}
		childName, workerName, ok := summary.ParseCaseName(row.CaseName)
		if !ok {
			rowLogger.Warn("Unparseable case name, skipping row")
			report.RowsSkipped++
			continue
		}

		cls := summary.Classify(rc.Today, row.DueDate, row.CourtDate)
		if cls.Tier == summary.TierNone {
			continue
		}

		worker, err := resolveWorker(ctx, rc, s.directory, workerName)
		if err != nil {
			rowLogger.WithError(err).WithField("worker", workerName).Warn("Worker lookup failed, skipping row")
			report.RowsSkipped++
			continue
		}

		to := summaryRecipients(cls.Tier, worker, rc)
		subject, body := summaryMessage(rc, row, childName, cls, worker)
		if err := s.dispatcher.Dispatch(ctx, to, nil, subject, body); err != nil {
			rowLogger.WithError(err).Error("Summary reminder delivery failed")
			report.Failures++
			continue
		}
		report.RemindersSent++
		rowLogger.WithField("tier", cls.Tier).Info("Summary reminder sent")
	}

	report.FinishedAt = time.Now()
	s.recordRun(ctx, report)
	return nil
}

func (s *SummaryReminderService) recordRun(ctx context.Context, report audit.Report) {
	if s.auditLog == nil {
		return
	}
	if err := s.auditLog.Record(ctx, report); err != nil {
		s.logger.WithError(err).Warn("Could not record summary run report")
	}
}

// summaryRecipients widens the visible recipient set as the deadline
// slips: worker, then worker+supervisor, then worker+supervisor+manager.
// Summary reminders use no bcc.
func summaryRecipients(tier summary.Tier, w *roster.Worker, rc *RunContext) []string {
	switch tier {
	case summary.TierMinorOverdue:
		return []string{w.Email, w.SupervisorEmail}
	case summary.TierSevereOverdue:
		return []string{w.Email, w.SupervisorEmail, rc.Manager.Email}
	default: // pre-due and due-today
		return []string{w.Email}
	}
}
