package summary

import (
	"time"

	"casework_notifier/internal/domain/period"
)

// Tier is the escalation level of a court-summary reminder.
type Tier string

const (
	TierNone          Tier = "NONE"
	TierPreDue        Tier = "PRE_DUE"        // the day before the due date, worker only
	TierDueToday      Tier = "DUE_TODAY"      // on the due date, worker only
	TierMinorOverdue  Tier = "MINOR_OVERDUE"  // 1-6 days late, worker + supervisor
	TierSevereOverdue Tier = "SEVERE_OVERDUE" // 7+ days late, worker + supervisor + manager
)

// Classification carries the tier and the counters message templates need.
type Classification struct {
	Tier             Tier
	DaysLate         int
	DaysUntilHearing int // 0 when no hearing is scheduled
}

// Classify selects the summary tier for today against a due date. The
// rules are evaluated in order and are mutually exclusive: for any whole
// daysLate >= -1 exactly one tier applies, and TierNone only occurs for
// daysLate < -1.
func Classify(today, dueDate, courtDate time.Time) Classification {
	daysLate := period.DaysBetween(dueDate, today)

	cls := Classification{Tier: TierNone, DaysLate: daysLate}
	if !courtDate.IsZero() {
		cls.DaysUntilHearing = period.DaysBetween(today, courtDate)
	}

	switch {
	case daysLate == -1:
		cls.Tier = TierPreDue
	case daysLate == 0:
		cls.Tier = TierDueToday
	case daysLate > 0 && daysLate < 7:
		cls.Tier = TierMinorOverdue
	case daysLate >= 7:
		cls.Tier = TierSevereOverdue
	}
	return cls
}
