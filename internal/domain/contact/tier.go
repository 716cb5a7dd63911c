package contact

import (
	"time"

	"casework_notifier/internal/domain/period"
)

// Tier is the escalation level of a contact reminder. It determines who
// the mail goes to and the tone of the message.
type Tier string

const (
	// TierStandard fires while plenty of the month remains: worker
	// visible, supervisor bcc'd.
	TierStandard Tier = "STANDARD"
	// TierReprimanding fires inside the last week of the month: worker
	// and supervisor visible, manager bcc'd.
	TierReprimanding Tier = "REPRIMANDING"
	// TierPostPeriod covers obligations left over from a prior month.
	// These only fire on the weekly catch-up day.
	TierPostPeriod Tier = "POST_PERIOD"
)

// Classification carries the tier plus the counters message templates need.
type Classification struct {
	Tier          Tier
	DaysRemaining int
}

// Classify maps a row's seen-date and the current date onto an escalation
// tier. Pure date math; the caller owns all skip decisions, including the
// catch-up-day throttle for TierPostPeriod.
func Classify(dateSeen, today time.Time) Classification {
	remaining := period.DaysRemaining(today)
	if period.Of(dateSeen).Before(period.Of(today)) {
		return Classification{Tier: TierPostPeriod, DaysRemaining: remaining}
	}
	if remaining <= 7 {
		return Classification{Tier: TierReprimanding, DaysRemaining: remaining}
	}
	return Classification{Tier: TierStandard, DaysRemaining: remaining}
}
