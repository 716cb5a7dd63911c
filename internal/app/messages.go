// internal/app/messages.go
package app

import (
	"fmt"

	"casework_notifier/internal/domain/contact"
	"casework_notifier/internal/domain/period"
	"casework_notifier/internal/domain/roster"
	"casework_notifier/internal/domain/summary"
)

// contactMessage builds the subject and HTML body for a contact reminder.
// Tone escalates with the tier; every body links back to the tracker.
func contactMessage(rc *RunContext, row contact.Row, cls contact.Classification, w *roster.Worker) (subject, body string) {
	monthLabel := period.Of(row.DateSeen).Label()

	switch cls.Tier {
	case contact.TierPostPeriod:
		subject = fmt.Sprintf("OVERDUE from %s: contact for %s not recorded", monthLabel, row.ChildName)
		body = fmt.Sprintf(
			"<p>Hi %s,</p>"+
				"<p>The mandated monthly contact for <b>%s</b> (case %s) from <b>%s</b> is still not recorded. "+
				"This is now a prior-month obligation and your supervisor has been copied.</p>"+
				"<p>Please enter the contact in the <a href=%q>tracker</a> today, or record it as missed with a reason.</p>",
			w.DisplayName, row.ChildName, row.CaseID, monthLabel, rc.TrackerURL)
	case contact.TierReprimanding:
		subject = fmt.Sprintf("ACTION REQUIRED: %d days left to record contact for %s", cls.DaysRemaining, row.ChildName)
		body = fmt.Sprintf(
			"<p>Hi %s,</p>"+
				"<p>Only <b>%d day(s)</b> remain in the month and the contact for <b>%s</b> (case %s) has not been entered. "+
				"Your supervisor is copied on this reminder.</p>"+
				"<p>Please update the <a href=%q>tracker</a> as soon as the contact is made.</p>",
			w.DisplayName, cls.DaysRemaining, row.ChildName, row.CaseID, rc.TrackerURL)
	default:
		subject = fmt.Sprintf("Reminder: record contact for %s", row.ChildName)
		body = fmt.Sprintf(
			"<p>Hi %s,</p>"+
				"<p>The monthly contact for <b>%s</b> (case %s) was seen on %s but has not been entered yet. "+
				"There are %d day(s) left in the month.</p>"+
				"<p>Please update the <a href=%q>tracker</a> when you get a chance.</p>",
			w.DisplayName, row.ChildName, row.CaseID, row.DateSeen.Format("January 2"), cls.DaysRemaining, rc.TrackerURL)
	}
	return subject, body
}

// summaryMessage builds the subject and HTML body for a court-summary
// reminder, including the hearing countdown when one is scheduled.
func summaryMessage(rc *RunContext, row summary.Row, childName string, cls summary.Classification, w *roster.Worker) (subject, body string) {
	hearingNote := ""
	if cls.DaysUntilHearing > 0 {
		hearingNote = fmt.Sprintf("<p>The court hearing is in <b>%d day(s)</b> (%s).</p>",
			cls.DaysUntilHearing, row.CourtDate.Format("January 2, 2006"))
	}
	link := row.Link
	if link == "" {
		link = rc.TrackerURL
	}

	switch cls.Tier {
	case summary.TierPreDue:
		subject = fmt.Sprintf("Court summary for %s is due tomorrow", childName)
		body = fmt.Sprintf(
			"<p>Hi %s,</p><p>The court summary for <b>%s</b> is due <b>tomorrow</b> (%s).</p>%s"+
				"<p><a href=%q>Open the summary</a></p>",
			w.DisplayName, childName, row.DueDate.Format("January 2, 2006"), hearingNote, link)
	case summary.TierDueToday:
		subject = fmt.Sprintf("Court summary for %s is due TODAY", childName)
		body = fmt.Sprintf(
			"<p>Hi %s,</p><p>The court summary for <b>%s</b> is due <b>today</b>.</p>%s"+
				"<p><a href=%q>Open the summary</a></p>",
			w.DisplayName, childName, hearingNote, link)
	case summary.TierMinorOverdue:
		subject = fmt.Sprintf("OVERDUE: court summary for %s (%d days late)", childName, cls.DaysLate)
		body = fmt.Sprintf(
			"<p>Hi %s,</p><p>The court summary for <b>%s</b> was due on %s and is now <b>%d day(s) late</b>. "+
				"Your supervisor is included on this reminder.</p>%s"+
				"<p><a href=%q>Open the summary</a></p>",
			w.DisplayName, childName, row.DueDate.Format("January 2, 2006"), cls.DaysLate, hearingNote, link)
	default: // severe
		subject = fmt.Sprintf("ESCALATION: court summary for %s is %d days late", childName, cls.DaysLate)
		body = fmt.Sprintf(
			"<p>Hi %s,</p><p>The court summary for <b>%s</b> was due on %s and is now <b>%d day(s) late</b>. "+
				"Your supervisor and program manager are included on this notice.</p>%s"+
				"<p><a href=%q>Open the summary</a></p>",
			w.DisplayName, childName, row.DueDate.Format("January 2, 2006"), cls.DaysLate, hearingNote, link)
	}
	return subject, body
}
