package contact

import "time"

// Row is one mandated-contact obligation parsed from a monthly sheet.
// Index is the 1-based workbook row it came from, so a reminder timestamp
// can be written back to the same row after a successful send.
//
// Date fields are zero when the source cell is blank or unparseable;
// validation of required fields happens in the engine, which skips and
// counts malformed rows rather than failing the scan.
type Row struct {
	Index            int
	ChildName        string
	CaseID           string
	DateSeen         time.Time
	SeenBy           string
	DateEntered      string // any non-blank value means the obligation is already satisfied
	LastReminderSent time.Time
	Missed           bool
	MissedReason     string
}

// Sheet identifies one monthly contact sheet in the tracker.
type Sheet struct {
	Name  string
	Month time.Month
}
