package summary

import (
	"strings"
	"time"
)

// Row is one pending court-summary obligation.
//
// There is deliberately no last-sent field: summary tiers are a pure
// function of today's date against the due date, so exactly one email
// fires per qualifying day without any persisted send state.
type Row struct {
	Index     int
	CaseName  string    // "<child> - <worker>", see ParseCaseName
	CourtDate time.Time // zero when no hearing is scheduled
	DueDate   time.Time
	Submitted bool
	Link      string
}

// ParseCaseName splits a case display name into child and worker names.
// The expected shape is "<child> - <worker>"; the split is on the last
// " - " so hyphenated child names survive. ok is false when the name has
// no separator or either side is blank.
func ParseCaseName(name string) (child, worker string, ok bool) {
	idx := strings.LastIndex(name, " - ")
	if idx < 0 {
		return "", "", false
	}
	child = strings.TrimSpace(name[:idx])
	worker = strings.TrimSpace(name[idx+len(" - "):])
	if child == "" || worker == "" {
		return "", "", false
	}
	return child, worker, true
}
