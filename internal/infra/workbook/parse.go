package workbook

import (
	"strings"
	"time"
)

// DateLayout is the canonical format written back into date cells.
const DateLayout = "2006-01-02"

// Layouts accepted when reading date cells. Staff enter dates by hand and
// Excel reformats them depending on locale, so several shapes show up.
var dateLayouts = []string{
	DateLayout,
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"2-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// parseDate returns the zero time for blank or unrecognized cells; the
// engines treat a zero date as "missing" and skip the row.
func parseDate(cell string) time.Time {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseFlag interprets the checkbox-ish cells staff use for boolean
// columns ("submitted", "missed").
func parseFlag(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "yes", "y", "true", "x", "1":
		return true
	default:
		return false
	}
}

// cellAt pads ragged rows: excelize drops trailing empty cells.
func cellAt(cells []string, idx int) string {
	if idx < len(cells) {
		return cells[idx]
	}
	return ""
}
