package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifyScenarios(t *testing.T) {
	due := date(2024, 3, 10)

	// Day before the due date: pre-due, worker only.
	got := Classify(date(2024, 3, 9), due, time.Time{})
	assert.Equal(t, TierPreDue, got.Tier)
	assert.Equal(t, -1, got.DaysLate)

	// On the due date.
	got = Classify(date(2024, 3, 10), due, time.Time{})
	assert.Equal(t, TierDueToday, got.Tier)
	assert.Equal(t, 0, got.DaysLate)

	// Five days late: minor overdue.
	got = Classify(date(2024, 3, 15), due, time.Time{})
	assert.Equal(t, TierMinorOverdue, got.Tier)
	assert.Equal(t, 5, got.DaysLate)

	// Ten days late: severe overdue.
	got = Classify(date(2024, 3, 20), due, time.Time{})
	assert.Equal(t, TierSevereOverdue, got.Tier)
	assert.Equal(t, 10, got.DaysLate)

	// Two days early: nothing fires.
	got = Classify(date(2024, 3, 8), due, time.Time{})
	assert.Equal(t, TierNone, got.Tier)
}

// The rule set must be total and mutually exclusive: for every whole-day
// offset exactly one tier applies, and TierNone only occurs before the
// pre-due day.
func TestClassifyTotality(t *testing.T) {
	due := date(2024, 3, 10)
	for offset := -10; offset <= 30; offset++ {
		today := due.AddDate(0, 0, offset)
		got := Classify(today, due, time.Time{})
		assert.Equal(t, offset, got.DaysLate)

		var want Tier
		switch {
		case offset < -1:
			want = TierNone
		case offset == -1:
			want = TierPreDue
		case offset == 0:
			want = TierDueToday
		case offset < 7:
			want = TierMinorOverdue
		default:
			want = TierSevereOverdue
		}
		assert.Equal(t, want, got.Tier, "offset %d", offset)
	}
}

func TestClassifyHearingCountdown(t *testing.T) {
	due := date(2024, 3, 10)
	court := date(2024, 3, 25)

	got := Classify(date(2024, 3, 15), due, court)
	assert.Equal(t, 10, got.DaysUntilHearing)

	// No hearing scheduled: countdown stays zero.
	got = Classify(date(2024, 3, 15), due, time.Time{})
	assert.Equal(t, 0, got.DaysUntilHearing)
}

func TestParseCaseName(t *testing.T) {
	tests := []struct {
		name       string
		wantChild  string
		wantWorker string
		wantOK     bool
	}{
		{"Jamie Smith - Dana Jones", "Jamie Smith", "Dana Jones", true},
		{"Smith-Lopez, Jamie - Dana Jones", "Smith-Lopez, Jamie", "Dana Jones", true},
		// Split is on the last separator so hyphenated names survive.
		{"Jamie Smith - Lopez - Dana Jones", "Jamie Smith - Lopez", "Dana Jones", true},
		{"Jamie Smith", "", "", false},
		{" - Dana Jones", "", "", false},
		{"Jamie Smith - ", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		child, worker, ok := ParseCaseName(tt.name)
		assert.Equal(t, tt.wantOK, ok, "name %q", tt.name)
		assert.Equal(t, tt.wantChild, child, "name %q", tt.name)
		assert.Equal(t, tt.wantWorker, worker, "name %q", tt.name)
	}
}
