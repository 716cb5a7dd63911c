package settings

import (
	"sort"
	"strings"

	"casework_notifier/internal/domain/period"
)

// CompletionSet is the set of period labels considered fully reconciled:
// no outstanding contact reminders remain for those months. It is
// persisted as a single comma-joined string under KeyCompletedMonths.
type CompletionSet map[string]struct{}

// ParseCompletionSet parses the stored comma-joined form. Blank entries
// are dropped; duplicates collapse.
func ParseCompletionSet(raw string) CompletionSet {
	set := CompletionSet{}
	for _, part := range strings.Split(raw, ",") {
		label := strings.TrimSpace(part)
		if label == "" {
			continue
		}
		set[label] = struct{}{}
	}
	return set
}

// Contains reports membership of a period label.
func (s CompletionSet) Contains(label string) bool {
	_, ok := s[label]
	return ok
}

// Add inserts a label and reports whether it was newly added. Adding a
// present label is a no-op, so repeated aggregation passes in the same
// run cannot duplicate an entry.
func (s CompletionSet) Add(label string) bool {
	if s.Contains(label) {
		return false
	}
	s[label] = struct{}{}
	return true
}

// String serializes the set for persistence: month labels in calendar
// order, anything unrecognized after them alphabetically.
func (s CompletionSet) String() string {
	labels := make([]string, 0, len(s))
	for label := range s {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		mi, erri := period.FromMonthName(labels[i])
		mj, errj := period.FromMonthName(labels[j])
		switch {
		case erri == nil && errj == nil:
			return mi < mj
		case erri == nil:
			return true
		case errj == nil:
			return false
		default:
			return labels[i] < labels[j]
		}
	})
	return strings.Join(labels, ",")
}
