package model

import (
	"fmt"
	"time"
)

// monthLabelFormat renders a month key like "Jul 2024".
const monthLabelFormat = "Jan 2006"

// FormatMonthLabel returns the history-table key for t's month.
func FormatMonthLabel(t time.Time) string {
	return t.Format(monthLabelFormat)
}

// ParseMonthLabel parses a history-table key like "Jul 2024" into the first
// day of that month (UTC).
func ParseMonthLabel(label string) (time.Time, error) {
	t, err := time.Parse(monthLabelFormat, label)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing month label %q: %w", label, err)
	}
	return t, nil
}
