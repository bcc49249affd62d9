// Package window selects the most recently completed calendar month.
package window

import (
	"time"

	"github.com/spendview-dev/spendview/internal/model"
)

// LastFullMonth returns the first and last day of the calendar month
// preceding ref's month. The reference date is an explicit parameter so
// callers (and tests) control "now".
func LastFullMonth(ref time.Time) (start, end time.Time) {
	firstOfThisMonth := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = firstOfThisMonth.AddDate(0, 0, -1)
	start = time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, end
}

// Filter returns the transactions dated within the most recently completed
// month relative to ref. A transaction on the 1st of the target month is
// included; one on the last day of the month before it is not.
func Filter(txns []model.Transaction, ref time.Time) []model.Transaction {
	start, end := LastFullMonth(ref)
	// Compare dates only; export timestamps carry no time of day.
	endExclusive := end.AddDate(0, 0, 1)

	var out []model.Transaction
	for _, txn := range txns {
		d := time.Date(txn.Date.Year(), txn.Date.Month(), txn.Date.Day(), 0, 0, 0, 0, time.UTC)
		if !d.Before(start) && d.Before(endExclusive) {
			out = append(out, txn)
		}
	}
	return out
}
