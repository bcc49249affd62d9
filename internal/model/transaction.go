package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one row of a bank transaction export.
type Transaction struct {
	Date                time.Time
	Description         string          // cleaned description from the institution
	OriginalDescription string          // raw pre-cleanup description, used by override rules
	Amount              decimal.Decimal // signed as exported: negative = money out
	RawCategory         string          // category label assigned by the institution
	Category            Category        // canonical category, set by rules.Normalize
	Account             string          // account name, used only for transfer detection
}
