package model

import "github.com/shopspring/decimal"

// CategorySpendRow is one row of monthly_spending.csv: total spend per
// category for a single month. Expense totals are positive magnitudes;
// Income keeps the sign it was exported with.
type CategorySpendRow struct {
	Month  string
	Totals map[Category]decimal.Decimal
}

// Total returns the stored total for a category, zero if absent.
func (r CategorySpendRow) Total(c Category) decimal.Decimal {
	if v, ok := r.Totals[c]; ok {
		return v
	}
	return decimal.Zero
}

// IncomeExpenseRow is one row of income_vs_expenses.csv.
type IncomeExpenseRow struct {
	Month         string
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetIncome     decimal.Decimal // TotalIncome - TotalExpenses
}
