// Package summary rolls a single month of normalized transactions up into
// the two history rows: per-category spend and income vs. expenses.
package summary

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/spendview-dev/spendview/internal/model"
)

// ErrEmptyWindow means the target month had no transactions, so no month
// label can be derived and nothing should be persisted.
var ErrEmptyWindow = errors.New("no transactions found for target period")

// Summarize computes both history rows for one month of transactions.
//
// Sign convention: expense amounts are exported negative, so non-Income
// amounts are negated to yield positive spend magnitudes. Income keeps its
// exported sign. Net income is income minus total expenses, exactly.
func Summarize(txns []model.Transaction) (model.CategorySpendRow, model.IncomeExpenseRow, error) {
	if len(txns) == 0 {
		return model.CategorySpendRow{}, model.IncomeExpenseRow{}, ErrEmptyWindow
	}

	month := model.FormatMonthLabel(txns[0].Date)

	totals := make(map[model.Category]decimal.Decimal, len(model.Categories()))
	for _, c := range model.Categories() {
		totals[c] = decimal.Zero
	}
	for _, txn := range txns {
		amt := txn.Amount
		if txn.Category != model.CategoryIncome {
			amt = amt.Neg()
		}
		totals[txn.Category] = totals[txn.Category].Add(amt)
	}

	income := totals[model.CategoryIncome]
	expenses := decimal.Zero
	for _, c := range model.ExpenseCategories() {
		expenses = expenses.Add(totals[c])
	}

	spend := model.CategorySpendRow{Month: month, Totals: totals}
	incExp := model.IncomeExpenseRow{
		Month:         month,
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetIncome:     income.Sub(expenses),
	}
	return spend, incExp, nil
}
