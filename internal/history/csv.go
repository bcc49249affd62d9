package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/spendview-dev/spendview/internal/model"
)

// SpendHeader is the CSV header for the category-spend history.
const SpendHeader = "Month,Entertainment,Food,Travel,Transport,Other,Personal Care,Shopping,Income"

// IncomeExpenseHeader is the CSV header for the income-vs-expense history.
const IncomeExpenseHeader = "Month,Total Income,Total Expenses,Net Income"

const (
	spendNumFields = 9
	spendColMonth  = 0

	incExpNumFields  = 4
	incExpColMonth   = 0
	incExpColIncome  = 1
	incExpColExpense = 2
	incExpColNet     = 3
)

// spendColumns returns the category order matching SpendHeader (sans Month).
func spendColumns() []model.Category {
	return model.Categories()
}

// ReadSpend reads all category-spend rows from a monthly_spending.csv reader.
func ReadSpend(r io.Reader) ([]model.CategorySpendRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = spendNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading spending history CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var rows []model.CategorySpendRow
	for i, rec := range records[1:] {
		row, err := UnmarshalSpendRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteSpend writes category-spend rows (including header).
func WriteSpend(w io.Writer, rows []model.CategorySpendRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(SpendHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(MarshalSpendRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalSpendRow converts a CategorySpendRow to a CSV row.
func MarshalSpendRow(row model.CategorySpendRow) []string {
	rec := make([]string, spendNumFields)
	rec[spendColMonth] = row.Month
	for i, c := range spendColumns() {
		rec[i+1] = row.Total(c).StringFixed(2)
	}
	return rec
}

// UnmarshalSpendRow converts a CSV row to a CategorySpendRow.
func UnmarshalSpendRow(rec []string) (model.CategorySpendRow, error) {
	if len(rec) != spendNumFields {
		return model.CategorySpendRow{}, fmt.Errorf("expected %d fields, got %d", spendNumFields, len(rec))
	}

	totals := make(map[model.Category]decimal.Decimal, spendNumFields-1)
	for i, c := range spendColumns() {
		v, err := decimal.NewFromString(rec[i+1])
		if err != nil {
			return model.CategorySpendRow{}, fmt.Errorf("parsing %s %q: %w", c, rec[i+1], err)
		}
		totals[c] = v
	}
	return model.CategorySpendRow{Month: rec[spendColMonth], Totals: totals}, nil
}

// ReadIncomeExpense reads all rows from an income_vs_expenses.csv reader.
func ReadIncomeExpense(r io.Reader) ([]model.IncomeExpenseRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = incExpNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading income/expense history CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var rows []model.IncomeExpenseRow
	for i, rec := range records[1:] {
		row, err := UnmarshalIncomeExpenseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteIncomeExpense writes income-vs-expense rows (including header).
func WriteIncomeExpense(w io.Writer, rows []model.IncomeExpenseRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(IncomeExpenseHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(MarshalIncomeExpenseRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalIncomeExpenseRow converts an IncomeExpenseRow to a CSV row.
func MarshalIncomeExpenseRow(row model.IncomeExpenseRow) []string {
	rec := make([]string, incExpNumFields)
	rec[incExpColMonth] = row.Month
	rec[incExpColIncome] = row.TotalIncome.StringFixed(2)
	rec[incExpColExpense] = row.TotalExpenses.StringFixed(2)
	rec[incExpColNet] = row.NetIncome.StringFixed(2)
	return rec
}

// UnmarshalIncomeExpenseRow converts a CSV row to an IncomeExpenseRow.
func UnmarshalIncomeExpenseRow(rec []string) (model.IncomeExpenseRow, error) {
	if len(rec) != incExpNumFields {
		return model.IncomeExpenseRow{}, fmt.Errorf("expected %d fields, got %d", incExpNumFields, len(rec))
	}

	income, err := decimal.NewFromString(rec[incExpColIncome])
	if err != nil {
		return model.IncomeExpenseRow{}, fmt.Errorf("parsing total income %q: %w", rec[incExpColIncome], err)
	}
	expenses, err := decimal.NewFromString(rec[incExpColExpense])
	if err != nil {
		return model.IncomeExpenseRow{}, fmt.Errorf("parsing total expenses %q: %w", rec[incExpColExpense], err)
	}
	net, err := decimal.NewFromString(rec[incExpColNet])
	if err != nil {
		return model.IncomeExpenseRow{}, fmt.Errorf("parsing net income %q: %w", rec[incExpColNet], err)
	}

	return model.IncomeExpenseRow{
		Month:         rec[incExpColMonth],
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetIncome:     net,
	}, nil
}
