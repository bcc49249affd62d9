// Package history persists the two month-keyed summary tables. Rows for new
// months are inserted; a month already present is never touched, so a rerun
// can never overwrite reviewed historical data. Files are rewritten in full
// on every save.
package history

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spendview-dev/spendview/internal/model"
)

// Store reads and writes the history tables under a project root.
type Store struct {
	root       string
	spendFile  string
	incExpFile string
}

// NewStore creates a Store. File names are relative to root.
func NewStore(root, spendFile, incExpFile string) *Store {
	return &Store{root: root, spendFile: spendFile, incExpFile: incExpFile}
}

// SpendPath returns the full path of the category-spend history file.
func (s *Store) SpendPath() string { return filepath.Join(s.root, s.spendFile) }

// IncomeExpensePath returns the full path of the income-vs-expense history file.
func (s *Store) IncomeExpensePath() string { return filepath.Join(s.root, s.incExpFile) }

// LoadSpend reads the category-spend history. Absent file means no history.
func (s *Store) LoadSpend() ([]model.CategorySpendRow, error) {
	f, err := os.Open(s.SpendPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.spendFile, err)
	}
	defer f.Close()

	rows, err := ReadSpend(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.spendFile, err)
	}
	return rows, nil
}

// SaveSpend rewrites the category-spend history in full.
func (s *Store) SaveSpend(rows []model.CategorySpendRow) error {
	f, err := os.Create(s.SpendPath())
	if err != nil {
		return fmt.Errorf("creating %s: %w", s.spendFile, err)
	}
	if err := WriteSpend(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", s.spendFile, err)
	}
	return f.Close()
}

// LoadIncomeExpense reads the income-vs-expense history. Absent file means
// no history.
func (s *Store) LoadIncomeExpense() ([]model.IncomeExpenseRow, error) {
	f, err := os.Open(s.IncomeExpensePath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.incExpFile, err)
	}
	defer f.Close()

	rows, err := ReadIncomeExpense(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.incExpFile, err)
	}
	return rows, nil
}

// SaveIncomeExpense rewrites the income-vs-expense history in full.
func (s *Store) SaveIncomeExpense(rows []model.IncomeExpenseRow) error {
	f, err := os.Create(s.IncomeExpensePath())
	if err != nil {
		return fmt.Errorf("creating %s: %w", s.incExpFile, err)
	}
	if err := WriteIncomeExpense(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", s.incExpFile, err)
	}
	return f.Close()
}

// MergeSpend inserts row if its month is not yet present. The existing row
// for a month is authoritative and is never replaced. Reports whether the
// row was added.
func MergeSpend(rows []model.CategorySpendRow, row model.CategorySpendRow) ([]model.CategorySpendRow, bool) {
	for _, r := range rows {
		if r.Month == row.Month {
			return rows, false
		}
	}
	return append(rows, row), true
}

// MergeIncomeExpense inserts row if its month is not yet present.
func MergeIncomeExpense(rows []model.IncomeExpenseRow, row model.IncomeExpenseRow) ([]model.IncomeExpenseRow, bool) {
	for _, r := range rows {
		if r.Month == row.Month {
			return rows, false
		}
	}
	return append(rows, row), true
}
