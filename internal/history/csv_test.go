package history

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendview-dev/spendview/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func spendRow(month string, totals map[model.Category]decimal.Decimal) model.CategorySpendRow {
	return model.CategorySpendRow{Month: month, Totals: totals}
}

func TestSpendRoundTrip(t *testing.T) {
	rows := []model.CategorySpendRow{
		spendRow("Jun 2024", map[model.Category]decimal.Decimal{
			model.CategoryEntertainment: dec("120.00"),
			model.CategoryFood:          dec("455.31"),
			model.CategoryTravel:        decimal.Zero,
			model.CategoryTransport:     dec("60.25"),
			model.CategoryOther:         dec("14.99"),
			model.CategoryPersonalCare:  dec("35.00"),
			model.CategoryShopping:      dec("89.90"),
			model.CategoryIncome:        dec("4200.00"),
		}),
		spendRow("Jul 2024", map[model.Category]decimal.Decimal{
			model.CategoryFood: dec("390.00"),
		}),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSpend(&buf, rows))
	assert.True(t, strings.HasPrefix(buf.String(), "Month,Entertainment,"))

	got, err := ReadSpend(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Jun 2024", got[0].Month)
	assert.True(t, got[0].Total(model.CategoryFood).Equal(dec("455.31")))
	assert.True(t, got[0].Total(model.CategoryIncome).Equal(dec("4200.00")))

	// Categories absent from the in-memory row come back as explicit zeros.
	assert.Equal(t, "Jul 2024", got[1].Month)
	assert.True(t, got[1].Total(model.CategoryTravel).IsZero())
	assert.True(t, got[1].Total(model.CategoryFood).Equal(dec("390.00")))
}

func TestSpendColumnOrderMatchesHeader(t *testing.T) {
	row := spendRow("Jun 2024", map[model.Category]decimal.Decimal{
		model.CategoryEntertainment: dec("1.00"),
		model.CategoryFood:          dec("2.00"),
		model.CategoryTravel:        dec("3.00"),
		model.CategoryTransport:     dec("4.00"),
		model.CategoryOther:         dec("5.00"),
		model.CategoryPersonalCare:  dec("6.00"),
		model.CategoryShopping:      dec("7.00"),
		model.CategoryIncome:        dec("8.00"),
	})

	rec := MarshalSpendRow(row)
	assert.Equal(t, []string{"Jun 2024", "1.00", "2.00", "3.00", "4.00", "5.00", "6.00", "7.00", "8.00"}, rec)
}

func TestSpendUnmarshalBadAmount(t *testing.T) {
	rec := []string{"Jun 2024", "x", "0", "0", "0", "0", "0", "0", "0"}
	_, err := UnmarshalSpendRow(rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Entertainment")
}

func TestReadSpendEmpty(t *testing.T) {
	rows, err := ReadSpend(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestReadSpendHeaderOnly(t *testing.T) {
	rows, err := ReadSpend(strings.NewReader(SpendHeader + "\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestIncomeExpenseRoundTrip(t *testing.T) {
	rows := []model.IncomeExpenseRow{
		{
			Month:         "Jun 2024",
			TotalIncome:   dec("4200.00"),
			TotalExpenses: dec("775.45"),
			NetIncome:     dec("3424.55"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteIncomeExpense(&buf, rows))
	assert.True(t, strings.HasPrefix(buf.String(), "Month,Total Income,Total Expenses,Net Income"))

	got, err := ReadIncomeExpense(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jun 2024", got[0].Month)
	assert.True(t, got[0].TotalIncome.Equal(dec("4200.00")))
	assert.True(t, got[0].TotalExpenses.Equal(dec("775.45")))
	assert.True(t, got[0].NetIncome.Equal(dec("3424.55")))
}

func TestIncomeExpenseFieldCount(t *testing.T) {
	_, err := UnmarshalIncomeExpenseRow([]string{"Jun 2024", "1.00"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 4 fields")
}
