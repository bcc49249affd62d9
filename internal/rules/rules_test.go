package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendview-dev/spendview/internal/model"
)

func txn(rawCat, origDesc string) model.Transaction {
	return model.Transaction{
		RawCategory:         rawCat,
		Description:         origDesc,
		OriginalDescription: origDesc,
	}
}

func TestLabelRewrites(t *testing.T) {
	table := DefaultTable()

	cases := []struct {
		raw  string
		want model.Category
	}{
		{"Paycheck", model.CategoryIncome},
		{"Alcohol & Bars", model.CategoryEntertainment},
		{"Music", model.CategoryEntertainment},
		{"Fast Food", model.CategoryFood},
		{"Restaurants", model.CategoryFood},
		{"Coffee Shops", model.CategoryFood},
		{"Food & Dining", model.CategoryFood},
		{"Newspapers & Magazines", model.CategoryFood},
		{"Groceries", model.CategoryFood},
		{"Air Travel", model.CategoryTravel},
		{"Spa & Massage", model.CategoryTransport},
		{"Parking", model.CategoryTransport},
		{"Public Transportation", model.CategoryTransport},
		{"Rental Car & Taxi", model.CategoryTransport},
		{"Gym", model.CategoryPersonalCare},
		{"Pharmacy", model.CategoryPersonalCare},
		{"Clothing", model.CategoryShopping},
		{"Electronics & Software", model.CategoryOther},
		{"Bank Fee", model.CategoryOther},
		{"Pets", model.CategoryOther},
		{"ATM Fee", model.CategoryOther},
		{"Cash & ATM", model.CategoryOther},
		{"Sporting Goods", model.CategoryOther},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, table.Apply(txn(tc.raw, "SOME MERCHANT")), "raw label %q", tc.raw)
	}
}

func TestCanonicalLabelPassesThrough(t *testing.T) {
	table := DefaultTable()
	assert.Equal(t, model.CategoryFood, table.Apply(txn("Food", "CAFE")))
	assert.Equal(t, model.CategoryIncome, table.Apply(txn("Income", "EMPLOYER")))
}

func TestOverrideBeatsLabelRewrite(t *testing.T) {
	table := DefaultTable()

	// Bank Fee rewrites to Other, but the RIDE merchant override wins.
	got := table.Apply(txn("Bank Fee", "RIDE AUSTIN 0012"))
	assert.Equal(t, model.CategoryTransport, got)
}

func TestOverrideLastMatchWins(t *testing.T) {
	table := DefaultTable()

	// LINK SCOOTERS (Transport) matches before AUSTIN BOULDERING
	// (Entertainment); the later rule must win.
	got := table.Apply(txn("Gym", "AUSTIN BOULDERING LINK SCOOTERS"))
	assert.Equal(t, model.CategoryTransport, got)

	// And the other way around when only the later rule matches.
	got = table.Apply(txn("Gym", "AUSTIN BOULDERING PROJECT"))
	assert.Equal(t, model.CategoryEntertainment, got)
}

func TestOverridesAreCaseSensitive(t *testing.T) {
	table := DefaultTable()
	got := table.Apply(txn("Gym", "ride share"))
	assert.Equal(t, model.CategoryPersonalCare, got)
}

func TestNormalizeSetsEveryCategory(t *testing.T) {
	table := DefaultTable()
	in := []model.Transaction{
		txn("Groceries", "WHOLEFDS"),
		txn("Paycheck", "EMPLOYER PAYROLL"),
		txn("Bank Fee", "MONTHLY FEE"),
	}

	out := table.Normalize(in)
	require.Len(t, out, 3)
	assert.Equal(t, model.CategoryFood, out[0].Category)
	assert.Equal(t, model.CategoryIncome, out[1].Category)
	assert.Equal(t, model.CategoryOther, out[2].Category)

	// Input slice is not mutated.
	assert.Empty(t, string(in[0].Category))
}

func TestExcludeTransfers(t *testing.T) {
	txns := []model.Transaction{
		{Description: "Transfer to Savings CHK 0127"},
		{Description: "WHOLEFDS market"},
		{Description: "CHK 0127 incoming"},
	}

	got := ExcludeTransfers(txns, []string{"CHK 0127"})
	require.Len(t, got, 1)
	assert.Equal(t, "WHOLEFDS market", got[0].Description)
}

func TestExcludeTransfersNoMarkers(t *testing.T) {
	txns := []model.Transaction{{Description: "anything"}}
	assert.Equal(t, txns, ExcludeTransfers(txns, nil))
	assert.Equal(t, txns, ExcludeTransfers(txns, []string{""}))
}
