// Package rules maps raw institution-assigned transaction labels onto the
// fixed budget taxonomy. The ruleset is a small declarative table: exact
// label rewrites first, then ordered description-substring overrides for
// merchants the institution routinely miscategorizes.
package rules

import (
	"strings"

	"github.com/spendview-dev/spendview/internal/model"
)

// Override corrects the category of any transaction whose original
// description contains Pattern (case-sensitive). Overrides run after label
// rewrites, in order; the last matching override wins.
type Override struct {
	Pattern  string
	Category model.Category
}

// RewriteTable holds the full categorization ruleset.
type RewriteTable struct {
	Labels    map[string]model.Category
	Overrides []Override
}

// DefaultTable returns the built-in ruleset.
func DefaultTable() RewriteTable {
	labels := map[string]model.Category{
		"Paycheck": model.CategoryIncome,

		"Alcohol & Bars": model.CategoryEntertainment,
		"Music":          model.CategoryEntertainment,

		"Fast Food":              model.CategoryFood,
		"Restaurants":            model.CategoryFood,
		"Coffee Shops":           model.CategoryFood,
		"Food & Dining":          model.CategoryFood,
		"Newspapers & Magazines": model.CategoryFood,
		"Groceries":              model.CategoryFood,

		"Air Travel": model.CategoryTravel,

		"Spa & Massage":         model.CategoryTransport,
		"Parking":               model.CategoryTransport,
		"Public Transportation": model.CategoryTransport,
		"Rental Car & Taxi":     model.CategoryTransport,

		"Gym":      model.CategoryPersonalCare,
		"Pharmacy": model.CategoryPersonalCare,

		"Clothing": model.CategoryShopping,

		"Electronics & Software": model.CategoryOther,
		"Bank Fee":               model.CategoryOther,
		"Pets":                   model.CategoryOther,
		"ATM Fee":                model.CategoryOther,
		"Cash & ATM":             model.CategoryOther,
		"Sporting Goods":         model.CategoryOther,
	}

	overrides := []Override{
		{Pattern: "LINK SCOOTERS", Category: model.CategoryTransport},
		{Pattern: "AUSTIN BOULDERING", Category: model.CategoryEntertainment},
		{Pattern: "RIDE", Category: model.CategoryTransport},
		{Pattern: "MERIT", Category: model.CategoryFood},
		{Pattern: "WHETHAN", Category: model.CategoryEntertainment},
	}

	return RewriteTable{Labels: labels, Overrides: overrides}
}

// Apply returns the canonical category for a single transaction.
func (t RewriteTable) Apply(txn model.Transaction) model.Category {
	cat, ok := t.Labels[txn.RawCategory]
	if !ok {
		// Unlisted labels pass through; ValidateTaxonomy catches any that
		// are not already canonical.
		cat = model.Category(txn.RawCategory)
	}

	for _, o := range t.Overrides {
		if strings.Contains(txn.OriginalDescription, o.Pattern) {
			cat = o.Category
		}
	}
	return cat
}

// Normalize sets Category on every transaction and returns the result.
func (t RewriteTable) Normalize(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	for i, txn := range txns {
		txn.Category = t.Apply(txn)
		out[i] = txn
	}
	return out
}

// ExcludeTransfers drops transactions whose description contains any of the
// configured internal-transfer markers. Money moving between the user's own
// accounts must not count as spending or income.
func ExcludeTransfers(txns []model.Transaction, markers []string) []model.Transaction {
	if len(markers) == 0 {
		return txns
	}
	out := txns[:0:0]
	for _, txn := range txns {
		if containsAny(txn.Description, markers) {
			continue
		}
		out = append(out, txn)
	}
	return out
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
