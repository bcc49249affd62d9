package rules

import (
	"fmt"
	"strings"

	"github.com/spendview-dev/spendview/internal/model"
)

// ValidationError describes one transaction that escaped the taxonomy.
type ValidationError struct {
	Row      int // 1-based position in the normalized table
	Label    string
	Merchant string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("row %d (%s): category %q is not in the budget taxonomy; add a rewrite rule for it", e.Row, e.Merchant, e.Label)
}

// ValidateTaxonomy checks that every normalized transaction landed in a
// canonical bucket. A label the rewrite table does not cover would otherwise
// leak into the history tables as a phantom column.
func ValidateTaxonomy(txns []model.Transaction) error {
	var errs []ValidationError
	for i, txn := range txns {
		if !txn.Category.IsCanonical() {
			errs = append(errs, ValidationError{
				Row:      i + 1,
				Label:    string(txn.Category),
				Merchant: txn.Description,
			})
		}
	}
	if len(errs) == 0 {
		return nil
	}

	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Errorf("taxonomy validation failed: %s", strings.Join(msgs, "; "))
}
