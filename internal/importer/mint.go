package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendview-dev/spendview/internal/model"
)

// MintParser parses Mint-style transaction CSV exports.
type MintParser struct{}

const (
	// Mint writes dates without zero padding, e.g. "7/03/2021".
	mintDateFormat = "1/2/2006"
	mintNumFields  = 9
	mintColDate    = 0
	mintColDesc    = 1
	mintColOrig    = 2
	mintColAmount  = 3
	mintColType    = 4
	mintColCat     = 5
	mintColAccount = 6
	// Columns 7 (Labels) and 8 (Notes) are ignorable metadata.
)

// Format returns the parser name.
func (p *MintParser) Format() string { return "mint" }

// Parse reads a Mint export and returns Transactions.
func (p *MintParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = mintNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading mint CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := parseMintRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseMintRow(rec []string) (model.Transaction, error) {
	date, err := time.Parse(mintDateFormat, rec[mintColDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec[mintColDate], err)
	}

	amount, err := decimal.NewFromString(rec[mintColAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec[mintColAmount], err)
	}

	return model.Transaction{
		Date:                date,
		Description:         rec[mintColDesc],
		OriginalDescription: rec[mintColOrig],
		Amount:              amount,
		RawCategory:         rec[mintColCat],
		Account:             rec[mintColAccount],
	}, nil
}
