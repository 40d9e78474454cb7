package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// GenericParser parses "date,description,amount[,category]" exports, the
// lowest common denominator most banks can produce.
type GenericParser struct{}

const (
	genericMinFields = 3
	genericColDate   = 0
	genericColDesc   = 1
	genericColAmount = 2
	genericColCat    = 3
)

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads a generic CSV and returns Rows. The first line is assumed to
// be a header.
func (p *GenericParser) Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var rows []Row
	for i, rec := range records[1:] {
		row, err := parseGenericRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseGenericRow(rec []string) (Row, error) {
	if len(rec) < genericMinFields {
		return Row{}, fmt.Errorf("expected at least %d fields, got %d", genericMinFields, len(rec))
	}

	date, err := model.ParseDate(rec[genericColDate])
	if err != nil {
		return Row{}, err
	}

	amount, err := decimal.NewFromString(rec[genericColAmount])
	if err != nil {
		return Row{}, fmt.Errorf("parsing amount %q: %w", rec[genericColAmount], err)
	}

	category := model.CategoryOther
	if len(rec) > genericColCat && rec[genericColCat] != "" {
		category = model.Category(rec[genericColCat])
	}

	return Row{
		Date:        date,
		Description: rec[genericColDesc],
		Amount:      amount,
		Category:    category,
	}, nil
}
