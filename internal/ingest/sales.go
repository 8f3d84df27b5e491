// Package ingest reads the external sales and inventory feeds and turns
// them into raw row streams for the restock engine. It owns format concerns
// only (delimiters, header layout); validation of individual rows is the
// engine's job.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/sellerkit/restock-go/internal/domain"
)

// ErrSourceUnavailable marks a feed that could not be opened or read at
// all. It aborts the whole run; callers check it with errors.Is.
var ErrSourceUnavailable = errors.New("source unavailable")

// Sales feed column names. The feed is tab separated.
const (
	salesColStatus   = "order-status"
	salesColSKU      = "sku"
	salesColQuantity = "quantity"
	salesColDate     = "purchase-date"
)

// ReadSalesRows reads the full sales feed at path. Rows that cannot be
// parsed at the CSV level are skipped; a source that cannot be opened or
// whose header cannot be read fails the run with ErrSourceUnavailable.
// An empty feed yields an empty slice, not an error.
func ReadSalesRows(path string) ([]domain.RawSalesRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sales feed %s: %w", path, ErrSourceUnavailable)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read sales feed header %s: %w", path, ErrSourceUnavailable)
	}

	colMap := indexColumns(header)

	var rows []domain.RawSalesRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Dirty feeds are expected; a broken line is not a run failure.
			log.Debug().Err(err).Str("path", path).Msg("skipping unreadable sales row")
			continue
		}

		rows = append(rows, domain.RawSalesRow{
			OrderStatus:  fieldAt(record, colMap, salesColStatus),
			SKU:          fieldAt(record, colMap, salesColSKU),
			Quantity:     fieldAt(record, colMap, salesColQuantity),
			PurchaseDate: fieldAt(record, colMap, salesColDate),
		})
	}

	return rows, nil
}

// indexColumns maps header names to their positions.
func indexColumns(header []string) map[string]int {
	colMap := make(map[string]int, len(header))
	for i, col := range header {
		colMap[col] = i
	}
	return colMap
}

// fieldAt returns the named field of a record, or "" when the column is
// missing or the record is short.
func fieldAt(record []string, colMap map[string]int, name string) string {
	idx, ok := colMap[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}
