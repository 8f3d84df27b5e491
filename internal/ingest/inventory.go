package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/sellerkit/restock-go/internal/domain"
)

// Inventory feed column names. The feed is comma separated.
const (
	inventoryColSKU       = "sku"
	inventoryColAvailable = "available"
)

// ReadInventoryRows reads the full inventory feed at path. The same
// failure contract as ReadSalesRows applies: bad rows are skipped, an
// unreadable source fails the run with ErrSourceUnavailable.
func ReadInventoryRows(path string) ([]domain.RawInventoryRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open inventory feed %s: %w", path, ErrSourceUnavailable)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read inventory feed header %s: %w", path, ErrSourceUnavailable)
	}

	colMap := indexColumns(header)

	var rows []domain.RawInventoryRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("skipping unreadable inventory row")
			continue
		}

		rows = append(rows, domain.RawInventoryRow{
			SKU:       fieldAt(record, colMap, inventoryColSKU),
			Available: fieldAt(record, colMap, inventoryColAvailable),
		})
	}

	return rows, nil
}
