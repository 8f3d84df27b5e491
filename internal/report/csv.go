// Package report writes ranked restock recommendations to output sinks.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sellerkit/restock-go/internal/domain"
)

// Header is the fixed column order of the recommendations CSV.
var Header = []string{
	"sku",
	"avg_daily_sales",
	"current_inventory",
	"days_of_supply",
	"reorder_point",
	"recommended_order_quantity",
	"recommendation",
}

// Write emits the recommendations to w in the fixed column order. The
// header is always written, so an empty recommendation set still produces
// a well-formed (header-only) document.
func Write(w io.Writer, recommendations []domain.RestockRecommendation) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, rec := range recommendations {
		record := []string{
			rec.SKU,
			formatFloat(rec.AvgDailySales),
			strconv.Itoa(rec.CurrentInventory),
			rec.DaysOfSupply.String(),
			formatFloat(rec.ReorderPoint),
			strconv.Itoa(rec.RecommendedOrderQuantity),
			rec.Recommendation,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write recommendation for %s: %w", rec.SKU, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteFile writes the recommendations CSV to path, creating parent
// directories as needed.
func WriteFile(path string, recommendations []domain.RestockRecommendation) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	return Write(f, recommendations)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
