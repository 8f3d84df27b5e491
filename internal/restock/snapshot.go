package restock

import (
	"strconv"
	"strings"

	"github.com/sellerkit/restock-go/internal/domain"
)

// Snapshot maps SKU to available quantity at the time of the run.
type Snapshot map[string]int

// Available returns the available quantity for a SKU, 0 when absent.
func (s Snapshot) Available(sku string) int {
	return s[sku]
}

// BuildSnapshot folds raw inventory rows into a per-SKU availability
// lookup. Rows with an empty SKU or a quantity that is negative or does
// not parse are skipped. The duplicate policy decides which row wins when
// the feed lists a SKU more than once; the reference feeds behave as
// last-wins.
func BuildSnapshot(rows []domain.RawInventoryRow, policy domain.DuplicatePolicy) Snapshot {
	snapshot := make(Snapshot)

	for _, row := range rows {
		if row.SKU == "" {
			continue
		}

		available, err := strconv.Atoi(strings.TrimSpace(row.Available))
		if err != nil || available < 0 {
			continue
		}

		if policy == domain.FirstWins {
			if _, seen := snapshot[row.SKU]; seen {
				continue
			}
		}
		snapshot[row.SKU] = available
	}

	return snapshot
}
