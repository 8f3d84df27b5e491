// Package restock implements the reorder decision engine: per-SKU sales
// velocity aggregation, inventory snapshots, reorder-point math, and
// urgency ranking of the resulting recommendations.
package restock

import (
	"strconv"
	"strings"
	"time"

	"github.com/sellerkit/restock-go/internal/domain"
)

// shippedStatus is the only order status admitted into velocity stats.
const shippedStatus = "Shipped"

// purchaseDateLayouts are tried in order after any timezone offset has
// been stripped from the raw value.
var purchaseDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// AggregateSales folds raw sales rows into per-SKU velocity statistics.
// A row is admitted only when its status is Shipped, its quantity parses
// to a positive integer, and its purchase date parses; everything else is
// dropped without comment. A SKU never appears in the result with an
// empty selling-day set.
func AggregateSales(rows []domain.RawSalesRow) map[string]domain.SkuVelocity {
	velocity := make(map[string]domain.SkuVelocity)

	for _, row := range rows {
		if row.OrderStatus != shippedStatus {
			continue
		}
		if row.SKU == "" {
			continue
		}

		quantity, err := strconv.Atoi(strings.TrimSpace(row.Quantity))
		if err != nil || quantity <= 0 {
			continue
		}

		saleDate, ok := parsePurchaseDate(row.PurchaseDate)
		if !ok {
			continue
		}

		vel, exists := velocity[row.SKU]
		if !exists {
			vel = domain.SkuVelocity{SellingDays: make(map[string]struct{})}
		}
		vel.TotalQuantity += quantity
		vel.SellingDays[saleDate] = struct{}{}
		velocity[row.SKU] = vel
	}

	return velocity
}

// parsePurchaseDate parses a date/time value with an optional fixed-offset
// suffix and returns the calendar date portion in ISO form. The offset is
// stripped, not applied: the feed carries wall-clock sale times.
func parsePurchaseDate(raw string) (string, bool) {
	value := stripOffset(strings.TrimSpace(raw))
	if value == "" {
		return "", false
	}

	for _, layout := range purchaseDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// stripOffset removes a trailing "Z" or "+HH:MM"/"-HH:MM" suffix. A bare
// date like 2025-07-10 has a '-' at the offset position but no ':' where
// the offset's colon would be, so it passes through untouched.
func stripOffset(value string) string {
	if strings.HasSuffix(value, "Z") {
		return value[:len(value)-1]
	}
	if len(value) >= 6 {
		sign := value[len(value)-6]
		if (sign == '+' || sign == '-') && value[len(value)-3] == ':' {
			return value[:len(value)-6]
		}
	}
	return value
}
