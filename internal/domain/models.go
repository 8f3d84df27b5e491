// internal/domain/models.go
package domain

import (
	"fmt"
	"time"
)

// RawSalesRow is a single line item from the sales feed before validation.
// All fields are kept as strings; admission rules live in the aggregator.
type RawSalesRow struct {
	OrderStatus  string
	SKU          string
	Quantity     string
	PurchaseDate string
}

// RawInventoryRow is a single row from the inventory feed before validation.
type RawInventoryRow struct {
	SKU       string
	Available string
}

// SkuVelocity holds per-SKU sales statistics accumulated over a run.
// SellingDays is keyed by calendar date in ISO form (2006-01-02).
type SkuVelocity struct {
	TotalQuantity int
	SellingDays   map[string]struct{}
}

// DuplicatePolicy controls which row wins when the inventory feed lists
// the same SKU more than once.
type DuplicatePolicy string

const (
	LastWins  DuplicatePolicy = "last_wins"
	FirstWins DuplicatePolicy = "first_wins"
)

// ParseDuplicatePolicy maps a config/CLI string to a DuplicatePolicy,
// defaulting to LastWins for empty input.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch DuplicatePolicy(s) {
	case "":
		return LastWins, nil
	case LastWins, FirstWins:
		return DuplicatePolicy(s), nil
	default:
		return "", fmt.Errorf("unknown duplicate policy %q", s)
	}
}

// PolicyParams are the replenishment policy knobs for a single run.
// InboundInventory is a slot for future inbound-shipment tracking and is
// always 0 today.
type PolicyParams struct {
	LeadTimeDays       int `json:"lead_time_days"`
	SafetyStockDays    int `json:"safety_stock_days"`
	DesiredDaysOfCover int `json:"desired_days_of_cover"`
	InboundInventory   int `json:"inbound_inventory"`
}

// Validate rejects negative policy values. The engine accepts any
// non-negative combination; defaults belong to the caller.
func (p PolicyParams) Validate() error {
	if p.LeadTimeDays < 0 {
		return fmt.Errorf("lead_time_days must be >= 0, got %d", p.LeadTimeDays)
	}
	if p.SafetyStockDays < 0 {
		return fmt.Errorf("safety_stock_days must be >= 0, got %d", p.SafetyStockDays)
	}
	if p.DesiredDaysOfCover < 0 {
		return fmt.Errorf("desired_days_of_cover must be >= 0, got %d", p.DesiredDaysOfCover)
	}
	return nil
}

// RestockRecommendation is one reorder decision for a SKU whose inventory
// fell below the reorder point. Float fields are rounded to 2 decimals for
// reporting; trigger math upstream uses full precision.
type RestockRecommendation struct {
	SKU                      string       `json:"sku"`
	AvgDailySales            float64      `json:"avg_daily_sales"`
	CurrentInventory         int          `json:"current_inventory"`
	DaysOfSupply             DaysOfSupply `json:"days_of_supply"`
	ReorderPoint             float64      `json:"reorder_point"`
	RecommendedOrderQuantity int          `json:"recommended_order_quantity"`
	Recommendation           string       `json:"recommendation"`
}

// RunResult is the complete outcome of one engine run. An empty
// Recommendations slice is a valid outcome, distinct from a failed run.
type RunResult struct {
	Brand           string                  `json:"brand"`
	Params          PolicyParams            `json:"params"`
	DuplicatePolicy DuplicatePolicy         `json:"duplicate_policy"`
	SkusEvaluated   int                     `json:"skus_evaluated"`
	Recommendations []RestockRecommendation `json:"recommendations"`
	GeneratedAt     time.Time               `json:"generated_at"`
}
