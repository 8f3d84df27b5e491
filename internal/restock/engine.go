package restock

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/sellerkit/restock-go/internal/domain"
)

// defaultWorkerCount bounds the parallel per-SKU decision map.
const defaultWorkerCount = 4

// Engine computes reorder decisions for a fixed set of policy parameters.
// Decisions are independent per SKU, so Run fans them out across a bounded
// worker group and collects the results before ranking.
type Engine struct {
	Params  domain.PolicyParams
	Workers int
}

// NewEngine creates an engine for the given policy parameters.
func NewEngine(params domain.PolicyParams) *Engine {
	return &Engine{
		Params:  params,
		Workers: defaultWorkerCount,
	}
}

// Run evaluates every SKU present in the velocity stats against the
// snapshot and returns the triggered recommendations ranked by urgency.
// SKUs that only appear in inventory are never evaluated: without sales
// history there is no velocity to reorder against.
func (e *Engine) Run(ctx context.Context, velocity map[string]domain.SkuVelocity, snapshot Snapshot) []domain.RestockRecommendation {
	skus := make([]string, 0, len(velocity))
	for sku := range velocity {
		skus = append(skus, sku)
	}
	sort.Strings(skus)

	workers := e.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]*domain.RestockRecommendation, len(skus))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sku := range skus {
		i, sku := i, sku
		g.Go(func() error {
			if rec, ok := e.Decide(sku, velocity[sku], snapshot.Available(sku)); ok {
				results[i] = &rec
			}
			return nil
		})
	}
	// Decisions are pure; the group carries no errors.
	_ = g.Wait()

	recommendations := make([]domain.RestockRecommendation, 0, len(results))
	for _, rec := range results {
		if rec != nil {
			recommendations = append(recommendations, *rec)
		}
	}

	Rank(recommendations)
	return recommendations
}

// Decide computes the reorder decision for a single SKU. The second return
// value is false when the SKU produces no recommendation, either because
// it has no actionable velocity or because inventory sits at or above the
// reorder point.
func (e *Engine) Decide(sku string, velocity domain.SkuVelocity, currentInventory int) (domain.RestockRecommendation, bool) {
	sellingDays := len(velocity.SellingDays)
	if sellingDays == 0 {
		// Cannot happen for aggregator output, but the division below
		// must never be reached with a zero denominator.
		return domain.RestockRecommendation{}, false
	}

	avgDailySales := float64(velocity.TotalQuantity) / float64(sellingDays)
	if avgDailySales <= 0 {
		return domain.RestockRecommendation{}, false
	}

	safetyStock := float64(e.Params.SafetyStockDays) * avgDailySales
	reorderPoint := float64(e.Params.LeadTimeDays)*avgDailySales + safetyStock

	daysOfSupply := domain.InfiniteDays()
	if avgDailySales > 0 {
		daysOfSupply = domain.FiniteDays(float64(currentInventory) / avgDailySales)
	}

	if float64(currentInventory) >= reorderPoint {
		return domain.RestockRecommendation{}, false
	}

	desiredInventoryLevel := float64(e.Params.DesiredDaysOfCover) * avgDailySales
	orderQuantity := desiredInventoryLevel - float64(currentInventory+e.Params.InboundInventory)

	recommendedQty := int(orderQuantity)
	if recommendedQty < 0 {
		recommendedQty = 0
	}

	return domain.RestockRecommendation{
		SKU:                      sku,
		AvgDailySales:            roundFloat(avgDailySales, 2),
		CurrentInventory:         currentInventory,
		DaysOfSupply:             daysOfSupply.Rounded(2),
		ReorderPoint:             roundFloat(reorderPoint, 2),
		RecommendedOrderQuantity: recommendedQty,
		Recommendation:           fmt.Sprintf("Stock below reorder point (%d units). Recommend ordering.", int(reorderPoint)),
	}, true
}
