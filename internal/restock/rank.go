package restock

import (
	"sort"

	"github.com/sellerkit/restock-go/internal/domain"
)

// Rank sorts recommendations in place by urgency: ascending days of
// supply, the least cover first. Ties are broken by SKU so output order
// is deterministic for identical inputs.
func Rank(recommendations []domain.RestockRecommendation) {
	sort.Slice(recommendations, func(i, j int) bool {
		a, b := recommendations[i], recommendations[j]
		if a.DaysOfSupply.Equal(b.DaysOfSupply) {
			return a.SKU < b.SKU
		}
		return a.DaysOfSupply.Less(b.DaysOfSupply)
	})
}
