package restock

import (
	"testing"

	"github.com/sellerkit/restock-go/internal/domain"
)

func recWithSupply(sku string, supply domain.DaysOfSupply) domain.RestockRecommendation {
	return domain.RestockRecommendation{SKU: sku, DaysOfSupply: supply}
}

func TestRank_MostUrgentFirst(t *testing.T) {
	recs := []domain.RestockRecommendation{
		recWithSupply("Y", domain.FiniteDays(7.5)),
		recWithSupply("X", domain.FiniteDays(2.0)),
	}

	Rank(recs)

	if recs[0].SKU != "X" || recs[1].SKU != "Y" {
		t.Errorf("order = [%s %s], want [X Y]", recs[0].SKU, recs[1].SKU)
	}
}

func TestRank_NonDecreasingSupply(t *testing.T) {
	recs := []domain.RestockRecommendation{
		recWithSupply("A", domain.FiniteDays(12)),
		recWithSupply("B", domain.FiniteDays(0.5)),
		recWithSupply("C", domain.InfiniteDays()),
		recWithSupply("D", domain.FiniteDays(3)),
		recWithSupply("E", domain.FiniteDays(0.5)),
	}

	Rank(recs)

	for i := 1; i < len(recs); i++ {
		if recs[i].DaysOfSupply.Less(recs[i-1].DaysOfSupply) {
			t.Errorf("position %d (%s) is more urgent than position %d (%s)",
				i, recs[i].SKU, i-1, recs[i-1].SKU)
		}
	}
	if recs[len(recs)-1].SKU != "C" {
		t.Errorf("infinite supply should sort last, got %s", recs[len(recs)-1].SKU)
	}
}

func TestRank_TiesBrokenBySKU(t *testing.T) {
	recs := []domain.RestockRecommendation{
		recWithSupply("Z", domain.FiniteDays(4)),
		recWithSupply("A", domain.FiniteDays(4)),
		recWithSupply("M", domain.FiniteDays(4)),
	}

	Rank(recs)

	want := []string{"A", "M", "Z"}
	for i, sku := range want {
		if recs[i].SKU != sku {
			t.Errorf("position %d = %s, want %s", i, recs[i].SKU, sku)
		}
	}
}
