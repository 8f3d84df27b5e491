package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sellerkit/restock-go/internal/domain"
)

func sampleRecommendations() []domain.RestockRecommendation {
	return []domain.RestockRecommendation{
		{
			SKU:                      "A",
			AvgDailySales:            10,
			CurrentInventory:         50,
			DaysOfSupply:             domain.FiniteDays(5),
			ReorderPoint:             310,
			RecommendedOrderQuantity: 400,
			Recommendation:           "Stock below reorder point (310 units). Recommend ordering.",
		},
		{
			SKU:                      "B",
			AvgDailySales:            2.5,
			CurrentInventory:         4,
			DaysOfSupply:             domain.FiniteDays(1.6),
			ReorderPoint:             77.5,
			RecommendedOrderQuantity: 108,
			Recommendation:           "Stock below reorder point (77 units). Recommend ordering.",
		},
	}
}

func TestWrite_FieldOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleRecommendations()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	wantHeader := "sku,avg_daily_sales,current_inventory,days_of_supply,reorder_point,recommended_order_quantity,recommendation"
	if lines[0] != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}

	wantRow := "A,10.00,50,5.00,310.00,400,Stock below reorder point (310 units). Recommend ordering."
	if lines[1] != wantRow {
		t.Errorf("row 1 = %q, want %q", lines[1], wantRow)
	}
}

func TestWrite_EmptyStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got := strings.TrimRight(buf.String(), "\n")
	if strings.Count(got, "\n") != 0 || !strings.HasPrefix(got, "sku,") {
		t.Errorf("expected a header-only document, got %q", buf.String())
	}
}

func TestWrite_Idempotent(t *testing.T) {
	recs := sampleRecommendations()

	var first, second bytes.Buffer
	if err := Write(&first, recs); err != nil {
		t.Fatalf("first Write: %v", err)
	}
	if err := Write(&second, recs); err != nil {
		t.Fatalf("second Write: %v", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("two writes of the same recommendations differ")
	}
}
