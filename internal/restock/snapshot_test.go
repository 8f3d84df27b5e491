package restock

import (
	"testing"

	"github.com/sellerkit/restock-go/internal/domain"
)

func TestBuildSnapshot_SkipsBadRows(t *testing.T) {
	rows := []domain.RawInventoryRow{
		{SKU: "A", Available: "10"},
		{SKU: "", Available: "5"},
		{SKU: "B", Available: "-1"},
		{SKU: "C", Available: "abc"},
		{SKU: "D", Available: "0"},
	}

	snapshot := BuildSnapshot(rows, domain.LastWins)

	if len(snapshot) != 2 {
		t.Fatalf("snapshot has %d entries, want 2", len(snapshot))
	}
	if snapshot.Available("A") != 10 {
		t.Errorf("A = %d, want 10", snapshot.Available("A"))
	}
	if snapshot.Available("D") != 0 {
		t.Errorf("D = %d, want 0", snapshot.Available("D"))
	}
}

func TestBuildSnapshot_DuplicatePolicy(t *testing.T) {
	rows := []domain.RawInventoryRow{
		{SKU: "A", Available: "10"},
		{SKU: "A", Available: "25"},
	}

	tests := []struct {
		policy domain.DuplicatePolicy
		want   int
	}{
		{domain.LastWins, 25},
		{domain.FirstWins, 10},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			snapshot := BuildSnapshot(rows, tt.policy)
			if got := snapshot.Available("A"); got != tt.want {
				t.Errorf("A = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSnapshot_MissingSkuDefaultsToZero(t *testing.T) {
	snapshot := BuildSnapshot(nil, domain.LastWins)
	if got := snapshot.Available("missing"); got != 0 {
		t.Errorf("missing SKU = %d, want 0", got)
	}
}
