package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestReadSalesRows(t *testing.T) {
	content := "order-status\tsku\tquantity\tpurchase-date\textra\n" +
		"Shipped\tA\t3\t2025-07-10T20:58:30+00:00\tx\n" +
		"Pending\tB\t1\t2025-07-11T08:00:00+00:00\ty\n" +
		"Shipped\tC\t2\n"

	rows, err := ReadSalesRows(writeTempFile(t, "sales.csv", content))
	if err != nil {
		t.Fatalf("ReadSalesRows: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0].SKU != "A" || rows[0].Quantity != "3" || rows[0].OrderStatus != "Shipped" {
		t.Errorf("row 0 = %+v", rows[0])
	}
	// Status filtering is the aggregator's job: unshipped rows pass through.
	if rows[1].OrderStatus != "Pending" {
		t.Errorf("row 1 status = %q, want Pending", rows[1].OrderStatus)
	}
	// Short record: missing columns come back empty.
	if rows[2].PurchaseDate != "" {
		t.Errorf("row 2 purchase date = %q, want empty", rows[2].PurchaseDate)
	}
}

func TestReadSalesRows_MissingFile(t *testing.T) {
	_, err := ReadSalesRows(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected an error for a missing feed")
	}
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("error %v should wrap ErrSourceUnavailable", err)
	}
}

func TestReadSalesRows_EmptyFile(t *testing.T) {
	rows, err := ReadSalesRows(writeTempFile(t, "empty.csv", ""))
	if err != nil {
		t.Fatalf("an empty feed is not a failure: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestReadSalesRows_HeaderOnly(t *testing.T) {
	rows, err := ReadSalesRows(writeTempFile(t, "header.csv", "order-status\tsku\tquantity\tpurchase-date\n"))
	if err != nil {
		t.Fatalf("ReadSalesRows: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}
