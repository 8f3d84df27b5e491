package ingest

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestReadInventoryRows(t *testing.T) {
	content := "sku,available,condition\n" +
		"A,10,NEW\n" +
		"B,0,NEW\n" +
		"A,25,NEW\n"

	rows, err := ReadInventoryRows(writeTempFile(t, "inventory.csv", content))
	if err != nil {
		t.Fatalf("ReadInventoryRows: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	// Duplicates are preserved in feed order; the snapshot builder
	// applies the duplicate policy.
	if rows[0].SKU != "A" || rows[0].Available != "10" {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[2].SKU != "A" || rows[2].Available != "25" {
		t.Errorf("row 2 = %+v", rows[2])
	}
}

func TestReadInventoryRows_MissingFile(t *testing.T) {
	_, err := ReadInventoryRows(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("error %v should wrap ErrSourceUnavailable", err)
	}
}

func TestReadInventoryRows_EmptyFile(t *testing.T) {
	rows, err := ReadInventoryRows(writeTempFile(t, "empty.csv", ""))
	if err != nil {
		t.Fatalf("an empty feed is not a failure: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}
