package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRefreshPartialFailure(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "good.csv",
		"name,country,city,date\n"+
			"Alice,US,NYC,2024-01-01\n"+
			"Bob,FR,Paris,2024-02-02\n")
	writeFixture(t, dir, "corrupt.csv",
		"name,country,city,date\n"+
			"\"Broken,US,NYC\n")

	snap := Refresh(discardLogger(), Config{InputDir: dir, RefreshInterval: 10 * time.Second})

	if len(snap.Errors) != 1 || snap.Errors[0].File != "corrupt.csv" {
		t.Fatalf("expected one error for corrupt.csv, got %+v", snap.Errors)
	}
	if len(snap.Records) != 2 {
		t.Fatalf("expected 2 records from the valid file, got %d", len(snap.Records))
	}
	if len(snap.Files) != 1 || snap.Files[0].Name != "good.csv" {
		t.Fatalf("expected loaded files [good.csv], got %+v", snap.Files)
	}
	if snap.Files[0].Records != 2 {
		t.Fatalf("expected per-file record count 2, got %d", snap.Files[0].Records)
	}
}

func TestRefreshEmptyDir(t *testing.T) {
	snap := Refresh(discardLogger(), Config{InputDir: t.TempDir(), RefreshInterval: 10 * time.Second})
	if len(snap.Records) != 0 || len(snap.Errors) != 0 {
		t.Fatalf("expected empty snapshot, got %d records %d errors", len(snap.Records), len(snap.Errors))
	}
	if len(snap.CountryCounts) != 0 || len(snap.CityCounts) != 0 {
		t.Fatalf("expected zero-count aggregates, got %v / %v", snap.CountryCounts, snap.CityCounts)
	}
	if snap.ID == "" || snap.GeneratedAt.IsZero() {
		t.Fatalf("expected snapshot id and timestamp to be set")
	}
}

func TestRefreshDeduplicatesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "one.csv",
		"name,country,city,date\n"+
			"Alice,US,NYC,2024-01-01\n")
	writeFixture(t, dir, "two.csv",
		"name,country,city,date\n"+
			"Alice,US,NYC,2024-01-01\n")

	snap := Refresh(discardLogger(), Config{InputDir: dir, RefreshInterval: 10 * time.Second})

	if len(snap.Records) != 1 {
		t.Fatalf("expected 1 merged record, got %d", len(snap.Records))
	}
	if snap.Records[0].SourceFile != "one.csv" {
		t.Fatalf("expected first-seen provenance one.csv, got %q", snap.Records[0].SourceFile)
	}
	if snap.CountryCounts["US"] != 1 {
		t.Fatalf("expected US count 1, got %d", snap.CountryCounts["US"])
	}
}

func TestRefreshCountSumsMatchDataset(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "mixed.csv",
		"Client_Name,Nation,City_Name,Entry_Date\n"+
			"Alice,US,NYC,2024-01-01\n"+
			"Bob,US,Boston,not-a-date\n"+
			"Carol,FR,Paris,\n"+
			",FR,Paris,2024-01-01\n")

	snap := Refresh(discardLogger(), Config{InputDir: dir, RefreshInterval: 10 * time.Second})

	if len(snap.Records) != 3 {
		t.Fatalf("expected 3 admitted records, got %d", len(snap.Records))
	}
	if snap.DroppedRows != 1 {
		t.Fatalf("expected 1 dropped row, got %d", snap.DroppedRows)
	}
	sum := 0
	for _, n := range snap.CountryCounts {
		sum += n
	}
	if sum != len(snap.Records) {
		t.Fatalf("country counts sum %d, want %d", sum, len(snap.Records))
	}
	sum = 0
	for _, m := range snap.CityCounts {
		for _, n := range m {
			sum += n
		}
	}
	if sum != len(snap.Records) {
		t.Fatalf("city counts sum %d, want %d", sum, len(snap.Records))
	}
}

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
