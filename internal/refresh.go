// v3
// file: internal/refresh.go
package internal

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Refresh runs one full resolve -> normalize -> merge -> aggregate pass over
// the input directory and returns a fresh Snapshot. It holds no state between
// calls, so overlapping invocations are independent. A single malformed file
// is recorded in the error list and never prevents the others from loading;
// zero valid files yields an empty dataset with zero counts, not an error.
func Refresh(log *slog.Logger, cfg Config) Snapshot {
	files := ResolveFiles(cfg.InputDir)
	snap := Snapshot{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now(),
	}

	perFile := make([][]ClientRecord, 0, len(files))
	for _, fi := range files {
		recs, dropped, err := normalizeFile(fi)
		if err != nil {
			log.Error("file_skip", "file", fi.Name, "err", err)
			snap.Errors = append(snap.Errors, FileError{File: fi.Name, Reason: err.Error()})
			continue
		}
		fi.Records = len(recs)
		snap.DroppedRows += dropped
		snap.Files = append(snap.Files, fi)
		perFile = append(perFile, recs)
	}

	snap.Records = mergeRecords(perFile)
	snap.CountryCounts = countByCountry(snap.Records)
	snap.CityCounts = countByCity(snap.Records)

	log.Info("refresh_done",
		"snapshot", snap.ID,
		"files", len(snap.Files),
		"records", len(snap.Records),
		"countries", len(snap.CountryCounts),
		"dropped_rows", snap.DroppedRows,
		"file_errors", len(snap.Errors),
	)
	return snap
}
