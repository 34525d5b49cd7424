// v1
// file: main.go
// GeoPulse service: polls a directory of client CSV files, reconciles them to a
// canonical schema, deduplicates, and exposes geographic aggregates as JSON.
//
// Endpoints:
//
//	GET /health
//	GET /snapshot
//	GET /countries
//	GET /cities?country=X
//	GET /files
//
// Logging:
//
//	Uses slog, logs every refresh and request to stdout. Ready for redirection
//	to files in container/orchestrator.
package main

import (
	"os"

	"github.com/anasakhssas/geopulse/internal"
)

func main() {
	if err := internal.StartCmd(); err != nil {
		os.Exit(1)
	}
}
