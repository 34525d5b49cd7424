// v2
// file: internal/handlers.go
package internal

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		s.log.Error("error encoding JSON response", "err", err)
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]any{"error": msg})
}

// /health returns status, uptime, and refresh recency.
func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	ok, st := s.health.Healthy()
	st["uptime_s"] = int(time.Since(s.start).Seconds())
	status := http.StatusOK
	if !ok {
		status = http.StatusServiceUnavailable
	}
	s.writeJSON(w, status, st)
}

// /snapshot returns the full latest snapshot: records, counts, files, errors.
func (s *server) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.run.Latest())
}

// /countries returns the country -> client count mapping.
func (s *server) handleCountries(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.run.Latest().CountryCounts)
}

// /cities?country=X returns city counts, either for one country or for all.
func (s *server) handleCities(w http.ResponseWriter, r *http.Request) {
	snap := s.run.Latest()
	country := strings.TrimSpace(r.URL.Query().Get("country"))
	if country == "" {
		s.writeJSON(w, http.StatusOK, snap.CityCounts)
		return
	}
	cities, ok := snap.CityCounts[country]
	if !ok {
		s.writeError(w, http.StatusNotFound, "no data for country")
		return
	}
	s.writeJSON(w, http.StatusOK, cities)
}

// /files returns the loaded-file status view plus per-file ingestion errors.
func (s *server) handleFiles(w http.ResponseWriter, _ *http.Request) {
	snap := s.run.Latest()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"files":       snap.Files,
		"errors":      snap.Errors,
		"droppedRows": snap.DroppedRows,
		"generatedAt": snap.GeneratedAt,
	})
}
