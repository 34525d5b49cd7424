// v3
// file: internal/normalize.go
package internal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// canonicalFields is the target schema, in reconciliation priority order.
var canonicalFields = []string{"name", "country", "city", "date"}

// fieldSynonyms maps canonical fields to alternate header spellings seen in
// the wild. Matching is by substring containment in either direction after
// lowercasing and trimming, against the field name or any of its synonyms.
var fieldSynonyms = map[string][]string{
	"name":    {"client", "customer"},
	"country": {"nation", "land"},
	"city":    {"town", "municipality"},
	"date":    {"entry", "signup", "registered"},
}

// dateLayouts are tried in order when parsing the date column.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	time.RFC3339,
}

// normalizeFile loads one CSV file and returns its admitted records plus the
// number of rows dropped for missing required fields. A structurally
// malformed file yields an error; the caller isolates it from other files.
func normalizeFile(fi FileInfo) ([]ClientRecord, int, error) {
	f, err := os.Open(fi.Path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, 0, errors.New("no header row")
	}

	cols := reconcileHeaders(rows[0])
	var out []ClientRecord
	dropped := 0
	for _, row := range rows[1:] {
		rec, ok := buildRecord(row, cols, fi)
		if !ok {
			dropped++
			continue
		}
		out = append(out, rec)
	}
	return out, dropped, nil
}

// reconcileHeaders maps canonical field names to column indexes. Exact
// matches win first; otherwise headers are scanned in file column order and
// the first bidirectional substring match (against the field name or a
// synonym) is claimed. A claimed column is never reused for another field.
// A file already using canonical headers is unaffected.
func reconcileHeaders(raw []string) map[string]int {
	headers := make([]string, len(raw))
	for i, h := range raw {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}
	claimed := make(map[int]bool, len(canonicalFields))
	cols := make(map[string]int, len(canonicalFields))
	for _, field := range canonicalFields {
		idx := -1
		for i, h := range headers {
			if claimed[i] {
				continue
			}
			if h == field {
				idx = i
				break
			}
		}
		if idx < 0 {
			for i, h := range headers {
				if claimed[i] || h == "" {
					continue
				}
				if headerMatches(h, field) {
					idx = i
					break
				}
			}
		}
		if idx >= 0 {
			claimed[idx] = true
			cols[field] = idx
		}
	}
	return cols
}

func headerMatches(header, field string) bool {
	if bidiContains(header, field) {
		return true
	}
	for _, syn := range fieldSynonyms[field] {
		if bidiContains(header, syn) {
			return true
		}
	}
	return false
}

func bidiContains(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// buildRecord admits a row only when name, country and city are all non-blank
// after trimming. A bad or missing date never drops the row; it becomes the
// unknown marker (nil).
func buildRecord(row []string, cols map[string]int, fi FileInfo) (ClientRecord, bool) {
	rec := ClientRecord{
		Name:           fieldAt(row, cols, "name"),
		Country:        fieldAt(row, cols, "country"),
		City:           fieldAt(row, cols, "city"),
		SourceFile:     fi.Name,
		FileModifiedAt: fi.ModifiedAt,
	}
	if rec.Name == "" || rec.Country == "" || rec.City == "" {
		return rec, false
	}
	rec.Date = parseDate(fieldAt(row, cols, "date"))
	return rec, true
}

func fieldAt(row []string, cols map[string]int, field string) string {
	idx, ok := cols[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseDate tries the accepted layouts in order; nil means unknown.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return &ts
		}
	}
	return nil
}
