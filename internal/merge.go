// v2
// file: internal/merge.go
package internal

type recordKey struct {
	name, country, city string
}

// mergeRecords concatenates the per-file slices preserving file order, then
// row order within each file, and deduplicates on (name, country, city).
// First occurrence wins; later duplicates are dropped, so the result does not
// depend on which file happens to repeat a client.
func mergeRecords(perFile [][]ClientRecord) []ClientRecord {
	seen := make(map[recordKey]bool)
	out := make([]ClientRecord, 0)
	for _, recs := range perFile {
		for _, r := range recs {
			k := recordKey{r.Name, r.Country, r.City}
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, r)
		}
	}
	return out
}

// countByCountry maps each country to its surviving record count.
func countByCountry(recs []ClientRecord) map[string]int {
	out := make(map[string]int)
	for _, r := range recs {
		out[r.Country]++
	}
	return out
}

// countByCity maps country -> city -> surviving record count. Ordering for
// display is the dashboard's concern, not ours.
func countByCity(recs []ClientRecord) map[string]map[string]int {
	out := make(map[string]map[string]int)
	for _, r := range recs {
		m, ok := out[r.Country]
		if !ok {
			m = make(map[string]int)
			out[r.Country] = m
		}
		m[r.City]++
	}
	return out
}
