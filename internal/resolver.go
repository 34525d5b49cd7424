// v1
// file: internal/resolver.go
package internal

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ResolveFiles lists the *.csv files in dir along with their modification
// times. The match is case-sensitive. A missing or unreadable directory is
// resolved to an empty set, not an error; freshness is the caller's problem,
// so the directory is re-scanned on every call.
func ResolveFiles(dir string) []FileInfo {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	out := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, FileInfo{
			Name:       e.Name(),
			Path:       filepath.Join(dir, e.Name()),
			ModifiedAt: info.ModTime(),
		})
	}
	// sort by name so the merge order is stable across platforms
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
