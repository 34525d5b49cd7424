// v2
// file: internal/types.go
package internal

import (
	"time"
)

// ClientRecord is one normalized row from an input CSV file.
type ClientRecord struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	City    string `json:"city"`
	// Date is nil when the source value was missing or unparseable.
	Date           *time.Time `json:"date"`
	SourceFile     string     `json:"sourceFile"`
	FileModifiedAt time.Time  `json:"fileModifiedAt"`
}

// FileInfo describes one resolved input file.
type FileInfo struct {
	Name       string    `json:"name"`
	Path       string    `json:"-"`
	ModifiedAt time.Time `json:"modifiedAt"`
	// Records is the number of admitted rows, filled in during refresh.
	Records int `json:"records"`
}

// FileError reports a file that could not be ingested at all.
type FileError struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// Snapshot is the result of one full refresh pass. It is recomputed from
// scratch every tick; nothing in it is carried over between refreshes.
type Snapshot struct {
	ID            string                    `json:"id"`
	GeneratedAt   time.Time                 `json:"generatedAt"`
	Records       []ClientRecord            `json:"records"`
	CountryCounts map[string]int            `json:"countryCounts"`
	CityCounts    map[string]map[string]int `json:"cityCounts"` // country -> city -> count
	Files         []FileInfo                `json:"files"`
	Errors        []FileError               `json:"errors"`
	DroppedRows   int                       `json:"droppedRows"`
}
