package domain

import "time"

// FileItem is one entry produced by a scan
type FileItem struct {
	Name         string // final path component
	Path         string // absolute path as produced by the walk
	RelativePath string // path shown in the list, relative to the root
	IsDir        bool
}

// SearchState holds the inputs of the next scan
type SearchState struct {
	Root    string // absolute root chosen by the user ("" until chosen)
	Query   string // case-sensitive substring, "" matches everything
	Enabled bool   // true once a root has been chosen
}

// SetRoot stores a chosen root and enables searching
func (s *SearchState) SetRoot(root string) {
	s.Root = root
	s.Enabled = root != ""
}

// ScanSummary describes a finished scan for diagnostics
type ScanSummary struct {
	Root     string
	Query    string
	Matches  int
	Skipped  int // entries dropped because of walk or path errors
	Duration time.Duration
}
