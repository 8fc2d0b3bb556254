// Package handlers applies UI actions to the application state. Each
// handler takes the state record plus the action payload and the service it
// needs, and returns nothing the update loop has to interpret.
package handlers

import (
	"fmt"
	"log"
	"path/filepath"

	"filefinder/internal/fileops"
	"filefinder/internal/scanner"
	"filefinder/internal/ui/logic"
	"filefinder/internal/ui/state"
)

// SelectRoot installs a newly picked folder. Previous results stay on screen
// until the next search.
func SelectRoot(s *state.AppState, root string) {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	s.Search.SetRoot(root)
	s.SetStatus(fmt.Sprintf("Folder: %s", root))
}

// SetQuery stores the text typed in query mode
func SetQuery(s *state.AppState, query string) {
	s.Search.Query = query
}

// RunSearch scans the current root for the current query and replaces the
// result list. It does nothing until a root is selected.
func RunSearch(s *state.AppState, sc scanner.Scanner) {
	if !s.SearchEnabled() {
		s.SetStatus("Select a folder first (o)")
		return
	}

	items := sc.Scan(s.Search.Root, s.Search.Query)
	s.ReplaceFiles(items)

	switch len(items) {
	case 0:
		s.SetStatus("No matches")
	case 1:
		s.SetStatus("1 match")
	default:
		s.SetStatus(fmt.Sprintf("%d matches", len(items)))
	}
}

// Narrow fuzzy-filters the current results without rescanning
func Narrow(s *state.AppState, f *logic.NarrowFilter, query string) {
	s.SetVisible(query, f.Apply(s.Files, query))
}

// Delete removes one file. The result list is left alone; the
// entry disappears on the next search. Failures only reach the log through
// the deleter, so the status line is untouched and the row simply stays.
func Delete(s *state.AppState, d fileops.Deleter, path string) {
	if path == "" {
		return
	}
	if err := d.DeleteFile(path); err != nil {
		return
	}
	s.SetStatus(fmt.Sprintf("Deleted %s; search again to refresh", filepath.Base(path)))
}

// Reveal opens the folder containing path in the OS file manager
func Reveal(s *state.AppState, o fileops.Opener, path string) {
	if path == "" {
		return
	}
	o.OpenContainingFolder(path)
	s.SetStatus(fmt.Sprintf("Opening %s", filepath.Dir(path)))
}

// CopyPath puts path on the system clipboard
func CopyPath(s *state.AppState, copyFn func(string) error, path string) {
	if path == "" {
		return
	}
	if err := copyFn(path); err != nil {
		log.Printf("Clipboard write failed: %v", err)
		s.SetError(fmt.Sprintf("Copy failed: %v", err))
		return
	}
	s.SetStatus(fmt.Sprintf("Copied %s", path))
}

// PreviewFinished reports the outcome of a pager session
func PreviewFinished(s *state.AppState, path string, err error) {
	if err != nil {
		log.Printf("Preview of %s failed: %v", path, err)
		s.SetError(fmt.Sprintf("Preview failed: %v", err))
		return
	}
	s.SetStatus("")
}
