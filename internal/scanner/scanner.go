package scanner

import (
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"filefinder/internal/domain"
	"filefinder/internal/eventbus"
)

// Scanner lists the entries below a root whose name contains a query
type Scanner interface {
	Scan(root, query string) []domain.FileItem
}

// Service runs scans and reports each one on the event bus
type Service struct {
	bus eventbus.EventBus
}

// NewService creates a scanner that publishes a ScanCompletedEvent per scan.
// bus may be nil.
func NewService(bus eventbus.EventBus) *Service {
	return &Service{bus: bus}
}

// Scan walks root and returns the matching entries
func (s *Service) Scan(root, query string) []domain.FileItem {
	start := time.Now()
	items, skipped := scan(root, query)

	if s.bus != nil {
		s.bus.Publish(eventbus.ScanCompletedEvent{Summary: domain.ScanSummary{
			Root:     root,
			Query:    query,
			Matches:  len(items),
			Skipped:  skipped,
			Duration: time.Since(start),
		}})
	}
	return items
}

// Scan walks root depth-first and returns every entry below it, files and
// directories alike, whose name contains query. An empty query matches
// everything. Entries that fail to stat or read are skipped; the walk never
// aborts early. The order follows the walk and is not otherwise guaranteed.
// A relative root is resolved against the working directory, so every Path
// is absolute.
func Scan(root, query string) []domain.FileItem {
	items, _ := scan(root, query)
	return items
}

func scan(root, query string) ([]domain.FileItem, int) {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	} else {
		root = filepath.Clean(root)
	}
	items := make([]domain.FileItem, 0)
	skipped := 0

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Printf("Error walking path %s: %v", path, err)
			skipped++
			// Returning nil skips an unreadable directory's contents but keeps walking
			return nil
		}

		// WalkDir yields the root itself first. It is never a result, not
		// even under an empty query
		if path == root {
			return nil
		}

		item, ok := newFileItem(root, path, d)
		if !ok {
			skipped++
			return nil
		}

		if query == "" || strings.Contains(item.Name, query) {
			items = append(items, item)
		}
		return nil
	})

	return items, skipped
}

// newFileItem builds the item for path, relative to root
func newFileItem(root, path string, d fs.DirEntry) (domain.FileItem, bool) {
	name := filepath.Base(path)

	var rel string
	if filepath.Dir(path) == root {
		rel = name
	} else {
		r, err := filepath.Rel(root, path)
		if err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
			return domain.FileItem{}, false
		}
		rel = r
	}

	return domain.FileItem{
		Name:         name,
		Path:         path,
		RelativePath: rel,
		IsDir:        d.IsDir(),
	}, true
}
