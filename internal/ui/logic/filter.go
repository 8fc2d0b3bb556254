package logic

import (
	"github.com/sahilm/fuzzy"

	"filefinder/internal/domain"
)

// relativePaths adapts a result list to fuzzy.Source
type relativePaths []domain.FileItem

func (r relativePaths) String(i int) string { return r[i].RelativePath }
func (r relativePaths) Len() int            { return len(r) }

// NarrowFilter fuzzy-matches the displayed list by relative path. It never
// rescans; it only picks which of the current results are shown.
type NarrowFilter struct {
	MaxResults int // 0 means unlimited
}

// NewNarrowFilter creates a narrow filter
func NewNarrowFilter() *NarrowFilter {
	return &NarrowFilter{}
}

// Apply returns indices into items that match query, best match first.
// An empty query keeps every item in its original order.
func (f *NarrowFilter) Apply(items []domain.FileItem, query string) []int {
	if query == "" {
		idx := make([]int, len(items))
		for i := range items {
			idx[i] = i
		}
		return idx
	}

	matches := fuzzy.FindFrom(query, relativePaths(items))
	idx := make([]int, 0, len(matches))
	for _, m := range matches {
		idx = append(idx, m.Index)
		if f.MaxResults > 0 && len(idx) >= f.MaxResults {
			break
		}
	}
	return idx
}

// MatchedIndexes returns the character positions of query within the item's
// relative path, for highlighting. Nil when nothing matches.
func (f *NarrowFilter) MatchedIndexes(item domain.FileItem, query string) []int {
	if query == "" {
		return nil
	}
	matches := fuzzy.Find(query, []string{item.RelativePath})
	if len(matches) == 0 {
		return nil
	}
	return matches[0].MatchedIndexes
}
