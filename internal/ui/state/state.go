package state

import (
	"filefinder/internal/domain"
)

// AppState contains all the application state. It is owned by the UI update
// loop and only mutated from there.
type AppState struct {
	// Search inputs
	Search domain.SearchState

	// Results of the last scan; replaced wholesale by every search
	Files       []domain.FileItem
	HasSearched bool

	// Narrowing of the displayed list, indices into Files
	NarrowQuery string
	Visible     []int

	// Selection and viewport, SelectedIndex indexes Visible
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int

	// UI state
	ShowHelp      bool
	StatusMessage string
	StatusIsError bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Files:          make([]domain.FileItem, 0),
		Visible:        make([]int, 0),
		ViewportHeight: 20, // Default
	}
}

// SearchEnabled reports whether a root has been chosen
func (s *AppState) SearchEnabled() bool {
	return s.Search.Enabled
}

// ReplaceFiles installs a new result list and resets narrowing and selection
func (s *AppState) ReplaceFiles(items []domain.FileItem) {
	s.Files = items
	s.HasSearched = true
	s.NarrowQuery = ""
	s.Visible = make([]int, len(items))
	for i := range items {
		s.Visible[i] = i
	}
	s.SelectedIndex = 0
	s.ViewportOffset = 0
}

// SetVisible installs a narrowed view of Files
func (s *AppState) SetVisible(query string, indices []int) {
	s.NarrowQuery = query
	s.Visible = indices
	s.ClampSelection()
}

// VisibleItems returns the items currently shown, in display order
func (s *AppState) VisibleItems() []domain.FileItem {
	out := make([]domain.FileItem, 0, len(s.Visible))
	for _, i := range s.Visible {
		if i >= 0 && i < len(s.Files) {
			out = append(out, s.Files[i])
		}
	}
	return out
}

// SelectedItem returns the item under the cursor
func (s *AppState) SelectedItem() (domain.FileItem, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Visible) {
		return domain.FileItem{}, false
	}
	i := s.Visible[s.SelectedIndex]
	if i < 0 || i >= len(s.Files) {
		return domain.FileItem{}, false
	}
	return s.Files[i], true
}

// ClampSelection keeps the cursor and viewport inside the visible list
func (s *AppState) ClampSelection() {
	if s.SelectedIndex >= len(s.Visible) {
		s.SelectedIndex = len(s.Visible) - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	s.EnsureSelectedVisible()
}

// EnsureSelectedVisible adjusts the viewport to keep the selected item visible
func (s *AppState) EnsureSelectedVisible() {
	if s.ViewportHeight < 1 {
		s.ViewportHeight = 1
	}
	if s.SelectedIndex < s.ViewportOffset {
		s.ViewportOffset = s.SelectedIndex
	} else if s.SelectedIndex >= s.ViewportOffset+s.ViewportHeight {
		s.ViewportOffset = s.SelectedIndex - s.ViewportHeight + 1
	}
	maxOffset := len(s.Visible) - s.ViewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ViewportOffset > maxOffset {
		s.ViewportOffset = maxOffset
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
}

// SetStatus sets an informational status line
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = false
}

// SetError sets an error status line
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = true
}
