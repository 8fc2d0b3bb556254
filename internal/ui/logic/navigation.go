package logic

import (
	"filefinder/internal/ui/state"
)

// Navigator moves the cursor over the visible list and keeps it on screen
type Navigator struct {
	state *state.AppState
}

// NewNavigator creates a navigator over the given state
func NewNavigator(s *state.AppState) *Navigator {
	return &Navigator{state: s}
}

// GetMaxIndex returns the maximum selectable index, -1 for an empty list
func (n *Navigator) GetMaxIndex() int {
	return len(n.state.Visible) - 1
}

// Navigate moves the cursor in the given direction:
// "up", "down", "pageup", "pagedown", "home" or "end"
func (n *Navigator) Navigate(direction string) {
	s := n.state
	if len(s.Visible) == 0 {
		s.SelectedIndex = 0
		s.ViewportOffset = 0
		return
	}

	pageSize := s.ViewportHeight - 1
	if pageSize < 1 {
		pageSize = 1
	}

	switch direction {
	case "up":
		s.SelectedIndex--
	case "down":
		s.SelectedIndex++
	case "pageup":
		s.SelectedIndex -= pageSize
		// Also scroll viewport up
		s.ViewportOffset -= pageSize
	case "pagedown":
		s.SelectedIndex += pageSize
	case "home":
		s.SelectedIndex = 0
		s.ViewportOffset = 0
	case "end":
		s.SelectedIndex = n.GetMaxIndex()
	}

	s.SelectedIndex = n.clampIndex(s.SelectedIndex)
	s.EnsureSelectedVisible()
}

func (n *Navigator) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if last := n.GetMaxIndex(); index > last {
		return last
	}
	return index
}
