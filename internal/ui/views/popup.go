package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay draws popupContent centered over a greyed copy of
// mainContent
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	if width <= 0 || height <= 0 {
		return styledPopup
	}

	popupLines := strings.Split(styledPopup, "\n")
	modalW := lipgloss.Width(styledPopup)
	modalH := len(popupLines)
	x := (width - modalW) / 2
	y := (height - modalH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	base := strings.Split(ansi.Strip(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}

	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	out := make([]string, 0, len(base))
	for i, line := range base {
		row := []rune(line)
		if i < y || i >= y+modalH {
			out = append(out, gray.Render(line))
			continue
		}
		left := padRunes(row, x)[:x]
		right := ""
		if end := x + modalW; end < len(row) {
			right = string(row[end:])
		}
		out = append(out, gray.Render(string(left))+popupLines[i-y]+gray.Render(right))
	}
	return strings.Join(out, "\n")
}

func padRunes(r []rune, n int) []rune {
	for len(r) < n {
		r = append(r, ' ')
	}
	return r
}
