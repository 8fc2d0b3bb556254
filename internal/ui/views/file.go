package views

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"filefinder/internal/domain"
)

// FileRenderer handles rendering of result rows
type FileRenderer struct {
	styles *Styles
}

// NewFileRenderer creates a new file renderer
func NewFileRenderer(styles *Styles) *FileRenderer {
	return &FileRenderer{styles: styles}
}

// RenderFile renders one result as its relative path. matched holds rune
// offsets into the relative path to highlight. Directories get a trailing
// separator.
func (r *FileRenderer) RenderFile(item domain.FileItem, isSelected bool, matched []int, width int) string {
	name := item.RelativePath
	if name == "" {
		name = item.Name
	}

	base := lipgloss.NewStyle()
	if item.IsDir {
		base = r.styles.Directory
	}
	hl := r.styles.Highlight
	if isSelected {
		base = base.Inherit(r.styles.SelectionBg)
		hl = hl.Inherit(r.styles.SelectionBg)
	}

	var b strings.Builder
	cursor := "  "
	if isSelected {
		cursor = "> "
	}
	b.WriteString(base.Render(cursor))

	hits := make(map[int]bool, len(matched))
	for _, i := range matched {
		hits[i] = true
	}
	for i, ch := range []rune(name) {
		if hits[i] {
			b.WriteString(hl.Render(string(ch)))
		} else {
			b.WriteString(base.Render(string(ch)))
		}
	}
	if item.IsDir {
		b.WriteString(base.Render(string(filepath.Separator)))
	}

	line := b.String()
	// Leave room for the container padding
	if width > 0 && lipgloss.Width(line) > width-4 {
		line = ansi.Truncate(line, width-4, "…")
	}
	return line
}
