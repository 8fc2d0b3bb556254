package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"filefinder/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Root           string
	Query          string
	HasSearched    bool
	Items          []domain.FileItem // visible rows in display order
	Matched        map[int][]int     // row index -> highlighted rune offsets
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	TotalFiles     int // results before narrowing
	NarrowQuery    string
	StatusMessage  string
	StatusIsError  bool
	ShowHelp       bool
	ShowHelpHint   bool
	HelpModel      help.Model
	Keys           KeyMap
	InputMode      string // "", "query", "narrow", "delete-confirm", "pick-folder"
	Prompt         string
	TextInput      string // rendered text input for the active text mode
	DeleteTarget   string
	PickerView     string
	PickerDir      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	fileRender  *FileRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		fileRender:  NewFileRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n\n")

	// Root line
	if state.Root == "" {
		content.WriteString(r.styles.Dim.Render("No folder selected. Press o to pick one."))
	} else {
		content.WriteString("Folder: ")
		content.WriteString(r.styles.Root.Render(state.Root))
	}
	content.WriteString("\n")

	// Query line or the active prompt
	switch state.InputMode {
	case "query", "narrow":
		content.WriteString(r.styles.Prompt.Render(state.Prompt))
		content.WriteString(state.TextInput)
	case "delete-confirm":
		content.WriteString(r.styles.Confirm.Render(fmt.Sprintf("Delete %s? (y/n): ", state.DeleteTarget)))
	default:
		if state.Query != "" {
			content.WriteString(r.styles.Dim.Render("Search: "))
			content.WriteString(state.Query)
		} else {
			content.WriteString(r.styles.Dim.Render("Search: (everything)"))
		}
	}
	content.WriteString("\n\n")

	// Main content
	switch {
	case state.InputMode == "pick-folder":
		content.WriteString(r.renderPicker(state))
	case !state.HasSearched:
		content.WriteString(r.styles.Dim.Render("Press enter to search."))
	case state.TotalFiles == 0:
		content.WriteString(r.styles.Dim.Render("No matches."))
	case len(state.Items) == 0:
		content.WriteString(r.styles.Dim.Render("Nothing matches the narrow filter."))
	default:
		content.WriteString(r.renderFileList(state))
	}

	// Status line
	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = style.Inherit(r.styles.StatusError)
		}
		content.WriteString("\n")
		content.WriteString(style.Render(state.StatusMessage))
	}

	// Help hint pushed to the bottom
	if state.ShowHelpHint && !state.ShowHelp {
		helpText := r.styles.Help.Render(state.HelpModel.ShortHelpView(state.Keys.ShortHelp()))
		if state.InputMode == "pick-folder" {
			helpText = r.styles.Help.Render("enter/l pick • →/h browse • . pick this folder • esc cancel")
		}
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22
		}
		if pad := availableLines - currentLines - 1; pad > 0 {
			content.WriteString(strings.Repeat("\n", pad))
		}
		content.WriteString("\n")
		content.WriteString(helpText)
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.ShowHelp {
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderHelpContent(state), state.Height, state.Width, r.styles.HelpBox)
	}
	return finalContent
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("filefinder")
	if state.NarrowQuery == "" || state.InputMode == "narrow" {
		return logo
	}

	right := r.styles.Filter.Render(fmt.Sprintf("[Narrow: %s  %d/%d]", state.NarrowQuery, len(state.Items), state.TotalFiles))
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	pad := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if pad < 2 {
		pad = 2
	}
	return logo + strings.Repeat(" ", pad) + right
}

// renderFileList renders the rows inside the viewport with scroll indicators
func (r *Renderer) renderFileList(state ViewState) string {
	total := len(state.Items)
	height := state.ViewportHeight
	if height < 1 {
		height = 1
	}

	offset, end, needsTop, needsBottom := window(total, height, state.ViewportOffset, state.SelectedIndex)

	var lines []string
	if needsTop {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", offset)))
	}
	for i := offset; i < end; i++ {
		lines = append(lines, r.fileRender.RenderFile(state.Items[i], i == state.SelectedIndex, state.Matched[i], state.Width))
	}
	if needsBottom {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", total-end)))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) renderPicker(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Dim.Render("Pick a folder: "))
	b.WriteString(r.styles.Root.Render(state.PickerDir))
	b.WriteString("\n")
	b.WriteString(state.PickerView)
	return b.String()
}

// renderHelpContent renders the help popup body
func (r *Renderer) renderHelpContent(state ViewState) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	h := state.HelpModel
	h.ShowAll = true

	var b strings.Builder
	b.WriteString(titleStyle.Render("filefinder help"))
	b.WriteString("\n")
	b.WriteString(h.FullHelpView(state.Keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Dim.Render("Search matches names case-sensitively; narrow is fuzzy on paths."))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("Press ? or esc to close"))
	return b.String()
}

// window picks the rows shown for a viewport of height lines, keeping sel on
// screen once scroll indicators take their lines
func window(total, height, offset, sel int) (start, end int, top, bottom bool) {
	if offset > total-1 {
		offset = total - 1
	}
	if offset < 0 {
		offset = 0
	}
	for pass := 0; pass < 3; pass++ {
		top = offset > 0
		effective := height
		if top {
			effective--
		}
		bottom = offset+effective < total
		if bottom {
			effective--
		}
		if effective < 1 {
			effective = 1
		}
		end = offset + effective
		if end > total {
			end = total
		}
		if sel < end || sel >= total {
			break
		}
		offset = sel - effective + 1
	}
	return offset, end, top, bottom
}
