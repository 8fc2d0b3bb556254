package input

import (
	"filefinder/internal/ui/input/modes"
	"filefinder/internal/ui/input/types"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes
}

func New() *Handler {
	ti := textinput.New()
	ti.Prompt = ""

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeQuery] = modes.NewQueryMode(h.textInput)
	h.modes[types.ModeNarrow] = modes.NewNarrowMode(h.textInput)
	h.modes[types.ModeDeleteConfirm] = modes.NewConfirmMode()
	h.modes[types.ModePickFolder] = modes.NewPickerMode()

	return h
}

// HandleKey routes a key to the current mode. Keys the mode does not claim
// are fed to the shared text input in text modes and dropped otherwise; in
// picker mode the caller forwards them when no actions come back.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	// Handle mode changes
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		allActions = append(allActions, h.switchMode(changeMode.Mode, changeMode.Data, ctx)...)
		if h.isTextMode(h.currentMode) {
			cmd = textinput.Blink
		}
		allActions = append(allActions, changeMode)
	}

	// If we're in a text mode and didn't handle the key, pass it to text input
	if !consumed && h.isTextMode(h.currentMode) {
		*h.textInput, cmd = h.textInput.Update(msg)
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value(), Mode: h.currentMode})
	}

	return allActions, cmd
}

func (h *Handler) switchMode(mode types.Mode, data string, ctx types.Context) []types.Action {
	var out []types.Action
	if cur := h.modes[h.currentMode]; cur != nil {
		out = append(out, cur.Exit(ctx)...)
	}

	h.currentMode = mode

	if h.isTextMode(mode) {
		h.textInput.Reset()
		h.textInput.SetValue(data)
		h.textInput.CursorEnd()
	}
	if next := h.modes[mode]; next != nil {
		out = append(out, next.Enter(ctx)...)
	}
	if !h.isTextMode(mode) {
		h.textInput.Blur()
	}
	return out
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	switch mode {
	case types.ModeQuery, types.ModeNarrow:
		return true
	default:
		return false
	}
}

// ChangeMode switches mode outside of key handling, e.g. when the folder
// picker reports a selection
func (h *Handler) ChangeMode(mode types.Mode, data string, ctx types.Context) tea.Cmd {
	h.switchMode(mode, data, ctx)
	if h.isTextMode(mode) {
		return textinput.Blink
	}
	return nil
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

// GetMode returns the current input mode
func (h *Handler) GetMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// Prompt returns the label for the active text mode
func (h *Handler) Prompt() string {
	if p, ok := h.modes[h.currentMode].(interface{ Prompt() string }); ok {
		return p.Prompt()
	}
	return ""
}

// ConfirmTarget returns the path the delete prompt is asking about
func (h *Handler) ConfirmTarget() string {
	if c, ok := h.modes[types.ModeDeleteConfirm].(*modes.ConfirmMode); ok {
		return c.Target()
	}
	return ""
}

// GetTextInput returns the text input model while a text mode is active
func (h *Handler) GetTextInput() *textinput.Model {
	if h == nil || !h.isTextMode(h.currentMode) {
		return nil
	}
	return h.textInput
}
