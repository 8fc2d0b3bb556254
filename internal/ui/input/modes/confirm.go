package modes

import (
	"filefinder/internal/ui/input/types"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmMode asks y/n before deleting the selected file
type ConfirmMode struct {
	path string
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "delete-confirm"
}

// Target returns the path awaiting confirmation
func (m *ConfirmMode) Target() string {
	return m.path
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	// Store the path when entering the mode so a later cursor move cannot change it
	m.path = ctx.SelectedPath()
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	m.path = ""
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y":
		return []types.Action{
			types.DeleteFileAction{Path: m.path},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "esc", "n", "N":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	// Swallow everything else while the prompt is up
	return nil, true
}
