package modes

import (
	"filefinder/internal/ui/input/types"
	tea "github.com/charmbracelet/bubbletea"
)

// PickerMode is active while the folder picker is shown. Keys it does not
// claim are forwarded to the picker component by the model.
type PickerMode struct{}

func NewPickerMode() *PickerMode {
	return &PickerMode{}
}

func (m *PickerMode) Name() string {
	return "pick-folder"
}

func (m *PickerMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *PickerMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *PickerMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "q":
		return []types.Action{
			types.CancelPickAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "enter", "l":
		return []types.Action{types.PickHighlightedAction{}}, true
	case ".":
		// Select the directory being browsed
		return []types.Action{types.PickCurrentDirAction{}}, true
	}
	return nil, false
}
