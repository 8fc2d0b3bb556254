package modes

import (
	"filefinder/internal/ui/input/types"
	tea "github.com/charmbracelet/bubbletea"
	"time"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		return m.search(ctx), true

	case tea.KeyDelete:
		return m.delete(ctx), true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "o":
		return []types.Action{types.ChangeModeAction{Mode: types.ModePickFolder}}, true

	case "/", "s":
		if !ctx.SearchEnabled() {
			return []types.Action{types.StatusAction{Message: "Select a folder first (o)"}}, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery, Data: ctx.Query()}}, true

	case "r":
		return m.search(ctx), true

	case "F":
		if ctx.TotalItems() == 0 && ctx.NarrowQuery() == "" {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNarrow, Data: ctx.NarrowQuery()}}, true

	case "O":
		if path := ctx.SelectedPath(); path != "" {
			return []types.Action{types.OpenFolderAction{Path: path}}, true
		}
		return nil, true

	case "d":
		return m.delete(ctx), true

	case "v":
		if path := ctx.SelectedPath(); path != "" && !ctx.SelectedIsDir() {
			return []types.Action{types.PreviewAction{Path: path}}, true
		}
		return nil, true

	case "y":
		if path := ctx.SelectedPath(); path != "" {
			return []types.Action{types.CopyPathAction{Path: path}}, true
		}
		return nil, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		// First g, wait for next key
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		m.lastKeyWasG = false
	}

	return nil, false
}

func (m *NormalMode) search(ctx types.Context) []types.Action {
	if !ctx.SearchEnabled() {
		return []types.Action{types.StatusAction{Message: "Select a folder first (o)"}}
	}
	return []types.Action{types.SearchAction{}}
}

func (m *NormalMode) delete(ctx types.Context) []types.Action {
	path := ctx.SelectedPath()
	if path == "" {
		return nil
	}
	if ctx.ConfirmDelete() {
		return []types.Action{types.ChangeModeAction{Mode: types.ModeDeleteConfirm}}
	}
	return []types.Action{types.DeleteFileAction{Path: path}}
}
