package ui

import (
	"log"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"filefinder/internal/config"
	"filefinder/internal/eventbus"
	"filefinder/internal/fileops"
	"filefinder/internal/preview"
	"filefinder/internal/scanner"
	"filefinder/internal/ui/handlers"
	"filefinder/internal/ui/input"
	inputtypes "filefinder/internal/ui/input/types"
	"filefinder/internal/ui/logic"
	"filefinder/internal/ui/state"
	"filefinder/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width        int
	height       int
	help         help.Model
	keys         views.KeyMap
	picker       filepicker.Model
	narrowBefore string // narrow query restored when narrow mode is cancelled
	inPagerMode  bool   // tracks if we're currently in pager mode

	// Services
	scanner  scanner.Scanner
	opener   fileops.Opener
	deleter  fileops.Deleter
	pager    *preview.Pager
	showFile func(path string) error
	copyPath func(text string) error

	// Handlers
	navigator    *logic.Navigator
	narrow       *logic.NarrowFilter
	renderer     *views.Renderer
	inputHandler *input.Handler

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. A non-empty root is preselected so
// searching works immediately.
func NewModel(bus eventbus.EventBus, cfg *config.Config, root string) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	appState := state.NewAppState()
	ops := fileops.New(bus, cfg.Opener.Command)
	pager := preview.New(nil)

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		help:         help.New(),
		keys:         views.DefaultKeyMap(),
		picker:       filepicker.New(),
		scanner:      scanner.NewService(bus),
		opener:       ops,
		deleter:      ops,
		pager:        pager,
		showFile:     pager.ShowFile,
		copyPath:     clipboard.WriteAll,
		navigator:    logic.NewNavigator(appState),
		narrow:       logic.NewNarrowFilter(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
	}

	if root != "" {
		m.selectRoot(root)
	}
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if m.pager != nil {
		m.pager.SetTerminal(p)
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	// Initialize viewport with reasonable defaults
	m.state.ViewportHeight = 20 // Will be updated on first WindowSizeMsg
	return nil
}

func (m *Model) context() *input.ModelContext {
	return &input.ModelContext{
		State:          m.state,
		ConfirmDeletes: m.config.UISettings.ConfirmDelete,
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		// Help popup swallows keys until closed
		if m.state.ShowHelp {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc", "?", "q":
				m.state.ShowHelp = false
			}
			return m, nil
		}

		ctx := m.context()
		mode := m.inputHandler.GetMode()
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		// Keys the picker mode does not claim drive the picker itself
		if mode == inputtypes.ModePickFolder && len(actions) == 0 {
			cmds = append(cmds, m.updatePicker(msg))
			return m, tea.Batch(cmds...)
		}

		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// updatePicker forwards msg to the folder picker
func (m *Model) updatePicker(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return cmd
}

func (m *Model) openPicker() tea.Cmd {
	fp := filepicker.New()
	fp.DirAllowed = true
	fp.FileAllowed = false
	fp.ShowPermissions = false
	fp.ShowSize = false
	fp.AutoHeight = false
	fp.Height = m.state.ViewportHeight
	fp.CurrentDirectory = m.config.ResolveStartDir(m.state.Search.Root)
	// enter and l are claimed by the picker mode; right arrow browses into a folder
	fp.KeyMap.Open = key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "open"))
	fp.KeyMap.Back = key.NewBinding(key.WithKeys("h", "backspace", "left"), key.WithHelp("h/←", "back"))
	m.picker = fp
	return m.picker.Init()
}

func (m *Model) finishPick(path string) {
	m.inputHandler.ChangeMode(inputtypes.ModeNormal, "", m.context())
	if path == "" {
		return
	}
	m.selectRoot(path)
}

func (m *Model) selectRoot(root string) {
	handlers.SelectRoot(m.state, root)
	if m.bus != nil {
		m.bus.Publish(eventbus.RootSelectedEvent{Root: m.state.Search.Root})
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	return m.renderer.Render(m.buildViewState())
}

func (m *Model) buildViewState() views.ViewState {
	vs := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Root:           m.state.Search.Root,
		Query:          m.state.Search.Query,
		HasSearched:    m.state.HasSearched,
		Items:          m.state.VisibleItems(),
		SelectedIndex:  m.state.SelectedIndex,
		ViewportOffset: m.state.ViewportOffset,
		ViewportHeight: m.state.ViewportHeight,
		TotalFiles:     len(m.state.Files),
		NarrowQuery:    m.state.NarrowQuery,
		StatusMessage:  m.state.StatusMessage,
		StatusIsError:  m.state.StatusIsError,
		ShowHelp:       m.state.ShowHelp,
		ShowHelpHint:   m.config.UISettings.ShowHelpHint,
		HelpModel:      m.help,
		Keys:           m.keys,
	}

	switch m.inputHandler.GetMode() {
	case inputtypes.ModeQuery:
		vs.InputMode = "query"
	case inputtypes.ModeNarrow:
		vs.InputMode = "narrow"
	case inputtypes.ModeDeleteConfirm:
		vs.InputMode = "delete-confirm"
		vs.DeleteTarget = m.inputHandler.ConfirmTarget()
	case inputtypes.ModePickFolder:
		vs.InputMode = "pick-folder"
		vs.PickerView = m.picker.View()
		vs.PickerDir = m.picker.CurrentDirectory
	}
	if ti := m.inputHandler.GetTextInput(); ti != nil {
		vs.Prompt = m.inputHandler.Prompt()
		vs.TextInput = ti.View()
	}

	// Highlight fuzzy hits for the rows that can be on screen
	if m.state.NarrowQuery != "" {
		vs.Matched = make(map[int][]int)
		end := m.state.ViewportOffset + m.state.ViewportHeight + 1
		for i := m.state.ViewportOffset; i < end && i < len(vs.Items); i++ {
			vs.Matched[i] = m.narrow.MatchedIndexes(vs.Items[i], m.state.NarrowQuery)
		}
	}
	return vs
}

// updateViewportHeight calculates the available height for the result list
func (m *Model) updateViewportHeight() {
	// Padding (2), title (2), folder and query (2), gap (1), status (2), help (2)
	reservedLines := 11

	m.state.ViewportHeight = m.height - reservedLines
	if m.state.ViewportHeight < 1 {
		m.state.ViewportHeight = 1
	}

	// Ensure viewport offset is still valid
	m.state.EnsureSelectedVisible()
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %T", action)
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigator.Navigate(a.Direction)

	case inputtypes.ChangeModeAction:
		switch a.Mode {
		case inputtypes.ModeNarrow:
			m.narrowBefore = m.state.NarrowQuery
		case inputtypes.ModePickFolder:
			return m.openPicker()
		}

	case inputtypes.UpdateTextAction:
		if a.Mode == inputtypes.ModeNarrow {
			handlers.Narrow(m.state, m.narrow, a.Text)
		}

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeQuery:
			handlers.SetQuery(m.state, a.Text)
			handlers.RunSearch(m.state, m.scanner)
		case inputtypes.ModeNarrow:
			handlers.Narrow(m.state, m.narrow, a.Text)
		}

	case inputtypes.CancelTextAction:
		if a.Mode == inputtypes.ModeNarrow {
			handlers.Narrow(m.state, m.narrow, m.narrowBefore)
		}

	case inputtypes.SearchAction:
		handlers.RunSearch(m.state, m.scanner)

	case inputtypes.PickHighlightedAction:
		path := m.picker.HighlightedPath()
		if info, err := os.Stat(path); path == "" || err != nil || !info.IsDir() {
			m.state.SetStatus("Highlight a folder, or press . to pick this one")
			return nil
		}
		m.finishPick(path)

	case inputtypes.PickCurrentDirAction:
		m.finishPick(m.picker.CurrentDirectory)

	case inputtypes.CancelPickAction:
		// Nothing picked, state unchanged

	case inputtypes.OpenFolderAction:
		handlers.Reveal(m.state, m.opener, a.Path)

	case inputtypes.DeleteFileAction:
		handlers.Delete(m.state, m.deleter, a.Path)

	case inputtypes.PreviewAction:
		return m.previewFile(a.Path)

	case inputtypes.CopyPathAction:
		handlers.CopyPath(m.state, m.copyPath, a.Path)

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.StatusAction:
		m.state.SetStatus(a.Message)

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// previewFile returns a command that pages path in ov, pausing rendering
// while the pager owns the terminal
func (m *Model) previewFile(path string) tea.Cmd {
	return func() tea.Msg {
		if m.program != nil {
			m.program.Send(pauseRenderingMsg{})
		}

		err := m.showFile(path)

		if m.program != nil {
			m.program.Send(resumeRenderingMsg{})
		}
		return previewDoneMsg{path: path, err: err}
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case previewDoneMsg:
		handlers.PreviewFinished(m.state, msg.path, msg.err)
		if msg.err != nil && m.bus != nil {
			m.bus.Publish(eventbus.ErrorEvent{Message: "preview " + msg.path, Err: msg.err})
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	default:
		var cmds []tea.Cmd
		// Directory listings for the folder picker arrive as their own messages
		if m.inputHandler.GetMode() == inputtypes.ModePickFolder {
			cmds = append(cmds, m.updatePicker(msg))
		}
		cmds = append(cmds, m.inputHandler.Update(msg))
		return m, tea.Batch(cmds...)
	}
}
