package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // Optional initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Search actions
type SearchAction struct{}

func (a SearchAction) Type() string { return "search" }

// Folder picker actions
type PickHighlightedAction struct{}

func (a PickHighlightedAction) Type() string { return "pick_highlighted" }

type PickCurrentDirAction struct{}

func (a PickCurrentDirAction) Type() string { return "pick_current_dir" }

type CancelPickAction struct{}

func (a CancelPickAction) Type() string { return "cancel_pick" }

// Item actions, Path is the item's absolute path
type OpenFolderAction struct {
	Path string
}

func (a OpenFolderAction) Type() string { return "open_folder" }

type DeleteFileAction struct {
	Path string
}

func (a DeleteFileAction) Type() string { return "delete_file" }

type PreviewAction struct {
	Path string
}

func (a PreviewAction) Type() string { return "preview" }

type CopyPathAction struct {
	Path string
}

func (a CopyPathAction) Type() string { return "copy_path" }

// Other actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type StatusAction struct {
	Message string
}

func (a StatusAction) Type() string { return "status" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
