package views

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the normal-mode bindings for the help views. Dispatch lives in
// the input modes; these bindings only describe it.
type KeyMap struct {
	Pick    key.Binding
	Query   key.Binding
	Search  key.Binding
	Rerun   key.Binding
	Narrow  key.Binding
	Up      key.Binding
	Down    key.Binding
	Page    key.Binding
	TopEnd  key.Binding
	Reveal  key.Binding
	Delete  key.Binding
	Preview key.Binding
	Copy    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the bindings handled by the normal mode
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pick:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "pick folder")),
		Query:   key.NewBinding(key.WithKeys("/", "s"), key.WithHelp("/, s", "edit query")),
		Search:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Rerun:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "search again")),
		Narrow:  key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "narrow results")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Page:    key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "page")),
		TopEnd:  key.NewBinding(key.WithKeys("g", "G"), key.WithHelp("gg/G", "top/bottom")),
		Reveal:  key.NewBinding(key.WithKeys("O"), key.WithHelp("O", "open containing folder")),
		Delete:  key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete file")),
		Preview: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view file")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy path")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Query, k.Narrow, k.Delete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Page, k.TopEnd},
		{k.Pick, k.Query, k.Search, k.Rerun, k.Narrow},
		{k.Reveal, k.Delete, k.Preview, k.Copy},
		{k.Help, k.Quit},
	}
}
