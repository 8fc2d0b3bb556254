package modes

import (
	"filefinder/internal/ui/input/types"
	"github.com/charmbracelet/bubbles/textinput"
)

// QueryMode edits the scan query; submitting runs the search
type QueryMode struct {
	TextInputMode
}

func NewQueryMode(ti *textinput.Model) *QueryMode {
	return &QueryMode{
		TextInputMode: NewTextInputMode(types.ModeQuery, "query", "Search: ", ti),
	}
}
