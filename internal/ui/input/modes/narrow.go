package modes

import (
	"filefinder/internal/ui/input/types"
	"github.com/charmbracelet/bubbles/textinput"
)

// NarrowMode fuzzy-filters the displayed results while typing
type NarrowMode struct {
	TextInputMode
}

func NewNarrowMode(ti *textinput.Model) *NarrowMode {
	return &NarrowMode{
		TextInputMode: NewTextInputMode(types.ModeNarrow, "narrow", "Narrow: ", ti),
	}
}
