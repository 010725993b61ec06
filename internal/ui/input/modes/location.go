package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"filegrip/internal/ui/input/types"
)

// LocationMode prompts for a path to navigate the active tab to
type LocationMode struct {
	TextInputMode
}

func NewLocationMode(ti *textinput.Model) *LocationMode {
	return &LocationMode{
		TextInputMode: NewTextInputMode(types.ModeLocation, "location", "Go to: ", ti),
	}
}
