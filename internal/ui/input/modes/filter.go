package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"filegrip/internal/ui/input/types"
)

type FilterMode struct {
	TextInputMode
}

func NewFilterMode(ti *textinput.Model) *FilterMode {
	return &FilterMode{
		TextInputMode: NewTextInputMode(types.ModeFilter, "filter", "Filter: ", ti),
	}
}

// Enter expands all groups so every match is visible while typing
func (m *FilterMode) Enter(ctx types.Context) []types.Action {
	actions := m.TextInputMode.Enter(ctx)
	return append(actions, types.ExpandAllGroupsAction{})
}
