package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"filegrip/internal/ui/input/types"
)

// SearchMode searches names as the user types. Up and down step through
// matches without leaving the prompt.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "down", "ctrl+n":
		return []types.Action{types.SearchNavigateAction{Direction: "next"}}, true
	case "up", "ctrl+p":
		return []types.Action{types.SearchNavigateAction{Direction: "prev"}}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
