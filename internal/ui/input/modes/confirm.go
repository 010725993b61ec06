package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"filegrip/internal/ui/input/types"
)

// ConfirmOpenMode asks before handing many files to the system opener
type ConfirmOpenMode struct{}

func NewConfirmOpenMode() *ConfirmOpenMode {
	return &ConfirmOpenMode{}
}

func (m *ConfirmOpenMode) Name() string {
	return "confirm-open"
}

func (m *ConfirmOpenMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmOpenMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmOpenMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y", "enter":
		return []types.Action{
			types.ConfirmOpenAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "n", "N", "esc", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	return nil, true
}
