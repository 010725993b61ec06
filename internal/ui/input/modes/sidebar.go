package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"filegrip/internal/ui/input/types"
)

// SidebarMode moves a cursor over the sidebar shortcuts
type SidebarMode struct{}

func NewSidebarMode() *SidebarMode {
	return &SidebarMode{}
}

func (m *SidebarMode) Name() string {
	return "sidebar"
}

func (m *SidebarMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *SidebarMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *SidebarMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	case "tab", "shift+tab", "esc", "right", "l":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "up", "k":
		return []types.Action{types.SidebarMoveAction{Delta: -1}}, true
	case "down", "j":
		return []types.Action{types.SidebarMoveAction{Delta: 1}}, true
	case "enter":
		return []types.Action{
			types.SidebarOpenAction{NewTab: false},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "o", "t":
		// Terminals rarely report ctrl+enter, so a plain key opens in a new tab
		return []types.Action{
			types.SidebarOpenAction{NewTab: true},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, true
}
