package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"filegrip/internal/ui/input/types"
)

// OverlayMode drives the sort and group option lists. The open overlay and
// its cursor live in the sorting service; this mode only translates keys.
type OverlayMode struct{}

func NewOverlayMode() *OverlayMode {
	return &OverlayMode{}
}

func (m *OverlayMode) Name() string {
	return "overlay"
}

func (m *OverlayMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *OverlayMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.CloseOverlayAction{}}
}

func (m *OverlayMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q", "s", "g":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "up", "k", "shift+tab":
		return []types.Action{types.OverlayMoveAction{Delta: -1}}, true

	case "down", "j", "tab":
		return []types.Action{types.OverlayMoveAction{Delta: 1}}, true

	case "enter", " ":
		return []types.Action{
			types.OverlayChooseAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	// Swallow everything else while the overlay is open
	return nil, true
}
