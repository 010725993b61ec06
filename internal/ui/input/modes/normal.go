package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"filegrip/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		if msg.Alt {
			return []types.Action{types.HistoryAction{Delta: -1}}, true
		}
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case tea.KeyRight:
		if msg.Alt {
			return []types.Action{types.HistoryAction{Delta: 1}}, true
		}
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case tea.KeyShiftUp:
		return []types.Action{types.ExtendAction{Direction: "up"}}, true

	case tea.KeyShiftDown:
		return []types.Action{types.ExtendAction{Direction: "down"}}, true

	case tea.KeyShiftLeft:
		return []types.Action{types.ExtendAction{Direction: "left"}}, true

	case tea.KeyShiftRight:
		return []types.Action{types.ExtendAction{Direction: "right"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		if ctx.HasSelection() || ctx.HasCursorItem() {
			return []types.Action{types.ActivateAction{}}, true
		}
		return nil, false

	case tea.KeyBackspace:
		return []types.Action{types.HistoryAction{Delta: -1}}, true

	case tea.KeyTab, tea.KeyShiftTab:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSidebar}}, true

	case tea.KeyCtrlA:
		return []types.Action{types.SelectAllAction{}}, true

	case tea.KeyEsc:
		if ctx.HasSelection() {
			return []types.Action{types.DeselectAllAction{}}, true
		}
		return nil, true
	}

	switch key := msg.String(); key {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case "l":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case " ":
		if ctx.HasCursorItem() {
			return []types.Action{types.ToggleCursorAction{}}, true
		}
		return nil, true

	case "t":
		return []types.Action{types.NewTabAction{}}, true

	case "w":
		return []types.Action{types.CloseTabAction{}}, true

	case "[":
		return []types.Action{types.CycleTabAction{Delta: -1}}, true

	case "]":
		return []types.Action{types.CycleTabAction{Delta: 1}}, true

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		index := int(key[0] - '1')
		if index < ctx.TabCount() {
			return []types.Action{types.JumpTabAction{Index: index}}, true
		}
		return nil, true

	case "u":
		return []types.Action{types.ParentAction{}}, true

	case "s":
		return []types.Action{
			types.OpenOverlayAction{Group: false},
			types.ChangeModeAction{Mode: types.ModeOverlay},
		}, true

	case "g":
		return []types.Action{
			types.OpenOverlayAction{Group: true},
			types.ChangeModeAction{Mode: types.ModeOverlay},
		}, true

	case "v":
		return []types.Action{types.CycleViewAction{}}, true

	case "z":
		if ctx.CursorInGroup() {
			return []types.Action{types.ToggleGroupAction{}}, true
		}
		return nil, true

	case "Z":
		return []types.Action{types.ExpandAllGroupsAction{}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "F", "ctrl+f":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter}}, true

	case ":":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeLocation, Data: ctx.Location()}}, true

	case "n":
		if ctx.SearchQuery() != "" {
			return []types.Action{types.SearchNavigateAction{Direction: "next"}}, true
		}
		return nil, true

	case "N":
		if ctx.SearchQuery() != "" {
			return []types.Action{types.SearchNavigateAction{Direction: "prev"}}, true
		}
		return nil, true

	case "r":
		return []types.Action{types.RefreshAction{}}, true

	case "y":
		if ctx.HasSelection() || ctx.HasCursorItem() {
			return []types.Action{types.CopyPathsAction{}}, true
		}
		return nil, true

	case "b":
		return []types.Action{types.ToggleFavoriteAction{}}, true

	case ".":
		return []types.Action{types.ToggleHiddenAction{}}, true

	case "p":
		return []types.Action{types.TogglePreviewAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
