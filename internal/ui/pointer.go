package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"filegrip/internal/ui/input/types"
	"filegrip/internal/ui/layout"
	"filegrip/internal/ui/services/selection"
	"filegrip/internal/ui/views"
)

const itemRegionPrefix = "item:"

// Lines scrolled per wheel notch
const wheelLines = 3

// handleMouse routes mouse input: clicks on chrome, item clicks and the
// marquee and lasso drags on the grid
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.state.Failed() || m.inPagerMode {
		return nil
	}
	switch m.inputHandler.CurrentMode() {
	case types.ModeOverlay, types.ModeConfirmOpen:
		return nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.coord.Scroll(-wheelLines)
	case msg.Button == tea.MouseButtonWheelDown:
		m.coord.Scroll(wheelLines)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return m.mousePress(msg)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonMiddle:
		if r := m.clicks.HitMap.Test(msg.X, msg.Y); r != nil && r.ID == views.RegionTab {
			m.coord.Tabs.CloseTab(r.Data.(string))
		}
	case msg.Action == tea.MouseActionMotion:
		return m.mouseMotion(msg)
	case msg.Action == tea.MouseActionRelease:
		m.mouseRelease(msg)
	}
	return nil
}

func (m *Model) mousePress(msg tea.MouseMsg) tea.Cmd {
	c := m.coord

	// A lasso starts anywhere in the grid, even on top of an item
	if msg.Alt && m.frame.Grid.Contains(msg.X, msg.Y) {
		m.beginGesture(msg, true)
		return nil
	}

	click := m.clicks.HandleClick(msg.X, msg.Y)
	r := click.Region
	if r == nil {
		return nil
	}

	switch {
	case r.ID == views.RegionTab:
		c.Tabs.SetActiveTab(r.Data.(string))

	case r.ID == views.RegionNewTab:
		c.Tabs.OpenTab(c.Tabs.ActiveTab().Location)

	case r.ID == views.RegionSidebar:
		m.state.SidebarIndex = r.Data.(int)
		if entry, ok := m.state.SidebarEntry(); ok {
			c.Tabs.Navigate(entry.Path, msg.Ctrl)
		}

	case r.ID == views.RegionHeader:
		c.ToggleGroup(r.Data.(string))

	case strings.HasPrefix(r.ID, itemRegionPrefix):
		return m.clickItem(r.Data.(string), msg, click.IsDoubleClick)

	case r.ID == views.RegionGrid:
		m.beginGesture(msg, false)
	}
	return nil
}

// clickItem applies a click on an item: plain selects it, ctrl toggles it,
// shift extends to it and a double click opens it
func (m *Model) clickItem(id string, msg tea.MouseMsg, double bool) tea.Cmd {
	c := m.coord
	c.SetCursor(c.Query.IndexOf(id))

	switch {
	case double:
		c.Selection.SelectSingle(id)
		return m.activate()
	case msg.Ctrl:
		c.Selection.Toggle(id)
	case msg.Shift:
		c.Selection.ExtendTo(id)
	default:
		c.Selection.SelectSingle(id)
	}
	return nil
}

func (m *Model) beginGesture(msg tea.MouseMsg, lasso bool) {
	m.coord.Selection.BeginGesture(layout.ToPixels(msg.X, msg.Y), lasso)
	m.clicks.StartDrag(views.RegionGrid)
}

func (m *Model) mouseMotion(msg tea.MouseMsg) tea.Cmd {
	g := m.coord.Selection.Gesture()
	if g == nil {
		return nil
	}
	if !m.coord.Selection.UpdateGesture(layout.ToPixels(msg.X, msg.Y)) {
		return nil
	}
	if g.Mode() != selection.GestureLasso {
		return nil
	}
	frame := g.Frame()
	return tea.Tick(glowDelay, func(time.Time) tea.Msg {
		return glowMsg{frame: frame}
	})
}

func (m *Model) mouseRelease(msg tea.MouseMsg) {
	if !m.clicks.IsDragging() {
		return
	}
	m.clicks.EndDrag()
	if m.coord.Selection.Gesture() == nil {
		return
	}
	m.coord.Selection.UpdateGesture(layout.ToPixels(msg.X, msg.Y))
	m.coord.Selection.FinalizeGesture(msg.Ctrl)
}
