package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"filegrip/internal/domain"
	"filegrip/internal/ui/input/types"
	"filegrip/internal/ui/services/sorting"
	"filegrip/internal/ui/state"
)

// processAction executes an action from the input handler
func (m *Model) processAction(action types.Action) tea.Cmd {
	c := m.coord

	switch a := action.(type) {
	case types.NavigateAction:
		c.Move(a.Direction)

	case types.ExtendAction:
		c.Move(a.Direction)
		if item, ok := c.CursorItem(); ok {
			c.Selection.ExtendTo(item.ID)
		}

	case types.ToggleCursorAction:
		if item, ok := c.CursorItem(); ok {
			c.Selection.Toggle(item.ID)
		}

	case types.SelectAllAction:
		c.Selection.SelectAll(c.Query.Order())

	case types.DeselectAllAction:
		c.Selection.Clear()

	case types.ActivateAction:
		return m.activate()

	case types.NewTabAction:
		c.Tabs.OpenTab(c.Tabs.ActiveTab().Location)

	case types.CloseTabAction:
		c.Tabs.CloseTab(c.Tabs.ActiveID())

	case types.CycleTabAction:
		all := c.Tabs.Tabs()
		if n := len(all); n > 1 {
			next := ((c.Tabs.ActiveIndex()+a.Delta)%n + n) % n
			c.Tabs.SetActiveTab(all[next].ID)
		}

	case types.JumpTabAction:
		if all := c.Tabs.Tabs(); a.Index >= 0 && a.Index < len(all) {
			c.Tabs.SetActiveTab(all[a.Index].ID)
		}

	case types.HistoryAction:
		if a.Delta < 0 {
			c.Tabs.GoBack()
		} else {
			c.Tabs.GoForward()
		}

	case types.ParentAction:
		if parent, ok := c.Parent(); ok {
			c.Tabs.Navigate(parent, false)
		}

	case types.UpdateTextAction:
		switch m.inputHandler.CurrentMode() {
		case types.ModeSearch:
			c.Search.StartSearch(a.Text)
		case types.ModeFilter:
			c.Groups.SetFilter(a.Text)
		}

	case types.SubmitTextAction:
		return m.submitText(a)

	case types.CancelTextAction:
		switch a.Mode {
		case types.ModeSearch:
			c.Search.ClearSearch()
		case types.ModeFilter:
			c.Groups.SetFilter("")
		}

	case types.OpenOverlayAction:
		if a.Group {
			c.Sorting.Open(sorting.OverlayGroup)
		} else {
			c.Sorting.Open(sorting.OverlaySort)
		}

	case types.OverlayMoveAction:
		c.Sorting.Move(a.Delta)

	case types.OverlayChooseAction:
		c.Sorting.Choose()

	case types.CloseOverlayAction:
		c.Sorting.Close()

	case types.CycleViewAction:
		mode := c.Sorting.CycleView()
		m.setStatus("%s view", mode)

	case types.ToggleGroupAction:
		c.ToggleCursorGroup()

	case types.ExpandAllGroupsAction:
		c.Groups.ExpandAll()
		m.dirty = true

	case types.RefreshAction:
		if m.state.BackendReady {
			m.state.SetLoading(c.Tabs.ActiveTab().Location, true)
		}
		c.Refresh()

	case types.CopyPathsAction:
		return m.cmdExecutor.ExecuteCopyPaths(paths(c.Targets()))

	case types.ToggleFavoriteAction:
		return m.cmdExecutor.ExecuteToggleFavorite(m.favoriteTarget())

	case types.ToggleHiddenAction:
		show := !c.Groups.ShowHidden()
		c.Groups.SetShowHidden(show)
		m.config.UISettings.ShowHidden = show
		m.dirty = true
		if show {
			m.setStatus("Showing hidden files")
		} else {
			m.setStatus("Hiding hidden files")
		}

	case types.TogglePreviewAction:
		m.state.ShowPreview = !m.state.ShowPreview
		m.config.UISettings.ShowPreview = m.state.ShowPreview

	case types.ToggleHelpAction:
		return m.showHelp()

	case types.ConfirmOpenAction:
		return m.cmdExecutor.ExecuteConfirmedOpen()

	case types.SidebarMoveAction:
		m.state.MoveSidebar(a.Delta)

	case types.SidebarOpenAction:
		if entry, ok := m.state.SidebarEntry(); ok {
			c.Tabs.Navigate(entry.Path, a.NewTab)
		}

	case types.SearchNavigateAction:
		if a.Direction == "prev" {
			c.Search.NavigatePrevious()
		} else {
			c.Search.NavigateNext()
		}

	case types.QuitAction:
		return m.quit()

	default:
		m.log.WithField("action", action.Type()).Debug("unhandled action")
	}
	return nil
}

// activate opens the targets: a lone folder replaces the tab's location,
// folders in a larger set get tabs of their own and files go to the opener
func (m *Model) activate() tea.Cmd {
	c := m.coord
	targets := c.Targets()
	if len(targets) == 1 && targets[0].IsDir {
		c.Tabs.Navigate(targets[0].Path, false)
		return nil
	}

	var files []string
	for _, item := range targets {
		if item.IsDir {
			c.Tabs.OpenTab(item.Path)
			continue
		}
		files = append(files, item.Path)
	}
	if len(files) == 0 {
		return nil
	}

	cmd, needsConfirm := m.cmdExecutor.ExecuteOpen(files)
	if needsConfirm {
		m.inputHandler.ChangeMode(types.ModeConfirmOpen, "")
	}
	return cmd
}

func (m *Model) submitText(a types.SubmitTextAction) tea.Cmd {
	c := m.coord
	switch a.Mode {
	case types.ModeSearch:
		c.Search.StartSearch(a.Text)
		if a.Text != "" && c.Search.GetMatchCount() == 0 {
			m.state.SetStatus(state.StatusWarning, "No matches for "+a.Text)
		}
	case types.ModeFilter:
		c.Groups.SetFilter(a.Text)
	case types.ModeLocation:
		location := expandLocation(a.Text, c.Tabs.ActiveTab().Location, m.home)
		if location != "" && location != c.Tabs.ActiveTab().Location {
			c.Tabs.Navigate(location, false)
		}
	}
	return nil
}

// favoriteTarget is the folder a favourite toggle applies to: the single
// targeted folder, or the location itself when nothing is targeted
func (m *Model) favoriteTarget() string {
	targets := m.coord.Targets()
	switch {
	case len(targets) == 1 && targets[0].IsDir:
		return targets[0].Path
	case len(targets) == 0:
		location := m.coord.Tabs.ActiveTab().Location
		if !domain.IsVirtual(location) {
			return domain.ResolvePath(location)
		}
	}
	return ""
}

// showHelp opens the key reference in the pager when running under a
// program, otherwise it only flags the help as shown
func (m *Model) showHelp() tea.Cmd {
	if m.program == nil {
		m.state.ShowHelp = !m.state.ShowHelp
		return nil
	}
	m.state.ShowHelp = true
	content := m.helpRenderer.RenderHelpContent()
	ops := NewHelpOps(m.program)
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := ops.ShowHelpInPager(content)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

func paths(items []domain.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Path
	}
	return out
}
