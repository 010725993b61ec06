package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// ExtendAction moves the cursor and range-selects from the anchor
type ExtendAction struct {
	Direction string
}

func (a ExtendAction) Type() string { return "extend" }

// Selection actions
type ToggleCursorAction struct{}

func (a ToggleCursorAction) Type() string { return "toggle_cursor" }

type SelectAllAction struct{}

func (a SelectAllAction) Type() string { return "select_all" }

type DeselectAllAction struct{}

func (a DeselectAllAction) Type() string { return "deselect_all" }

// ActivateAction opens the selection, or the cursor item when nothing is selected
type ActivateAction struct{}

func (a ActivateAction) Type() string { return "activate" }

// Tab actions
type NewTabAction struct{}

func (a NewTabAction) Type() string { return "new_tab" }

type CloseTabAction struct{}

func (a CloseTabAction) Type() string { return "close_tab" }

type CycleTabAction struct {
	Delta int
}

func (a CycleTabAction) Type() string { return "cycle_tab" }

type JumpTabAction struct {
	Index int
}

func (a JumpTabAction) Type() string { return "jump_tab" }

type HistoryAction struct {
	Delta int // -1 back, +1 forward
}

func (a HistoryAction) Type() string { return "history" }

type ParentAction struct{}

func (a ParentAction) Type() string { return "parent" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Overlay actions
type OpenOverlayAction struct {
	Group bool // false opens the sort overlay
}

func (a OpenOverlayAction) Type() string { return "open_overlay" }

type OverlayMoveAction struct {
	Delta int
}

func (a OverlayMoveAction) Type() string { return "overlay_move" }

type OverlayChooseAction struct{}

func (a OverlayChooseAction) Type() string { return "overlay_choose" }

type CloseOverlayAction struct{}

func (a CloseOverlayAction) Type() string { return "close_overlay" }

type CycleViewAction struct{}

func (a CycleViewAction) Type() string { return "cycle_view" }

// Group actions
type ToggleGroupAction struct{}

func (a ToggleGroupAction) Type() string { return "toggle_group" }

type ExpandAllGroupsAction struct{}

func (a ExpandAllGroupsAction) Type() string { return "expand_all_groups" }

// Command actions
type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

type CopyPathsAction struct{}

func (a CopyPathsAction) Type() string { return "copy_paths" }

type ToggleFavoriteAction struct{}

func (a ToggleFavoriteAction) Type() string { return "toggle_favorite" }

type ToggleHiddenAction struct{}

func (a ToggleHiddenAction) Type() string { return "toggle_hidden" }

type TogglePreviewAction struct{}

func (a TogglePreviewAction) Type() string { return "toggle_preview" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ConfirmOpenAction struct{}

func (a ConfirmOpenAction) Type() string { return "confirm_open" }

// Sidebar actions
type SidebarMoveAction struct {
	Delta int
}

func (a SidebarMoveAction) Type() string { return "sidebar_move" }

type SidebarOpenAction struct {
	NewTab bool
}

func (a SidebarOpenAction) Type() string { return "sidebar_open" }

type SearchNavigateAction struct {
	Direction string // "next" or "prev"
}

func (a SearchNavigateAction) Type() string { return "search_navigate" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
