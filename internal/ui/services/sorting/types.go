package sorting

import (
	"filegrip/internal/domain"
	"filegrip/internal/ui/services/tabs"
)

// Target is the tab store the overlays write to
type Target interface {
	ActiveTab() tabs.Tab
	SetSortMode(mode domain.SortMode)
	SetSortOrder(order domain.SortOrder)
	SetGroupMode(mode domain.GroupMode)
	SetViewMode(mode domain.ViewMode)
}

// Overlay identifies which option overlay is open
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlaySort
	OverlayGroup
)

// State holds overlay state
type State struct {
	Overlay Overlay
	Cursor  int
}

// Option is one row of an overlay
type Option struct {
	Label  string
	Active bool
}

// Event types
type SortChangedEvent struct {
	Mode  domain.SortMode
	Order domain.SortOrder
}

type GroupChangedEvent struct {
	Mode domain.GroupMode
}
