package groups

import "filegrip/internal/ui/logic"

// State holds presentation state shared by every tab
type State struct {
	Collapsed  map[string]bool
	Filter     string
	ShowHidden bool
}

// Presentation is one grouped, sorted and filtered pass over a listing
type Presentation struct {
	Groups []logic.Group
	Order  []string // render order, collapsed groups excluded
}

// Visible reports how many items are laid out
func (p Presentation) Visible() int {
	return len(p.Order)
}

// Event types
type GroupExpandedEvent struct {
	Label string
}

type GroupCollapsedEvent struct {
	Label string
}

type FilterChangedEvent struct {
	Filter string
}
