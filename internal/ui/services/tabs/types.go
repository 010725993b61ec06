package tabs

import "filegrip/internal/domain"

// Tab is one browsing context
type Tab struct {
	ID           string
	Location     string
	History      []string
	HistoryIndex int
	ViewMode     domain.ViewMode
	GroupMode    domain.GroupMode
	SortMode     domain.SortMode
	SortOrder    domain.SortOrder
	ScrollTop    int
	Selection    []string
	RenderOrder  []string
}

// Defaults is the view configuration new tabs start with
type Defaults struct {
	ViewMode  domain.ViewMode
	GroupMode domain.GroupMode
	SortMode  domain.SortMode
	SortOrder domain.SortOrder
}

// DefaultDefaults matches a tab opened with no configuration
func DefaultDefaults() Defaults {
	return Defaults{
		ViewMode:  domain.ViewGrid,
		GroupMode: domain.GroupNone,
		SortMode:  domain.SortName,
		SortOrder: domain.OrderAsc,
	}
}

// State holds all tab-related state
type State struct {
	Tabs     []*Tab
	ActiveID string
}

// Event types for tab changes
type TabOpenedEvent struct {
	ID       string
	Location string
}

type TabClosedEvent struct {
	ID string
}

type ActiveTabChangedEvent struct {
	ID string
}

// LocationChangedEvent fires when the active tab shows a different location,
// by navigation, history movement or tab switch
type LocationChangedEvent struct {
	TabID    string
	Location string
}

type ViewConfigChangedEvent struct {
	TabID string
}

type SelectionChangedEvent struct {
	TabID     string
	Selection []string
}

func (t *Tab) clone() Tab {
	c := *t
	c.History = append([]string(nil), t.History...)
	c.Selection = append([]string(nil), t.Selection...)
	c.RenderOrder = append([]string(nil), t.RenderOrder...)
	return c
}
