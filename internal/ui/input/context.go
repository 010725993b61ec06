package input

import (
	"filegrip/internal/ui/services/query"
	"filegrip/internal/ui/services/selection"
	"filegrip/internal/ui/services/tabs"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Tabs      *tabs.Service
	Selection *selection.Service
	Query     *query.Service
	Cursor    int
	Search    string
}

// HasSelection returns true if any items are selected
func (c *ModelContext) HasSelection() bool {
	return c.Selection.Count() > 0
}

// SelectedCount returns the number of selected items
func (c *ModelContext) SelectedCount() int {
	return c.Selection.Count()
}

// HasCursorItem reports whether the cursor rests on an item
func (c *ModelContext) HasCursorItem() bool {
	_, ok := c.Query.ItemAt(c.Cursor)
	return ok
}

// CursorInGroup reports whether the cursor item sits under a group header
func (c *ModelContext) CursorInGroup() bool {
	info := c.Query.IndexInfo(c.Cursor)
	return info != nil && info.Group != ""
}

// SearchQuery returns the current search query
func (c *ModelContext) SearchQuery() string {
	return c.Search
}

func (c *ModelContext) Location() string {
	return c.Tabs.ActiveTab().Location
}

func (c *ModelContext) TabCount() int {
	return c.Tabs.Count()
}
