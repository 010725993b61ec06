package coordinator

import (
	"path/filepath"

	"github.com/sirupsen/logrus"

	"filegrip/internal/domain"
	"filegrip/internal/eventbus"
	listings "filegrip/internal/logic"
	"filegrip/internal/ui/layout"
	"filegrip/internal/ui/logic"
	"filegrip/internal/ui/services/events"
	"filegrip/internal/ui/services/groups"
	"filegrip/internal/ui/services/query"
	"filegrip/internal/ui/services/search"
	"filegrip/internal/ui/services/selection"
	"filegrip/internal/ui/services/sorting"
	"filegrip/internal/ui/services/tabs"
)

// Viewport is the screen area the item grid is drawn in
type Viewport struct {
	Width   int
	Height  int
	OriginX int // screen column of the first grid column
	OriginY int // screen line of the first grid line
}

// Coordinator manages all UI services and their interactions
type Coordinator struct {
	// Services
	Tabs      *tabs.Service
	Selection *selection.Service
	Groups    *groups.Service
	Sorting   *sorting.Service
	Query     *query.Service
	Search    *search.Service
	Navigator *logic.Navigator

	// Dependencies
	bus      events.EventBus
	domain   eventbus.EventBus
	listings listings.ListingStore
	log      logrus.FieldLogger

	viewport Viewport
	layout   layout.Layout
}

// NewCoordinator creates a new coordinator with all services. domainBus may be
// nil, in which case no listings are requested.
func NewCoordinator(bus events.EventBus, domainBus eventbus.EventBus, store listings.ListingStore, startLocation string, opts ...tabs.Option) *Coordinator {
	if bus == nil {
		bus = events.NewBus()
	}
	tabService := tabs.NewService(bus, startLocation, opts...)

	c := &Coordinator{
		Tabs:      tabService,
		Selection: selection.NewService(bus, tabService, selection.NewRegistry()),
		Groups:    groups.NewService(bus),
		Sorting:   sorting.NewService(bus, tabService),
		Query:     query.NewService(),
		Search:    search.NewService(bus),
		Navigator: logic.NewNavigator(),
		bus:       bus,
		domain:    domainBus,
		listings:  store,
		log:       logrus.WithField("component", "coordinator"),
	}

	c.wireServices()
	c.subscribeToEvents()

	return c
}

// wireServices connects services with their dependencies
func (c *Coordinator) wireServices() {
	c.Search.SetMatcherFunction(c.Query.Matching)
	c.Search.SetNavigateFunction(func(index int) {
		c.Navigator.SetIndex(index)
		c.syncScroll()
	})
}

// subscribeToEvents sets up event handlers
func (c *Coordinator) subscribeToEvents() {
	c.bus.Subscribe("tabs.LocationChangedEvent", func(e interface{}) {
		ev := e.(tabs.LocationChangedEvent)
		c.Groups.Reset()
		c.Search.ClearSearch()
		c.Navigator.SetIndex(0)
		c.Navigator.SetViewportOffset(c.Tabs.ActiveTab().ScrollTop)
		c.RequestListing(ev.Location)
	})

	c.bus.Subscribe("tabs.TabClosedEvent", func(e interface{}) {
		c.requestWatch()
	})
}

// SetViewport records where the grid is drawn
func (c *Coordinator) SetViewport(v Viewport) {
	c.viewport = v
}

// Viewport returns the last viewport set
func (c *Coordinator) Viewport() Viewport {
	return c.viewport
}

// Layout returns the outcome of the last Rebuild
func (c *Coordinator) Layout() layout.Layout {
	return c.layout
}

// RequestListing asks the listing provider for a location and refreshes the watch set
func (c *Coordinator) RequestListing(location string) {
	if c.domain == nil {
		return
	}
	c.domain.Publish(eventbus.ListingRequestedEvent{Location: location})
	c.requestWatch()
}

// Refresh relists the active location
func (c *Coordinator) Refresh() {
	location := c.Tabs.ActiveTab().Location
	c.listings.Invalidate(location)
	c.RequestListing(location)
}

// requestWatch watches the directories of every open tab
func (c *Coordinator) requestWatch() {
	if c.domain == nil {
		return
	}
	seen := make(map[string]bool)
	var paths []string
	for _, t := range c.Tabs.Tabs() {
		if domain.IsVirtual(t.Location) {
			continue
		}
		p := filepath.Clean(domain.ResolvePath(t.Location))
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}
	c.domain.Publish(eventbus.WatchRequestedEvent{Paths: paths})
}

// ListingLoaded stores a listing. When it belongs to the active tab the
// presentation is rebuilt and the selection pruned to what is still shown.
func (c *Coordinator) ListingLoaded(location string, items []domain.Item) bool {
	c.listings.PutListing(location, items)
	if !c.isActive(location) {
		return false
	}
	c.Rebuild()
	c.Selection.Prune()
	c.Search.Refresh()
	return true
}

// DirectoryChanged invalidates a listing and relists it when a tab shows it
func (c *Coordinator) DirectoryChanged(path string) {
	for _, t := range c.Tabs.Tabs() {
		if domain.IsVirtual(t.Location) {
			continue
		}
		if filepath.Clean(domain.ResolvePath(t.Location)) == filepath.Clean(path) {
			c.listings.Invalidate(t.Location)
			c.RequestListing(t.Location)
			return
		}
	}
}

func (c *Coordinator) isActive(location string) bool {
	active := c.Tabs.ActiveTab().Location
	if domain.IsVirtual(active) || domain.IsVirtual(location) {
		return active == location
	}
	return filepath.Clean(active) == filepath.Clean(location)
}

// Rebuild runs the presentation pipeline for the active tab: group, sort and
// collapse the stored listing, lay it out, publish the render order and
// refresh the hit-test rectangles.
func (c *Coordinator) Rebuild() layout.Layout {
	tab := c.Tabs.ActiveTab()
	items, _ := c.listings.GetListing(tab.Location)

	pres := c.Groups.Build(items, groups.Config{
		Group: tab.GroupMode,
		Sort:  tab.SortMode,
		Order: tab.SortOrder,
	})
	c.Query.Update(pres)

	c.layout = layout.Compute(pres.Groups, c.Groups.IsCollapsed, tab.ViewMode, c.viewport.Width)
	c.Tabs.SetRenderOrder(pres.Order)

	c.Navigator.UpdateLayout(c.layout.Cells(), c.viewport.Height)
	c.refreshRegions()
	return c.layout
}

// refreshRegions replaces the registry with the rectangles on screen now
func (c *Coordinator) refreshRegions() {
	regions := c.layout.Regions(c.Navigator.ViewportOffset(), c.viewport.Height, c.viewport.OriginX, c.viewport.OriginY)
	c.Selection.Registry().Replace(regions)
}

// Move moves the keyboard cursor and keeps the tab scroll in sync
func (c *Coordinator) Move(direction string) int {
	index := c.Navigator.Move(direction)
	c.syncScroll()
	return index
}

// SetCursor places the keyboard cursor on a render index
func (c *Coordinator) SetCursor(index int) {
	c.Navigator.SetIndex(index)
	c.syncScroll()
}

// Scroll moves the viewport by delta lines without moving the cursor
func (c *Coordinator) Scroll(delta int) {
	offset := c.Navigator.ViewportOffset() + delta
	limit := c.layout.Height - c.viewport.Height
	if offset > limit {
		offset = limit
	}
	c.Navigator.SetViewportOffset(offset)
	c.syncScroll()
}

func (c *Coordinator) syncScroll() {
	c.Tabs.UpdateScroll(c.Navigator.ViewportOffset())
	c.refreshRegions()
}

// CursorItem returns the item under the keyboard cursor
func (c *Coordinator) CursorItem() (domain.Item, bool) {
	return c.Query.ItemAt(c.Navigator.Index())
}

// Targets returns the items an action applies to: the selection when there
// is one, otherwise the cursor item
func (c *Coordinator) Targets() []domain.Item {
	if c.Selection.Count() > 0 {
		return c.Query.Items(c.Selection.Selection())
	}
	if item, ok := c.CursorItem(); ok {
		return []domain.Item{item}
	}
	return nil
}

// ToggleCursorGroup collapses or expands the group holding the cursor item
func (c *Coordinator) ToggleCursorGroup() {
	item, ok := c.CursorItem()
	if !ok {
		return
	}
	label := c.Query.GroupOf(item.ID)
	if label == "" {
		return
	}
	c.Groups.ToggleCollapsed(label)
	c.Rebuild()
}

// ToggleGroup collapses or expands a group by label
func (c *Coordinator) ToggleGroup(label string) {
	c.Groups.ToggleCollapsed(label)
	c.Rebuild()
}

// Parent returns the location one level up from the active tab
func (c *Coordinator) Parent() (string, bool) {
	location := c.Tabs.ActiveTab().Location
	if domain.IsVirtual(location) {
		return "", false
	}
	path := domain.ResolvePath(location)
	parent := filepath.Dir(path)
	if parent == path {
		return "", false
	}
	return parent, true
}
