package groups

import (
	"time"

	"filegrip/internal/domain"
	"filegrip/internal/ui/logic"
	"filegrip/internal/ui/services/events"
)

// Config is the slice of a tab's view configuration the pipeline needs
type Config struct {
	Group domain.GroupMode
	Sort  domain.SortMode
	Order domain.SortOrder
}

// Service turns a flat listing into the ordered, labelled groups shown on screen
type Service struct {
	state *State
	bus   events.EventBus
	now   func() time.Time
}

// NewService creates a new groups service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{
			Collapsed: make(map[string]bool),
		},
		bus: bus,
		now: time.Now,
	}
}

// SetClock replaces the clock used for date grouping
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Build filters, groups and sorts items, then flattens the expanded groups
// into the render order
func (s *Service) Build(items []domain.Item, cfg Config) Presentation {
	visible := logic.FilterHidden(items, s.state.ShowHidden)
	visible = logic.FilterItems(visible, s.state.Filter)

	grouped := logic.GroupItems(visible, cfg.Group, s.now())
	sorted := logic.SortGroups(grouped, cfg.Sort, cfg.Order)

	var order []string
	for _, g := range sorted {
		if s.state.Collapsed[g.Label] {
			continue
		}
		for _, item := range g.Items {
			order = append(order, item.ID)
		}
	}
	return Presentation{Groups: sorted, Order: order}
}

// SetFilter narrows the listing to names containing filter
func (s *Service) SetFilter(filter string) {
	if filter == s.state.Filter {
		return
	}
	s.state.Filter = filter
	s.bus.Publish(FilterChangedEvent{Filter: filter})
}

// Filter returns the active name filter
func (s *Service) Filter() string {
	return s.state.Filter
}

// SetShowHidden toggles whether dot files are listed
func (s *Service) SetShowHidden(show bool) {
	s.state.ShowHidden = show
}

// ShowHidden reports whether dot files are listed
func (s *Service) ShowHidden() bool {
	return s.state.ShowHidden
}

// ToggleCollapsed collapses an expanded group or expands a collapsed one.
// The unlabelled group of mode none cannot be collapsed.
func (s *Service) ToggleCollapsed(label string) {
	if label == "" {
		return
	}
	if s.state.Collapsed[label] {
		delete(s.state.Collapsed, label)
		s.bus.Publish(GroupExpandedEvent{Label: label})
	} else {
		s.state.Collapsed[label] = true
		s.bus.Publish(GroupCollapsedEvent{Label: label})
	}
}

// IsCollapsed checks if a group is collapsed
func (s *Service) IsCollapsed(label string) bool {
	return s.state.Collapsed[label]
}

// ExpandAll expands every group
func (s *Service) ExpandAll() {
	for label := range s.state.Collapsed {
		delete(s.state.Collapsed, label)
		s.bus.Publish(GroupExpandedEvent{Label: label})
	}
}

// Reset drops collapse state and the filter, used when a tab changes location
func (s *Service) Reset() {
	s.state.Collapsed = make(map[string]bool)
	s.SetFilter("")
}
