package sorting

import (
	"filegrip/internal/domain"
	"filegrip/internal/ui/services/events"
)

var sortLabels = map[domain.SortMode]string{
	domain.SortName: "Name",
	domain.SortDate: "Date modified",
	domain.SortSize: "Size",
	domain.SortType: "Type",
}

var groupLabels = map[domain.GroupMode]string{
	domain.GroupNone: "None",
	domain.GroupType: "Type",
	domain.GroupDate: "Date modified",
	domain.GroupSize: "Size",
	domain.GroupKind: "Kind",
	domain.GroupExt:  "Extension",
}

// SortLabel returns the display name of a sort mode
func SortLabel(mode domain.SortMode) string {
	return sortLabels[mode]
}

// GroupLabel returns the display name of a group mode
func GroupLabel(mode domain.GroupMode) string {
	return groupLabels[mode]
}

// Service handles the sort and group overlays
type Service struct {
	state  *State
	bus    events.EventBus
	target Target
}

// NewService creates a new sorting service
func NewService(bus events.EventBus, target Target) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state:  &State{},
		bus:    bus,
		target: target,
	}
}

// ChooseSort applies a sort option. Choosing the active mode flips the
// order; any other mode becomes active in ascending order.
func (s *Service) ChooseSort(mode domain.SortMode) {
	tab := s.target.ActiveTab()
	order := domain.OrderAsc
	if tab.SortMode == mode {
		order = tab.SortOrder.Toggle()
	} else {
		s.target.SetSortMode(mode)
	}
	s.target.SetSortOrder(order)
	s.bus.Publish(SortChangedEvent{Mode: mode, Order: order})
}

// ChooseGroup applies a group option
func (s *Service) ChooseGroup(mode domain.GroupMode) {
	if s.target.ActiveTab().GroupMode == mode {
		return
	}
	s.target.SetGroupMode(mode)
	s.bus.Publish(GroupChangedEvent{Mode: mode})
}

// CycleView switches the active tab to the next view mode
func (s *Service) CycleView() domain.ViewMode {
	next := s.target.ActiveTab().ViewMode.Next()
	s.target.SetViewMode(next)
	return next
}

// Open shows an overlay with the cursor on the active option
func (s *Service) Open(overlay Overlay) {
	s.state.Overlay = overlay
	s.state.Cursor = 0
	for i, opt := range s.Options() {
		if opt.Active {
			s.state.Cursor = i
		}
	}
}

// Close hides the overlay
func (s *Service) Close() {
	s.state.Overlay = OverlayNone
	s.state.Cursor = 0
}

// Current returns the open overlay
func (s *Service) Current() Overlay {
	return s.state.Overlay
}

// IsOpen checks if any overlay is showing
func (s *Service) IsOpen() bool {
	return s.state.Overlay != OverlayNone
}

// Cursor returns the highlighted row
func (s *Service) Cursor() int {
	return s.state.Cursor
}

// Move shifts the highlighted row, wrapping at both ends
func (s *Service) Move(delta int) {
	n := len(s.Options())
	if n == 0 {
		return
	}
	s.state.Cursor = ((s.state.Cursor+delta)%n + n) % n
}

// Options lists the rows of the open overlay
func (s *Service) Options() []Option {
	tab := s.target.ActiveTab()
	var opts []Option
	switch s.state.Overlay {
	case OverlaySort:
		for _, m := range domain.SortModes {
			opts = append(opts, Option{Label: sortLabels[m], Active: m == tab.SortMode})
		}
	case OverlayGroup:
		for _, m := range domain.GroupModes {
			opts = append(opts, Option{Label: groupLabels[m], Active: m == tab.GroupMode})
		}
	}
	return opts
}

// Choose applies the highlighted row and closes the overlay
func (s *Service) Choose() {
	switch s.state.Overlay {
	case OverlaySort:
		s.ChooseSort(domain.SortModes[s.state.Cursor])
	case OverlayGroup:
		s.ChooseGroup(domain.GroupModes[s.state.Cursor])
	}
	s.Close()
}
