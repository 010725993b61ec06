package selection

import (
	"filegrip/internal/geometry"
	"filegrip/internal/ui/services/events"
)

// Service resolves selection operations and pointer gestures against the
// active tab's selection
type Service struct {
	state    *State
	store    Store
	registry *Registry
	bus      events.EventBus
	gesture  *Gesture
	minDist  float64
}

// NewService creates a new selection service
func NewService(bus events.EventBus, store Store, registry *Registry) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	if registry == nil {
		registry = NewRegistry()
	}
	return &Service{
		state:    &State{},
		store:    store,
		registry: registry,
		bus:      bus,
		minDist:  DefaultMinDistance,
	}
}

// Registry returns the rectangle registry gestures test against
func (s *Service) Registry() *Registry {
	return s.registry
}

// Anchor returns the start item for range selection
func (s *Service) Anchor() string {
	return s.state.Anchor
}

func (s *Service) setAnchor(id string) {
	if s.state.Anchor == id {
		return
	}
	s.state.Anchor = id
	s.bus.Publish(AnchorChangedEvent{Anchor: id})
}

// Selection returns the current selection
func (s *Service) Selection() []string {
	return s.store.Selection()
}

// IsSelected reports whether id is in the selection
func (s *Service) IsSelected(id string) bool {
	for _, sel := range s.store.Selection() {
		if sel == id {
			return true
		}
	}
	return false
}

// Count returns the number of selected items
func (s *Service) Count() int {
	return len(s.store.Selection())
}

// SelectSingle makes id the only selected item
func (s *Service) SelectSingle(id string) {
	s.store.SetSelection([]string{id})
	s.setAnchor(id)
}

// Toggle adds id when absent and removes it when present
func (s *Service) Toggle(id string) {
	current := s.store.Selection()
	next := make([]string, 0, len(current)+1)
	found := false
	for _, sel := range current {
		if sel == id {
			found = true
			continue
		}
		next = append(next, sel)
	}
	if !found {
		next = append(next, id)
	}
	s.store.SetSelection(next)
	s.setAnchor(id)
}

// RangeSelect selects the contiguous run of ordered between anchor and id,
// inclusive, in either direction. Unknown ids leave the selection untouched.
func (s *Service) RangeSelect(anchor, id string, ordered []string) {
	if r := Range(anchor, id, ordered); r != nil {
		s.store.SetSelection(r)
	}
}

// ExtendTo range-selects from the current anchor over the render order.
// Without an anchor it behaves like SelectSingle.
func (s *Service) ExtendTo(id string) {
	if s.state.Anchor == "" {
		s.SelectSingle(id)
		return
	}
	s.RangeSelect(s.state.Anchor, id, s.store.RenderOrder())
}

// Range returns the inclusive slice of ordered between a and b, or nil when
// either is missing
func Range(a, b string, ordered []string) []string {
	ia, ib := -1, -1
	for i, id := range ordered {
		if id == a {
			ia = i
		}
		if id == b {
			ib = i
		}
	}
	if ia < 0 || ib < 0 {
		return nil
	}
	if ia > ib {
		ia, ib = ib, ia
	}
	return append([]string{}, ordered[ia:ib+1]...)
}

// SelectAll replaces the selection with ids verbatim
func (s *Service) SelectAll(ids []string) {
	s.store.SetSelection(ids)
}

// Clear empties the selection
func (s *Service) Clear() {
	s.store.SetSelection(nil)
}

// Prune drops selected ids that are no longer in the render order
func (s *Service) Prune() {
	order := s.store.RenderOrder()
	present := make(map[string]bool, len(order))
	for _, id := range order {
		present[id] = true
	}
	current := s.store.Selection()
	kept := current[:0:0]
	for _, id := range current {
		if present[id] {
			kept = append(kept, id)
		}
	}
	if len(kept) != len(current) {
		s.store.SetSelection(kept)
	}
	if s.state.Anchor != "" && !present[s.state.Anchor] {
		s.setAnchor("")
	}
}

// Gesture returns the gesture in progress, or nil
func (s *Service) Gesture() *Gesture {
	return s.gesture
}

// BeginGesture starts a marquee, or a lasso when lasso is set, at p.
// A gesture already in progress is aborted first.
func (s *Service) BeginGesture(p geometry.Point, lasso bool) *Gesture {
	if s.gesture != nil {
		s.gesture.Abort()
	}
	mode := GestureBox
	if lasso {
		mode = GestureLasso
	}
	s.gesture = StartGesture(mode, p, s.store.Selection(), s.minDist)
	return s.gesture
}

// UpdateGesture feeds a pointer move to the gesture in progress
func (s *Service) UpdateGesture(p geometry.Point) bool {
	if s.gesture == nil {
		return false
	}
	return s.gesture.Update(p, s.registry)
}

// FinalizeGesture releases the gesture in progress. A release without any
// movement is a click on empty space: it selects whatever lies under the
// pointer, or clears the selection when nothing does.
func (s *Service) FinalizeGesture(additive bool) Result {
	g := s.gesture
	if g == nil {
		return Result{}
	}
	s.gesture = nil

	res := g.Finalize(s.registry, additive)
	switch {
	case res.Selection != nil:
		s.store.SetSelection(res.Selection)
	case !res.Moved:
		s.Clear()
	}

	path := ""
	if g.Mode() == GestureLasso {
		path = g.Path()
	}
	s.bus.Publish(GestureFinalizedEvent{Mode: g.Mode(), Hits: res.Hits, Additive: additive, Path: path})
	return res
}

// AbortGesture drops the gesture in progress without touching the selection
func (s *Service) AbortGesture() {
	if s.gesture != nil {
		s.gesture.Abort()
		s.gesture = nil
	}
}
