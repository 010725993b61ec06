package tabs

import (
	"sync"

	"github.com/google/uuid"

	"filegrip/internal/ui/services/events"
)

// Service is the tab store: navigation history, view configuration and
// selection storage for every open tab, plus the active pointer.
// There is always at least one tab.
type Service struct {
	mu       sync.RWMutex
	state    *State
	defaults Defaults
	newID    func() string
	bus      events.EventBus
}

// Option customises a Service
type Option func(*Service)

// WithIDGenerator replaces the uuid generator, mainly for tests
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

// WithDefaults sets the view configuration of new tabs
func WithDefaults(d Defaults) Option {
	return func(s *Service) { s.defaults = d }
}

// NewService creates a tab store holding a single tab at location
func NewService(bus events.EventBus, location string, opts ...Option) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	s := &Service{
		state:    &State{},
		defaults: DefaultDefaults(),
		newID:    uuid.NewString,
		bus:      bus,
	}
	for _, opt := range opts {
		opt(s)
	}

	tab := s.newTab(location)
	s.state.Tabs = append(s.state.Tabs, tab)
	s.state.ActiveID = tab.ID
	return s
}

func (s *Service) newTab(location string) *Tab {
	return &Tab{
		ID:           s.newID(),
		Location:     location,
		History:      []string{location},
		HistoryIndex: 0,
		ViewMode:     s.defaults.ViewMode,
		GroupMode:    s.defaults.GroupMode,
		SortMode:     s.defaults.SortMode,
		SortOrder:    s.defaults.SortOrder,
		Selection:    []string{},
		RenderOrder:  []string{},
	}
}

// active returns the active tab; callers hold the lock
func (s *Service) active() *Tab {
	for _, t := range s.state.Tabs {
		if t.ID == s.state.ActiveID {
			return t
		}
	}
	// unreachable while ActiveID names a live tab
	return s.state.Tabs[0]
}

func (s *Service) indexOf(id string) int {
	for i, t := range s.state.Tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// publish sends events after the lock has been released
func (s *Service) publish(evts ...interface{}) {
	for _, e := range evts {
		s.bus.Publish(e)
	}
}

// ActiveTab returns a snapshot of the active tab
func (s *Service) ActiveTab() Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active().clone()
}

// ActiveID returns the id of the active tab
func (s *Service) ActiveID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ActiveID
}

// ActiveIndex returns the position of the active tab
func (s *Service) ActiveIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(s.state.ActiveID)
}

// Tabs returns snapshots of all tabs in order
func (s *Service) Tabs() []Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Tab, len(s.state.Tabs))
	for i, t := range s.state.Tabs {
		out[i] = t.clone()
	}
	return out
}

// Count returns the number of open tabs
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.Tabs)
}

// OpenTab appends a fresh tab at location and activates it
func (s *Service) OpenTab(location string) string {
	s.mu.Lock()
	tab := s.newTab(location)
	s.state.Tabs = append(s.state.Tabs, tab)
	s.state.ActiveID = tab.ID
	s.mu.Unlock()

	s.publish(
		TabOpenedEvent{ID: tab.ID, Location: location},
		ActiveTabChangedEvent{ID: tab.ID},
		LocationChangedEvent{TabID: tab.ID, Location: location},
	)
	return tab.ID
}

// CloseTab removes a tab. Closing the last tab or an unknown id does nothing.
// When the active tab closes, its left neighbour becomes active.
func (s *Service) CloseTab(id string) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 || len(s.state.Tabs) <= 1 {
		s.mu.Unlock()
		return
	}

	wasActive := s.state.ActiveID == id
	s.state.Tabs = append(s.state.Tabs[:idx:idx], s.state.Tabs[idx+1:]...)

	evts := []interface{}{TabClosedEvent{ID: id}}
	if wasActive {
		next := idx - 1
		if next < 0 {
			next = 0
		}
		tab := s.state.Tabs[next]
		s.state.ActiveID = tab.ID
		evts = append(evts,
			ActiveTabChangedEvent{ID: tab.ID},
			LocationChangedEvent{TabID: tab.ID, Location: tab.Location},
		)
	}
	s.mu.Unlock()

	s.publish(evts...)
}

// SetActiveTab switches the active pointer. Unknown ids are ignored.
func (s *Service) SetActiveTab(id string) {
	s.mu.Lock()
	if s.indexOf(id) < 0 || s.state.ActiveID == id {
		s.mu.Unlock()
		return
	}
	s.state.ActiveID = id
	location := s.active().Location
	s.mu.Unlock()

	s.publish(
		ActiveTabChangedEvent{ID: id},
		LocationChangedEvent{TabID: id, Location: location},
	)
}

// Navigate moves the active tab to location, dropping any forward history.
// With newTab set it opens a tab instead.
func (s *Service) Navigate(location string, newTab bool) {
	if newTab {
		s.OpenTab(location)
		return
	}

	s.mu.Lock()
	tab := s.active()
	tab.History = append(tab.History[:tab.HistoryIndex+1:tab.HistoryIndex+1], location)
	tab.HistoryIndex = len(tab.History) - 1
	tab.Location = location
	tab.ScrollTop = 0
	tab.Selection = []string{}
	id := tab.ID
	s.mu.Unlock()

	s.publish(
		SelectionChangedEvent{TabID: id, Selection: []string{}},
		LocationChangedEvent{TabID: id, Location: location},
	)
}

// GoBack steps back in history; no-op at the start
func (s *Service) GoBack() {
	s.step(-1)
}

// GoForward steps forward in history; no-op at the end
func (s *Service) GoForward() {
	s.step(1)
}

func (s *Service) step(delta int) {
	s.mu.Lock()
	tab := s.active()
	next := tab.HistoryIndex + delta
	if next < 0 || next >= len(tab.History) {
		s.mu.Unlock()
		return
	}
	tab.HistoryIndex = next
	tab.Location = tab.History[next]
	id, location := tab.ID, tab.Location
	s.mu.Unlock()

	s.publish(LocationChangedEvent{TabID: id, Location: location})
}

// CanGoBack reports whether there is history behind the cursor
func (s *Service) CanGoBack() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active().HistoryIndex > 0
}

// CanGoForward reports whether there is history ahead of the cursor
func (s *Service) CanGoForward() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tab := s.active()
	return tab.HistoryIndex < len(tab.History)-1
}

// updateActive applies fn to the active tab and publishes the returned events
func (s *Service) updateActive(fn func(t *Tab) []interface{}) {
	s.mu.Lock()
	evts := fn(s.active())
	s.mu.Unlock()
	s.publish(evts...)
}

func (s *Service) viewChanged(t *Tab) []interface{} {
	return []interface{}{ViewConfigChangedEvent{TabID: t.ID}}
}
