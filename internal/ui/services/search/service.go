package search

import (
	"strings"

	"github.com/sirupsen/logrus"

	"filegrip/internal/ui/services/events"
)

// Service handles incremental name search over the render order
type Service struct {
	state      *State
	bus        events.EventBus
	log        logrus.FieldLogger
	matcherFn  func(string) []int // render indices matching a query
	navigateFn func(int)          // moves the cursor to an index
}

// NewService creates a new search service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{},
		bus:   bus,
		log:   logrus.WithField("component", "search"),
	}
}

// SetMatcherFunction sets the function to find matches
func (s *Service) SetMatcherFunction(fn func(string) []int) {
	s.matcherFn = fn
}

// SetNavigateFunction sets the function to navigate to an index
func (s *Service) SetNavigateFunction(fn func(int)) {
	s.navigateFn = fn
}

// StartSearch begins a new search, or refines the current one
func (s *Service) StartSearch(query string) {
	if query == s.state.Query {
		return
	}

	s.state.Query = query
	s.bus.Publish(SearchStartedEvent{Query: query})

	if query == "" {
		s.clearSearch()
		return
	}

	s.performSearch()
	s.navigateToCurrentMatch()
}

// Refresh re-runs the current query after the listing changed
func (s *Service) Refresh() {
	if s.state.Query != "" {
		s.performSearch()
	}
}

// ClearSearch clears the current search
func (s *Service) ClearSearch() {
	s.clearSearch()
}

// NavigateNext moves to the next search result
func (s *Service) NavigateNext() {
	s.step(1)
}

// NavigatePrevious moves to the previous search result
func (s *Service) NavigatePrevious() {
	s.step(-1)
}

func (s *Service) step(delta int) {
	n := len(s.state.Matches)
	if n == 0 {
		return
	}

	oldMatch := s.state.CurrentMatch
	s.state.CurrentMatch = ((s.state.CurrentMatch+delta)%n + n) % n

	s.navigateToCurrentMatch()

	s.bus.Publish(SearchNavigatedEvent{
		OldIndex: s.state.Matches[oldMatch],
		NewIndex: s.state.Matches[s.state.CurrentMatch],
	})
}

// GetQuery returns the current search query
func (s *Service) GetQuery() string {
	return s.state.Query
}

// GetMatchCount returns the number of matches
func (s *Service) GetMatchCount() int {
	return len(s.state.Matches)
}

// GetCurrentMatchIndex returns the render index of the current match, or -1
func (s *Service) GetCurrentMatchIndex() int {
	if len(s.state.Matches) == 0 {
		return -1
	}
	return s.state.Matches[s.state.CurrentMatch]
}

// IsMatch checks if an index is a search match
func (s *Service) IsMatch(index int) bool {
	for _, match := range s.state.Matches {
		if match == index {
			return true
		}
	}
	return false
}

func (s *Service) performSearch() {
	if s.matcherFn == nil {
		return
	}

	old := s.state.Matches
	s.state.Matches = s.matcherFn(s.state.Query)

	changed := len(old) != len(s.state.Matches)
	for i := 0; !changed && i < len(old); i++ {
		changed = old[i] != s.state.Matches[i]
	}
	if changed || s.state.CurrentMatch >= len(s.state.Matches) {
		s.state.CurrentMatch = 0
	}

	s.log.WithFields(logrus.Fields{
		"query":   s.state.Query,
		"matches": len(s.state.Matches),
	}).Debug("search completed")

	firstMatch := -1
	if len(s.state.Matches) > 0 {
		firstMatch = s.state.Matches[0]
	}

	s.bus.Publish(SearchCompletedEvent{
		Query:      s.state.Query,
		MatchCount: len(s.state.Matches),
		FirstMatch: firstMatch,
	})
}

func (s *Service) clearSearch() {
	s.state.Query = ""
	s.state.Matches = nil
	s.state.CurrentMatch = 0

	s.bus.Publish(SearchClearedEvent{})
}

func (s *Service) navigateToCurrentMatch() {
	if s.navigateFn == nil || len(s.state.Matches) == 0 {
		return
	}
	s.navigateFn(s.state.Matches[s.state.CurrentMatch])
}

// ShouldHighlight reports whether a name contains the query
func (s *Service) ShouldHighlight(text string) bool {
	if s.state.Query == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(s.state.Query))
}
