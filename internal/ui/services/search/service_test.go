package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"filegrip/internal/ui/services/events"
)

func newSearch(matches map[string][]int) (*Service, *[]int) {
	var visited []int
	s := NewService(events.NewBus())
	s.SetMatcherFunction(func(q string) []int { return matches[q] })
	s.SetNavigateFunction(func(i int) { visited = append(visited, i) })
	return s, &visited
}

func TestSearchJumpsToFirstMatch(t *testing.T) {
	s, visited := newSearch(map[string][]int{"ph": {2, 5, 9}})

	s.StartSearch("ph")
	assert.Equal(t, 3, s.GetMatchCount())
	assert.Equal(t, 2, s.GetCurrentMatchIndex())
	assert.Equal(t, []int{2}, *visited)
	assert.True(t, s.IsMatch(5))
	assert.False(t, s.IsMatch(3))
}

func TestNextAndPreviousWrap(t *testing.T) {
	s, visited := newSearch(map[string][]int{"x": {1, 4}})
	s.StartSearch("x")

	s.NavigateNext()
	s.NavigateNext()
	s.NavigatePrevious()
	assert.Equal(t, []int{1, 4, 1, 4}, *visited)
}

func TestClearSearch(t *testing.T) {
	s, _ := newSearch(map[string][]int{"x": {1}})
	s.StartSearch("x")
	s.StartSearch("")

	assert.Empty(t, s.GetQuery())
	assert.Equal(t, -1, s.GetCurrentMatchIndex())
	s.NavigateNext()
}

func TestRefreshKeepsQuery(t *testing.T) {
	matches := map[string][]int{"x": {1}}
	s, _ := newSearch(matches)
	s.StartSearch("x")

	matches["x"] = []int{3, 7}
	s.Refresh()
	assert.Equal(t, 2, s.GetMatchCount())
	assert.Equal(t, 3, s.GetCurrentMatchIndex())
}

func TestCompletedEventPublished(t *testing.T) {
	bus := events.NewBus()
	var got SearchCompletedEvent
	bus.Subscribe(events.TypeOf(SearchCompletedEvent{}), func(e interface{}) {
		got = e.(SearchCompletedEvent)
	})

	s := NewService(bus)
	s.SetMatcherFunction(func(string) []int { return nil })
	s.StartSearch("none")

	assert.Equal(t, "none", got.Query)
	assert.Equal(t, -1, got.FirstMatch)
}

func TestShouldHighlight(t *testing.T) {
	s, _ := newSearch(nil)
	assert.False(t, s.ShouldHighlight("anything"))
	s.StartSearch("Rep")
	assert.True(t, s.ShouldHighlight("report.pdf"))
}
