package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filegrip/internal/geometry"
)

type memStore struct {
	selection []string
	order     []string
}

func (m *memStore) Selection() []string       { return m.selection }
func (m *memStore) SetSelection(ids []string) { m.selection = ids }
func (m *memStore) RenderOrder() []string     { return m.order }

func fourSquares() *Registry {
	reg := NewRegistry()
	reg.Replace([]Region{
		{ID: "a", Rect: geometry.Rect{X: 0, Y: 0, W: 10, H: 10}},
		{ID: "b", Rect: geometry.Rect{X: 20, Y: 0, W: 10, H: 10}},
		{ID: "c", Rect: geometry.Rect{X: 0, Y: 20, W: 10, H: 10}},
		{ID: "d", Rect: geometry.Rect{X: 20, Y: 20, W: 10, H: 10}},
	})
	return reg
}

func newTestService(order ...string) (*Service, *memStore) {
	store := &memStore{order: order}
	return NewService(nil, store, fourSquares()), store
}

func TestSelectSingleAndToggle(t *testing.T) {
	s, store := newTestService("a", "b", "c")

	s.SelectSingle("b")
	assert.Equal(t, []string{"b"}, store.selection)
	assert.Equal(t, "b", s.Anchor())

	s.Toggle("c")
	assert.Equal(t, []string{"b", "c"}, store.selection)
	assert.True(t, s.IsSelected("c"))

	s.Toggle("b")
	assert.Equal(t, []string{"c"}, store.selection)
	assert.False(t, s.IsSelected("b"))
	assert.Equal(t, 1, s.Count())
}

func TestRangeSelectIsSymmetric(t *testing.T) {
	order := []string{"a", "b", "c", "d", "e"}

	forward := Range("b", "d", order)
	backward := Range("d", "b", order)
	assert.Equal(t, []string{"b", "c", "d"}, forward)
	assert.ElementsMatch(t, forward, backward)
	assert.Equal(t, []string{"c"}, Range("c", "c", order))
}

func TestRangeSelectUnknownIDIsNoop(t *testing.T) {
	s, store := newTestService("a", "b", "c")
	s.SelectSingle("a")

	s.RangeSelect("a", "zzz", store.order)
	assert.Equal(t, []string{"a"}, store.selection)

	s.RangeSelect("zzz", "b", store.order)
	assert.Equal(t, []string{"a"}, store.selection)
}

func TestExtendToUsesAnchorAndRenderOrder(t *testing.T) {
	s, store := newTestService("a", "b", "c", "d")

	s.ExtendTo("b")
	assert.Equal(t, []string{"b"}, store.selection, "no anchor selects single")

	s.ExtendTo("d")
	assert.Equal(t, []string{"b", "c", "d"}, store.selection)
	assert.Equal(t, "b", s.Anchor(), "range extension keeps the anchor")

	s.ExtendTo("a")
	assert.Equal(t, []string{"a", "b"}, store.selection)
}

func TestSelectAllAndClear(t *testing.T) {
	s, store := newTestService("a", "b")
	s.SelectAll([]string{"b", "a", "b"})
	assert.Equal(t, []string{"b", "a", "b"}, store.selection)

	s.Clear()
	assert.Empty(t, store.selection)
}

func TestPruneDropsStaleIDs(t *testing.T) {
	s, store := newTestService("a", "b")
	store.selection = []string{"a", "gone", "b"}
	s.state.Anchor = "gone"

	s.Prune()
	assert.Equal(t, []string{"a", "b"}, store.selection)
	assert.Empty(t, s.Anchor())
}

func TestMarqueeHitsFirstSquare(t *testing.T) {
	s, store := newTestService("a", "b", "c", "d")

	s.BeginGesture(geometry.Point{X: 0, Y: 0}, false)
	s.UpdateGesture(geometry.Point{X: 15, Y: 15})
	res := s.FinalizeGesture(false)

	assert.Equal(t, []string{"a"}, res.Hits)
	assert.Equal(t, []string{"a"}, store.selection)
	assert.Nil(t, s.Gesture())
}

func TestMarqueeHitsAllSquares(t *testing.T) {
	s, store := newTestService("a", "b", "c", "d")

	s.BeginGesture(geometry.Point{X: 0, Y: 0}, false)
	s.UpdateGesture(geometry.Point{X: 35, Y: 35})
	s.FinalizeGesture(false)

	assert.Equal(t, []string{"a", "b", "c", "d"}, store.selection)
}

func TestMarqueeDraggedBackwards(t *testing.T) {
	s, store := newTestService("a", "b", "c", "d")

	s.BeginGesture(geometry.Point{X: 35, Y: 35}, false)
	s.UpdateGesture(geometry.Point{X: 15, Y: 15})
	s.FinalizeGesture(false)

	assert.Equal(t, []string{"d"}, store.selection)
}

func TestAdditiveGesturePutsPriorFirst(t *testing.T) {
	s, store := newTestService("a", "b", "c", "d")
	store.selection = []string{"d", "a"}

	s.BeginGesture(geometry.Point{X: 0, Y: 0}, false)
	s.UpdateGesture(geometry.Point{X: 15, Y: 15})
	s.FinalizeGesture(true)

	assert.Equal(t, []string{"d", "a", "a"}, store.selection)
}

func TestEmptyDragKeepsSelection(t *testing.T) {
	s, store := newTestService("a", "b", "c", "d")
	store.selection = []string{"b"}

	s.BeginGesture(geometry.Point{X: 12, Y: 12}, false)
	s.UpdateGesture(geometry.Point{X: 18, Y: 18})
	res := s.FinalizeGesture(false)

	assert.Empty(t, res.Hits)
	assert.True(t, res.Moved)
	assert.Equal(t, []string{"b"}, store.selection)
}

func TestClickOnEmptySpaceClears(t *testing.T) {
	s, store := newTestService("a", "b", "c", "d")
	store.selection = []string{"b"}

	s.BeginGesture(geometry.Point{X: 15, Y: 15}, false)
	s.FinalizeGesture(false)

	assert.Empty(t, store.selection)
}

func TestLassoSelectsByCentre(t *testing.T) {
	s, store := newTestService("a", "b", "c", "d")

	// triangle around the centres of a, b and c but not d
	s.BeginGesture(geometry.Point{X: -5, Y: -5}, true)
	for _, p := range []geometry.Point{{X: 40, Y: -5}, {X: -5, Y: 40}} {
		require.True(t, s.UpdateGesture(p))
	}
	s.FinalizeGesture(false)

	assert.Equal(t, []string{"a", "b", "c"}, store.selection)
}

func TestAbortGestureLeavesSelection(t *testing.T) {
	s, store := newTestService("a", "b", "c", "d")
	store.selection = []string{"c"}

	s.BeginGesture(geometry.Point{X: 0, Y: 0}, false)
	s.UpdateGesture(geometry.Point{X: 35, Y: 35})
	s.AbortGesture()

	assert.Nil(t, s.Gesture())
	assert.Equal(t, []string{"c"}, store.selection)
	assert.Equal(t, Result{}, s.FinalizeGesture(false))
}

func TestGestureEventPublished(t *testing.T) {
	store := &memStore{order: []string{"a"}}
	bus := &recordingBus{}
	s := NewService(bus, store, fourSquares())

	s.BeginGesture(geometry.Point{X: 0, Y: 0}, false)
	s.UpdateGesture(geometry.Point{X: 5, Y: 5})
	s.FinalizeGesture(true)

	var got *GestureFinalizedEvent
	for _, e := range bus.events {
		if ev, ok := e.(GestureFinalizedEvent); ok {
			got = &ev
		}
	}
	require.NotNil(t, got)
	assert.Equal(t, GestureBox, got.Mode)
	assert.True(t, got.Additive)
	assert.Equal(t, []string{"a"}, got.Hits)
}

type recordingBus struct {
	events []interface{}
}

func (b *recordingBus) Publish(event interface{})                             { b.events = append(b.events, event) }
func (b *recordingBus) Subscribe(eventType string, handler func(interface{})) {}
