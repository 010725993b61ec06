package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"filegrip/internal/geometry"
)

func TestLassoSkipsNearbyPoints(t *testing.T) {
	g := StartGesture(GestureLasso, geometry.Point{X: 0, Y: 0}, nil, 4)

	assert.False(t, g.Update(geometry.Point{X: 3, Y: 3}, nil))
	assert.Len(t, g.Points(), 1)

	assert.True(t, g.Update(geometry.Point{X: 4, Y: 0}, nil), "one axis at the threshold is enough")
	assert.True(t, g.Update(geometry.Point{X: 4, Y: 10}, nil))
	assert.Len(t, g.Points(), 3)
}

func TestBoxUpdateMovesSecondCorner(t *testing.T) {
	g := StartGesture(GestureBox, geometry.Point{X: 10, Y: 10}, nil, 0)
	assert.False(t, g.Moved())

	g.Update(geometry.Point{X: 2, Y: 30}, nil)
	assert.True(t, g.Moved())
	assert.Equal(t, geometry.Rect{X: 2, Y: 10, W: 8, H: 20}, g.Box())
}

func TestUnderSelectionTracksPointer(t *testing.T) {
	reg := fourSquares()
	g := StartGesture(GestureBox, geometry.Point{X: 0, Y: 0}, nil, 0)

	g.Update(geometry.Point{X: 15, Y: 15}, reg)
	assert.Equal(t, []string{"a"}, g.UnderSelection())

	g.Update(geometry.Point{X: 25, Y: 5}, reg)
	assert.Equal(t, []string{"a", "b"}, g.UnderSelection())
}

func TestGlowLagsAndIgnoresStaleFrames(t *testing.T) {
	g := StartGesture(GestureLasso, geometry.Point{X: 0, Y: 0}, nil, 4)
	g.Update(geometry.Point{X: 10, Y: 0}, nil)
	stale := g.Frame()
	g.Update(geometry.Point{X: 20, Y: 0}, nil)

	assert.False(t, g.AdvanceFrame(stale))
	assert.Len(t, g.Glow(), 1)

	assert.True(t, g.AdvanceFrame(g.Frame()))
	assert.Len(t, g.Glow(), len(g.Smoothed())-1)
}

func TestAbortedGestureIgnoresFrames(t *testing.T) {
	g := StartGesture(GestureLasso, geometry.Point{X: 0, Y: 0}, nil, 4)
	g.Update(geometry.Point{X: 10, Y: 0}, nil)
	frame := g.Frame()
	g.Abort()

	assert.True(t, g.Done())
	assert.False(t, g.AdvanceFrame(frame))
	assert.False(t, g.Update(geometry.Point{X: 50, Y: 50}, nil))
}

func TestLassoPathStartsWithMove(t *testing.T) {
	g := StartGesture(GestureLasso, geometry.Point{X: 0, Y: 0}, nil, 4)
	g.Update(geometry.Point{X: 10, Y: 0}, nil)
	g.Update(geometry.Point{X: 10, Y: 10}, nil)

	assert.Regexp(t, `^M 0 0`, g.Path())
}

func TestRegistryTopmostHit(t *testing.T) {
	reg := fourSquares()
	reg.Add("overlay", geometry.Rect{X: 0, Y: 0, W: 40, H: 40})

	r, ok := reg.Test(geometry.Point{X: 5, Y: 5})
	assert.True(t, ok)
	assert.Equal(t, "overlay", r.ID)

	reg.Clear()
	_, ok = reg.Test(geometry.Point{X: 5, Y: 5})
	assert.False(t, ok)
}
