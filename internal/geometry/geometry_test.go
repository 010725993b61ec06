package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectFromCornersNormalises(t *testing.T) {
	r := RectFromCorners(Point{X: 30, Y: 5}, Point{X: 10, Y: 25})
	assert.Equal(t, Rect{X: 10, Y: 5, W: 20, H: 20}, r)
	assert.Equal(t, Point{X: 20, Y: 15}, r.Center())
}

func TestRectIntersects(t *testing.T) {
	items := []Rect{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: 20, Y: 0, W: 10, H: 10},
		{X: 0, Y: 20, W: 10, H: 10},
		{X: 20, Y: 20, W: 10, H: 10},
	}

	hits := func(box Rect) []int {
		var out []int
		for i, r := range items {
			if box.Intersects(r) {
				out = append(out, i)
			}
		}
		return out
	}

	assert.Equal(t, []int{0}, hits(RectFromCorners(Point{0, 0}, Point{15, 15})))
	assert.Equal(t, []int{0, 1, 2, 3}, hits(RectFromCorners(Point{0, 0}, Point{35, 35})))
}

func TestRectIntersectsTouchingEdges(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, a.Intersects(Rect{X: 10, Y: 0, W: 5, H: 5}))
	assert.False(t, a.Intersects(Rect{X: 10.5, Y: 0, W: 5, H: 5}))
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	assert.True(t, r.Contains(Point{10, 20}))
	assert.True(t, r.Contains(Point{39, 59}))
	assert.False(t, r.Contains(Point{40, 30}))
	assert.False(t, r.Contains(Point{15, 60}))
	assert.False(t, Rect{X: 5, Y: 5}.Contains(Point{5, 5}))
}
