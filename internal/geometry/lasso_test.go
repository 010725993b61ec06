package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() []Point {
	return []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
}

func TestPointInPolygon(t *testing.T) {
	assert.True(t, PointInPolygon(Point{5, 5}, square()))
	assert.False(t, PointInPolygon(Point{15, 5}, square()))
	assert.False(t, PointInPolygon(Point{-1, -1}, square()))
	assert.False(t, PointInPolygon(Point{1, 1}, nil))
}

func TestPointInPolygonConcave(t *testing.T) {
	// U shape opening upwards; the notch is outside
	u := []Point{{0, 0}, {3, 0}, {3, 8}, {7, 8}, {7, 0}, {10, 0}, {10, 10}, {0, 10}}
	assert.True(t, PointInPolygon(Point{1, 5}, u))
	assert.False(t, PointInPolygon(Point{5, 4}, u))
	assert.True(t, PointInPolygon(Point{5, 9}, u))
}

func TestSavitzkyGolayKeepsEdges(t *testing.T) {
	in := []Point{{0, 0}, {6, 6}, {12, 0}}
	out := SavitzkyGolay(in)

	require.Len(t, out, 3)
	assert.Equal(t, in[0], out[0])
	assert.Equal(t, in[2], out[2])
	assert.InDelta(t, 6, out[1].X, 1e-9)
	assert.InDelta(t, 4, out[1].Y, 1e-9)
}

func TestSavitzkyGolayShortInput(t *testing.T) {
	in := []Point{{1, 2}, {3, 4}}
	assert.Equal(t, in, SavitzkyGolay(in))
	assert.Empty(t, SavitzkyGolay(nil))
}

func TestSmoothen(t *testing.T) {
	out := Smoothen([]Point{{0, 0}, {4, 8}, {8, 0}})
	assert.Equal(t, []Point{{0, 0}, {4, 4}, {8, 0}}, out)
	assert.Equal(t, []Point{{1, 1}}, Smoothen([]Point{{1, 1}}))
}

func TestSmoothPath(t *testing.T) {
	assert.Equal(t, "", SmoothPath(nil))
	assert.Equal(t, "", SmoothPath([]Point{{1, 1}}))
	assert.Equal(t, "M 0 0 Q 0 0 5,0 Q 10 0 10,5 T 10,10",
		SmoothPath([]Point{{0, 0}, {10, 0}, {10, 10}}))
}

func TestSmoothPathFractions(t *testing.T) {
	assert.Equal(t, "M 0.5 1 Q 0.5 1 1.25,1.5 T 2,2", SmoothPath([]Point{{0.5, 1}, {2, 2}}))
}

func TestCatmullRomPassesThroughInnerPoints(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {20, 10}, {30, 10}}
	out := CatmullRom(pts, 0.5, 4)

	require.Len(t, out, 5)
	assert.InDelta(t, 10, out[0].X, 1e-9)
	assert.InDelta(t, 0, out[0].Y, 1e-9)
	assert.InDelta(t, 20, out[4].X, 1e-9)
	assert.InDelta(t, 10, out[4].Y, 1e-9)

	assert.Equal(t, pts[:3], CatmullRom(pts[:3], 0.5, 4))
}
