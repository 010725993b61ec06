package selection

import (
	"math"

	"filegrip/internal/geometry"
)

// DefaultMinDistance is how far the pointer must travel before a lasso records a point
const DefaultMinDistance = 4

// Gesture is one marquee or lasso drag, from press to release or abort
type Gesture struct {
	mode        GestureMode
	start       geometry.Point
	current     geometry.Point
	points      []geometry.Point
	prior       []string
	under       []string
	minDistance float64
	moved       bool
	done        bool

	// frame is bumped on every change; a scheduled glow update carries the
	// frame it was scheduled for and is dropped when it no longer matches
	frame uint64
	glow  []geometry.Point
}

// StartGesture begins a gesture at p. prior is the selection before the press.
func StartGesture(mode GestureMode, p geometry.Point, prior []string, minDistance float64) *Gesture {
	if minDistance <= 0 {
		minDistance = DefaultMinDistance
	}
	g := &Gesture{
		mode:        mode,
		start:       p,
		current:     p,
		prior:       append([]string(nil), prior...),
		minDistance: minDistance,
	}
	if mode == GestureLasso {
		g.points = []geometry.Point{p}
		g.glow = []geometry.Point{p}
	}
	return g
}

// Mode returns box or lasso
func (g *Gesture) Mode() GestureMode { return g.mode }

// Moved reports whether the pointer moved since the press
func (g *Gesture) Moved() bool { return g.moved }

// Done reports whether the gesture was finalised or aborted
func (g *Gesture) Done() bool { return g.done }

// Frame returns the current frame token
func (g *Gesture) Frame() uint64 { return g.frame }

// Box returns the marquee rectangle spanning the press point and the pointer
func (g *Gesture) Box() geometry.Rect {
	return geometry.RectFromCorners(g.start, g.current)
}

// Points returns the raw lasso polyline
func (g *Gesture) Points() []geometry.Point {
	return append([]geometry.Point(nil), g.points...)
}

// Smoothed returns the lasso polyline after smoothing
func (g *Gesture) Smoothed() []geometry.Point {
	return geometry.Smooth(g.points)
}

// Path returns the renderable path of the smoothed lasso
func (g *Gesture) Path() string {
	return geometry.SmoothPath(g.Smoothed())
}

// Glow returns the trailing glow polyline, one frame behind the lasso
func (g *Gesture) Glow() []geometry.Point {
	return append([]geometry.Point(nil), g.glow...)
}

// UnderSelection is the live preview of what a release would select
func (g *Gesture) UnderSelection() []string {
	return append([]string(nil), g.under...)
}

// Update moves the pointer. Lasso points closer than the minimum distance on
// both axes are skipped. Returns true when the visible shape changed.
func (g *Gesture) Update(p geometry.Point, reg *Registry) bool {
	if g.done {
		return false
	}

	switch g.mode {
	case GestureLasso:
		last := g.points[len(g.points)-1]
		if math.Abs(last.X-p.X) < g.minDistance && math.Abs(last.Y-p.Y) < g.minDistance {
			return false
		}
		g.points = append(g.points, p)
	default:
		if p == g.current {
			return false
		}
	}

	g.current = p
	g.moved = true
	g.frame++
	g.under = g.hits(reg)
	return true
}

// AdvanceFrame runs a scheduled animation frame. Stale frames are ignored.
func (g *Gesture) AdvanceFrame(frame uint64) bool {
	if g.done || frame != g.frame || g.mode != GestureLasso {
		return false
	}
	smooth := g.Smoothed()
	if len(smooth) > 0 {
		smooth = smooth[:len(smooth)-1]
	}
	g.glow = smooth
	return true
}

func (g *Gesture) hits(reg *Registry) []string {
	if reg == nil {
		return nil
	}
	if g.mode == GestureLasso {
		return reg.CentersInside(g.points)
	}
	return reg.Intersecting(g.Box())
}

// Result is the outcome of releasing a gesture
type Result struct {
	Hits      []string
	Selection []string // what the selection becomes; nil when unchanged
	Moved     bool
}

// Finalize tests the final shape against reg and ends the gesture.
// Additive gestures put the prior selection first, then the hits.
// No hits means the selection stays as it was.
func (g *Gesture) Finalize(reg *Registry, additive bool) Result {
	if g.done {
		return Result{}
	}
	g.done = true
	g.frame++

	hits := g.hits(reg)
	res := Result{Hits: hits, Moved: g.moved}
	if len(hits) == 0 {
		return res
	}
	if additive {
		res.Selection = append(append([]string{}, g.prior...), hits...)
	} else {
		res.Selection = hits
	}
	return res
}

// Abort ends the gesture without touching the selection
func (g *Gesture) Abort() {
	g.done = true
	g.frame++
	g.under = nil
}
