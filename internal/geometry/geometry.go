// Package geometry holds the pointer-space math used for hit-testing and
// lasso shaping: rectangles, polygon containment, smoothing filters and the
// path string a renderer draws the lasso with.
package geometry

import "math"

// Point is a position in pixel space
type Point struct {
	X, Y float64
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mid returns the midpoint of p and q
func Mid(p, q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Rect is an axis-aligned rectangle given by its origin and size
type Rect struct {
	X, Y, W, H float64
}

// RectFromCorners builds a rectangle spanning two opposite corners in any order
func RectFromCorners(a, b Point) Rect {
	left, right := math.Min(a.X, b.X), math.Max(a.X, b.X)
	top, bottom := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the centre of the rectangle
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// Intersects reports whether r and o overlap. Touching edges count as overlap.
func (r Rect) Intersects(o Rect) bool {
	return !(o.Right() < r.Left() ||
		o.Left() > r.Right() ||
		o.Bottom() < r.Top() ||
		o.Top() > r.Bottom())
}
