package geometry

import (
	"strconv"
	"strings"
)

// savitzkyGolay3 is the window-3, order-2 smoothing kernel
var savitzkyGolay3 = [3]float64{1.0 / 6, 2.0 / 3, 1.0 / 6}

// PointInPolygon tests p against poly with the even-odd ray casting rule.
// The polygon is implicitly closed.
func PointInPolygon(p Point, poly []Point) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		xi, yi := poly[i].X, poly[i].Y
		xj, yj := poly[j].X, poly[j].Y

		if (yi > p.Y) != (yj > p.Y) && p.X < (xj-xi)*(p.Y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// SavitzkyGolay applies the 3-tap kernel [1/6, 2/3, 1/6] to every interior
// point. The first and last points are kept as they are.
func SavitzkyGolay(points []Point) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	for i := 1; i < len(points)-1; i++ {
		prev, curr, next := points[i-1], points[i], points[i+1]
		out[i] = Point{
			X: prev.X*savitzkyGolay3[0] + curr.X*savitzkyGolay3[1] + next.X*savitzkyGolay3[2],
			Y: prev.Y*savitzkyGolay3[0] + curr.Y*savitzkyGolay3[1] + next.Y*savitzkyGolay3[2],
		}
	}
	return out
}

// Smoothen is a [1/4, 1/2, 1/4] moving average that keeps the endpoints
func Smoothen(points []Point) []Point {
	if len(points) < 3 {
		return append([]Point(nil), points...)
	}
	out := make([]Point, 0, len(points))
	out = append(out, points[0])
	for i := 1; i < len(points)-1; i++ {
		prev, curr, next := points[i-1], points[i], points[i+1]
		out = append(out, Point{
			X: curr.X*0.5 + (prev.X+next.X)*0.25,
			Y: curr.Y*0.5 + (prev.Y+next.Y)*0.25,
		})
	}
	return append(out, points[len(points)-1])
}

// Smooth is the full lasso filter: Savitzky-Golay followed by Smoothen
func Smooth(points []Point) []Point {
	return Smoothen(SavitzkyGolay(points))
}

// CatmullRom interpolates steps+1 points per segment of a Catmull-Rom spline.
// Fewer than four points are returned unchanged.
func CatmullRom(points []Point, tension float64, steps int) []Point {
	if len(points) < 4 || steps <= 0 {
		return append([]Point(nil), points...)
	}

	out := make([]Point, 0, (len(points)-3)*(steps+1))
	for i := 0; i < len(points)-3; i++ {
		p0, p1, p2, p3 := points[i], points[i+1], points[i+2], points[i+3]
		for t := 0; t <= steps; t++ {
			s := float64(t) / float64(steps)
			s2 := s * s
			s3 := s2 * s

			w0 := -tension*s3 + 2*tension*s2 - tension*s
			w1 := (2-tension)*s3 + (tension-3)*s2 + 1
			w2 := (tension-2)*s3 + (3-2*tension)*s2 + tension*s
			w3 := tension*s3 - tension*s2

			out = append(out, Point{
				X: w0*p0.X + w1*p1.X + w2*p2.X + w3*p3.X,
				Y: w0*p0.Y + w1*p1.Y + w2*p2.Y + w3*p3.Y,
			})
		}
	}
	return out
}

// SmoothPath renders points as an SVG path of quadratic Bezier segments:
// each point is a control point whose curve ends at the midpoint to the next
// one, and a final smooth segment reaches the last point.
// Fewer than two points yield an empty string.
func SmoothPath(points []Point) string {
	if len(points) < 2 {
		return ""
	}

	var b strings.Builder
	b.WriteString("M ")
	b.WriteString(num(points[0].X))
	b.WriteByte(' ')
	b.WriteString(num(points[0].Y))

	for i := 0; i < len(points)-1; i++ {
		m := Mid(points[i], points[i+1])
		b.WriteString(" Q ")
		b.WriteString(num(points[i].X))
		b.WriteByte(' ')
		b.WriteString(num(points[i].Y))
		b.WriteByte(' ')
		b.WriteString(num(m.X))
		b.WriteByte(',')
		b.WriteString(num(m.Y))
	}

	last := points[len(points)-1]
	b.WriteString(" T ")
	b.WriteString(num(last.X))
	b.WriteByte(',')
	b.WriteString(num(last.Y))
	return b.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
