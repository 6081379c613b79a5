package sukharik

import "math"

// Point represents a position in the 2D plane.
//
// Point is a value type: every operation returns a new Point and leaves
// the receiver and arguments untouched. No normalization is performed,
// non-finite coordinates propagate through arithmetic.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// AddPoint returns the component-wise sum of two points.
func (p Point) AddPoint(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// AddXY returns the point translated by (dx, dy).
func (p Point) AddXY(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// AddX returns the point translated along the X axis.
func (p Point) AddX(dx float64) Point {
	return Point{X: p.X + dx, Y: p.Y}
}

// AddY returns the point translated along the Y axis.
func (p Point) AddY(dy float64) Point {
	return Point{X: p.X, Y: p.Y + dy}
}

// DistTo returns the Euclidean distance between two points.
// math.Hypot keeps the result accurate for very large or very small
// coordinate magnitudes.
func (p Point) DistTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// ReflectOX reflects the point across the horizontal line y = yShift.
// Pass 0 to reflect across the X axis.
func (p Point) ReflectOX(yShift float64) Point {
	return Point{X: p.X, Y: 2*yShift - p.Y}
}

// Polar returns the point at distance r from origin in direction a.
// The Y axis points down, as in SVG, so positive angles open upward.
func Polar(origin Point, r float64, a *Angle) Point {
	return origin.AddXY(r*a.Cos(), -r*a.Sin())
}

// Approx returns true if two points are approximately equal within epsilon.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}
