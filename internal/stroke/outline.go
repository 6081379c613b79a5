package stroke

import (
	"math"

	"github.com/gogpu/sukharik"
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Stroke defines the style for stroke expansion.
type Stroke struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64

	// Tolerance is the maximum distance between a round cap or join and
	// its polygon approximation. Zero means 0.25 px.
	Tolerance float64
}

// DefaultStroke returns a stroke with default settings.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
		Tolerance:  0.25,
	}
}

// Polygon is a closed convex contour.
type Polygon []sukharik.Point

type vec struct{ x, y float64 }

func sub(a, b sukharik.Point) vec                { return vec{a.X - b.X, a.Y - b.Y} }
func add(p sukharik.Point, v vec) sukharik.Point { return sukharik.Pt(p.X+v.x, p.Y+v.y) }
func (v vec) scale(s float64) vec                { return vec{v.x * s, v.y * s} }
func (v vec) neg() vec                           { return vec{-v.x, -v.y} }
func (v vec) perp() vec                          { return vec{-v.y, v.x} }
func (v vec) length() float64                    { return math.Hypot(v.x, v.y) }
func (v vec) cross(w vec) float64                { return v.x*w.y - v.y*w.x }
func (v vec) dot(w vec) float64                  { return v.x*w.x + v.y*w.y }

// Outline returns the convex pieces covering the stroke of pts.
// Consecutive duplicate points are ignored. A single point yields the
// caps only, so round and square caps still draw a dot.
func Outline(pts []sukharik.Point, closed bool, s Stroke) []Polygon {
	if s.Width <= 0 || len(pts) == 0 {
		return nil
	}
	if s.Tolerance <= 0 {
		s.Tolerance = 0.25
	}
	pts = dedup(pts)
	if closed && len(pts) > 2 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	hw := s.Width / 2

	if len(pts) == 1 {
		return dotCaps(pts[0], hw, s)
	}

	var out []Polygon
	n := len(pts)
	segs := n - 1
	if closed && n > 2 {
		segs = n
	}
	for i := 0; i < segs; i++ {
		a, b := pts[i], pts[(i+1)%n]
		norm := unitNormal(a, b).scale(hw)
		out = append(out, Polygon{add(a, norm), add(b, norm), add(b, norm.neg()), add(a, norm.neg())})
	}

	for i := 0; i < n; i++ {
		if !closed || n <= 2 {
			if i == 0 || i == n-1 {
				continue
			}
		}
		prev, cur, next := pts[(i+n-1)%n], pts[i], pts[(i+1)%n]
		if j := join(prev, cur, next, hw, s); j != nil {
			out = append(out, j)
		}
	}

	if !closed || n <= 2 {
		if c := capAt(pts[0], sub(pts[0], pts[1]), hw, s); c != nil {
			out = append(out, c)
		}
		if c := capAt(pts[n-1], sub(pts[n-1], pts[n-2]), hw, s); c != nil {
			out = append(out, c)
		}
	}
	return out
}

func dedup(pts []sukharik.Point) []sukharik.Point {
	out := make([]sukharik.Point, 0, len(pts))
	for i, p := range pts {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// unitNormal returns the unit vector perpendicular to a->b.
func unitNormal(a, b sukharik.Point) vec {
	d := sub(b, a)
	l := d.length()
	if l == 0 {
		return vec{}
	}
	return d.perp().scale(1 / l)
}

// join returns the piece filling the gap on the outer side of the turn
// at cur, or nil when the segments are collinear.
func join(prev, cur, next sukharik.Point, hw float64, s Stroke) Polygon {
	d0, d1 := sub(cur, prev), sub(next, cur)
	cross := d0.cross(d1)
	if math.Abs(cross) < 1e-12*d0.length()*d1.length() && d0.dot(d1) > 0 {
		return nil
	}

	n0 := unitNormal(prev, cur).scale(hw)
	n1 := unitNormal(cur, next).scale(hw)
	// The outer side is opposite to the turn direction.
	if cross > 0 {
		n0, n1 = n0.neg(), n1.neg()
	}
	p0, p1 := add(cur, n0), add(cur, n1)

	switch s.Join {
	case LineJoinRound:
		return fan(cur, hw, math.Atan2(n0.y, n0.x), signedAngle(n0, n1), s.Tolerance)
	case LineJoinMiter:
		limit := s.MiterLimit
		if limit <= 0 {
			limit = 4
		}
		cosHalf := math.Sqrt((1 + n0.dot(n1)/(hw*hw)) / 2)
		if cosHalf > 0 && 1/cosHalf <= limit {
			bis := vec{n0.x + n1.x, n0.y + n1.y}
			bis = bis.scale(hw / cosHalf / bis.length())
			return Polygon{cur, p0, add(cur, bis), p1}
		}
	}
	return Polygon{cur, p0, p1}
}

// capAt returns the cap piece at end, where out points away from the line.
func capAt(end sukharik.Point, out vec, hw float64, s Stroke) Polygon {
	l := out.length()
	if l == 0 {
		return nil
	}
	dir := out.scale(1 / l)
	norm := dir.perp().scale(hw)
	switch s.Cap {
	case LineCapRound:
		return fan(end, hw, math.Atan2(norm.y, norm.x), -math.Pi, s.Tolerance)
	case LineCapSquare:
		ext := dir.scale(hw)
		return Polygon{
			add(end, norm), add(add(end, norm), ext),
			add(add(end, norm.neg()), ext), add(end, norm.neg()),
		}
	}
	return nil
}

// dotCaps returns the caps of a zero-length stroke.
func dotCaps(p sukharik.Point, hw float64, s Stroke) []Polygon {
	switch s.Cap {
	case LineCapRound:
		return []Polygon{fan(p, hw, 0, 2*math.Pi, s.Tolerance)}
	case LineCapSquare:
		return []Polygon{{
			p.AddXY(-hw, -hw), p.AddXY(hw, -hw), p.AddXY(hw, hw), p.AddXY(-hw, hw),
		}}
	}
	return nil
}

func signedAngle(a, b vec) float64 {
	return math.Atan2(a.cross(b), a.dot(b))
}

// fan returns the circular sector of radius r around c from angle start
// sweeping by sweep radians, including the center unless it is a full
// circle.
func fan(c sukharik.Point, r, start, sweep, tolerance float64) Polygon {
	steps := ArcSteps(r, math.Abs(sweep), tolerance)
	full := math.Abs(sweep) >= 2*math.Pi
	poly := make(Polygon, 0, steps+2)
	if !full {
		poly = append(poly, c)
	}
	for i := 0; i <= steps; i++ {
		if full && i == steps {
			break
		}
		a := start + sweep*float64(i)/float64(steps)
		poly = append(poly, c.AddXY(r*math.Cos(a), r*math.Sin(a)))
	}
	return poly
}

// ArcSteps returns the number of chords needed to approximate an arc of
// radius r and the given sweep within tolerance.
func ArcSteps(r, sweep, tolerance float64) int {
	if r <= tolerance || tolerance <= 0 {
		return max(1, int(math.Ceil(sweep/(math.Pi/2))))
	}
	step := 2 * math.Acos(1-tolerance/r)
	return max(1, int(math.Ceil(sweep/step)))
}
