package drawing

import (
	"math"

	"golang.org/x/text/language"

	"github.com/gogpu/sukharik"
	"github.com/gogpu/sukharik/numeric"
)

// Default figure styling.
var (
	RayStyle    = Style{Stroke: RGB(0.13, 0.13, 0.13), Width: 2}
	ArcStyle    = Style{Stroke: RGB(0.85, 0.2, 0.2), Width: 1.5}
	ChordStyle  = Style{Stroke: RGB(0.2, 0.4, 0.85), Width: 1}
	MirrorStyle = Style{Stroke: RGB(0.6, 0.6, 0.6), Width: 1}
	LabelStyle  = Style{Fill: RGB(0.13, 0.13, 0.13)}
	VertexStyle = Style{Fill: RGB(0.13, 0.13, 0.13)}
)

const (
	labelSize    = 14
	vertexRadius = 3
	maxArcRadius = 40
)

// AngleFigure describes the construction of an angle: two rays of equal
// length leaving a common vertex, an arc marking the opening and a label
// with the measure in degrees.
type AngleFigure struct {
	Vertex sukharik.Point
	Length float64

	// Angle is the opening between the rays; nil means 0.
	Angle *sukharik.Angle

	// Rotation is the direction of the first ray; nil means 0.
	Rotation *sukharik.Angle

	// Chord draws the segment joining the ray tips, labelled with its
	// length.
	Chord bool

	// Mirror adds the figure reflected across the horizontal line
	// through the vertex.
	Mirror bool

	// Precision is the number of decimal digits shown in labels.
	Precision int

	// Locale selects digit grouping and decimal separator of labels.
	// language.Und formats like numeric.RoundAndFormat.
	Locale language.Tag
}

// Tips returns the far ends of the first and second ray.
func (f AngleFigure) Tips() (first, second sukharik.Point) {
	rot := f.rotation()
	first = sukharik.Polar(f.Vertex, f.Length, rot)
	second = sukharik.Polar(f.Vertex, f.Length, sukharik.AngleFromRad(rot.Rad()+f.opening().Rad()))
	return first, second
}

// ChordLength returns the distance between the ray tips.
func (f AngleFigure) ChordLength() float64 {
	a, b := f.Tips()
	return a.DistTo(b)
}

// Label returns the text of the degree label, e.g. "45°".
func (f AngleFigure) Label() string {
	return numeric.FormatLocale(f.Locale, f.opening().Deg(), f.Precision) + "°"
}

func (f AngleFigure) rotation() *sukharik.Angle {
	if f.Rotation == nil {
		return sukharik.AngleFromRad(0)
	}
	return f.Rotation
}

func (f AngleFigure) opening() *sukharik.Angle {
	if f.Angle == nil {
		return sukharik.AngleFromRad(0)
	}
	return f.Angle
}

// Elements returns the figure's elements, mirror image included.
func (f AngleFigure) Elements() []Element {
	rot, angle := f.rotation(), f.opening()
	first, second := f.Tips()
	arcR := math.Min(f.Length/4, maxArcRadius)
	mid := sukharik.AngleFromRad(rot.Rad() + angle.Rad()/2)

	elems := []Element{
		Line{From: f.Vertex, To: first, Style: RayStyle},
		Line{From: f.Vertex, To: second, Style: RayStyle},
		Arc{Center: f.Vertex, Radius: arcR, Start: rot, Sweep: angle, Style: ArcStyle},
		Label{
			At:     sukharik.Polar(f.Vertex, arcR+labelSize, mid).AddY(labelSize / 3),
			Text:   f.Label(),
			Size:   labelSize,
			Anchor: AnchorMiddle,
			Style:  LabelStyle,
		},
	}

	if f.Chord {
		center := first.AddPoint(second)
		center = sukharik.Pt(center.X/2, center.Y/2)
		elems = append(elems,
			Line{From: first, To: second, Style: ChordStyle},
			Label{
				At:     center.AddX(6),
				Text:   numeric.FormatLocale(f.Locale, f.ChordLength(), f.Precision),
				Size:   labelSize - 2,
				Anchor: AnchorStart,
				Style:  Style{Fill: ChordStyle.Stroke},
			})
	}

	if f.Mirror {
		n := len(elems)
		for _, e := range elems[:n] {
			m := ReflectOX(e, f.Vertex.Y)
			switch v := m.(type) {
			case Line:
				v.Style = MirrorStyle
				m = v
			case Arc:
				v.Style = MirrorStyle
				m = v
			case Label:
				v.Style = Style{Fill: MirrorStyle.Stroke}
				m = v
			}
			elems = append(elems, m)
		}
	}

	elems = append(elems, Circle{Center: f.Vertex, Radius: vertexRadius, Style: VertexStyle})
	return elems
}

// Document builds a document of the given size holding the figure.
func (f AngleFigure) Document(width, height float64, opts ...Option) *Document {
	d := New(width, height, opts...)
	d.Add(f.Elements()...)
	return d
}
