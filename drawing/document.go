// Package drawing provides the document model of a drawing: a canvas of
// declared pixel size holding lines, circles, polylines, arcs and labels
// positioned with sukharik points and angles.
//
// A Document is what the export package serializes to SVG and rasterizes
// to PNG.
package drawing

import (
	"github.com/google/uuid"

	"github.com/gogpu/sukharik"
)

// Style describes how an element is painted.
// A transparent color paints nothing.
type Style struct {
	Stroke RGBA
	Fill   RGBA
	Width  float64
}

// Element is one shape of a Document.
type Element interface {
	// Kind names the element, e.g. "line".
	Kind() string

	// reflectOX returns the element reflected across y = yShift.
	reflectOX(yShift float64) Element
}

// Line is a straight segment.
type Line struct {
	From, To sukharik.Point
	Style    Style
}

// Circle is a circle given by its center and radius.
type Circle struct {
	Center sukharik.Point
	Radius float64
	Style  Style
}

// Polyline is a sequence of connected segments, optionally closed.
type Polyline struct {
	Points []sukharik.Point
	Closed bool
	Style  Style
}

// Arc is a circular arc starting at angle Start and sweeping by Sweep.
// Positive sweeps turn counter-clockwise on screen. A nil angle is 0.
type Arc struct {
	Center sukharik.Point
	Radius float64
	Start  *sukharik.Angle
	Sweep  *sukharik.Angle
	Style  Style
}

// Anchor is the horizontal alignment of a Label relative to its position.
type Anchor int

const (
	// AnchorStart aligns the beginning of the text with the position.
	AnchorStart Anchor = iota
	// AnchorMiddle centers the text on the position.
	AnchorMiddle
	// AnchorEnd aligns the end of the text with the position.
	AnchorEnd
)

// Label is a line of text whose baseline starts, centers or ends at At.
type Label struct {
	At     sukharik.Point
	Text   string
	Size   float64
	Anchor Anchor
	Style  Style
}

func (Line) Kind() string     { return "line" }
func (Circle) Kind() string   { return "circle" }
func (Polyline) Kind() string { return "polyline" }
func (Arc) Kind() string      { return "arc" }
func (Label) Kind() string    { return "label" }

func (l Line) reflectOX(y float64) Element {
	l.From, l.To = l.From.ReflectOX(y), l.To.ReflectOX(y)
	return l
}

func (c Circle) reflectOX(y float64) Element {
	c.Center = c.Center.ReflectOX(y)
	return c
}

func (p Polyline) reflectOX(y float64) Element {
	pts := make([]sukharik.Point, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = pt.ReflectOX(y)
	}
	p.Points = pts
	return p
}

func (a Arc) reflectOX(y float64) Element {
	a.Center = a.Center.ReflectOX(y)
	a.Start = sukharik.AngleFromRad(-a.StartRad())
	a.Sweep = sukharik.AngleFromRad(-a.SweepRad())
	return a
}

// Labels keep reading left to right; only the position moves.
func (l Label) reflectOX(y float64) Element {
	l.At = l.At.ReflectOX(y)
	return l
}

// ReflectOX returns e reflected across the horizontal line y = yShift.
func ReflectOX(e Element, yShift float64) Element {
	return e.reflectOX(yShift)
}

// Points returns the arc approximated by segments no longer than
// maxStep pixels. The first and last points are the arc's endpoints.
func (a Arc) Points(maxStep float64) []sukharik.Point {
	start, sweep := a.StartRad(), a.SweepRad()
	length := a.Radius * abs(sweep)
	n := 1
	if maxStep > 0 && length > maxStep {
		n = int(length/maxStep) + 1
	}
	pts := make([]sukharik.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		dir := sukharik.AngleFromRad(start + sweep*t)
		pts = append(pts, sukharik.Polar(a.Center, a.Radius, dir))
	}
	return pts
}

// StartRad returns the start angle in radians.
func (a Arc) StartRad() float64 { return radOf(a.Start) }

// SweepRad returns the sweep in radians.
func (a Arc) SweepRad() float64 { return radOf(a.Sweep) }

func radOf(a *sukharik.Angle) float64 {
	if a == nil {
		return 0
	}
	return a.Rad()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Document is a drawing of declared pixel size.
type Document struct {
	// ID identifies the document; it becomes the id of the SVG root.
	ID string

	// Width and Height are the declared pixel dimensions.
	Width, Height float64

	// Background fills the canvas before any element; transparent by
	// default.
	Background RGBA

	Elements []Element
}

// Option configures a Document during creation.
type Option func(*Document)

// WithID sets the document ID instead of a generated one.
func WithID(id string) Option {
	return func(d *Document) {
		d.ID = id
	}
}

// WithBackground sets the document background color.
func WithBackground(c RGBA) Option {
	return func(d *Document) {
		d.Background = c
	}
}

// New creates an empty document with a random UUID as its ID.
func New(width, height float64, opts ...Option) *Document {
	d := &Document{
		ID:     uuid.NewString(),
		Width:  width,
		Height: height,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Add appends elements to the document.
func (d *Document) Add(elems ...Element) {
	d.Elements = append(d.Elements, elems...)
}

// Len returns the number of elements.
func (d *Document) Len() int {
	return len(d.Elements)
}
