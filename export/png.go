package export

import (
	"bufio"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/sukharik"
	"github.com/gogpu/sukharik/drawing"
	"github.com/gogpu/sukharik/internal/stroke"
)

// Rasterize renders doc onto a canvas of the document's declared pixel
// size (times the scale option).
//
// The canvas is painted with the background color (white by default)
// before the document's own background and elements are drawn.
// Rasterize returns ErrNoCanvas when the canvas cannot be allocated.
func Rasterize(doc *drawing.Document, opts ...Option) (*image.RGBA, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	o := buildOptions(opts)

	w, h, err := canvasSize(doc, o)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(o.background.Color()), image.Point{}, draw.Src)
	if !doc.Background.IsNone() {
		draw.Draw(img, img.Bounds(), image.NewUniform(doc.Background.Color()), image.Point{}, draw.Over)
	}

	p := newPainter(img, o)
	for _, e := range doc.Elements {
		p.element(e)
	}

	sukharik.Logger().Debug("export: rasterized document",
		"id", doc.ID, "width", w, "height", h, "elements", len(doc.Elements))
	return img, nil
}

func canvasSize(doc *drawing.Document, o options) (int, int, error) {
	fw, fh := doc.Width*o.scale, doc.Height*o.scale
	if !(fw >= 1) || !(fh >= 1) || math.IsInf(fw, 0) || math.IsInf(fh, 0) {
		return 0, 0, fmt.Errorf("%w: size %vx%v", ErrNoCanvas, doc.Width, doc.Height)
	}
	w, h := int(math.Ceil(fw)), int(math.Ceil(fh))
	if w > o.maxSize || h > o.maxSize {
		return 0, 0, fmt.Errorf("%w: %dx%d exceeds %d px", ErrNoCanvas, w, h, o.maxSize)
	}
	return w, h, nil
}

// WritePNG rasterizes doc and encodes it as PNG.
func WritePNG(w io.Writer, doc *drawing.Document, opts ...Option) error {
	img, err := Rasterize(doc, opts...)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if err := png.Encode(bw, img); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

// painter draws elements onto the canvas. Every shape is accumulated into
// a coverage mask first and composited once, so overlapping stroke pieces
// do not double-blend.
type painter struct {
	dst   *image.RGBA
	mask  *image.Alpha
	r     *vector.Rasterizer
	scale float64
	tol   float64
}

func newPainter(dst *image.RGBA, o options) *painter {
	return &painter{
		dst:   dst,
		mask:  image.NewAlpha(dst.Bounds()),
		r:     &vector.Rasterizer{},
		scale: o.scale,
		tol:   o.tolerance,
	}
}

func (p *painter) element(e drawing.Element) {
	switch v := e.(type) {
	case drawing.Line:
		p.stroke([]sukharik.Point{v.From, v.To}, false, v.Style)
	case drawing.Circle:
		ring := circle(v.Center, v.Radius, p.tol/p.scale)
		p.fill(ring, v.Style.Fill)
		p.stroke(ring, true, v.Style)
	case drawing.Polyline:
		if v.Closed {
			p.fill(v.Points, v.Style.Fill)
		}
		p.stroke(v.Points, v.Closed, v.Style)
	case drawing.Arc:
		p.stroke(v.Points(1/p.scale), false, v.Style)
	case drawing.Label:
		p.label(v)
	default:
		sukharik.Logger().Warn("export: unsupported element", "kind", e.Kind())
	}
}

func (p *painter) fill(pts []sukharik.Point, c drawing.RGBA) {
	if c.IsNone() || len(pts) < 3 {
		return
	}
	p.clearMask()
	p.addPolygon(pts)
	p.composite(c)
}

func (p *painter) stroke(pts []sukharik.Point, closed bool, st drawing.Style) {
	if st.Stroke.IsNone() || st.Width <= 0 {
		return
	}
	pieces := stroke.Outline(pts, closed, stroke.Stroke{
		Width:     st.Width,
		Cap:       stroke.LineCapRound,
		Join:      stroke.LineJoinRound,
		Tolerance: p.tol / p.scale,
	})
	if len(pieces) == 0 {
		return
	}
	p.clearMask()
	for _, poly := range pieces {
		p.addPolygon(poly)
	}
	p.composite(st.Stroke)
}

func (p *painter) clearMask() {
	clear(p.mask.Pix)
}

// addPolygon unions the polygon into the mask. Only the polygon's
// bounding box is rasterized.
func (p *painter) addPolygon(pts []sukharik.Point) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range pts {
		x, y := pt.X*p.scale, pt.Y*p.scale
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	bounds := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(p.mask.Bounds())
	if bounds.Empty() {
		return
	}

	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)
	p.r.Reset(bounds.Dx(), bounds.Dy())
	p.r.DrawOp = draw.Over
	for i, pt := range pts {
		x, y := float32(pt.X*p.scale-ox), float32(pt.Y*p.scale-oy)
		if i == 0 {
			p.r.MoveTo(x, y)
		} else {
			p.r.LineTo(x, y)
		}
	}
	p.r.ClosePath()
	p.r.Draw(p.mask, bounds, image.Opaque, image.Point{})
}

func (p *painter) composite(c drawing.RGBA) {
	draw.DrawMask(p.dst, p.dst.Bounds(), image.NewUniform(c.Color()), image.Point{}, p.mask, image.Point{}, draw.Over)
}

// circle approximates a circle by a closed polygon, without repeating the
// first point.
func circle(c sukharik.Point, r, tolerance float64) []sukharik.Point {
	if r <= 0 {
		return nil
	}
	n := max(stroke.ArcSteps(r, 2*math.Pi, tolerance), 8)
	pts := make([]sukharik.Point, n)
	for i := range pts {
		a := sukharik.AngleFromRad(2 * math.Pi * float64(i) / float64(n))
		pts[i] = sukharik.Polar(c, r, a)
	}
	return pts
}
