// Package export writes drawing documents as SVG markup and PNG images,
// to files or as HTTP downloads.
package export

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/sukharik"
	"github.com/gogpu/sukharik/drawing"
	"github.com/gogpu/sukharik/numeric"
)

// coordPlaces is the number of decimal digits kept for SVG coordinates.
const coordPlaces = 3

// WriteSVG serializes doc as a standalone SVG document.
func WriteSVG(w io.Writer, doc *drawing.Document) error {
	if doc == nil {
		return ErrNilDocument
	}
	bw := bufio.NewWriter(w)
	sw := svgWriter{w: bw}

	width, height := num(doc.Width), num(doc.Height)
	sw.printf(`<svg xmlns="http://www.w3.org/2000/svg" id="%s" width="%s" height="%s" viewBox="0 0 %s %s"`+
		` stroke-linecap="round" stroke-linejoin="round">`+"\n",
		attr(doc.ID), width, height, width, height)
	if !doc.Background.IsNone() {
		sw.printf(`<rect width="100%%" height="100%%"%s/>`+"\n", paint(drawing.Style{Fill: doc.Background}))
	}
	for _, e := range doc.Elements {
		sw.element(e)
	}
	sw.printf("</svg>\n")

	if sw.err != nil {
		return fmt.Errorf("export: write svg: %w", sw.err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write svg: %w", err)
	}
	return nil
}

// svgWriter remembers the first write error so element encoders stay flat.
type svgWriter struct {
	w   io.Writer
	err error
}

func (s *svgWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

func (s *svgWriter) element(e drawing.Element) {
	switch v := e.(type) {
	case drawing.Line:
		s.printf(`<line x1="%s" y1="%s" x2="%s" y2="%s"%s/>`+"\n",
			num(v.From.X), num(v.From.Y), num(v.To.X), num(v.To.Y), paint(v.Style))
	case drawing.Circle:
		s.printf(`<circle cx="%s" cy="%s" r="%s"%s/>`+"\n",
			num(v.Center.X), num(v.Center.Y), num(v.Radius), paint(v.Style))
	case drawing.Polyline:
		tag := "polyline"
		if v.Closed {
			tag = "polygon"
		}
		s.printf(`<%s points="%s"%s/>`+"\n", tag, points(v.Points), paint(v.Style))
	case drawing.Arc:
		s.arc(v)
	case drawing.Label:
		s.printf(`<text x="%s" y="%s" font-family="Go, sans-serif" font-size="%s" text-anchor="%s"%s>%s</text>`+"\n",
			num(v.At.X), num(v.At.Y), num(v.Size), anchor(v.Anchor), labelPaint(v.Style), text(v.Text))
	default:
		sukharik.Logger().Warn("export: unsupported element", "kind", e.Kind())
	}
}

func (s *svgWriter) arc(a drawing.Arc) {
	start, sweep := a.StartRad(), a.SweepRad()
	if sweep == 0 || a.Radius <= 0 {
		return
	}
	if math.Abs(sweep) >= 2*math.Pi {
		s.element(drawing.Circle{Center: a.Center, Radius: a.Radius, Style: drawing.Style{
			Stroke: a.Style.Stroke, Width: a.Style.Width,
		}})
		return
	}
	from := sukharik.Polar(a.Center, a.Radius, sukharik.AngleFromRad(start))
	to := sukharik.Polar(a.Center, a.Radius, sukharik.AngleFromRad(start+sweep))
	large := 0
	if math.Abs(sweep) > math.Pi {
		large = 1
	}
	// SVG sweeps clockwise on screen when the flag is set.
	flag := 0
	if sweep < 0 {
		flag = 1
	}
	style := a.Style
	style.Fill = drawing.Transparent
	s.printf(`<path d="M %s %s A %s %s 0 %d %d %s %s"%s/>`+"\n",
		num(from.X), num(from.Y), num(a.Radius), num(a.Radius), large, flag,
		num(to.X), num(to.Y), paint(style))
}

// num formats a coordinate with at most coordPlaces decimals.
func num(v float64) string {
	r := numeric.Round(v, coordPlaces)
	if r == 0 {
		r = 0 // drop the sign of negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func points(pts []sukharik.Point) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(num(p.X))
		b.WriteByte(',')
		b.WriteString(num(p.Y))
	}
	return b.String()
}

func paint(st drawing.Style) string {
	var b strings.Builder
	if st.Fill.IsNone() {
		b.WriteString(` fill="none"`)
	} else {
		fmt.Fprintf(&b, ` fill="%s"`, st.Fill.Hex())
		if st.Fill.A < 1 {
			fmt.Fprintf(&b, ` fill-opacity="%s"`, num(st.Fill.A))
		}
	}
	if !st.Stroke.IsNone() && st.Width > 0 {
		fmt.Fprintf(&b, ` stroke="%s" stroke-width="%s"`, st.Stroke.Hex(), num(st.Width))
		if st.Stroke.A < 1 {
			fmt.Fprintf(&b, ` stroke-opacity="%s"`, num(st.Stroke.A))
		}
	}
	return b.String()
}

// labelPaint fills text with its fill color, falling back to the stroke
// color and then to black.
func labelPaint(st drawing.Style) string {
	return paint(drawing.Style{Fill: labelColor(st)})
}

func labelColor(st drawing.Style) drawing.RGBA {
	switch {
	case !st.Fill.IsNone():
		return st.Fill
	case !st.Stroke.IsNone():
		return st.Stroke
	}
	return drawing.Black
}

func anchor(a drawing.Anchor) string {
	switch a {
	case drawing.AnchorMiddle:
		return "middle"
	case drawing.AnchorEnd:
		return "end"
	}
	return "start"
}

func text(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

func attr(s string) string {
	return text(s)
}
