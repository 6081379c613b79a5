// Command sukharikdemo draws an angle figure and saves it as SVG and PNG.
package main

import (
	"flag"
	"log"

	"github.com/gogpu/sukharik"
	"github.com/gogpu/sukharik/drawing"
	"github.com/gogpu/sukharik/export"
	"github.com/gogpu/sukharik/numeric"
)

func main() {
	var (
		width     = flag.Float64("width", 480, "image width")
		height    = flag.Float64("height", 320, "image height")
		deg       = flag.Float64("deg", 45, "angle in degrees")
		rot       = flag.Float64("rot", 0, "rotation of the first ray in degrees")
		length    = flag.Float64("len", 120, "ray length")
		precision = flag.Int("precision", 0, "label decimal places")
		scale     = flag.Float64("scale", 1, "PNG scale factor")
		chord     = flag.Bool("chord", false, "draw the chord between ray tips")
		mirror    = flag.Bool("mirror", false, "add the figure reflected across the vertex line")
		locale    = flag.String("locale", "", "BCP 47 tag for label formatting")
		output    = flag.String("output", "figure", "output path without extension")
	)
	flag.Parse()

	tag, err := numeric.ParseLocale(*locale)
	if err != nil {
		log.Fatalf("Bad locale: %v", err)
	}

	fig := drawing.AngleFigure{
		Vertex:    sukharik.Pt(*width/2, *height/2),
		Length:    *length,
		Angle:     sukharik.AngleFromDeg(*deg),
		Rotation:  sukharik.AngleFromDeg(*rot),
		Chord:     *chord,
		Mirror:    *mirror,
		Precision: *precision,
		Locale:    tag,
	}
	doc := fig.Document(*width, *height, drawing.WithBackground(drawing.White))

	if err := export.SaveSVG(*output+".svg", doc); err != nil {
		log.Fatalf("Failed to save SVG: %v", err)
	}
	if err := export.SavePNG(*output+".png", doc, export.WithScale(*scale)); err != nil {
		log.Fatalf("Failed to save PNG: %v", err)
	}

	log.Printf("Figure %s saved to %s.svg and %s.png (%vx%v)\n", fig.Label(), *output, *output, *width, *height)
}
