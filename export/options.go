package export

import "github.com/gogpu/sukharik/drawing"

// DefaultMaxSize is the largest canvas side, in pixels, Rasterize accepts
// unless WithMaxSize says otherwise.
const DefaultMaxSize = 8192

// Option configures rasterization.
//
// Example:
//
//	img, err := export.Rasterize(doc, export.WithScale(2))
type Option func(*options)

type options struct {
	background drawing.RGBA
	scale      float64
	maxSize    int
	tolerance  float64
}

func defaultOptions() options {
	return options{
		background: drawing.White,
		scale:      1,
		maxSize:    DefaultMaxSize,
		tolerance:  0.25,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithBackground sets the color painted before anything else.
// The default is white.
func WithBackground(c drawing.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithScale renders at s device pixels per document pixel.
// Non-positive values are ignored.
func WithScale(s float64) Option {
	return func(o *options) {
		if s > 0 {
			o.scale = s
		}
	}
}

// WithMaxSize limits the canvas width and height, in device pixels.
// Non-positive values are ignored.
func WithMaxSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSize = n
		}
	}
}
