package export

import (
	"image"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/sukharik"
	"github.com/gogpu/sukharik/drawing"
)

// labelFont is the parsed Go Regular font used for PNG labels.
var labelFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// maxFaces bounds faceCache. Sizes are snapped to quarter pixels first.
const maxFaces = 32

// faceCache holds one face per pixel size. Faces are not safe for
// concurrent use, so the cache lock is held while a face draws.
var faceCache = struct {
	sync.Mutex
	faces map[float64]font.Face
}{faces: make(map[float64]font.Face)}

// faceFor returns the cached face for size. The caller must hold faceCache.
func faceFor(size float64) (font.Face, error) {
	size = math.Round(size*4) / 4
	if f, ok := faceCache.faces[size]; ok {
		return f, nil
	}
	parsed, err := labelFont()
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	if len(faceCache.faces) >= maxFaces {
		for k, f := range faceCache.faces {
			_ = f.Close()
			delete(faceCache.faces, k)
		}
	}
	faceCache.faces[size] = face
	return face, nil
}

func (p *painter) label(l drawing.Label) {
	if l.Text == "" || l.Size <= 0 {
		return
	}

	faceCache.Lock()
	defer faceCache.Unlock()

	face, err := faceFor(l.Size * p.scale)
	if err != nil {
		sukharik.Logger().Warn("export: label font unavailable", "error", err)
		return
	}

	d := &font.Drawer{
		Dst:  p.dst,
		Src:  image.NewUniform(labelColor(l.Style).Color()),
		Face: face,
	}
	x := floatToFixed(l.At.X * p.scale)
	switch l.Anchor {
	case drawing.AnchorMiddle:
		x -= d.MeasureString(l.Text) / 2
	case drawing.AnchorEnd:
		x -= d.MeasureString(l.Text)
	}
	d.Dot = fixed.Point26_6{X: x, Y: floatToFixed(l.At.Y * p.scale)}
	d.DrawString(l.Text)
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
