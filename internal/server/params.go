package server

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/gogpu/sukharik/reactive"
)

// errBadParam marks query parameters that are present but not numbers.
var errBadParam = errors.New("server: bad parameter")

// param is a numeric query parameter kept inside its bounds the same way
// a UI control is: the raw value is written into a bounded Ref and the
// corrected value read back.
type param struct {
	name   string
	def    float64
	bounds reactive.BoundedOptions
}

func (p param) read(q url.Values) (float64, error) {
	ref, err := reactive.NewBoundedRef(p.def, p.bounds)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", p.name, err)
	}
	raw := q.Get(p.name)
	if raw == "" {
		return ref.Get(), nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", errBadParam, p.name, raw)
	}
	ref.Set(v)
	return ref.Get(), nil
}

func boolParam(q url.Values, name string) (bool, error) {
	raw := q.Get(name)
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", errBadParam, name, raw)
	}
	return b, nil
}

var (
	widthParam     = param{"width", 480, reactive.BoundedOptions{Min: 16, Max: 4096}}
	heightParam    = param{"height", 320, reactive.BoundedOptions{Min: 16, Max: 4096}}
	degParam       = param{"deg", 45, reactive.BoundedOptions{Min: 0, Max: 360, Precision: 2}}
	rotParam       = param{"rot", 0, reactive.BoundedOptions{Min: -360, Max: 360, Precision: 2}}
	precisionParam = param{"precision", 0, reactive.BoundedOptions{Min: 0, Max: 4}}
	scaleParam     = param{"scale", 1, reactive.BoundedOptions{Min: 0.25, Max: 8, Precision: 2}}
)

// pointParam bounds a coordinate to the canvas.
func pointParam(name string, def, limit float64) param {
	return param{name, def, reactive.BoundedOptions{Min: 0, Max: limit, Precision: 1}}
}

// lengthParam bounds the ray length to the canvas diagonal.
func lengthParam(def, limit float64) param {
	return param{"len", def, reactive.BoundedOptions{Min: 1, Max: limit, Precision: 1}}
}
