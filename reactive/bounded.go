package reactive

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/sukharik"
	"github.com/gogpu/sukharik/numeric"
)

// ErrInvalidBounds is returned when BoundedOptions describe an empty range
// or a negative precision.
var ErrInvalidBounds = errors.New("reactive: invalid bounds")

// BoundedOptions configure BoundedWatch.
type BoundedOptions struct {
	// Min and Max are the inclusive limits of the range.
	Min, Max float64

	// Precision is the number of decimal digits kept. Zero rounds to
	// whole numbers.
	Precision int

	// SkipRound disables rounding; the value is only clamped.
	SkipRound bool
}

// Validate reports whether the options describe a usable range.
func (o BoundedOptions) Validate() error {
	if math.IsNaN(o.Min) || math.IsNaN(o.Max) || o.Min > o.Max {
		return fmt.Errorf("%w: min %v > max %v", ErrInvalidBounds, o.Min, o.Max)
	}
	if o.Precision < 0 {
		return fmt.Errorf("%w: negative precision %d", ErrInvalidBounds, o.Precision)
	}
	return nil
}

// Correct returns v clamped into [Min, Max] and rounded to Precision digits.
// NaN is corrected to Min.
//
// Correct is idempotent: Correct(Correct(v)) == Correct(v).
func (o BoundedOptions) Correct(v float64) float64 {
	if math.IsNaN(v) {
		v = o.Min
	}
	v = numeric.Clamp(v, o.Min, o.Max)
	if o.SkipRound {
		return v
	}
	return numeric.Round(v, o.Precision)
}

// BoundedWatch keeps ref inside the range described by opts.
//
// Whenever ref changes, the corrected value is computed and written back
// only if it differs from what ref holds. The write-back notifies watchers
// once more; that second pass finds nothing to correct, so every external
// change settles after a single correction.
//
// The current value is not corrected until it next changes; use
// NewBoundedRef to start from a corrected value.
func BoundedWatch(ref *Ref[float64], opts BoundedOptions) (stop func()) {
	return ref.Watch(func(newValue, _ float64) {
		corrected := opts.Correct(newValue)
		if same(corrected, newValue) {
			return
		}
		sukharik.Logger().Debug("reactive: corrected bounded value",
			"value", newValue, "corrected", corrected,
			"min", opts.Min, "max", opts.Max)
		ref.Set(corrected)
	})
}

// NewBoundedRef creates a Ref that holds the corrected initial value and
// has BoundedWatch installed.
func NewBoundedRef(initial float64, opts BoundedOptions) (*Ref[float64], error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	ref := NewRef(opts.Correct(initial))
	BoundedWatch(ref, opts)
	return ref, nil
}
