package sukharik

import (
	"math"
	"strconv"
	"sync"
)

// Angle represents a planar angle.
//
// The radian measure is the single source of truth. Degree and trigonometric
// projections are computed on first access and cached for the life of the
// value. An Angle is immutable after construction and safe for concurrent use.
//
// Create angles with AngleFromDeg or AngleFromRad.
type Angle struct {
	rad float64

	degOnce sync.Once
	deg     float64

	sinOnce sync.Once
	sin     float64

	cosOnce sync.Once
	cos     float64

	tanOnce sync.Once
	tan     float64
}

// AngleFromDeg creates an angle from a degree measure.
func AngleFromDeg(deg float64) *Angle {
	return &Angle{rad: deg * math.Pi / 180}
}

// AngleFromRad creates an angle from a radian measure.
// No validation is performed: NaN and infinities are stored as given.
func AngleFromRad(rad float64) *Angle {
	return &Angle{rad: rad}
}

// Rad returns the radian measure.
func (a *Angle) Rad() float64 {
	return a.rad
}

// Deg returns the degree measure.
func (a *Angle) Deg() float64 {
	a.degOnce.Do(func() {
		a.deg = a.rad * 180 / math.Pi
	})
	return a.deg
}

// Sin returns the sine of the angle.
func (a *Angle) Sin() float64 {
	a.sinOnce.Do(func() {
		a.sin = math.Sin(a.rad)
	})
	return a.sin
}

// Cos returns the cosine of the angle.
func (a *Angle) Cos() float64 {
	a.cosOnce.Do(func() {
		a.cos = math.Cos(a.rad)
	})
	return a.cos
}

// Tan returns the tangent of the angle.
// Near odd multiples of π/2 the result is a very large finite number,
// not an error.
func (a *Angle) Tan() float64 {
	a.tanOnce.Do(func() {
		a.tan = math.Tan(a.rad)
	})
	return a.tan
}

// String returns the degree measure rounded to two places, e.g. "45°".
func (a *Angle) String() string {
	d := math.Round(a.Deg()*100) / 100
	return strconv.FormatFloat(d, 'f', -1, 64) + "°"
}
