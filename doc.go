// Package sukharik provides the geometry core of a small 2D drawing toolkit.
//
// # Overview
//
// sukharik lets you place points and angles on a plane, build a drawing
// out of them and export it as SVG or PNG. The root package holds the
// two value types everything else is built on:
//
//   - Angle: an immutable radian measure with cached degree and
//     trigonometric projections
//   - Point: a 2D coordinate with translation, distance and reflection
//
// # Quick Start
//
//	import "github.com/gogpu/sukharik"
//
//	a := sukharik.AngleFromDeg(30)
//	tip := sukharik.Polar(sukharik.Pt(100, 100), 80, a)
//	mirrored := tip.ReflectOX(100)
//
// # Packages
//
//   - numeric: rounding and formatting to a decimal precision
//   - reactive: observable values and the bounded clamp watcher
//   - drawing: the document model and figure builders
//   - export: SVG serialization, PNG rasterization, downloads
//
// # Coordinate System
//
// Uses SVG coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, positive angles open upward on screen
package sukharik

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
