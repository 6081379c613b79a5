// Package stroke converts stroked polylines to filled outlines.
//
// # Algorithm Overview
//
// A stroke is decomposed into convex pieces:
//   - every segment becomes a quad offset by ±width/2 perpendicular to it
//   - every interior vertex gets a join piece on the outer side of the turn
//   - open polylines get a cap piece at both ends
//
// The pieces overlap. Rasterize each one into a shared coverage mask with
// a union operation (draw.Over on an alpha mask) and paint the mask once,
// so translucent strokes do not darken where pieces meet.
//
// # Line Caps
//
//   - LineCapButt: flat cap ending exactly at the endpoint
//   - LineCapRound: semicircular cap with radius = width/2
//   - LineCapSquare: square cap extending width/2 beyond the endpoint
//
// # Line Joins
//
//   - LineJoinMiter: sharp corner, beveled beyond the miter limit
//   - LineJoinRound: circular arc at corners
//   - LineJoinBevel: straight line across the corner
//
// # Usage
//
//	style := stroke.Stroke{Width: 2, Cap: stroke.LineCapRound, Join: stroke.LineJoinRound}
//	pieces := stroke.Outline(points, false, style)
package stroke
