// Package polysplit is a standalone cross-check for the game engine's 2D
// polygon math. It reimplements the engine's point classification,
// segment/line intersection, area, centroid, and line-split routines as a
// pure Go library, so engine outputs can be validated against an
// independent implementation with the same tolerance semantics.
//
// This is the convenience surface; the full API, including the Line and
// Polygon method sets, lives in the geom subpackage.
package polysplit

import "github.com/osuushi/polysplit/geom"

type Vec2 = geom.Vec2
type Line = geom.Line
type Polygon = geom.Polygon
type SplitResult = geom.SplitResult

// Epsilon is the shared comparison tolerance; see geom.Epsilon.
const Epsilon = geom.Epsilon

// Split cuts a polygon along the infinite line through linePoint with the
// given unit normal. See geom.Polygon.SplitByLine for the full contract.
func Split(points []Vec2, linePoint, lineNormal Vec2) SplitResult {
	return Polygon(points).SplitByLine(Line{Point: linePoint, Normal: lineNormal})
}

// Area returns the area of a simple polygon, regardless of winding.
func Area(points []Vec2) float64 {
	return Polygon(points).Area()
}

// Centroid returns the area-weighted centroid of a simple polygon. Winding
// sensitivity and degenerate fallbacks are documented on
// geom.Polygon.Centroid.
func Centroid(points []Vec2) Vec2 {
	return Polygon(points).Centroid()
}
