// Package geom is a small 2D geometry suite for cross-checking the game
// engine's native polygon math: half-plane classification, segment/line
// intersection, shoelace area, centroids, and polygon splitting along a
// line.
//
// Everything here is pure and tolerance-based. A single Epsilon governs all
// comparisons, and every degenerate input (zero-length directions, parallel
// segments, sliver polygons, too few vertices) has a defined result instead
// of an error path, so engine outputs can be replayed through these
// functions verbatim.
package geom
