package geom

// Vec2 is a 2D point or direction. All operations return new values; nothing
// in this package mutates a vector in place, so results can be shared freely
// across goroutines.
type Vec2 struct {
	X float64
	Y float64
}

// Line is an infinite line given by a point on it and a normal. The normal
// decides which half-plane is "left" (positive). Callers are expected to pass
// a unit normal; the predicates only ever use the sign of dot products, so a
// non-unit normal still classifies correctly, but it rescales the distance
// that Epsilon is compared against.
type Line struct {
	Point  Vec2
	Normal Vec2
}

// Polygon is an ordered vertex loop. The edge from the last vertex back to
// the first is implied. Area and Centroid assume the loop is simple
// (non-self-intersecting).
type Polygon []Vec2

// Side classifies a point against a line.
type Side int

const (
	SideRight Side = -1 // negative half-plane
	SideOn    Side = 0  // within Epsilon of the line
	SideLeft  Side = 1  // positive half-plane
)

// SplitResult holds the two halves of a polygon split plus the raw crossing
// points, all in traversal order of the source polygon. Vertices that sit on
// the split line appear in both halves so that each half remains a closed
// loop on its own.
type SplitResult struct {
	Left          Polygon
	Right         Polygon
	Intersections []Vec2
}
