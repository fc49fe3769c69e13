package geom

import "math"

// signedArea is the half-sum of shoelace cross terms. Positive for
// counterclockwise winding.
func (poly Polygon) signedArea() float64 {
	if len(poly) < 3 {
		return 0
	}
	area := 0.0
	n := len(poly)
	for i, v := range poly {
		next := poly[CircularIndex(i+1, n)]
		area += v.X*next.Y - next.X*v.Y
	}
	return area / 2
}

// Area returns the polygon's area by the shoelace formula. Winding order
// doesn't matter; fewer than 3 vertices is 0.
func (poly Polygon) Area() float64 {
	return math.Abs(poly.signedArea())
}

// IsCW reports clockwise winding. Degenerate polygons with no area count as
// clockwise, which is harmless for the normalization use case.
func (poly Polygon) IsCW() bool {
	return poly.signedArea() <= 0
}

// Reverse returns the polygon with opposite winding.
func (poly Polygon) Reverse() Polygon {
	reversed := make(Polygon, len(poly))
	for i, v := range poly {
		reversed[len(poly)-1-i] = v
	}
	return reversed
}

// Centroid returns the area-weighted centroid for 3+ vertices, with the
// obvious answers for fewer: origin for none, the vertex itself for one, the
// midpoint for two.
//
// The weighting uses the signed area, so the result depends on the caller
// supplying a consistent winding; a polygon wound opposite to its neighbors
// gets a centroid computed from a negated area. We deliberately don't
// normalize winding here. Use Reverse first if your inputs are mixed.
//
// When the signed area is within Epsilon of zero (collinear or sliver
// polygons, which splitting produces routinely), the weighted formula would
// divide by near-zero, so it falls back to the plain mean of the vertices.
func (poly Polygon) Centroid() Vec2 {
	switch len(poly) {
	case 0:
		return Vec2{}
	case 1:
		return poly[0]
	case 2:
		return poly[0].Add(poly[1]).Mul(0.5)
	}

	var centroid Vec2
	area := 0.0
	n := len(poly)
	for i, v := range poly {
		next := poly[CircularIndex(i+1, n)]
		cross := v.X*next.Y - next.X*v.Y
		area += cross
		centroid = centroid.Add(v.Add(next).Mul(cross))
	}
	area /= 2

	if math.Abs(area) < Epsilon {
		mean := Vec2{}
		for _, v := range poly {
			mean = mean.Add(v)
		}
		return mean.Mul(1 / float64(n))
	}

	return centroid.Mul(1 / (6 * area))
}
