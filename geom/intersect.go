package geom

// IntersectSegment finds where the finite segment start→end crosses the
// line. The second return is false when there is no crossing on the segment.
//
// A segment parallel to the line never intersects, including the coincident
// case where the segment lies exactly on the line; callers that care about
// overlap get the individual endpoints back as SideOn from Side instead.
func (ln Line) IntersectSegment(start, end Vec2) (Vec2, bool) {
	segDir := end.Sub(start)
	denominator := segDir.Dot(ln.Normal)
	if NearZero(denominator) {
		return Vec2{}, false
	}

	t := ln.Point.Sub(start).Dot(ln.Normal) / denominator

	// Accept slightly outside [0, 1] so a crossing at a vertex isn't lost to
	// float error, then clamp so the returned point is always on the segment.
	if t < -Epsilon || t > 1+Epsilon {
		return Vec2{}, false
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return start.Add(segDir.Mul(t)), true
}
