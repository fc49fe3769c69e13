package geom

// Side classifies a point against the line: SideLeft for the positive
// half-plane (the side the normal points into), SideRight for the negative,
// SideOn when the signed distance is within Epsilon of zero. On-the-line
// points must come back as SideOn, never ±1; SplitByLine relies on both
// endpoints of every edge being classified consistently to decide whether
// the edge crosses. That's also why this goes through the same NearZero
// helper as IntersectSegment.
func (ln Line) Side(p Vec2) Side {
	distance := p.Sub(ln.Point).Dot(ln.Normal)
	if NearZero(distance) {
		return SideOn
	}
	if distance > 0 {
		return SideLeft
	}
	return SideRight
}
