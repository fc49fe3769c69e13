package geom

import (
	"fmt"

	"github.com/logrusorgru/aurora"
)

// SplitByLine cuts the polygon along an infinite line. It's a single
// Sutherland-Hodgman style pass over the edges, clipping against both
// half-planes at once: each vertex goes to Left if its side is >= SideOn and
// to Right if <= SideOn, and every edge whose endpoints sit on strictly
// opposite sides contributes its crossing point to Left, Right, and
// Intersections.
//
// Vertices on the line land in both halves. That duplication is what keeps
// each half a closed loop when the line passes through a vertex; without it
// one half would be missing a boundary point.
//
// Output vertices stay in traversal order of the input. They are not
// deduplicated, so an inserted crossing can sit within Epsilon of an
// original vertex. Fewer than 3 input vertices returns an all-empty result.
// The two halves always cover the input exactly: Left.Area() + Right.Area()
// equals the input's area up to float accumulation.
func (poly Polygon) SplitByLine(ln Line) SplitResult {
	var result SplitResult
	if len(poly) < 3 {
		return result
	}

	n := len(poly)
	for i, current := range poly {
		next := poly[CircularIndex(i+1, n)]

		currentSide := ln.Side(current)
		nextSide := ln.Side(next)

		if currentSide >= SideOn {
			result.Left = append(result.Left, current)
		}
		if currentSide <= SideOn {
			result.Right = append(result.Right, current)
		}

		// A strict sign change means the edge crosses the line somewhere in
		// its interior. The intersection can't miss: opposite non-zero sides
		// put the crossing parameter well inside the accepted range.
		if currentSide*nextSide < 0 {
			if crossing, ok := ln.IntersectSegment(current, next); ok {
				result.Intersections = append(result.Intersections, crossing)
				result.Left = append(result.Left, crossing)
				result.Right = append(result.Right, crossing)
			}
		}
	}

	return result
}

// String is for debugging split traces at a glance.
func (r SplitResult) String() string {
	return fmt.Sprintf("split{%s, %s, %s}",
		aurora.Green(fmt.Sprintf("left: %d", len(r.Left))),
		aurora.Red(fmt.Sprintf("right: %d", len(r.Right))),
		aurora.Cyan(fmt.Sprintf("crossings: %d", len(r.Intersections))),
	)
}
