package geom

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Loose tolerance for conserved areas. Inserted crossings accumulate float
// error across several dot products, so this is intentionally much wider
// than Epsilon.
const areaTolerance = 1.0

func TestSplitByLineCardinality(t *testing.T) {
	square := square100()

	cases := []struct {
		name string
		line Line
	}{
		{"vertical", Line{Point: Vec2{50, 0}, Normal: Vec2{1, 0}.Normalized()}},
		{"horizontal", Line{Point: Vec2{0, 50}, Normal: Vec2{0, 1}.Normalized()}},
		{"diagonal", Line{Point: Vec2{50, 50}, Normal: Vec2{1, 1}.Normalized()}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := square.SplitByLine(tc.line)
			assert.GreaterOrEqual(t, len(result.Left), 3)
			assert.GreaterOrEqual(t, len(result.Right), 3)
			assert.Len(t, result.Intersections, 2)
		})
	}
}

func TestSplitByLineAreaConservation(t *testing.T) {
	square := square100()
	originalArea := square.Area()

	t.Run("vertical split", func(t *testing.T) {
		result := square.SplitByLine(Line{Point: Vec2{50, 0}, Normal: Vec2{1, 0}.Normalized()})
		total := result.Left.Area() + result.Right.Area()
		assert.InDelta(t, originalArea, total, areaTolerance)
		// An axis-aligned halving is exact enough to check the halves too.
		assert.InDelta(t, 5000.0, result.Left.Area(), areaTolerance)
		assert.InDelta(t, 5000.0, result.Right.Area(), areaTolerance)
	})

	t.Run("diagonal split", func(t *testing.T) {
		result := square.SplitByLine(Line{Point: Vec2{50, 50}, Normal: Vec2{1, 1}.Normalized()})
		total := result.Left.Area() + result.Right.Area()
		assert.InDelta(t, originalArea, total, areaTolerance)
	})
}

func TestSplitByLineSides(t *testing.T) {
	square := square100()
	ln := Line{Point: Vec2{50, 0}, Normal: Vec2{1, 0}}
	result := square.SplitByLine(ln)

	// Every left vertex is on or left of the line, every right vertex on or
	// right of it, and the crossings are on it.
	for _, p := range result.Left {
		assert.True(t, ln.Side(p) >= SideOn, "left vertex %v", p)
	}
	for _, p := range result.Right {
		assert.True(t, ln.Side(p) <= SideOn, "right vertex %v", p)
	}
	for _, p := range result.Intersections {
		assert.Equal(t, SideOn, ln.Side(p), "crossing %v", p)
	}
}

func TestSplitByLineThroughVertices(t *testing.T) {
	// The corner-to-corner diagonal passes through two vertices. There is no
	// strict sign change on any edge, so no crossings are inserted, and the
	// on-line vertices are duplicated into both halves so each stays closed.
	square := square100()
	ln := Line{Point: Vec2{0, 0}, Normal: Vec2{1, -1}.Normalized()}
	result := square.SplitByLine(ln)

	assert.Len(t, result.Left, 3)
	assert.Len(t, result.Right, 3)
	assert.Empty(t, result.Intersections)
	assert.Contains(t, result.Left, Vec2{0, 0})
	assert.Contains(t, result.Right, Vec2{0, 0})
	assert.Contains(t, result.Left, Vec2{100, 100})
	assert.Contains(t, result.Right, Vec2{100, 100})
	assert.InDelta(t, square.Area(), result.Left.Area()+result.Right.Area(), areaTolerance)
}

func TestSplitByLineMiss(t *testing.T) {
	// A line entirely outside the polygon leaves everything on one side.
	square := square100()
	result := square.SplitByLine(Line{Point: Vec2{200, 0}, Normal: Vec2{1, 0}})

	assert.Empty(t, result.Left)
	assert.Len(t, result.Right, 4)
	assert.Empty(t, result.Intersections)
	assert.InDelta(t, square.Area(), result.Right.Area(), areaTolerance)
}

func TestSplitByLineDegenerate(t *testing.T) {
	ln := Line{Point: Vec2{0, 0}, Normal: Vec2{1, 0}}
	for _, poly := range []Polygon{{}, {{1, 1}}, {{1, 1}, {2, 2}}} {
		result := poly.SplitByLine(ln)
		assert.Empty(t, result.Left)
		assert.Empty(t, result.Right)
		assert.Empty(t, result.Intersections)
	}
}

// Sweep a fixture polygon with lines through its centroid at many angles and
// check that no split ever loses area.
func TestSplitFixtureAreaConservation(t *testing.T) {
	for _, name := range []string{"blob", "wedge"} {
		t.Run(name, func(t *testing.T) {
			poly := LoadFixture(t, name)
			originalArea := poly.Area()
			center := poly.Centroid()

			for i := 0; i < 12; i++ {
				angle := 2 * math.Pi * float64(i) / 12
				normal := Vec2{math.Cos(angle), math.Sin(angle)}
				t.Run(fmt.Sprintf("angle %d", i), func(t *testing.T) {
					result := poly.SplitByLine(Line{Point: center, Normal: normal})
					total := result.Left.Area() + result.Right.Area()
					assert.InDelta(t, originalArea, total, areaTolerance)
					assert.Len(t, result.Intersections, 2)
				})
			}
		})
	}
}
