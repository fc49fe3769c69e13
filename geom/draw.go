package geom

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

const drawPadding = 20

// Draw renders the split result to a PNG: left half green, right half red,
// crossing points as cyan dots. Scale is pixels per input unit. Mostly
// useful for eyeballing why a split went wrong.
func (r SplitResult) Draw(path string, scale float64) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range []Polygon{r.Left, r.Right} {
		for _, p := range poly {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return errors.New("nothing to draw: both halves are empty")
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left, then map the
	// bounding box into the padded canvas.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	fill := func(poly Polygon, rd, g, b float64) {
		if len(poly) == 0 {
			return
		}
		c.MoveTo(poly[0].X, poly[0].Y)
		for _, p := range poly[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(rd, g, b, 0.6)
		c.FillPreserve()
		c.SetRGB(rd, g, b)
		c.Stroke()
	}
	fill(r.Left, 0, 0.8, 0)
	fill(r.Right, 0.8, 0, 0)

	c.SetRGB(0, 1, 1)
	for _, p := range r.Intersections {
		c.DrawCircle(p.X, p.Y, 4/scale)
		c.Fill()
	}

	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}
