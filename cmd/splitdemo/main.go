// Demo and manual cross-check tool for polygon splitting. Input on stdin
// should be newline separated points in the form "x y", with each polygon
// separated by an extra newline. Every polygon is split by the configured
// line and the piece areas are reported along with the conservation delta,
// so engine results can be eyeballed against this implementation.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	imgcat "github.com/martinlindhe/imgcat/lib"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/polysplit/dbg"
	"github.com/osuushi/polysplit/geom"
)

var (
	linePoint  = kingpin.Flag("point", "Point on the split line, as \"x,y\".").Default("0,0").String()
	lineNormal = kingpin.Flag("normal", "Normal of the split line, as \"x,y\" (normalized for you).").Default("1,0").String()
	drawPath   = kingpin.Flag("draw", "Render each split to a PNG at this path.").String()
	drawScale  = kingpin.Flag("scale", "Pixels per input unit when drawing.").Default("4").Float64()
	cat        = kingpin.Flag("cat", "Display rendered PNGs inline in the terminal.").Bool()
)

func main() {
	kingpin.Parse()

	line := geom.Line{
		Point:  parseVec(*linePoint),
		Normal: parseVec(*lineNormal).Normalized(),
	}
	if line.Normal.Eq(geom.Vec2{}) {
		fmt.Fprintln(os.Stderr, "normal must have nonzero length")
		os.Exit(1)
	}

	polygons := readPolygons(os.Stdin)
	fmt.Printf("Read %d polygons\n", len(polygons))

	for i := range polygons {
		poly := polygons[i]
		name := dbg.Name(&polygons[i])
		fmt.Printf("\n%s: %d vertices, area %.3f, centroid %v\n", name, len(poly), poly.Area(), poly.Centroid())

		result := poly.SplitByLine(line)
		fmt.Printf("  %v\n", result)
		fmt.Printf("  left area %.3f, right area %.3f\n", result.Left.Area(), result.Right.Area())
		fmt.Printf("  conservation delta %.6f\n", poly.Area()-result.Left.Area()-result.Right.Area())

		if *drawPath != "" {
			path := *drawPath
			if len(polygons) > 1 {
				ext := filepath.Ext(path)
				path = fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), i+1, ext)
			}
			if err := result.Draw(path, *drawScale); err != nil {
				fmt.Fprintf(os.Stderr, "drawing %s: %v\n", name, err)
				os.Exit(1)
			}
			fmt.Printf("  wrote %s\n", path)
			if *cat {
				imgcat.CatFile(path, os.Stdout)
			}
		}
	}
}

func readPolygons(in *os.File) []geom.Polygon {
	polygons := []geom.Polygon{}
	scanner := bufio.NewScanner(in)
	var points geom.Polygon
	for scanner.Scan() {
		line := scanner.Text()

		// A blank line ends the current polygon.
		if strings.TrimSpace(line) == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = nil
			}
			continue
		}

		points = append(points, parsePoint(line))
	}

	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons
}

func parsePoint(line string) geom.Vec2 {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		fmt.Fprintf(os.Stderr, "invalid point line %q\n", line)
		os.Exit(1)
	}
	x, errX := strconv.ParseFloat(parts[0], 64)
	y, errY := strconv.ParseFloat(parts[1], 64)
	if errX != nil || errY != nil {
		fmt.Fprintf(os.Stderr, "invalid point line %q\n", line)
		os.Exit(1)
	}
	return geom.Vec2{X: x, Y: y}
}

func parseVec(s string) geom.Vec2 {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		fmt.Fprintf(os.Stderr, "invalid vector %q, want \"x,y\"\n", s)
		os.Exit(1)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		fmt.Fprintf(os.Stderr, "invalid vector %q, want \"x,y\"\n", s)
		os.Exit(1)
	}
	return geom.Vec2{X: x, Y: y}
}
