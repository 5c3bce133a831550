// Package export renders a scene snapshot to still-image formats without a
// window: SVG for vector output and PNG for raster output.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jbeda/geom"

	"github.com/morleydemo/morley/pkg/geometry"
	"github.com/morleydemo/morley/pkg/scene"
)

// Styles for the construction elements
const (
	EdgeStyle      = "stroke: black; stroke-width: 2; fill: none"
	TrisectorStyle = "stroke: gray; stroke-width: 1; fill: none"
	MorleyStyle    = "stroke: black; stroke-width: 1; fill: yellow"
	FlapStyle      = "stroke: black; stroke-width: 1; fill: red"
	ViewBoxPadding = 40.0
)

// SVG serialization helper
type SVG struct {
	writer io.Writer
}

func NewSVG(w io.Writer) *SVG {
	return &SVG{w}
}

func (svg *SVG) printf(format string, a ...interface{}) (n int, errno error) {
	return fmt.Fprintf(svg.writer, format, a...)
}

func extraparams(s []string) string {
	ep := ""
	for i := 0; i < len(s); i++ {
		if strings.Index(s[i], "=") > 0 {
			ep += (s[i]) + " "
		} else if len(s[i]) > 0 {
			ep += fmt.Sprintf("style='%s' ", s[i])
		}
	}
	return ep
}

func (svg *SVG) Start(viewBox geom.Rect, s ...string) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg" %s>
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height(), extraparams(s))
}

func (svg *SVG) End() {
	svg.printf("</svg>\n")
}

func (svg *SVG) Line(p1 geom.Coord, p2 geom.Coord, s ...string) {
	svg.printf("<line x1='%f' y1='%f' x2='%f' y2='%f' %s/>\n", p1.X, p1.Y, p2.X, p2.Y, extraparams(s))
}

func (svg *SVG) Polygon(points []geom.Coord, s ...string) {
	svg.printf("<polygon points='")
	for i, p := range points {
		if i > 0 {
			svg.printf(" ")
		}
		svg.printf("%f,%f", p.X, p.Y)
	}
	svg.printf("' %s/>\n", extraparams(s))
}

func coord(v geometry.Vector2) geom.Coord {
	return geom.Coord{X: v.X, Y: v.Y}
}

func trianglePoints(t geometry.Triangle) []geom.Coord {
	return []geom.Coord{coord(t.A), coord(t.B), coord(t.C)}
}

// WriteSVG writes the full construction as an SVG document. The viewBox is
// fitted to the main triangle with a fixed padding, so off-screen vertices
// still export completely.
func WriteSVG(w io.Writer, snapshot scene.Snapshot) error {
	buf := bufio.NewWriter(w)

	viewBox := geom.Rect{
		Min: coord(snapshot.Main.A),
		Max: coord(snapshot.Main.A),
	}
	for _, v := range snapshot.Main.Vertices() {
		viewBox.ExpandToContainCoord(coord(v))
	}
	viewBox.Min.X -= ViewBoxPadding
	viewBox.Min.Y -= ViewBoxPadding
	viewBox.Max.X += ViewBoxPadding
	viewBox.Max.Y += ViewBoxPadding

	svg := NewSVG(buf)
	svg.Start(viewBox)

	// Trisectors go underneath so the extended rays do not cut through
	// the filled shapes
	if snapshot.HasTrisectors {
		for i := 0; i < 3; i++ {
			for j := 0; j < 2; j++ {
				segment := snapshot.Trisectors[i][j]
				svg.Line(coord(segment.Start), coord(segment.End), TrisectorStyle)
			}
		}
	}

	if snapshot.HasMorley {
		for _, flap := range snapshot.Flaps {
			svg.Polygon(trianglePoints(flap), FlapStyle)
		}
		svg.Polygon(trianglePoints(snapshot.Morley), MorleyStyle)
	}

	main := snapshot.Main.Vertices()
	for i := 0; i < 3; i++ {
		svg.Line(coord(main[i]), coord(main[(i+1)%3]), EdgeStyle)
	}

	svg.End()
	return buf.Flush()
}
