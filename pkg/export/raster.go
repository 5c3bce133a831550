package export

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/morleydemo/morley/pkg/geometry"
	"github.com/morleydemo/morley/pkg/scene"
)

// RenderImage rasterizes the construction onto a canvas of the given size.
// Vertices are already in screen coordinates, so no scaling is applied.
func RenderImage(snapshot scene.Snapshot, width, height int) image.Image {
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Trisectors go underneath so the extended rays do not cut through
	// the filled shapes
	if snapshot.HasTrisectors {
		c.SetRGB(0.5, 0.5, 0.5)
		c.SetLineWidth(1)
		for i := 0; i < 3; i++ {
			for j := 0; j < 2; j++ {
				segment := snapshot.Trisectors[i][j]
				c.DrawLine(segment.Start.X, segment.Start.Y, segment.End.X, segment.End.Y)
				c.Stroke()
			}
		}
	}

	if snapshot.HasMorley {
		for _, flap := range snapshot.Flaps {
			fillTriangle(c, flap, 1, 0, 0)
		}
		fillTriangle(c, snapshot.Morley, 1, 1, 0)
	}

	c.SetRGB(0, 0, 0)
	c.SetLineWidth(2)
	main := snapshot.Main.Vertices()
	for i := 0; i < 3; i++ {
		next := main[(i+1)%3]
		c.DrawLine(main[i].X, main[i].Y, next.X, next.Y)
		c.Stroke()
	}

	return c.Image()
}

// RenderPNG rasterizes the construction and writes it to the given path
func RenderPNG(snapshot scene.Snapshot, width, height int, path string) error {
	c := gg.NewContextForImage(RenderImage(snapshot, width, height))
	return c.SavePNG(path)
}

func fillTriangle(c *gg.Context, t geometry.Triangle, r, g, b float64) {
	c.MoveTo(t.A.X, t.A.Y)
	c.LineTo(t.B.X, t.B.Y)
	c.LineTo(t.C.X, t.C.Y)
	c.ClosePath()
	c.SetRGB(r, g, b)
	c.FillPreserve()
	c.SetRGB(0, 0, 0)
	c.SetLineWidth(1)
	c.Stroke()
}
