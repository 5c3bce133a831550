package export

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morleydemo/morley/pkg/geometry"
	"github.com/morleydemo/morley/pkg/scene"
)

func TestWriteSVG(t *testing.T) {
	s := scene.New()
	var buf bytes.Buffer

	err := WriteSVG(&buf, s.Snapshot())
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0"?>`))
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")

	// 3 flaps + 1 Morley triangle
	assert.Equal(t, 4, strings.Count(out, "<polygon"))
	// 6 trisector segments + 3 main edges
	assert.Equal(t, 9, strings.Count(out, "<line"))
}

func TestWriteSVGDegenerate(t *testing.T) {
	s := scene.New()
	s.SetVertex(0, geometry.NewVector2(0, 0))
	s.SetVertex(1, geometry.NewVector2(1, 1))
	s.SetVertex(2, geometry.NewVector2(2, 2))

	var buf bytes.Buffer
	err := WriteSVG(&buf, s.Snapshot())
	require.NoError(t, err)

	out := buf.String()
	// Derived shapes and trisectors are omitted, the main edges remain
	assert.Equal(t, 0, strings.Count(out, "<polygon"))
	assert.Equal(t, 3, strings.Count(out, "<line"))
}

func TestRenderImage(t *testing.T) {
	s := scene.New()
	snapshot := s.Snapshot()

	img := RenderImage(snapshot, 800, 600)
	bounds := img.Bounds()
	assert.Equal(t, 800, bounds.Dx())
	assert.Equal(t, 600, bounds.Dy())

	// A corner pixel stays background white
	assertColorNear(t, img.At(2, 2), 255, 255, 255)

	// The Morley triangle centroid is filled yellow
	centroid := snapshot.Morley.Centroid()
	assertColorNear(t, img.At(int(centroid.X), int(centroid.Y)), 255, 255, 0)
}

func assertColorNear(t *testing.T, c color.Color, r, g, b uint32) {
	t.Helper()
	cr, cg, cb, _ := c.RGBA()
	assert.InDelta(t, r, cr>>8, 24)
	assert.InDelta(t, g, cg>>8, 24)
	assert.InDelta(t, b, cb>>8, 24)
}
