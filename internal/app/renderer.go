package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/morleydemo/morley/pkg/geometry"
	"github.com/morleydemo/morley/pkg/scene"
)

// nodeSize is the side length of the square vertex markers, matching the
// pick radius of the controller.
const nodeSize = float32(scene.DefaultPickRadius)

// drawScene draws one frame from the snapshot
func (app *App) drawScene(snapshot scene.Snapshot) {
	// Trisectors go underneath so the extended rays do not cut through
	// the filled shapes
	if app.View.showTrisectors && snapshot.HasTrisectors {
		for i := 0; i < 3; i++ {
			for j := 0; j < 2; j++ {
				segment := snapshot.Trisectors[i][j]
				rl.DrawLineV(vec(segment.Start), vec(segment.End), rl.Gray)
			}
		}
	}

	if snapshot.HasMorley {
		if app.View.fillFlaps {
			for _, flap := range snapshot.Flaps {
				fillTriangle(flap, rl.Red)
				outlineTriangle(flap, rl.Black)
			}
		}
		fillTriangle(snapshot.Morley, rl.Yellow)
		outlineTriangle(snapshot.Morley, rl.Black)
	}

	outlineTriangle(snapshot.Main, rl.Black)

	// Vertex markers: hollow square, filled while dragged
	dragging := app.Interaction.controller.Dragging()
	for i, vertex := range app.Scene.Vertices() {
		x := int32(vertex.X - float64(nodeSize)/2)
		y := int32(vertex.Y - float64(nodeSize)/2)
		if i == dragging {
			rl.DrawRectangle(x, y, int32(nodeSize), int32(nodeSize), rl.Black)
		} else {
			rl.DrawRectangleLines(x, y, int32(nodeSize), int32(nodeSize), rl.Black)
		}
	}
}

// drawUI draws the measurement overlay
func (app *App) drawUI(snapshot scene.Snapshot) {
	y := int32(10)
	lineHeight := int32(20)

	angles := snapshot.Main.Angles()
	rl.DrawText("Vertex angles:", 10, y, 16, rl.DarkGray)
	y += lineHeight
	for i, angle := range angles {
		rl.DrawText(fmt.Sprintf("  %c: %.1f°", 'A'+i, angle*180.0/math.Pi), 10, y, 16, rl.DarkGray)
		y += lineHeight
	}
	y += lineHeight

	if snapshot.HasMorley {
		sides := snapshot.Morley.SideLengths()
		rl.DrawText(fmt.Sprintf("Morley side: %.2f", sides[0]), 10, y, 16, rl.DarkGray)
	} else {
		rl.DrawText("Degenerate triangle", 10, y, 16, rl.Maroon)
	}
	y += lineHeight * 2

	rl.DrawText("Drag corners to reshape", 10, y, 14, rl.Gray)
	y += lineHeight
	rl.DrawText("R: reset  T: trisectors  F: flaps  H: overlay  S: screenshot", 10, y, 14, rl.Gray)

	rl.DrawText(fmt.Sprintf("FPS: %d", rl.GetFPS()), 10, screenHeight-30, 20, rl.Lime)
}

func vec(v geometry.Vector2) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}

// fillTriangle draws a filled triangle, reordering the vertices
// counter-clockwise as raylib requires.
func fillTriangle(t geometry.Triangle, color rl.Color) {
	a, b, c := t.A, t.B, t.C
	if b.Sub(a).Cross(c.Sub(a)) > 0 {
		b, c = c, b
	}
	rl.DrawTriangle(vec(a), vec(b), vec(c), color)
}

func outlineTriangle(t geometry.Triangle, color rl.Color) {
	rl.DrawLineV(vec(t.A), vec(t.B), color)
	rl.DrawLineV(vec(t.B), vec(t.C), color)
	rl.DrawLineV(vec(t.C), vec(t.A), color)
}
