package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/morleydemo/morley/pkg/geometry"
)

// handleInput processes user input
func (app *App) handleInput() {
	app.Interaction.lastMousePos = rl.GetMousePosition()
	pos := geometry.NewVector2(
		float64(app.Interaction.lastMousePos.X),
		float64(app.Interaction.lastMousePos.Y),
	)

	controller := app.Interaction.controller
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		controller.PointerDown(pos)
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		controller.PointerMove(pos)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		controller.PointerUp()
	}

	// Keyboard controls
	if rl.IsKeyPressed(rl.KeyR) {
		app.Scene.Reset()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.View.showTrisectors = !app.View.showTrisectors
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.View.fillFlaps = !app.View.fillFlaps
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHUD = !app.View.showHUD
	}
	if rl.IsKeyPressed(rl.KeyS) {
		filename := fmt.Sprintf("morley-%s.png", time.Now().Format("20060102-150405"))
		rl.TakeScreenshot(filename)
		fmt.Printf("Saved screenshot: %s\n", filename)
	}
}
