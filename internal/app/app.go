// Package app is the raylib frontend: a single window with the draggable
// main triangle and the live Morley construction, redrawn every frame from a
// fresh scene snapshot.
package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/morleydemo/morley/pkg/scene"
)

const (
	screenWidth  = int32(800)
	screenHeight = int32(600)
)

type App struct {
	Scene       *scene.Scene
	View        ViewSettings
	Interaction InteractionState
}

// Run starts the application
func Run() {
	rl.SetConfigFlags(rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(screenWidth, screenHeight, "Morley's trisector theorem")
	rl.SetTargetFPS(60)

	demoScene := scene.New()
	app := &App{
		Scene: demoScene,
		View: ViewSettings{
			showTrisectors: true,
			fillFlaps:      true,
			showHUD:        true,
		},
		Interaction: InteractionState{
			controller: scene.NewController(demoScene),
		},
	}

	// Main loop
	for {
		if rl.WindowShouldClose() {
			break
		}

		// Check for Ctrl+C to exit
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		// Update
		app.handleInput()
		snapshot := app.Scene.Snapshot()

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(rl.White)

		app.drawScene(snapshot)
		if app.View.showHUD {
			app.drawUI(snapshot)
		}

		rl.EndDrawing()
	}

	// Cleanup
	rl.CloseWindow()
}
