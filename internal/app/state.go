package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/morleydemo/morley/pkg/scene"
)

// ViewSettings holds display settings
type ViewSettings struct {
	showTrisectors bool // Draw the clipped trisector ray segments
	fillFlaps      bool // Fill the corner triangles between main and Morley vertices
	showHUD        bool // Draw the measurement overlay
}

// InteractionState holds mouse and drag state
type InteractionState struct {
	controller   *scene.Controller
	lastMousePos rl.Vector2
}
