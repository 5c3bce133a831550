package scene

import "github.com/morleydemo/morley/pkg/geometry"

// DefaultPickRadius is the on-screen distance within which a pointer-down
// selects a vertex for dragging.
const DefaultPickRadius = 16.0

// Controller maps pointer events to vertex dragging. It is a two-state
// machine: idle, or dragging one vertex until pointer-up.
type Controller struct {
	scene      *Scene
	pickRadius float64
	dragIndex  int
}

// NewController creates an idle controller for the given scene
func NewController(s *Scene) *Controller {
	return &Controller{
		scene:      s,
		pickRadius: DefaultPickRadius,
		dragIndex:  -1,
	}
}

// SetPickRadius overrides the vertex pick radius
func (c *Controller) SetPickRadius(radius float64) {
	c.pickRadius = radius
}

// Dragging returns the index of the vertex being dragged, or -1 when idle
func (c *Controller) Dragging() int {
	return c.dragIndex
}

// PointerDown starts a drag when the position is within the pick radius of a
// vertex, choosing the nearest one and breaking ties by lowest index.
// Reports whether the event grabbed a vertex; outside every pick radius it
// is a no-op.
func (c *Controller) PointerDown(pos geometry.Vector2) bool {
	nearest := -1
	minDist := c.pickRadius
	for i, vertex := range c.scene.Vertices() {
		dist := vertex.Distance(pos)
		if dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	if nearest < 0 {
		return false
	}
	c.dragIndex = nearest
	return true
}

// PointerMove moves the dragged vertex to the pointer position. Ignored
// while idle.
func (c *Controller) PointerMove(pos geometry.Vector2) {
	if c.dragIndex < 0 {
		return
	}
	c.scene.SetVertex(c.dragIndex, pos)
}

// PointerUp ends the drag regardless of position
func (c *Controller) PointerUp() {
	c.dragIndex = -1
}
