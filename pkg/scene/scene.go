// Package scene holds the mutable state of the trisector demonstration: the
// three draggable vertices of the main triangle and the pure derivation of
// everything drawn from them.
package scene

import "github.com/morleydemo/morley/pkg/geometry"

// TrisectorDrawLength is the fixed on-screen length the trisector rays are
// clipped to for drawing.
const TrisectorDrawLength = 1000.0

// Default vertex positions at startup
var defaultVertices = [3]geometry.Vector2{
	geometry.NewVector2(300, 100),
	geometry.NewVector2(700, 400),
	geometry.NewVector2(100, 400),
}

// Segment is a drawable line segment
type Segment struct {
	Start geometry.Vector2
	End   geometry.Vector2
}

// Snapshot is everything the renderer needs for one frame. It is recomputed
// from scratch on every update and holds no incremental state.
type Snapshot struct {
	Main Triangle

	// Trisectors holds two ray segments per vertex, clipped for drawing,
	// valid only when HasTrisectors is set.
	Trisectors    [3][2]Segment
	HasTrisectors bool

	// Morley is the derived inner triangle, valid only when HasMorley is
	// set. When the main triangle is degenerate the derived shapes are
	// simply absent for the frame.
	Morley    Triangle
	HasMorley bool

	// Flaps are the three corner triangles between a main vertex, its
	// Morley vertex and the next main vertex, valid only when HasMorley
	// is set.
	Flaps [3]Triangle
}

// Triangle is re-exported for renderer convenience
type Triangle = geometry.Triangle

// Scene owns the three vertices of the main triangle
type Scene struct {
	vertices [3]geometry.Vector2
}

// New creates a scene with the default vertex positions
func New() *Scene {
	return &Scene{vertices: defaultVertices}
}

// Vertex returns the vertex at the given index
func (s *Scene) Vertex(i int) geometry.Vector2 {
	return s.vertices[i]
}

// Vertices returns all three vertices in order
func (s *Scene) Vertices() [3]geometry.Vector2 {
	return s.vertices
}

// SetVertex moves the vertex at the given index
func (s *Scene) SetVertex(i int, pos geometry.Vector2) {
	s.vertices[i] = pos
}

// Reset restores the default vertex positions
func (s *Scene) Reset() {
	s.vertices = defaultVertices
}

// Snapshot recomputes the full construction from the current vertices
func (s *Scene) Snapshot() Snapshot {
	main := geometry.NewTriangle(s.vertices[0], s.vertices[1], s.vertices[2])
	snapshot := Snapshot{Main: main}

	rays, ok := geometry.Trisectors(main)
	if !ok {
		return snapshot
	}
	snapshot.HasTrisectors = true
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			ray := rays[i][j]
			snapshot.Trisectors[i][j] = Segment{
				Start: ray.Origin,
				End:   ray.At(TrisectorDrawLength),
			}
		}
	}

	morley, ok := geometry.MorleyTriangle(main)
	if !ok {
		return snapshot
	}
	snapshot.Morley = morley
	snapshot.HasMorley = true

	inner := morley.Vertices()
	for i := 0; i < 3; i++ {
		snapshot.Flaps[i] = geometry.NewTriangle(
			main.Vertex(i),
			inner[i],
			main.Vertex(i+1),
		)
	}

	return snapshot
}
