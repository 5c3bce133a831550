package scene

import (
	"testing"

	"github.com/morleydemo/morley/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointerDownSelectsVertexWithinPickRadius(t *testing.T) {
	s := New()
	c := NewController(s)

	assert.True(t, c.PointerDown(geometry.NewVector2(305, 104)))
	assert.Equal(t, 0, c.Dragging())
}

func TestPointerDownOutsidePickRadiusIsNoOp(t *testing.T) {
	s := New()
	c := NewController(s)
	before := s.Vertices()

	assert.False(t, c.PointerDown(geometry.NewVector2(500, 250)))
	assert.Equal(t, -1, c.Dragging())

	// A move without a grabbed vertex must not touch the scene
	c.PointerMove(geometry.NewVector2(10, 10))
	assert.Equal(t, before, s.Vertices())
}

func TestPointerDownSelectsNearestVertex(t *testing.T) {
	s := New()
	s.SetVertex(0, geometry.NewVector2(100, 100))
	s.SetVertex(1, geometry.NewVector2(110, 100))
	s.SetVertex(2, geometry.NewVector2(500, 500))

	c := NewController(s)
	require.True(t, c.PointerDown(geometry.NewVector2(108, 100)))
	assert.Equal(t, 1, c.Dragging())
}

func TestPointerDownTieBreaksByLowestIndex(t *testing.T) {
	s := New()
	s.SetVertex(0, geometry.NewVector2(100, 100))
	s.SetVertex(1, geometry.NewVector2(120, 100))
	s.SetVertex(2, geometry.NewVector2(500, 500))

	c := NewController(s)
	// Equidistant from vertices 0 and 1
	require.True(t, c.PointerDown(geometry.NewVector2(110, 100)))
	assert.Equal(t, 0, c.Dragging())
}

func TestPointerUpEndsDragAnywhere(t *testing.T) {
	s := New()
	c := NewController(s)

	require.True(t, c.PointerDown(geometry.NewVector2(700, 400)))
	c.PointerMove(geometry.NewVector2(-50, 900))
	c.PointerUp()

	assert.Equal(t, -1, c.Dragging())
	assert.Equal(t, geometry.NewVector2(-50, 900), s.Vertex(1))

	// A later move must not drag anything
	c.PointerMove(geometry.NewVector2(0, 0))
	assert.Equal(t, geometry.NewVector2(-50, 900), s.Vertex(1))
}

func TestSetPickRadius(t *testing.T) {
	s := New()
	c := NewController(s)
	c.SetPickRadius(50)

	assert.True(t, c.PointerDown(geometry.NewVector2(340, 100)))
	assert.Equal(t, 0, c.Dragging())
}
