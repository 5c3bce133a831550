package geometry

import "math"

// CollinearEpsilon is the tolerance below which three points are treated as
// collinear. Applied to the cross product of the two normalized edge
// directions at a vertex, so it is independent of triangle scale.
const CollinearEpsilon = 1e-9

// Triangle is an ordered sequence of three vertices
type Triangle struct {
	A, B, C Vector2
}

// NewTriangle creates a triangle from three vertices
func NewTriangle(a, b, c Vector2) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Vertices returns the vertices in order
func (t Triangle) Vertices() [3]Vector2 {
	return [3]Vector2{t.A, t.B, t.C}
}

// Vertex returns the vertex at the given index modulo 3
func (t Triangle) Vertex(i int) Vector2 {
	switch ((i % 3) + 3) % 3 {
	case 0:
		return t.A
	case 1:
		return t.B
	default:
		return t.C
	}
}

// SideLengths returns the lengths of sides AB, BC and CA
func (t Triangle) SideLengths() [3]float64 {
	return [3]float64{
		t.A.Distance(t.B),
		t.B.Distance(t.C),
		t.C.Distance(t.A),
	}
}

// Perimeter returns the sum of the side lengths
func (t Triangle) Perimeter() float64 {
	lengths := t.SideLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Area returns the unsigned area of the triangle
func (t Triangle) Area() float64 {
	return math.Abs(t.B.Sub(t.A).Cross(t.C.Sub(t.A))) / 2.0
}

// Centroid returns the arithmetic mean of the vertices
func (t Triangle) Centroid() Vector2 {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3.0)
}

// Angles returns the interior angles at A, B and C in radians
func (t Triangle) Angles() [3]float64 {
	return [3]float64{
		interiorAngle(t.A, t.B, t.C),
		interiorAngle(t.B, t.C, t.A),
		interiorAngle(t.C, t.A, t.B),
	}
}

// IsDegenerate reports whether the three vertices are collinear
func (t Triangle) IsDegenerate() bool {
	ab := t.B.Sub(t.A).Normalize()
	ac := t.C.Sub(t.A).Normalize()
	return math.Abs(ab.Cross(ac)) < CollinearEpsilon
}

// interiorAngle returns the unsigned angle at vertex between the directions
// to the two neighbors, in [0, pi]
func interiorAngle(vertex, neighborA, neighborB Vector2) float64 {
	da := neighborA.Sub(vertex).Normalize()
	db := neighborB.Sub(vertex).Normalize()
	dot := da.Dot(db)
	// Clamp against floating point drift outside [-1, 1]
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	return math.Acos(dot)
}
