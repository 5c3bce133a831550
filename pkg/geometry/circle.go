package geometry

import "math"

// Circle represents a circle by center and radius
type Circle struct {
	Center Vector2
	Radius float64
}

// Circumcircle returns the circle passing through the three vertices of the
// triangle.
//
// Uses the 3-point determinant formula:
//
//	D = 2(x₁(y₂-y₃) + x₂(y₃-y₁) + x₃(y₁-y₂))
//	cx = ((x₁²+y₁²)(y₂-y₃) + (x₂²+y₂²)(y₃-y₁) + (x₃²+y₃²)(y₁-y₂)) / D
//	cy = ((x₁²+y₁²)(x₃-x₂) + (x₂²+y₂²)(x₁-x₃) + (x₃²+y₃²)(x₂-x₁)) / D
//
// Returns ok=false when the vertices are collinear and no finite circle
// exists.
func Circumcircle(t Triangle) (Circle, bool) {
	x1, y1 := t.A.X, t.A.Y
	x2, y2 := t.B.X, t.B.Y
	x3, y3 := t.C.X, t.C.Y

	d := 2.0 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if math.Abs(d) < 1e-10 {
		return Circle{}, false
	}

	sq1 := x1*x1 + y1*y1
	sq2 := x2*x2 + y2*y2
	sq3 := x3*x3 + y3*y3

	center := Vector2{
		X: (sq1*(y2-y3) + sq2*(y3-y1) + sq3*(y1-y2)) / d,
		Y: (sq1*(x3-x2) + sq2*(x1-x3) + sq3*(x2-x1)) / d,
	}

	return Circle{Center: center, Radius: center.Distance(t.A)}, true
}
