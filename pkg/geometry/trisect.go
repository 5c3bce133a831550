package geometry

import "math"

// ParallelEpsilon is the determinant tolerance below which two rays are
// treated as parallel and their intersection is reported as absent.
const ParallelEpsilon = 1e-9

// Ray is a half-line starting at Origin and extending in Direction.
// Direction is expected to be a unit vector.
type Ray struct {
	Origin    Vector2
	Direction Vector2
}

// NewRay creates a ray from an origin and a direction angle in radians
func NewRay(origin Vector2, angle float64) Ray {
	return Ray{Origin: origin, Direction: FromAngle(angle)}
}

// At returns the point at parametric distance t along the ray
func (r Ray) At(t float64) Vector2 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// TrisectAngle computes the two rays dividing the interior angle at vertex
// into three equal parts, ordered from the neighborA side to the neighborB
// side. Returns ok=false when the three points are collinear, in which case
// the angle is undefined and no rays are produced.
func TrisectAngle(vertex, neighborA, neighborB Vector2) (Ray, Ray, bool) {
	da := neighborA.Sub(vertex)
	db := neighborB.Sub(vertex)
	if math.Abs(da.Normalize().Cross(db.Normalize())) < CollinearEpsilon {
		return Ray{}, Ray{}, false
	}

	angleA := da.Angle()
	angleB := db.Angle()

	// Interpolating across the atan2 branch cut at +-pi would sweep the
	// exterior angle. Lift the negative angle by a full turn so the
	// interpolation stays inside the triangle.
	if angleA*angleB < 0 && math.Abs(angleA)+math.Abs(angleB) > math.Pi {
		if angleA < 0 {
			angleA += 2 * math.Pi
		} else {
			angleB += 2 * math.Pi
		}
	}

	oneThird := (2.0/3.0)*angleA + (1.0/3.0)*angleB
	twoThirds := (1.0/3.0)*angleA + (2.0/3.0)*angleB

	return NewRay(vertex, oneThird), NewRay(vertex, twoThirds), true
}

// IntersectRays solves the 2x2 linear system for the intersection of two
// rays. Returns ok=false when the rays are parallel or when the intersection
// lies behind either origin, since only forward intersections are meaningful
// for the trisector construction.
func IntersectRays(r1, r2 Ray) (Vector2, bool) {
	det := r1.Direction.Cross(r2.Direction)
	if math.Abs(det) < ParallelEpsilon {
		return Vector2{}, false
	}

	delta := r2.Origin.Sub(r1.Origin)
	t1 := delta.Cross(r2.Direction) / det
	t2 := delta.Cross(r1.Direction) / det
	if t1 < 0 || t2 < 0 {
		return Vector2{}, false
	}

	return r1.At(t1), true
}

// Trisectors computes the trisector ray pair for each vertex of the
// triangle, ordered from the previous-vertex side to the next-vertex side.
// Returns ok=false when any vertex angle is degenerate.
func Trisectors(t Triangle) ([3][2]Ray, bool) {
	var rays [3][2]Ray
	for i := 0; i < 3; i++ {
		prev := t.Vertex(i - 1)
		next := t.Vertex(i + 1)
		first, second, ok := TrisectAngle(t.Vertex(i), prev, next)
		if !ok {
			return rays, false
		}
		rays[i] = [2]Ray{first, second}
	}
	return rays, true
}

// MorleyTriangle derives the inner equilateral triangle of Morley's
// trisector theorem: for each edge of the main triangle, the two trisectors
// adjacent to that edge are intersected to give one vertex of the result.
// Returns ok=false when the main triangle is degenerate or any required
// intersection is absent, so callers can omit the shape instead of drawing
// a malformed one.
func MorleyTriangle(t Triangle) (Triangle, bool) {
	rays, ok := Trisectors(t)
	if !ok {
		return Triangle{}, false
	}

	var points [3]Vector2
	for i := 0; i < 3; i++ {
		next := (i + 1) % 3
		// The trisector of vertex i nearest the next vertex meets the
		// trisector of the next vertex nearest vertex i.
		point, ok := IntersectRays(rays[i][1], rays[next][0])
		if !ok {
			return Triangle{}, false
		}
		points[i] = point
	}

	return NewTriangle(points[0], points[1], points[2]), true
}
