package geom

import "math"

// Triangle is a triangle given by its three vertices.
type Triangle struct {
	A Point
	B Point
	C Point
}

// NewTriangle creates a triangle from three points, rejecting collinear
// points. Collinearity is an exact cross-product equality check, not a
// tolerance-based one.
func NewTriangle(a, b, c Point) (Triangle, error) {
	if (a.X-b.X)*(a.Y-c.Y) == (a.X-c.X)*(a.Y-b.Y) {
		return Triangle{}, ErrCollinearPoints
	}

	return Triangle{A: a, B: b, C: c}, nil
}

// sides returns the side lengths opposite each vertex: a opposite A,
// b opposite B, c opposite C.
func (t Triangle) sides() (a, b, c float64) {
	return Distance(t.B, t.C), Distance(t.C, t.A), Distance(t.A, t.B)
}

// Centroid returns the arithmetic mean of the vertices.
func (t Triangle) Centroid() Point {
	return Point{
		X: (t.A.X + t.B.X + t.C.X) / 3,
		Y: (t.A.Y + t.B.Y + t.C.Y) / 3,
	}
}

// Circumcenter returns the point equidistant from all three vertices, found
// as the intersection of the perpendicular bisectors of two sides.
func (t Triangle) Circumcenter() Point {
	return intersectAt(
		Midpoint(t.A, t.B), perpendicular(slope(t.A, t.B)),
		Midpoint(t.B, t.C), perpendicular(slope(t.B, t.C)),
	)
}

// Incenter returns the center of the inscribed circle, computed as the
// side-length-weighted average of the vertices.
func (t Triangle) Incenter() Point {
	a, b, c := t.sides()
	sum := a + b + c

	return Point{
		X: (a*t.A.X + b*t.B.X + c*t.C.X) / sum,
		Y: (a*t.A.Y + b*t.B.Y + c*t.C.Y) / sum,
	}
}

// Orthocenter returns the intersection of the altitudes, found by
// intersecting the altitudes dropped from two vertices.
func (t Triangle) Orthocenter() Point {
	return intersectAt(
		t.A, perpendicular(slope(t.B, t.C)),
		t.B, perpendicular(slope(t.C, t.A)),
	)
}

// Inradius returns the radius of the inscribed circle via Heron's formula:
// the triangle's area divided by its semiperimeter.
func (t Triangle) Inradius() float64 {
	a, b, c := t.sides()
	s := (a + b + c) / 2

	return math.Sqrt(s*(s-a)*(s-b)*(s-c)) / s
}
