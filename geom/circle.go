package geom

import (
	"math"
	"math/rand/v2"
)

// boundaryTolerance is the absolute tolerance used when testing whether a
// point lies on a circle's boundary.
const boundaryTolerance = 1e-9

// Circle is a circle given by its center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle creates a circle, rejecting a negative radius.
func NewCircle(center Point, radius float64) (Circle, error) {
	if radius < 0 {
		return Circle{}, ErrNegativeRadius
	}

	return Circle{Center: center, Radius: radius}, nil
}

// PointAt returns the boundary point at the given angle, measured
// counterclockwise from the positive x-axis.
func (c Circle) PointAt(theta float64) Point {
	return Point{
		X: c.Center.X + c.Radius*math.Cos(theta),
		Y: c.Center.Y + c.Radius*math.Sin(theta),
	}
}

// RandomPoint returns a boundary point at an angle drawn uniformly from
// [0, 2π).
func (c Circle) RandomPoint(rng *rand.Rand) Point {
	return c.PointAt(rng.Float64() * 2 * math.Pi)
}

// OnBoundary reports whether a point lies on the circle's boundary within a
// fixed tolerance.
func (c Circle) OnBoundary(p Point) bool {
	return math.Abs(Distance(c.Center, p)-c.Radius) < boundaryTolerance
}

// angleOf returns the angle of a point relative to the circle's center,
// normalized to [0, 2π).
func (c Circle) angleOf(p Point) float64 {
	theta := math.Atan2(p.Y-c.Center.Y, p.X-c.Center.X)
	if theta < 0 {
		theta += 2 * math.Pi
	}

	return theta
}

// PointOnArc returns the boundary point completing an inscribed angle of the
// given degree whose vertex and first ray endpoint are start and vertex.
// Both inputs must lie on the circle. The endpoint is swept through the
// central angle of twice the inscribed degree, directed so that it lands on
// the arc away from the vertex (the "larger arc" convention). The two
// comparison branches sweep in opposite directions but are congruent mod 2π,
// which keeps the selection direction-consistent for either angle ordering.
func (c Circle) PointOnArc(start, vertex Point, degree float64) (Point, error) {
	if !c.OnBoundary(start) || !c.OnBoundary(vertex) {
		return Point{}, ErrPointNotOnCircle
	}

	startAngle := c.angleOf(start)
	vertexAngle := c.angleOf(vertex)
	central := 2 * degree * math.Pi / 180

	var end float64
	if startAngle > vertexAngle {
		end = startAngle + central
	} else {
		end = startAngle - (2*math.Pi - central)
	}

	return c.PointAt(end), nil
}
