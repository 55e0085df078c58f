package geom

import "math"

// Lineseg is a directed line segment between two points.
type Lineseg struct {
	Start Point
	End   Point
}

// Slope returns the slope of the line through the segment.
// A vertical segment yields an infinite slope.
func (l Lineseg) Slope() float64 {
	return slope(l.Start, l.End)
}

// YIntercept returns the y-intercept of the line through the segment.
// Meaningless for vertical segments, whose slope is infinite.
func (l Lineseg) YIntercept() float64 {
	return l.Start.Y - l.Slope()*l.Start.X
}

// IntersectSegments returns the intersection of the lines through two
// segments. Segments with exactly equal slopes fail as parallel; a vertical
// segment is handled as a special case via its infinite slope.
func IntersectSegments(first, second Lineseg) (Point, error) {
	if first.Slope() == second.Slope() {
		return Point{}, ErrParallelSegments
	}

	if math.IsInf(first.Slope(), 0) {
		x := first.Start.X

		return Point{X: x, Y: second.Slope()*x + second.YIntercept()}, nil
	}

	if math.IsInf(second.Slope(), 0) {
		x := second.Start.X

		return Point{X: x, Y: first.Slope()*x + first.YIntercept()}, nil
	}

	x := (second.YIntercept() - first.YIntercept()) /
		(first.Slope() - second.Slope())

	return Point{X: x, Y: first.Slope()*x + first.YIntercept()}, nil
}

// IntersectSegmentCircle returns one of the intersection points of the line
// through a segment and a circle. Substituting the line equation into the
// circle equation yields a quadratic in x; index selects which of the two
// roots to return (under a zero-discriminant tangency both roots coincide).
func IntersectSegmentCircle(l Lineseg, c Circle, index int64) (Point, error) {
	if index != 0 && index != 1 {
		return Point{}, ErrInvalidIndex
	}

	m := l.Slope()
	n := l.YIntercept()
	cx := c.Center.X
	cy := c.Center.Y
	r := c.Radius

	qa := 1 + m*m
	qb := 2 * (m*n - m*cy - cx)
	qc := cx*cx + cy*cy + n*n - 2*n*cy - r*r

	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return Point{}, ErrNoIntersection
	}

	var x float64
	if index == 0 {
		x = (-qb + math.Sqrt(disc)) / (2 * qa)
	} else {
		x = (-qb - math.Sqrt(disc)) / (2 * qa)
	}

	return Point{X: x, Y: m*x + n}, nil
}
