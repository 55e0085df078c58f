// Package geom implements the geometric types and constructions used by the
// elements language: points, line segments, circles, triangles, and angles,
// together with their intersection and sampling routines.
package geom

import "math"

// Point is a location in the Cartesian plane.
type Point struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between two points.
func Distance(first, second Point) float64 {
	return math.Hypot(first.X-second.X, first.Y-second.Y)
}

// Midpoint returns the point halfway between two points.
func Midpoint(first, second Point) Point {
	return Point{
		X: (first.X + second.X) / 2,
		Y: (first.Y + second.Y) / 2,
	}
}

// slope returns the slope of the line through two points.
// A vertical line yields an infinite slope.
func slope(from, to Point) float64 {
	return (to.Y - from.Y) / (to.X - from.X)
}

// perpendicular returns the slope of a line perpendicular to one with the
// given slope. Vertical maps to horizontal and vice versa.
func perpendicular(m float64) float64 {
	if math.IsInf(m, 0) {
		return 0
	}

	if m == 0 {
		return math.Inf(1)
	}

	return -1 / m
}

// intersectAt returns the intersection of two lines, each given as a point
// and a slope. Vertical lines are handled as a special case via infinite
// slope. The caller must ensure the lines are not parallel.
func intersectAt(p1 Point, m1 float64, p2 Point, m2 float64) Point {
	switch {
	case math.IsInf(m1, 0):
		x := p1.X

		return Point{X: x, Y: m2*(x-p2.X) + p2.Y}

	case math.IsInf(m2, 0):
		x := p2.X

		return Point{X: x, Y: m1*(x-p1.X) + p1.Y}

	default:
		x := (m1*p1.X - m2*p2.X + p2.Y - p1.Y) / (m1 - m2)

		return Point{X: x, Y: m1*(x-p1.X) + p1.Y}
	}
}
