package geom

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestNewCircleRejectsNegativeRadius(t *testing.T) {
	_, err := NewCircle(Point{}, -1)
	if !errors.Is(err, ErrNegativeRadius) {
		t.Fatalf("expected ErrNegativeRadius, got %v", err)
	}
}

func TestPointAt(t *testing.T) {
	c := Circle{Center: Point{X: 1, Y: 2}, Radius: 3}

	if got := c.PointAt(0); !nearPoint(got, Point{X: 4, Y: 2}) {
		t.Errorf("PointAt(0) = %v, want (4, 2)", got)
	}

	if got := c.PointAt(math.Pi / 2); !nearPoint(got, Point{X: 1, Y: 5}) {
		t.Errorf("PointAt(pi/2) = %v, want (1, 5)", got)
	}
}

func TestRandomPointOnBoundary(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 13))
	c := Circle{Center: Point{X: -2, Y: 5}, Radius: 4}

	for i := 0; i < 100; i++ {
		p := c.RandomPoint(rng)

		if !c.OnBoundary(p) {
			t.Fatalf("sampled point %v not on boundary", p)
		}

		if !near(Distance(c.Center, p), c.Radius) {
			t.Fatalf("sampled point %v distance %v, want %v",
				p, Distance(c.Center, p), c.Radius)
		}
	}
}

func TestOnBoundary(t *testing.T) {
	c := Circle{Center: Point{}, Radius: 2}

	if !c.OnBoundary(Point{X: 2, Y: 0}) {
		t.Error("(2, 0) should be on boundary")
	}

	if c.OnBoundary(Point{X: 1, Y: 0}) {
		t.Error("(1, 0) should not be on boundary")
	}
}

func TestPointOnArcRejectsOffCircle(t *testing.T) {
	c := Circle{Center: Point{}, Radius: 1}

	_, err := c.PointOnArc(Point{X: 5, Y: 0}, Point{X: 1, Y: 0}, 90)
	if !errors.Is(err, ErrPointNotOnCircle) {
		t.Fatalf("expected ErrPointNotOnCircle, got %v", err)
	}
}

func TestPointOnArcInscribedDegree(t *testing.T) {
	c := Circle{Center: Point{}, Radius: 1}

	// The inscribed angle at the vertex must measure the requested degree
	// regardless of where start and vertex sit on the boundary.
	for _, degree := range []float64{30, 45, 60, 90, 120} {
		start := c.PointAt(math.Pi / 2)
		vertex := c.PointAt(0)

		end, err := c.PointOnArc(start, vertex, degree)
		if err != nil {
			t.Fatalf("PointOnArc(%v): %v", degree, err)
		}

		if !c.OnBoundary(end) {
			t.Fatalf("PointOnArc(%v) = %v not on boundary", degree, end)
		}

		a := Angle{Start: start, Center: vertex, End: end}
		if got := a.Degrees(); !near(got, degree) {
			t.Errorf("inscribed angle = %v, want %v", got, degree)
		}
	}
}

func TestAngleDegrees(t *testing.T) {
	a := Angle{
		Start:  Point{X: 1, Y: 0},
		Center: Point{},
		End:    Point{X: 0, Y: 1},
	}

	if got := a.Degrees(); !near(got, 90) {
		t.Errorf("Degrees() = %v, want 90", got)
	}

	// Reflex configurations fold back below 180.
	b := Angle{
		Start:  Point{X: 1, Y: 0},
		Center: Point{},
		End:    Point{X: 1, Y: -1},
	}

	if got := b.Degrees(); !near(got, 45) {
		t.Errorf("Degrees() = %v, want 45", got)
	}
}
