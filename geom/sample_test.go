package geom

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func testSampler(seed uint64) Sampler {
	return Sampler{
		Rand:        rand.New(rand.NewPCG(seed, 0)),
		MaxAttempts: DefaultMaxAttempts,
	}
}

func TestInscribedTriangle(t *testing.T) {
	s := testSampler(42)
	c := Circle{Center: Point{X: 1, Y: -1}, Radius: 4}

	for i := 0; i < 50; i++ {
		tri, err := s.InscribedTriangle(c)
		if err != nil {
			t.Fatalf("InscribedTriangle: %v", err)
		}

		for _, p := range []Point{tri.A, tri.B, tri.C} {
			if !c.OnBoundary(p) {
				t.Fatalf("vertex %v not on boundary", p)
			}
		}

		minSep := c.Radius / 2
		if Distance(tri.A, tri.B) < minSep ||
			Distance(tri.B, tri.C) < minSep ||
			Distance(tri.C, tri.A) < minSep {
			t.Fatalf("vertices too close: %v %v %v", tri.A, tri.B, tri.C)
		}
	}
}

func TestInscribedTriangleExhausted(t *testing.T) {
	s := Sampler{Rand: rand.New(rand.NewPCG(1, 1)), MaxAttempts: 0}
	c := Circle{Center: Point{}, Radius: 4}

	_, err := s.InscribedTriangle(c)
	if !errors.Is(err, ErrSamplingExhausted) {
		t.Fatalf("expected ErrSamplingExhausted, got %v", err)
	}
}

func TestInscribedAngle(t *testing.T) {
	s := testSampler(7)
	c := Circle{Center: Point{}, Radius: 5}

	for _, degree := range []float64{30, 60, 90, 120, 150} {
		for i := 0; i < 20; i++ {
			a, err := s.InscribedAngle(c, degree)
			if err != nil {
				t.Fatalf("InscribedAngle(%v): %v", degree, err)
			}

			for _, p := range []Point{a.Start, a.Center, a.End} {
				if !c.OnBoundary(p) {
					t.Fatalf("degree %v: point %v not on boundary", degree, p)
				}
			}

			// The vertex may land on the swept arc itself, in which case
			// the angle it subtends is the supplement of the request.
			if got := a.Degrees(); !near(got, degree) && !near(got, 180-degree) {
				t.Errorf("degree %v: measured %v", degree, got)
			}
		}
	}
}

func TestInscribedAngleRejectsDegree(t *testing.T) {
	s := testSampler(1)
	c := Circle{Center: Point{}, Radius: 5}

	_, err := s.InscribedAngle(c, 181)
	if !errors.Is(err, ErrDegreeRange) {
		t.Fatalf("expected ErrDegreeRange, got %v", err)
	}
}
