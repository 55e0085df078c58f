package geom

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < epsilon }

func nearPoint(a, b Point) bool { return near(a.X, b.X) && near(a.Y, b.Y) }

func TestNewTriangleRejectsCollinear(t *testing.T) {
	_, err := NewTriangle(
		Point{X: 0, Y: 0},
		Point{X: 1, Y: 1},
		Point{X: 2, Y: 2},
	)
	if !errors.Is(err, ErrCollinearPoints) {
		t.Fatalf("expected ErrCollinearPoints, got %v", err)
	}

	_, err = NewTriangle(
		Point{X: 0, Y: 0},
		Point{X: 3, Y: 0},
		Point{X: 0, Y: 4},
	)
	if err != nil {
		t.Fatalf("unexpected error for valid triangle: %v", err)
	}
}

func TestCentroid(t *testing.T) {
	tri := Triangle{
		A: Point{X: 0, Y: 0},
		B: Point{X: 3, Y: 0},
		C: Point{X: 0, Y: 3},
	}

	got := tri.Centroid()
	if !nearPoint(got, Point{X: 1, Y: 1}) {
		t.Errorf("centroid = %v, want (1, 1)", got)
	}
}

func TestCircumcenterEquidistant(t *testing.T) {
	tri := Triangle{
		A: Point{X: 0, Y: 0},
		B: Point{X: 4, Y: 0},
		C: Point{X: 1, Y: 3},
	}

	center := tri.Circumcenter()

	da := Distance(center, tri.A)
	db := Distance(center, tri.B)
	dc := Distance(center, tri.C)

	if !near(da, db) || !near(db, dc) {
		t.Errorf("circumcenter %v not equidistant: %v %v %v", center, da, db, dc)
	}
}

func TestCircumcenterRightTriangle(t *testing.T) {
	// The circumcenter of a right triangle is the hypotenuse midpoint.
	tri := Triangle{
		A: Point{X: 0, Y: 0},
		B: Point{X: 4, Y: 0},
		C: Point{X: 0, Y: 4},
	}

	got := tri.Circumcenter()
	if !nearPoint(got, Point{X: 2, Y: 2}) {
		t.Errorf("circumcenter = %v, want (2, 2)", got)
	}
}

func TestIncenterRightTriangle(t *testing.T) {
	// A 3-4-5 right triangle with legs on the axes has inradius 1 and
	// incenter (1, 1).
	tri := Triangle{
		A: Point{X: 0, Y: 0},
		B: Point{X: 3, Y: 0},
		C: Point{X: 0, Y: 4},
	}

	if got := tri.Incenter(); !nearPoint(got, Point{X: 1, Y: 1}) {
		t.Errorf("incenter = %v, want (1, 1)", got)
	}

	if got := tri.Inradius(); !near(got, 1) {
		t.Errorf("inradius = %v, want 1", got)
	}
}

func TestOrthocenterRightTriangle(t *testing.T) {
	// The orthocenter of a right triangle is the right-angle vertex.
	tri := Triangle{
		A: Point{X: 0, Y: 0},
		B: Point{X: 3, Y: 0},
		C: Point{X: 0, Y: 4},
	}

	got := tri.Orthocenter()
	if !nearPoint(got, Point{X: 0, Y: 0}) {
		t.Errorf("orthocenter = %v, want (0, 0)", got)
	}
}

func TestOrthocenterAltitudeProperty(t *testing.T) {
	tri := Triangle{
		A: Point{X: 0, Y: 0},
		B: Point{X: 5, Y: 1},
		C: Point{X: 2, Y: 4},
	}

	h := tri.Orthocenter()

	// The segment from each vertex through the orthocenter must be
	// perpendicular to the opposite side.
	dot := (h.X-tri.A.X)*(tri.C.X-tri.B.X) + (h.Y-tri.A.Y)*(tri.C.Y-tri.B.Y)
	if !near(dot, 0) {
		t.Errorf("altitude from A not perpendicular to BC: dot = %v", dot)
	}
}
