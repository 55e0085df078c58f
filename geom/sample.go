package geom

import (
	"log/slog"
	"math"
	"math/rand/v2"
)

// DefaultMaxAttempts bounds each rejection-sampling loop. The constraints
// below are satisfiable with high probability on every draw, so exhausting
// the cap indicates an unsatisfiable configuration rather than bad luck.
const DefaultMaxAttempts = 10000

// Sampler draws random points on circles under distance constraints.
// The zero value is not usable; both fields must be set.
type Sampler struct {
	Rand        *rand.Rand
	MaxAttempts int
}

// exhausted derives the sampling-failure error for a named constraint.
func (s Sampler) exhausted(constraint string) error {
	return ErrSamplingExhausted.With(
		slog.String("constraint", constraint),
		slog.Int("attempts", s.MaxAttempts),
	)
}

// InscribedTriangle samples three points on the circle's boundary, redrawing
// all three while any pair is closer than half the radius, and constructs
// the triangle they span.
func (s Sampler) InscribedTriangle(c Circle) (Triangle, error) {
	minSep := c.Radius / 2

	for attempt := 0; attempt < s.MaxAttempts; attempt++ {
		first := c.RandomPoint(s.Rand)
		second := c.RandomPoint(s.Rand)
		third := c.RandomPoint(s.Rand)

		if Distance(first, second) < minSep ||
			Distance(second, third) < minSep ||
			Distance(third, first) < minSep {
			continue
		}

		return NewTriangle(first, second, third)
	}

	return Triangle{}, s.exhausted("triangle vertex separation")
}

// InscribedAngle constructs an angle of the given degree inscribed in the
// circle. The vertex and the first ray endpoint are sampled on the boundary
// under chord-length constraints derived from the target degree, and the
// second ray endpoint is chosen on the larger arc.
//
// For degrees above 90 the chord between the sampled points is capped at
// sin(180°−degree)·2r, and whenever that cap exceeds the radius the chord is
// also kept at least one radius long.
func (s Sampler) InscribedAngle(c Circle, degree float64) (Angle, error) {
	if degree > 180 {
		return Angle{}, ErrDegreeRange.With(slog.Float64("degree", degree))
	}

	start := c.RandomPoint(s.Rand)
	vertex := c.RandomPoint(s.Rand)

	maxDist := math.Sin((180-degree)*math.Pi/180) * c.Radius * 2

	for attempt := 0; Distance(start, vertex) > maxDist && degree > 90; attempt++ {
		if attempt >= s.MaxAttempts {
			return Angle{}, s.exhausted("chord maximum distance")
		}

		start = c.RandomPoint(s.Rand)
		vertex = c.RandomPoint(s.Rand)
	}

	for attempt := 0; Distance(start, vertex) < c.Radius && maxDist > c.Radius; attempt++ {
		if attempt >= s.MaxAttempts {
			return Angle{}, s.exhausted("chord minimum distance")
		}

		start = c.RandomPoint(s.Rand)
		vertex = c.RandomPoint(s.Rand)
	}

	end, err := c.PointOnArc(start, vertex, degree)
	if err != nil {
		return Angle{}, err
	}

	return Angle{Start: start, Center: vertex, End: end}, nil
}
