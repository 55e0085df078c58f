package geom

import "github.com/Injng/elements/pkg"

// Predefined errors (sentinel values).
var (
	ErrCollinearPoints   = pkg.NewError("points are collinear")
	ErrNegativeRadius    = pkg.NewError("radius must be non-negative")
	ErrDegreeRange       = pkg.NewError("degree exceeds 180 degrees")
	ErrPointNotOnCircle  = pkg.NewError("point does not lie on the circle")
	ErrParallelSegments  = pkg.NewError("line segments are parallel")
	ErrNoIntersection    = pkg.NewError("no intersection points")
	ErrInvalidIndex      = pkg.NewError("index must be either 0 or 1")
	ErrSamplingExhausted = pkg.NewError("could not satisfy constraint")
)
