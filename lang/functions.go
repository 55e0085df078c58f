package lang

import (
	"log/slog"

	"github.com/Injng/elements/geom"
)

// Helper accessors shared by the operations. Each reports whether the value
// had an acceptable kind for the requested interpretation.

// asFloat coerces an Int or Float value to float64.
func asFloat(v Value) (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	default:
		return 0, false
	}
}

// asPoints extracts a point from every argument.
func asPoints(args []Value) ([]geom.Point, bool) {
	points := make([]geom.Point, 0, len(args))

	for _, arg := range args {
		if arg.Kind != KindPoint {
			return nil, false
		}

		points = append(points, arg.Point)
	}

	return points, true
}

// countError derives the arity error for a named operation.
func countError(name string, want, got int) error {
	return ErrArgumentCount.With(
		slog.String("operation", name),
		slog.Int("want", want),
		slog.Int("got", got),
	)
}

// typeError derives the argument-type error for a named operation.
func typeError(name, want string) error {
	return ErrArgumentType.With(
		slog.String("operation", name),
		slog.String("want", want),
	)
}

/*
Assignment
*/

// opSet validates an assignment: a variable name and a value. The
// environment write itself happens in the evaluator, which also replaces the
// result with Undefined.
type opSet struct{}

func (opSet) Call(args []Value) (Value, error) {
	if len(args) != 2 {
		return Value{}, countError(SetName, 2, len(args))
	}

	if args[0].Kind != KindString || !ValidName(args[0].Str) {
		return Value{}, ErrInvalidVariable.With(slog.String("name", args[0].String()))
	}

	return args[1], nil
}

/*
Basic arithmetic functions
*/

// opArith is a binary arithmetic operation over two Ints or two Floats.
// Mixed numeric kinds are a type error, not promoted.
type opArith struct {
	name       string
	apply      func(a, b int64) int64
	applyFloat func(a, b float64) float64
}

func (o opArith) Call(args []Value) (Value, error) {
	if len(args) != 2 {
		return Value{}, countError(o.name, 2, len(args))
	}

	switch {
	case args[0].Kind == KindInt && args[1].Kind == KindInt:
		return IntValue(o.apply(args[0].Int, args[1].Int)), nil

	case args[0].Kind == KindFloat && args[1].Kind == KindFloat:
		return FloatValue(o.applyFloat(args[0].Float, args[1].Float)), nil

	default:
		return Value{}, typeError(o.name, "two Ints or two Floats")
	}
}

// opNop is the fallback for unrecognized function names.
type opNop struct{}

func (opNop) Call([]Value) (Value, error) {
	return IntValue(0), nil
}

/*
Basic geometric components
*/

// opPoint constructs a point from two numeric coordinates.
type opPoint struct{}

func (opPoint) Call(args []Value) (Value, error) {
	if len(args) != 2 {
		return Value{}, countError("point", 2, len(args))
	}

	x, okX := asFloat(args[0])
	y, okY := asFloat(args[1])

	if !okX || !okY {
		return Value{}, typeError("point", "two numeric coordinates")
	}

	return PointValue(geom.Point{X: x, Y: y}), nil
}

// opLineseg constructs a line segment from two points.
type opLineseg struct{}

func (opLineseg) Call(args []Value) (Value, error) {
	if len(args) != 2 {
		return Value{}, countError("lineseg", 2, len(args))
	}

	points, ok := asPoints(args)
	if !ok {
		return Value{}, typeError("lineseg", "two points")
	}

	return LinesegValue(geom.Lineseg{Start: points[0], End: points[1]}), nil
}

// opAngle constructs an angle from three points: a ray endpoint, the vertex,
// and the other ray endpoint.
type opAngle struct{}

func (opAngle) Call(args []Value) (Value, error) {
	if len(args) != 3 {
		return Value{}, countError("angle", 3, len(args))
	}

	points, ok := asPoints(args)
	if !ok {
		return Value{}, typeError("angle", "three points")
	}

	return AngleValue(geom.Angle{
		Start:  points[0],
		Center: points[1],
		End:    points[2],
	}), nil
}

// opInscribedAngle constructs an angle of a given degree inscribed in a
// circle, sampling its vertex and ray endpoints on the boundary.
type opInscribedAngle struct {
	sampler geom.Sampler
}

func (o opInscribedAngle) Call(args []Value) (Value, error) {
	if len(args) != 2 {
		return Value{}, countError("iangle", 2, len(args))
	}

	if args[0].Kind != KindCircle {
		return Value{}, typeError("iangle", "a circle and a degree")
	}

	degree, ok := asFloat(args[1])
	if !ok {
		return Value{}, typeError("iangle", "a circle and a degree")
	}

	angle, err := o.sampler.InscribedAngle(args[0].Circle, degree)
	if err != nil {
		return Value{}, err
	}

	return AngleValue(angle), nil
}

// opMidpoint returns the midpoint of two points.
type opMidpoint struct{}

func (opMidpoint) Call(args []Value) (Value, error) {
	if len(args) != 2 {
		return Value{}, countError("midpoint", 2, len(args))
	}

	points, ok := asPoints(args)
	if !ok {
		return Value{}, typeError("midpoint", "two points")
	}

	return PointValue(geom.Midpoint(points[0], points[1])), nil
}

/*
Basic geometric shapes
*/

// opCircle constructs a circle. Overload cases, tried in declared order:
//  1. no arguments: the canonical circle at the origin with radius 5
//  2. a center point and a numeric radius
type opCircle struct{}

func (o opCircle) Call(args []Value) (Value, error) {
	if v, err := o.canonical(args); err == nil {
		return v, nil
	}

	return o.fromPointRadius(args)
}

func (opCircle) canonical(args []Value) (Value, error) {
	if len(args) != 0 {
		return Value{}, countError("circle", 0, len(args))
	}

	circle, err := geom.NewCircle(geom.Point{}, 5)
	if err != nil {
		return Value{}, err
	}

	return CircleValue(circle), nil
}

func (opCircle) fromPointRadius(args []Value) (Value, error) {
	if len(args) != 2 {
		return Value{}, countError("circle", 2, len(args))
	}

	if args[0].Kind != KindPoint {
		return Value{}, typeError("circle", "a point and a radius")
	}

	radius, ok := asFloat(args[1])
	if !ok {
		return Value{}, typeError("circle", "a point and a radius")
	}

	circle, err := geom.NewCircle(args[0].Point, radius)
	if err != nil {
		return Value{}, err
	}

	return CircleValue(circle), nil
}

// opTriangle constructs a triangle. Overload cases, tried in declared order:
//  1. three non-collinear points
//  2. a circle: three points sampled on it, pairwise at least half the
//     radius apart
//  3. an angle, destructured into its three points
//
// When all cases fail the generic error is surfaced rather than the last
// case's, matching the committed-choice dispatch contract for this name.
type opTriangle struct {
	sampler geom.Sampler
}

// errTriangleArguments is the all-cases-exhausted failure for triangle.
var errTriangleArguments = ErrArgumentType.With(
	slog.String("operation", "triangle"),
	slog.String("want", "three points, a circle, or an angle"),
)

func (o opTriangle) Call(args []Value) (Value, error) {
	// Commit to the first case whose argument shape matches, so domain
	// failures such as collinear points surface instead of cascading into
	// the remaining cases.
	if _, ok := asPoints(args); ok && len(args) == 3 {
		return o.fromPoints(args)
	}

	if len(args) == 1 && args[0].Kind == KindCircle {
		return o.fromCircle(args)
	}

	if len(args) == 1 && args[0].Kind == KindAngle {
		return o.fromAngle(args)
	}

	return Value{}, errTriangleArguments
}

func (opTriangle) fromPoints(args []Value) (Value, error) {
	if len(args) != 3 {
		return Value{}, countError("triangle", 3, len(args))
	}

	points, ok := asPoints(args)
	if !ok {
		return Value{}, typeError("triangle", "three points")
	}

	triangle, err := geom.NewTriangle(points[0], points[1], points[2])
	if err != nil {
		return Value{}, err
	}

	return TriangleValue(triangle), nil
}

func (o opTriangle) fromCircle(args []Value) (Value, error) {
	if len(args) != 1 || args[0].Kind != KindCircle {
		return Value{}, typeError("triangle", "a circle")
	}

	triangle, err := o.sampler.InscribedTriangle(args[0].Circle)
	if err != nil {
		return Value{}, err
	}

	return TriangleValue(triangle), nil
}

func (opTriangle) fromAngle(args []Value) (Value, error) {
	if len(args) != 1 || args[0].Kind != KindAngle {
		return Value{}, typeError("triangle", "an angle")
	}

	a := args[0].Angle

	triangle, err := geom.NewTriangle(a.Start, a.Center, a.End)
	if err != nil {
		return Value{}, err
	}

	return TriangleValue(triangle), nil
}

/*
Triangle centers and properties
*/

// opCenter computes one of the classical triangle centers.
type opCenter struct {
	name   string
	center func(geom.Triangle) geom.Point
}

func (o opCenter) Call(args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, countError(o.name, 1, len(args))
	}

	if args[0].Kind != KindTriangle {
		return Value{}, typeError(o.name, "a triangle")
	}

	return PointValue(o.center(args[0].Triangle)), nil
}

// opInradius computes the radius of a triangle's inscribed circle.
type opInradius struct{}

func (opInradius) Call(args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, countError("inradius", 1, len(args))
	}

	if args[0].Kind != KindTriangle {
		return Value{}, typeError("inradius", "a triangle")
	}

	return FloatValue(args[0].Triangle.Inradius()), nil
}

// opIntersect computes an intersection point. Overload cases, tried in
// declared order:
//  1. two line segments
//  2. a line segment, a circle, and an index (0 or 1) selecting which of
//     the two quadratic roots to return
//
// If both cases fail, the second case's error is surfaced.
type opIntersect struct{}

func (o opIntersect) Call(args []Value) (Value, error) {
	// Commit on shape: a parallel-segment failure must surface rather than
	// cascade into the segment/circle case.
	if len(args) == 2 &&
		args[0].Kind == KindLineseg && args[1].Kind == KindLineseg {
		return o.fromSegments(args)
	}

	return o.fromSegmentCircle(args)
}

func (opIntersect) fromSegments(args []Value) (Value, error) {
	if len(args) != 2 {
		return Value{}, countError("intersect", 2, len(args))
	}

	if args[0].Kind != KindLineseg || args[1].Kind != KindLineseg {
		return Value{}, typeError("intersect", "two line segments")
	}

	point, err := geom.IntersectSegments(args[0].Lineseg, args[1].Lineseg)
	if err != nil {
		return Value{}, err
	}

	return PointValue(point), nil
}

func (opIntersect) fromSegmentCircle(args []Value) (Value, error) {
	if len(args) != 3 {
		return Value{}, countError("intersect", 3, len(args))
	}

	if args[0].Kind != KindLineseg || args[1].Kind != KindCircle ||
		args[2].Kind != KindInt {
		return Value{}, typeError("intersect", "a line segment, a circle, and an index")
	}

	point, err := geom.IntersectSegmentCircle(
		args[0].Lineseg, args[1].Circle, args[2].Int,
	)
	if err != nil {
		return Value{}, err
	}

	return PointValue(point), nil
}
