package lang

import (
	"strconv"
	"strings"

	"github.com/Injng/elements/geom"
)

// Kind discriminates the closed set of value kinds the language produces.
type Kind int

const (
	// KindIndeterminate is the placeholder for an unbound variable reference
	// encountered before substitution.
	KindIndeterminate Kind = iota

	// KindUndefined is the result of the assignment operation, signifying
	// "no displayable value".
	KindUndefined

	// KindInt is a 64-bit integer literal.
	KindInt

	// KindFloat is a 64-bit floating-point number.
	KindFloat

	// KindString is a string, notably a variable name handed to setq.
	KindString

	// KindBool is a boolean.
	KindBool

	// KindPoint is a point in the plane.
	KindPoint

	// KindLineseg is a line segment.
	KindLineseg

	// KindCircle is a circle.
	KindCircle

	// KindTriangle is a triangle.
	KindTriangle

	// KindAngle is an angle.
	KindAngle

	// KindLabel is a display label synthesized for a point-valued variable
	// after evaluation: the variable name anchored at the point.
	KindLabel
)

// String returns a string representation of the value kind.
func (k Kind) String() string {
	switch k {
	case KindIndeterminate:
		return "Indeterminate"
	case KindUndefined:
		return "Undefined"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindBool:
		return "Bool"
	case KindPoint:
		return "Point"
	case KindLineseg:
		return "Lineseg"
	case KindCircle:
		return "Circle"
	case KindTriangle:
		return "Triangle"
	case KindAngle:
		return "Angle"
	case KindLabel:
		return "Label"
	default:
		return "Unknown"
	}
}

// Label is a display label for a point-valued variable: its name and the
// anchor point where a renderer should place the text.
type Label struct {
	Name string
	At   geom.Point
}

// Value is a member of the closed tagged union of language values.
// Exactly the field selected by Kind is meaningful. Values are cheaply
// copyable; all fields are scalars or small fixed-size structs.
type Value struct {
	Kind     Kind
	Int      int64
	Float    float64
	Str      string
	Bool     bool
	Point    geom.Point
	Lineseg  geom.Lineseg
	Circle   geom.Circle
	Triangle geom.Triangle
	Angle    geom.Angle
	Label    Label
}

// Indeterminate returns the unbound-variable placeholder value.
func Indeterminate() Value { return Value{Kind: KindIndeterminate} }

// Undefined returns the no-displayable-value result of assignment.
func Undefined() Value { return Value{Kind: KindUndefined} }

// IntValue returns an integer value.
func IntValue(i int64) Value { return Value{Kind: KindInt, Int: i} }

// FloatValue returns a floating-point value.
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// StringValue returns a string value.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// BoolValue returns a boolean value.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// PointValue returns a point value.
func PointValue(p geom.Point) Value { return Value{Kind: KindPoint, Point: p} }

// LinesegValue returns a line segment value.
func LinesegValue(l geom.Lineseg) Value {
	return Value{Kind: KindLineseg, Lineseg: l}
}

// CircleValue returns a circle value.
func CircleValue(c geom.Circle) Value { return Value{Kind: KindCircle, Circle: c} }

// TriangleValue returns a triangle value.
func TriangleValue(t geom.Triangle) Value {
	return Value{Kind: KindTriangle, Triangle: t}
}

// AngleValue returns an angle value.
func AngleValue(a geom.Angle) Value { return Value{Kind: KindAngle, Angle: a} }

// LabelValue returns a display label value.
func LabelValue(name string, at geom.Point) Value {
	return Value{Kind: KindLabel, Label: Label{Name: name, At: at}}
}

// formatCoord formats a coordinate with the shortest exact representation.
func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// formatPoint formats a point as "(x, y)".
func formatPoint(p geom.Point) string {
	return "(" + formatCoord(p.X) + ", " + formatCoord(p.Y) + ")"
}

// String returns a display representation of the value.
func (v Value) String() string {
	switch v.Kind {
	case KindIndeterminate:
		return "indeterminate"

	case KindUndefined:
		return "undefined"

	case KindInt:
		return strconv.FormatInt(v.Int, 10)

	case KindFloat:
		return formatCoord(v.Float)

	case KindString:
		return v.Str

	case KindBool:
		return strconv.FormatBool(v.Bool)

	case KindPoint:
		return formatPoint(v.Point)

	case KindLineseg:
		return formatPoint(v.Lineseg.Start) + " -> " + formatPoint(v.Lineseg.End)

	case KindCircle:
		return "circle " + formatPoint(v.Circle.Center) +
			" r=" + formatCoord(v.Circle.Radius)

	case KindTriangle:
		return strings.Join([]string{
			formatPoint(v.Triangle.A),
			formatPoint(v.Triangle.B),
			formatPoint(v.Triangle.C),
		}, " ")

	case KindAngle:
		return "angle " + formatPoint(v.Angle.Start) + " " +
			formatPoint(v.Angle.Center) + " " + formatPoint(v.Angle.End)

	case KindLabel:
		return v.Label.Name + " " +
			formatCoord(v.Label.At.X) + " " + formatCoord(v.Label.At.Y)

	default:
		return "unknown"
	}
}
