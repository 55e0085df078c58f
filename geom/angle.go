package geom

import "math"

// Angle is an angle given by a point on each ray and the vertex between
// them. For inscribed angles all three points lie on the originating circle
// and Center is the vertex.
type Angle struct {
	Start  Point
	Center Point
	End    Point
}

// Degrees returns the measure of the angle at the vertex, in degrees.
func (a Angle) Degrees() float64 {
	u := math.Atan2(a.Start.Y-a.Center.Y, a.Start.X-a.Center.X)
	v := math.Atan2(a.End.Y-a.Center.Y, a.End.X-a.Center.X)

	d := math.Abs(u-v) * 180 / math.Pi
	if d > 180 {
		d = 360 - d
	}

	return d
}
