// Package svg renders the evaluator's output values as an SVG document.
// Compound geometric values are decomposed into vector primitives; scalar
// values and the Undefined assignment result are not drawable and are
// skipped. Labels are placed at their anchor point with a fixed offset.
package svg

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Injng/elements/geom"
	"github.com/Injng/elements/lang"
)

// Options configures the output canvas. World coordinates are scaled and
// translated so the origin sits at the canvas center with positive y up.
type Options struct {
	Width  int
	Height int
	Scale  float64
}

// DefaultOptions returns the default canvas configuration.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 800, Scale: 20}
}

// labelOffset shifts label text off its anchor point, in canvas units.
const labelOffset = 6

// canvas accumulates SVG elements under one coordinate transform.
type canvas struct {
	b    strings.Builder
	opts Options
}

// x maps a world x-coordinate to the canvas.
func (c *canvas) x(v float64) float64 {
	return float64(c.opts.Width)/2 + v*c.opts.Scale
}

// y maps a world y-coordinate to the canvas, flipping the axis so positive
// y points up.
func (c *canvas) y(v float64) float64 {
	return float64(c.opts.Height)/2 - v*c.opts.Scale
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func (c *canvas) point(p geom.Point) {
	fmt.Fprintf(&c.b,
		`<circle cx="%s" cy="%s" r="2" fill="black" />`,
		coord(c.x(p.X)), coord(c.y(p.Y)),
	)
}

func (c *canvas) line(from, to geom.Point) {
	fmt.Fprintf(&c.b,
		`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="black" />`,
		coord(c.x(from.X)), coord(c.y(from.Y)),
		coord(c.x(to.X)), coord(c.y(to.Y)),
	)
}

func (c *canvas) circle(circle geom.Circle) {
	fmt.Fprintf(&c.b,
		`<circle cx="%s" cy="%s" r="%s" fill="none" stroke="black" />`,
		coord(c.x(circle.Center.X)), coord(c.y(circle.Center.Y)),
		coord(circle.Radius*c.opts.Scale),
	)
}

func (c *canvas) polygon(points ...geom.Point) {
	pairs := make([]string, 0, len(points))
	for _, p := range points {
		pairs = append(pairs, coord(c.x(p.X))+","+coord(c.y(p.Y)))
	}

	fmt.Fprintf(&c.b,
		`<polygon points="%s" fill="none" stroke="black" />`,
		strings.Join(pairs, " "),
	)
}

func (c *canvas) label(l lang.Label) {
	fmt.Fprintf(&c.b,
		`<text x="%s" y="%s" font-size="12">%s</text>`,
		coord(c.x(l.At.X)+labelOffset), coord(c.y(l.At.Y)-labelOffset),
		escape(l.Name),
	)
}

// escape replaces the XML-reserved characters that can appear in a label.
var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string {
	return escaper.Replace(s)
}

// add renders one value onto the canvas. Non-drawable kinds are skipped.
func (c *canvas) add(v lang.Value) {
	switch v.Kind {
	case lang.KindPoint:
		c.point(v.Point)

	case lang.KindLineseg:
		c.line(v.Lineseg.Start, v.Lineseg.End)

	case lang.KindCircle:
		c.circle(v.Circle)

	case lang.KindTriangle:
		c.polygon(v.Triangle.A, v.Triangle.B, v.Triangle.C)

	case lang.KindAngle:
		c.line(v.Angle.Start, v.Angle.Center)
		c.line(v.Angle.Center, v.Angle.End)

	case lang.KindLabel:
		c.label(v.Label)
	}
}

// Render produces a complete SVG document for the evaluator's output.
func Render(values []lang.Value, opts Options) string {
	c := &canvas{opts: opts}

	for _, v := range values {
		c.add(v)
	}

	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">%s</svg>`,
		opts.Width, opts.Height, opts.Width, opts.Height, c.b.String(),
	)
}

// Write renders the output values and writes the document to w.
func Write(w io.Writer, values []lang.Value, opts Options) error {
	_, err := io.WriteString(w, Render(values, opts)+"\n")

	return err
}
