// seehuhn.de/go/subdiv - Bézier subdivision for 2D rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package subdiv

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Kind identifies the type of a curve segment.
type Kind uint8

// These are the supported segment kinds.
const (
	KindLine  Kind = iota // straight line, 2 points
	KindQuad              // quadratic Bézier, 3 points
	KindCubic             // cubic Bézier, 4 points
)

// NumCoords returns the number of coordinates (twice the number of points)
// describing a segment of kind k.
func (k Kind) NumCoords() int {
	switch k {
	case KindLine:
		return 4
	case KindQuad:
		return 6
	case KindCubic:
		return 8
	}
	panic(fmt.Sprintf("subdiv: unsupported curve kind %d", k))
}

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindQuad:
		return "quad"
	case KindCubic:
		return "cubic"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Curve is a line, quadratic Bézier or cubic Bézier segment.
// Coordinates are stored as x0, y0, x1, y1, ...; only the first
// Kind.NumCoords() entries of Coords are used.
type Curve struct {
	Kind   Kind
	Coords [8]float64
}

// NewLine returns the line from p0 to p1.
func NewLine(p0, p1 vec.Vec2) Curve {
	return Curve{
		Kind:   KindLine,
		Coords: [8]float64{p0.X, p0.Y, p1.X, p1.Y},
	}
}

// NewQuad returns the quadratic Bézier with control points p0, p1, p2.
func NewQuad(p0, p1, p2 vec.Vec2) Curve {
	return Curve{
		Kind:   KindQuad,
		Coords: [8]float64{p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y},
	}
}

// NewCubic returns the cubic Bézier with control points p0, p1, p2, p3.
func NewCubic(p0, p1, p2, p3 vec.Vec2) Curve {
	return Curve{
		Kind:   KindCubic,
		Coords: [8]float64{p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y},
	}
}

// Pts returns the used coordinates of c.  The slice aliases c.
func (c *Curve) Pts() []float64 {
	return c.Coords[:c.Kind.NumCoords()]
}

// Point returns the i-th control point.
func (c *Curve) Point(i int) vec.Vec2 {
	return vec.Vec2{X: c.Coords[2*i], Y: c.Coords[2*i+1]}
}

// Start returns the first point of the curve.
func (c *Curve) Start() vec.Vec2 {
	return c.Point(0)
}

// End returns the last point of the curve.
func (c *Curve) End() vec.Vec2 {
	return c.Point(c.Kind.NumCoords()/2 - 1)
}

// Eval returns the point at parameter t.
func (c *Curve) Eval(t float64) vec.Vec2 {
	var s Sampler
	s.Set(c.Kind, c.Pts())
	return vec.Vec2{X: s.XAt(t), Y: s.YAt(t)}
}

// Length estimates the arc length of the curve.  Lines are measured
// exactly, Bézier curves are approximated by the mean of the control
// polygon length and the chord length.
func (c *Curve) Length() float64 {
	p := c.Coords
	switch c.Kind {
	case KindLine:
		return lineLen(p[0], p[1], p[2], p[3])
	case KindQuad:
		return quadLen(p[0], p[1], p[2], p[3], p[4], p[5])
	default:
		return curveLen(p[0], p[1], p[2], p[3], p[4], p[5], p[6], p[7])
	}
}

// IsPoint reports whether all control points coincide.
func (c *Curve) IsPoint() bool {
	return isPointCurve(c.Pts())
}

// Outcode returns the bitwise OR of the outcodes of all control points.
func (c *Curve) Outcode(r ClipRect) Outcode {
	return r.OutcodeOR(c.Pts())
}

// Split cuts the curve at t = 0.5.
func (c Curve) Split() (left, right Curve) {
	if c.Kind == KindLine {
		return c.SplitAt(0.5)
	}
	left.Kind, right.Kind = c.Kind, c.Kind
	Subdivide(c.Pts(), left.Pts(), right.Pts(), c.Kind)
	return left, right
}

// SplitAt cuts the curve at parameter t.  The two halves share the point
// at t.
func (c Curve) SplitAt(t float64) (left, right Curve) {
	left.Kind, right.Kind = c.Kind, c.Kind
	n := c.Kind.NumCoords()
	var buf [16]float64
	SubdivideAt(t, c.Pts(), buf[:2*n], c.Kind)
	copy(left.Coords[:n], buf[:n])
	copy(right.Coords[:n], buf[n:2*n])
	return left, right
}
