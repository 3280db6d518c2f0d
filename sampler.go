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

import "math"

// CurveSampler evaluates a single curve and locates the parameters which
// are interesting for subdivision.  Methods which find parameters write
// them into the given slice and return how many were written.
type CurveSampler interface {
	// Set makes the curve given by kind and pts the active curve.
	Set(kind Kind, pts []float64)

	// DxAt and DyAt return the components of the tangent at t.
	DxAt(t float64) float64
	DyAt(t float64) float64

	// DxRoots and DyRoots find the parameters where the tangent is
	// vertical or horizontal, i.e. where x or y has a local extremum.
	// At most two values are written.
	DxRoots(dst []float64) int
	DyRoots(dst []float64) int

	// InflectionPoints finds the inflection points.
	// At most two values are written.
	InflectionPoints(dst []float64) int

	// RootsOfROCMinusW finds the parameters in [0, 1) where the squared
	// radius of curvature equals w2.  len(dst) must be at least 4.
	RootsOfROCMinusW(dst []float64, w2, err float64) int

	// XPoints and YPoints find the parameters in [0, 1) where the curve
	// crosses the vertical line at x or the horizontal line at y.
	// At most three values are written.
	XPoints(dst []float64, x float64) int
	YPoints(dst []float64, y float64) int
}

// Sampler is the standard CurveSampler.  It stores the curve in power basis
//
//	x(t) = ax·t³ + bx·t² + cx·t + dx
//
// (and the same for y), together with the coefficients of the derivative.
// The zero value is the constant curve at the origin.
type Sampler struct {
	ax, ay, bx, by, cx, cy, dx, dy float64
	dax, day, dbx, dby             float64
}

var _ CurveSampler = (*Sampler)(nil)

// Set implements the [CurveSampler] interface.
func (s *Sampler) Set(kind Kind, pts []float64) {
	switch kind {
	case KindCubic:
		s.SetCubic(pts[0], pts[1], pts[2], pts[3], pts[4], pts[5], pts[6], pts[7])
	case KindQuad:
		s.SetQuad(pts[0], pts[1], pts[2], pts[3], pts[4], pts[5])
	case KindLine:
		s.SetLine(pts[0], pts[1], pts[2], pts[3])
	default:
		panic("subdiv: unsupported curve kind " + kind.String())
	}
}

// SetCubic makes the cubic Bézier with the given control points the active
// curve.
func (s *Sampler) SetCubic(x1, y1, x2, y2, x3, y3, x4, y4 float64) {
	dx32 := 3 * (x3 - x2)
	dy32 := 3 * (y3 - y2)
	dx21 := 3 * (x2 - x1)
	dy21 := 3 * (y2 - y1)
	s.ax = (x4 - x1) - dx32
	s.ay = (y4 - y1) - dy32
	s.bx = dx32 - dx21
	s.by = dy32 - dy21
	s.cx = dx21
	s.cy = dy21
	s.dx = x1
	s.dy = y1
	s.dax = 3 * s.ax
	s.day = 3 * s.ay
	s.dbx = 2 * s.bx
	s.dby = 2 * s.by
}

// SetQuad makes the quadratic Bézier with the given control points the
// active curve.
func (s *Sampler) SetQuad(x1, y1, x2, y2, x3, y3 float64) {
	dx21 := x2 - x1
	dy21 := y2 - y1
	s.ax = 0
	s.ay = 0
	s.bx = (x3 - x2) - dx21
	s.by = (y3 - y2) - dy21
	s.cx = 2 * dx21
	s.cy = 2 * dy21
	s.dx = x1
	s.dy = y1
	s.dax = 0
	s.day = 0
	s.dbx = 2 * s.bx
	s.dby = 2 * s.by
}

// SetLine makes the line from (x1, y1) to (x2, y2) the active curve.
func (s *Sampler) SetLine(x1, y1, x2, y2 float64) {
	s.ax, s.ay = 0, 0
	s.bx, s.by = 0, 0
	s.cx = x2 - x1
	s.cy = y2 - y1
	s.dx = x1
	s.dy = y1
	s.dax, s.day = 0, 0
	s.dbx, s.dby = 0, 0
}

// XAt returns the x coordinate at t.
func (s *Sampler) XAt(t float64) float64 {
	return evalCubic(s.ax, s.bx, s.cx, s.dx, t)
}

// YAt returns the y coordinate at t.
func (s *Sampler) YAt(t float64) float64 {
	return evalCubic(s.ay, s.by, s.cy, s.dy, t)
}

// DxAt implements the [CurveSampler] interface.
func (s *Sampler) DxAt(t float64) float64 {
	return evalQuad(s.dax, s.dbx, s.cx, t)
}

// DyAt implements the [CurveSampler] interface.
func (s *Sampler) DyAt(t float64) float64 {
	return evalQuad(s.day, s.dby, s.cy, t)
}

// DxRoots implements the [CurveSampler] interface.
func (s *Sampler) DxRoots(dst []float64) int {
	return QuadraticRoots(s.dax, s.dbx, s.cx, dst)
}

// DyRoots implements the [CurveSampler] interface.
func (s *Sampler) DyRoots(dst []float64) int {
	return QuadraticRoots(s.day, s.dby, s.cy, dst)
}

// InflectionPoints implements the [CurveSampler] interface.
func (s *Sampler) InflectionPoints(dst []float64) int {
	// There is an inflection point at t if x'(t)·y''(t) - y'(t)·x''(t) = 0.
	// This turns out to be quadratic in t.
	a := s.dax*s.dby - s.dbx*s.day
	b := 2 * (s.cy*s.dax - s.day*s.cx)
	c := s.cy*s.dbx - s.cx*s.dby
	return QuadraticRoots(a, b, c, dst)
}

// XPoints implements the [CurveSampler] interface.
func (s *Sampler) XPoints(dst []float64, x float64) int {
	return CubicRootsInAB(s.ax, s.bx, s.cx, s.dx-x, dst, 0, 1)
}

// YPoints implements the [CurveSampler] interface.
func (s *Sampler) YPoints(dst []float64, y float64) int {
	return CubicRootsInAB(s.ay, s.by, s.cy, s.dy-y, dst, 0, 1)
}

// perpendicularDfDdf finds the parameters in [0, 1) where the first and
// second derivative are perpendicular, i.e. where x'·x'' + y'·y'' = 0.
func (s *Sampler) perpendicularDfDdf(dst []float64) int {
	// coefficients of a multiple of x'·x'' + y'·y''
	a := 2 * (s.dax*s.dax + s.day*s.day)
	b := 3 * (s.dax*s.dbx + s.day*s.dby)
	c := 2*(s.dax*s.cx+s.day*s.cy) + s.dbx*s.dbx + s.dby*s.dby
	d := s.dbx*s.cx + s.dby*s.cy
	return CubicRootsInAB(a, b, c, d, dst, 0, 1)
}

// RootsOfROCMinusW implements the [CurveSampler] interface.
//
// The roots are located with the false position method.  The intervals
// searched are bounded by 0, 1, and the points where the first and second
// derivative are perpendicular, which stand in for the local extrema of the
// radius of curvature.  ROC has poles at inflection points, so some roots
// may be missed; this does not matter for drawing.
func (s *Sampler) RootsOfROCMinusW(dst []float64, w2, err float64) int {
	end := s.perpendicularDfDdf(dst)
	dst[end] = 1 // always check the interval end points

	n := 0
	t0 := 0.0
	ft0 := s.rocSq(t0) - w2
	for i := 0; i <= end; i++ {
		t1 := dst[i]
		ft1 := s.rocSq(t1) - w2
		if ft0 == 0 {
			dst[n] = t0
			n++
		} else if ft1*ft0 < 0 {
			// ROC(t) >= 0, so ROC(t)² = w² iff ROC(t) = w
			dst[n] = s.falsePositionROCsqMinusX(t0, t1, w2, err)
			n++
		}
		t0 = t1
		ft0 = ft1
	}
	return n
}

// falsePositionROCsqMinusX finds a root of ROC²(t) - w2 between t0 and t1,
// using the Illinois variant of the false position method.
func (s *Sampler) falsePositionROCsqMinusX(t0, t1, w2, err float64) float64 {
	const iterLimit = 100

	side := 0
	t, ft := t1, eliminateInf(s.rocSq(t1)-w2)
	u, fu := t0, eliminateInf(s.rocSq(t0)-w2)
	r := u
	for i := 0; i < iterLimit && math.Abs(t-u) > err*math.Abs(t+u); i++ {
		r = (fu*t - ft*u) / (fu - ft)
		fr := s.rocSq(r) - w2
		if sameSign(fr, ft) {
			ft, t = fr, r
			if side < 0 {
				fu = math.Ldexp(fu, side)
				side--
			} else {
				side = -1
			}
		} else if fr*fu > 0 {
			fu, u = fr, r
			if side > 0 {
				ft = math.Ldexp(ft, -side)
				side++
			} else {
				side = 1
			}
		} else {
			break
		}
	}
	return r
}

// rocSq returns the squared radius of curvature at t.
func (s *Sampler) rocSq(t float64) float64 {
	dx := t*(t*s.dax+s.dbx) + s.cx
	dy := t*(t*s.day+s.dby) + s.cy
	ddx := 2*s.dax*t + s.dbx
	ddy := 2*s.day*t + s.dby
	dx2dy2 := dx*dx + dy*dy
	ddx2ddy2 := ddx*ddx + ddy*ddy
	ddxdxddydy := ddx*dx + ddy*dy
	return dx2dy2 * ((dx2dy2 * dx2dy2) / (dx2dy2*ddx2ddy2 - ddxdxddydy*ddxdxddydy))
}

func eliminateInf(x float64) float64 {
	if math.IsInf(x, 1) {
		return math.MaxFloat64
	} else if math.IsInf(x, -1) {
		return -math.MaxFloat64
	}
	return x
}

// sameSign reports whether x and y are both positive or both negative.
// Testing x*y > 0 fails for very small x and y.
func sameSign(x, y float64) bool {
	return (x < 0 && y < 0) || (x > 0 && y > 0)
}
