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

// within reports whether x and y differ by at most err.
func within(x, y, err float64) bool {
	d := y - x
	return d <= err && d >= -err
}

// withinPoint compares two points coordinate-wise.
func withinPoint(x1, y1, x2, y2, err float64) bool {
	return within(x1, x2, err) && within(y1, y2, err)
}

// isPointCurve reports whether all control points of the curve coincide,
// up to eps.
func isPointCurve(pts []float64) bool {
	for i := 2; i+1 < len(pts); i += 2 {
		if !withinPoint(pts[i-2], pts[i-1], pts[i], pts[i+1], eps) {
			return false
		}
	}
	return true
}

// evalCubic evaluates a·t³ + b·t² + c·t + d.
func evalCubic(a, b, c, d, t float64) float64 {
	return t*(t*(t*a+b)+c) + d
}

// evalQuad evaluates a·t² + b·t + c.
func evalQuad(a, b, c, t float64) float64 {
	return t*(t*a+b) + c
}

// fastLineLen returns the Manhattan length of a line segment.
func fastLineLen(x0, y0, x1, y1 float64) float64 {
	return math.Abs(x1-x0) + math.Abs(y1-y0)
}

func lineLen(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x1-x0, y1-y0)
}

// fastQuadLen returns the Manhattan length of the control polygon.
func fastQuadLen(x0, y0, x1, y1, x2, y2 float64) float64 {
	return math.Abs(x1-x0) + math.Abs(x2-x1) +
		math.Abs(y1-y0) + math.Abs(y2-y1)
}

// quadLen estimates the arc length of a quadratic Bézier as the mean of the
// control polygon length and the chord length.
func quadLen(x0, y0, x1, y1, x2, y2 float64) float64 {
	return (lineLen(x0, y0, x1, y1) +
		lineLen(x1, y1, x2, y2) +
		lineLen(x0, y0, x2, y2)) / 2
}

// fastCurveLen returns the Manhattan length of the control polygon.
func fastCurveLen(x0, y0, x1, y1, x2, y2, x3, y3 float64) float64 {
	return math.Abs(x1-x0) + math.Abs(x2-x1) + math.Abs(x3-x2) +
		math.Abs(y1-y0) + math.Abs(y2-y1) + math.Abs(y3-y2)
}

// curveLen estimates the arc length of a cubic Bézier as the mean of the
// control polygon length and the chord length.
func curveLen(x0, y0, x1, y1, x2, y2, x3, y3 float64) float64 {
	return (lineLen(x0, y0, x1, y1) +
		lineLen(x1, y1, x2, y2) +
		lineLen(x2, y2, x3, y3) +
		lineLen(x0, y0, x3, y3)) / 2
}

// fastLen returns the Manhattan length of the control polygon of a curve
// of the given kind.
func fastLen(kind Kind, pts []float64) float64 {
	switch kind {
	case KindLine:
		return fastLineLen(pts[0], pts[1], pts[2], pts[3])
	case KindQuad:
		return fastQuadLen(pts[0], pts[1], pts[2], pts[3], pts[4], pts[5])
	default:
		return fastCurveLen(pts[0], pts[1], pts[2], pts[3], pts[4], pts[5], pts[6], pts[7])
	}
}

// ulp returns the distance from |x| to the next larger float64.
func ulp(x float64) float64 {
	x = math.Abs(x)
	return math.Nextafter(x, math.Inf(1)) - x
}
