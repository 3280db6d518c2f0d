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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var quadCases = []TestCase{
	{
		Name:      "quadratic",
		Pts:       quad(10, 50, 32, 10, 54, 50),
		HalfWidth: 3,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "quadratic_shallow",
		Pts:       quad(10, 32, 32, 28, 54, 32), // control point near chord
		HalfWidth: 3,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "quadratic_deep",
		Pts:       quad(10, 50, 32, 5, 54, 50), // control point far from chord
		HalfWidth: 3,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "quadratic_below",
		Pts:       quad(10, 20, 32, 55, 54, 20), // curves down
		HalfWidth: 3,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "quadratic_sharp",
		Pts:       quad(10, 54, 60, 10, 12, 56), // nearly turns back on itself
		HalfWidth: 4,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "quadratic_wide_stroke",
		Pts:       quad(10, 50, 32, 10, 54, 50),
		HalfWidth: 20, // wider than the radius of curvature at the apex
		Width:     64,
		Height:    64,
	},
}

var cubicCases = []TestCase{
	{
		Name:      "cubic",
		Pts:       cubic(10, 50, 20, 10, 44, 10, 54, 50),
		HalfWidth: 3,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "cubic_s_shape",
		Pts:       cubic(10, 32, 30, 0, 34, 64, 54, 32), // one inflection point
		HalfWidth: 3,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "cubic_two_inflections",
		Pts:       cubic(10, 32, 60, 0, 4, 0, 54, 32),
		HalfWidth: 2,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "cubic_loop",
		Pts:       cubic(10, 50, 70, 0, -6, 0, 54, 50), // self-intersecting
		HalfWidth: 2,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "cubic_cusp",
		Pts:       cubic(10, 50, 54, 10, 10, 10, 54, 50),
		HalfWidth: 2,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "quarter_circle",
		Pts:       quarterCircle(10, 54, 44, 0),
		HalfWidth: 3,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "quarter_circle_rotated",
		Pts:       quarterCircle(32, 32, 24, math.Pi/6),
		HalfWidth: 3,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "hairpin",
		Pts:       cubic(10, 54, 10, 4, 54, 4, 54, 54), // turns by 180 degrees
		HalfWidth: 12,
		Width:     64,
		Height:    64,
	},
}

// quad returns the control points of a quadratic Bézier curve.
func quad(x1, y1, cx, cy, x2, y2 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(cx, cy), pt(x2, y2)}
}

// cubic returns the control points of a cubic Bézier curve.
func cubic(x1, y1, cx1, cy1, cx2, cy2, x2, y2 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(cx1, cy1), pt(cx2, cy2), pt(x2, y2)}
}

// quarterCircle approximates a counter-clockwise quarter circle around
// (cx, cy), starting at the given angle.
func quarterCircle(cx, cy, r, angle float64) []vec.Vec2 {
	sin, cos := math.Sincos(angle)
	u := vec.Vec2{X: cos, Y: sin}
	v := vec.Vec2{X: -sin, Y: cos}
	c := pt(cx, cy)
	k := r * kappa
	return []vec.Vec2{
		c.Add(u.Mul(r)),
		c.Add(u.Mul(r)).Add(v.Mul(k)),
		c.Add(v.Mul(r)).Add(u.Mul(k)),
		c.Add(v.Mul(r)),
	}
}
