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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single curve for subdivision tests.
type TestCase struct {
	Name      string     // lowercase a-z, 0-9 and _ only
	Pts       []vec.Vec2 // 2, 3 or 4 control points
	HalfWidth float64    // half the stroke width
	Width     int        // canvas width
	Height    int        // canvas height
	Clip      rect.Rect  // clip rectangle (zero-value means the canvas)
}

// Degree returns 1 for lines, 2 for quadratic and 3 for cubic Bézier
// curves.
func (tc TestCase) Degree() int {
	return len(tc.Pts) - 1
}

// Coords returns the control points as a flat list x0, y0, x1, y1, ...
func (tc TestCase) Coords() []float64 {
	res := make([]float64, 0, 2*len(tc.Pts))
	for _, p := range tc.Pts {
		res = append(res, p.X, p.Y)
	}
	return res
}

// ClipRect returns the clip rectangle of the test case.
func (tc TestCase) ClipRect() rect.Rect {
	if tc.Clip == (rect.Rect{}) {
		return rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)}
	}
	return tc.Clip
}

// Path returns the curve as a path with a single segment.
func (tc TestCase) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, tc.Pts[:1]) {
			return
		}
		switch len(tc.Pts) {
		case 2:
			yield(path.CmdLineTo, tc.Pts[1:])
		case 3:
			yield(path.CmdQuadTo, tc.Pts[1:])
		case 4:
			yield(path.CmdCubeTo, tc.Pts[1:])
		}
	}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
