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

import "seehuhn.de/go/geom/vec"

var lineCases = []TestCase{
	{
		Name:      "horizontal",
		Pts:       line(10, 32, 54, 32),
		HalfWidth: 2,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "diagonal",
		Pts:       line(10, 10, 54, 54),
		HalfWidth: 2,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "crossing_right",
		Pts:       line(10, 20, 80, 40),
		HalfWidth: 1,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "crossing_all",
		Pts:       line(-20, -20, 90, 90),
		HalfWidth: 1,
		Width:     64,
		Height:    64,
	},
}

// line returns the control points of a straight line segment.
func line(x1, y1, x2, y2 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y2)}
}
