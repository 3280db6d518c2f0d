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

// degenerateCases contains curves where control points coincide or are
// collinear.  These stress the epsilon handling of the root finders.
var degenerateCases = []TestCase{
	{
		Name:      "point_quad",
		Pts:       []vec.Vec2{pt(32, 32), pt(32, 32), pt(32, 32)},
		HalfWidth: 2,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "point_cubic",
		Pts:       []vec.Vec2{pt(32, 32), pt(32, 32), pt(32, 32), pt(32, 32)},
		HalfWidth: 2,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "collinear_cubic",
		Pts:       cubic(10, 10, 20, 20, 40, 40, 54, 54),
		HalfWidth: 2,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "collinear_backtrack",
		Pts:       cubic(10, 32, 60, 32, 4, 32, 54, 32), // reverses direction twice
		HalfWidth: 2,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "coincident_controls",
		Pts:       cubic(10, 50, 32, 10, 32, 10, 54, 50),
		HalfWidth: 2,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "control_at_start",
		Pts:       cubic(10, 50, 10, 50, 54, 10, 54, 50),
		HalfWidth: 2,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "tiny",
		Pts:       cubic(32, 32, 32.001, 31.999, 32.002, 32.001, 32.003, 32),
		HalfWidth: 0.5,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "hairline",
		Pts:       cubic(10, 50, 20, 10, 44, 10, 54, 50),
		HalfWidth: 0,
		Width:     64,
		Height:    64,
	},
}
