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

import "seehuhn.de/go/geom/rect"

// clipCases contains curves which leave the clip rectangle.  The curves
// are long enough to be split at the clip boundary.
var clipCases = []TestCase{
	{
		Name:      "quad_exit_right",
		Pts:       quad(40, 128, 200, 40, 300, 128),
		HalfWidth: 2,
		Width:     256,
		Height:    256,
		Clip:      clipBox,
	},
	{
		Name:      "quad_exit_top",
		Pts:       quad(40, 200, 128, -150, 216, 200),
		HalfWidth: 2,
		Width:     256,
		Height:    256,
		Clip:      clipBox,
	},
	{
		Name:      "cubic_through",
		Pts:       cubic(-60, 128, 60, 20, 196, 236, 316, 128), // enters left, exits right
		HalfWidth: 2,
		Width:     256,
		Height:    256,
		Clip:      clipBox,
	},
	{
		Name:      "cubic_corner",
		Pts:       cubic(128, 128, 200, 128, 280, 180, 300, 300), // exits near a corner
		HalfWidth: 2,
		Width:     256,
		Height:    256,
		Clip:      clipBox,
	},
	{
		Name:      "cubic_outside",
		Pts:       cubic(-200, -100, -150, -160, -60, -160, -20, -100),
		HalfWidth: 2,
		Width:     256,
		Height:    256,
		Clip:      clipBox,
	},
	{
		Name:      "cubic_inside",
		Pts:       cubic(40, 200, 80, 40, 176, 40, 216, 200),
		HalfWidth: 2,
		Width:     256,
		Height:    256,
		Clip:      clipBox,
	},
	{
		Name:      "line_through",
		Pts:       line(-50, 100, 300, 160),
		HalfWidth: 2,
		Width:     256,
		Height:    256,
		Clip:      clipBox,
	},
}

var clipBox = rect.Rect{LLx: 20, LLy: 20, URx: 236, URy: 236}
