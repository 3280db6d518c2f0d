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

// largeCases contains curves with coordinates far outside the canvas.
// Only a small part of each curve is visible.
var largeCases = []TestCase{
	{
		Name:      "big_arc",
		Pts:       quarterCircle(-1e5, 32, 1e5+22, 0),
		HalfWidth: 2,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "far_cubic",
		Pts:       cubic(-1e6, -1e6, 1e6, -1e6, -1e6, 1e6, 1e6, 1e6),
		HalfWidth: 4,
		Width:     64,
		Height:    64,
	},
	{
		Name:      "long_quad",
		Pts:       quad(-5e4, 60, 32, -5e4, 5e4, 60),
		HalfWidth: 1,
		Width:     64,
		Height:    64,
	},
}
