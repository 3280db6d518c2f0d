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

// Package subdiv computes where Bézier segments must be cut before they are
// stroked or clipped, and splits them there.
//
// The package is the geometric kernel of a software path renderer.  It
// solves quadratic and cubic equations in closed form, plans subdivision
// parameters so that every piece of a curve is monotonic in x and y, free of
// inflections and free of offset-curve cusps, plans cuts at clip rectangle
// edges, and splits curves exactly using de Casteljau's algorithm.  Two
// small stacks, [PolyStack] and [IndexStack], collect the resulting geometry
// for later replay onto a [PathConsumer].
//
// Curves are passed around as flat coordinate slices together with a
// [Kind]: a line has 4 coordinates, a quadratic Bézier 6 and a cubic
// Bézier 8.  The [Curve] type wraps the same representation in a value that
// needs no heap allocation.
//
// None of the types in this package are safe for concurrent use, with the
// exception of [ArrayCache].  A renderer running several workers gives each
// worker its own [Planner], [Splitter], [PolyStack] and [IndexStack].
package subdiv

//go:generate go run ./testcases/export
