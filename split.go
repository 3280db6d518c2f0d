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

// The functions in this file split curves using de Casteljau's algorithm.
// All source coordinates are read before any output is written, so src may
// alias either output, and left and right may share a backing array (the
// last point of left equals the first point of right).

// SubdivideCubic splits the cubic Bézier src (8 coordinates) at t = 0.5.
func SubdivideCubic(src, left, right []float64) {
	x1, y1 := src[0], src[1]
	cx1, cy1 := src[2], src[3]
	cx2, cy2 := src[4], src[5]
	x2, y2 := src[6], src[7]

	left[0] = x1
	left[1] = y1

	right[6] = x2
	right[7] = y2

	x1 = (x1 + cx1) / 2
	y1 = (y1 + cy1) / 2
	x2 = (x2 + cx2) / 2
	y2 = (y2 + cy2) / 2

	cx := (cx1 + cx2) / 2
	cy := (cy1 + cy2) / 2

	cx1 = (x1 + cx) / 2
	cy1 = (y1 + cy) / 2
	cx2 = (x2 + cx) / 2
	cy2 = (y2 + cy) / 2
	cx = (cx1 + cx2) / 2
	cy = (cy1 + cy2) / 2

	left[2] = x1
	left[3] = y1
	left[4] = cx1
	left[5] = cy1
	left[6] = cx
	left[7] = cy

	right[0] = cx
	right[1] = cy
	right[2] = cx2
	right[3] = cy2
	right[4] = x2
	right[5] = y2
}

// SubdivideCubicAt splits the cubic Bézier src (8 coordinates) at t.
func SubdivideCubicAt(t float64, src, left, right []float64) {
	x1, y1 := src[0], src[1]
	cx1, cy1 := src[2], src[3]
	cx2, cy2 := src[4], src[5]
	x2, y2 := src[6], src[7]

	left[0] = x1
	left[1] = y1

	right[6] = x2
	right[7] = y2

	x1 = x1 + t*(cx1-x1)
	y1 = y1 + t*(cy1-y1)
	x2 = cx2 + t*(x2-cx2)
	y2 = cy2 + t*(y2-cy2)

	cx := cx1 + t*(cx2-cx1)
	cy := cy1 + t*(cy2-cy1)

	cx1 = x1 + t*(cx-x1)
	cy1 = y1 + t*(cy-y1)
	cx2 = cx + t*(x2-cx)
	cy2 = cy + t*(y2-cy)
	cx = cx1 + t*(cx2-cx1)
	cy = cy1 + t*(cy2-cy1)

	left[2] = x1
	left[3] = y1
	left[4] = cx1
	left[5] = cy1
	left[6] = cx
	left[7] = cy

	right[0] = cx
	right[1] = cy
	right[2] = cx2
	right[3] = cy2
	right[4] = x2
	right[5] = y2
}

// SubdivideQuad splits the quadratic Bézier src (6 coordinates) at t = 0.5.
func SubdivideQuad(src, left, right []float64) {
	x1, y1 := src[0], src[1]
	cx, cy := src[2], src[3]
	x2, y2 := src[4], src[5]

	left[0] = x1
	left[1] = y1

	right[4] = x2
	right[5] = y2

	x1 = (x1 + cx) / 2
	y1 = (y1 + cy) / 2
	x2 = (x2 + cx) / 2
	y2 = (y2 + cy) / 2
	cx = (x1 + x2) / 2
	cy = (y1 + y2) / 2

	left[2] = x1
	left[3] = y1
	left[4] = cx
	left[5] = cy

	right[0] = cx
	right[1] = cy
	right[2] = x2
	right[3] = y2
}

// SubdivideQuadAt splits the quadratic Bézier src (6 coordinates) at t.
func SubdivideQuadAt(t float64, src, left, right []float64) {
	x1, y1 := src[0], src[1]
	cx, cy := src[2], src[3]
	x2, y2 := src[4], src[5]

	left[0] = x1
	left[1] = y1

	right[4] = x2
	right[5] = y2

	x1 = x1 + t*(cx-x1)
	y1 = y1 + t*(cy-y1)
	x2 = cx + t*(x2-cx)
	y2 = cy + t*(y2-cy)
	cx = x1 + t*(x2-x1)
	cy = y1 + t*(y2-y1)

	left[2] = x1
	left[3] = y1
	left[4] = cx
	left[5] = cy

	right[0] = cx
	right[1] = cy
	right[2] = x2
	right[3] = y2
}

// SubdivideLineAt splits the line src (4 coordinates) at t.
func SubdivideLineAt(t float64, src, left, right []float64) {
	x1, y1 := src[0], src[1]
	x2, y2 := src[2], src[3]

	left[0] = x1
	left[1] = y1

	right[2] = x2
	right[3] = y2

	x1 = x1 + t*(x2-x1)
	y1 = y1 + t*(y2-y1)

	left[2] = x1
	left[3] = y1

	right[0] = x1
	right[1] = y1
}

// Subdivide splits a quadratic or cubic Bézier at t = 0.5.
// It panics if kind is neither [KindQuad] nor [KindCubic].
func Subdivide(src, left, right []float64, kind Kind) {
	switch kind {
	case KindCubic:
		SubdivideCubic(src, left, right)
	case KindQuad:
		SubdivideQuad(src, left, right)
	default:
		panic("subdiv: unsupported curve kind " + kind.String())
	}
}

// SubdivideAt splits the curve src at t.  The left part is stored in
// dst[:n] and the right part in dst[n:2*n], where n = kind.NumCoords().
// src may alias dst[:n].
func SubdivideAt(t float64, src, dst []float64, kind Kind) {
	n := kind.NumCoords()
	switch kind {
	case KindCubic:
		SubdivideCubicAt(t, src, dst[:n], dst[n:2*n])
	case KindLine:
		SubdivideLineAt(t, src, dst[:n], dst[n:2*n])
	default:
		SubdivideQuadAt(t, src, dst[:n], dst[n:2*n])
	}
}
