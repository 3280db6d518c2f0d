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

import "seehuhn.de/go/geom/rect"

// Outcode marks the sides of a clip rectangle which a point lies outside of.
type Outcode uint8

// These are the outcode bits.
const (
	OutcodeTop    Outcode = 1 << iota // y < YMin
	OutcodeBottom                     // y >= YMax
	OutcodeLeft                       // x < XMin
	OutcodeRight                      // x >= XMax

	outcodeMaskTopBottom = OutcodeTop | OutcodeBottom
	outcodeMaskLeftRight = OutcodeLeft | OutcodeRight
)

// ClipRect is an axis-aligned clip rectangle.  The minimum bounds are
// inclusive and the maximum bounds are exclusive.
type ClipRect struct {
	YMin, YMax float64
	XMin, XMax float64
}

// NewClipRect converts a rectangle to a ClipRect.
func NewClipRect(r rect.Rect) ClipRect {
	return ClipRect{
		YMin: r.LLy,
		YMax: r.URy,
		XMin: r.LLx,
		XMax: r.URx,
	}
}

// Pad returns the rectangle grown by d on all four sides.
func (r ClipRect) Pad(d float64) ClipRect {
	return ClipRect{
		YMin: r.YMin - d,
		YMax: r.YMax + d,
		XMin: r.XMin - d,
		XMax: r.XMax + d,
	}
}

// Outcode classifies the point (x, y) against r.
// A coordinate equal to a maximum bound counts as outside.
func (r ClipRect) Outcode(x, y float64) Outcode {
	var code Outcode
	if y < r.YMin {
		code = OutcodeTop
	} else if y >= r.YMax {
		code = OutcodeBottom
	}
	if x < r.XMin {
		code |= OutcodeLeft
	} else if x >= r.XMax {
		code |= OutcodeRight
	}
	return code
}

// OutcodeOR returns the bitwise OR of the outcodes of all points in the
// coordinate list pts.
func (r ClipRect) OutcodeOR(pts []float64) Outcode {
	var code Outcode
	for i := 0; i+1 < len(pts); i += 2 {
		code |= r.Outcode(pts[i], pts[i+1])
	}
	return code
}

// OutcodeAND returns the bitwise AND of the outcodes of all points in the
// coordinate list pts.  A non-zero result means that the whole curve lies
// outside of r, on the indicated side.
func (r ClipRect) OutcodeAND(pts []float64) Outcode {
	code := outcodeMaskTopBottom | outcodeMaskLeftRight
	for i := 0; i+1 < len(pts); i += 2 {
		code &= r.Outcode(pts[i], pts[i+1])
	}
	return code
}
