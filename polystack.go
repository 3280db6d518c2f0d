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

import (
	"fmt"
	"strings"
)

const (
	initialPolyCoords = 8192
	initialPolyKinds  = initialPolyCoords / 2
)

// PolyStack records path segments and later replays them, traversed
// backwards, to a [PathConsumer].  This is used to build the second side of
// a stroke outline.
//
// Each push takes the control points of a forward segment, omitting its end
// point.  The replayed segment runs from the end point back to (x0, y0).
//
// A PolyStack is not safe for concurrent use.
type PolyStack struct {
	coords    []float64
	kinds     []Kind
	numCurves int
	end       int

	coordsRef arrayRef[float64]
	kindsRef  arrayRef[Kind]
}

// NewPolyStack allocates a new PolyStack.  Arrays needed for growing the
// stack beyond its initial size are taken from the given pools.  If a pool
// is nil, a package-wide default is used.
func NewPolyStack(coords ArrayPool[float64], kinds ArrayPool[Kind]) *PolyStack {
	if coords == nil {
		coords = &defaultCoordCache
	}
	if kinds == nil {
		kinds = &defaultKindCache
	}
	s := &PolyStack{
		coordsRef: newArrayRef(coords, initialPolyCoords, "polystack coords"),
		kindsRef:  newArrayRef(kinds, initialPolyKinds, "polystack kinds"),
	}
	s.coords = s.coordsRef.initial
	s.kinds = s.kindsRef.initial
	return s
}

// Len returns the number of segments on the stack.
func (s *PolyStack) Len() int {
	return s.numCurves
}

// IsEmpty reports whether the stack holds no segments.
func (s *PolyStack) IsEmpty() bool {
	return s.numCurves == 0
}

// Dispose empties the stack and returns all widened arrays to their pools.
func (s *PolyStack) Dispose() {
	s.end = 0
	s.numCurves = 0
	s.coords = s.coordsRef.put(s.coords)
	s.kinds = s.kindsRef.put(s.kinds)
}

func (s *PolyStack) ensureSpace(n int) {
	if len(s.coords)-s.end < n {
		s.coords = s.coordsRef.widen(s.coords, s.end, s.end+n)
	}
	if len(s.kinds) <= s.numCurves {
		s.kinds = s.kindsRef.widen(s.kinds, s.numCurves, s.numCurves+1)
	}
}

// PushCubic records a cubic segment with start point (x0, y0) and control
// points (x1, y1) and (x2, y2).
func (s *PolyStack) PushCubic(x0, y0, x1, y1, x2, y2 float64) {
	s.ensureSpace(6)
	s.kinds[s.numCurves] = KindCubic
	s.numCurves++

	c := s.coords[s.end : s.end+6]
	c[0], c[1] = x2, y2
	c[2], c[3] = x1, y1
	c[4], c[5] = x0, y0
	s.end += 6
}

// PushQuad records a quadratic segment with start point (x0, y0) and
// control point (x1, y1).
func (s *PolyStack) PushQuad(x0, y0, x1, y1 float64) {
	s.ensureSpace(4)
	s.kinds[s.numCurves] = KindQuad
	s.numCurves++

	c := s.coords[s.end : s.end+4]
	c[0], c[1] = x1, y1
	c[2], c[3] = x0, y0
	s.end += 4
}

// PushLine records a line segment with start point (x, y).
func (s *PolyStack) PushLine(x, y float64) {
	s.ensureSpace(2)
	s.kinds[s.numCurves] = KindLine
	s.numCurves++

	s.coords[s.end] = x
	s.coords[s.end+1] = y
	s.end += 2
}

// PullAll replays all segments to out, in the order they were pushed,
// and empties the stack.
func (s *PolyStack) PullAll(out PathConsumer) {
	c := s.coords
	e := 0
	for _, kind := range s.kinds[:s.numCurves] {
		emitReversed(out, kind, c[e:])
		e += kind.NumCoords() - 2
	}
	s.numCurves = 0
	s.end = 0
}

// PopAll replays all segments to out, last pushed first, and empties the
// stack.  Together with the reversed control points this traces the
// recorded path backwards.
func (s *PolyStack) PopAll(out PathConsumer) {
	c := s.coords
	e := s.end
	for i := s.numCurves - 1; i >= 0; i-- {
		kind := s.kinds[i]
		e -= kind.NumCoords() - 2
		emitReversed(out, kind, c[e:])
	}
	s.numCurves = 0
	s.end = 0
}

func emitReversed(out PathConsumer, kind Kind, c []float64) {
	switch kind {
	case KindLine:
		out.LineTo(c[0], c[1])
	case KindQuad:
		out.QuadTo(c[0], c[1], c[2], c[3])
	case KindCubic:
		out.CurveTo(c[0], c[1], c[2], c[3], c[4], c[5])
	}
}

// String lists the stored segments, last pushed first.
func (s *PolyStack) String() string {
	b := &strings.Builder{}
	last := s.end
	for i := s.numCurves - 1; i >= 0; i-- {
		kind := s.kinds[i]
		n := kind.NumCoords() - 2
		last -= n
		fmt.Fprintf(b, "%s: %v\n", kind, s.coords[last:last+n])
	}
	return b.String()
}
