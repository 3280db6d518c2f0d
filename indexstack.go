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

const initialIndexCount = 1024

// IndexStack holds indices into a shared array of points.  Pushing the
// same index twice in a row cancels both pushes, which removes
// back-and-forth steps from a polyline.
//
// An IndexStack is not safe for concurrent use.
type IndexStack struct {
	indices []int
	end     int

	ref arrayRef[int]
}

// NewIndexStack allocates a new IndexStack.  Arrays needed for growing the
// stack beyond its initial size are taken from pool, or from a package-wide
// default if pool is nil.
func NewIndexStack(pool ArrayPool[int]) *IndexStack {
	if pool == nil {
		pool = &defaultIndexCache
	}
	s := &IndexStack{
		ref: newArrayRef(pool, initialIndexCount, "indexstack"),
	}
	s.indices = s.ref.initial
	return s
}

// Len returns the number of indices on the stack.
func (s *IndexStack) Len() int {
	return s.end
}

// IsEmpty reports whether the stack holds no indices.
func (s *IndexStack) IsEmpty() bool {
	return s.end == 0
}

// Reset empties the stack.
func (s *IndexStack) Reset() {
	s.end = 0
}

// Dispose empties the stack and returns a widened array to the pool.
func (s *IndexStack) Dispose() {
	s.end = 0
	s.indices = s.ref.put(s.indices)
}

// Push appends v to the stack.  If v equals the most recently pushed
// index, that index is removed instead.
func (s *IndexStack) Push(v int) {
	if s.end > 0 && s.indices[s.end-1] == v {
		s.end--
		return
	}
	if len(s.indices) <= s.end {
		s.indices = s.ref.widen(s.indices, s.end, s.end+1)
	}
	s.indices[s.end] = v
	s.end++
}

// PullAll emits a line to each stored point, in the order the indices were
// pushed, and empties the stack.  Index i refers to the point
// (points[2*i], points[2*i+1]).
func (s *IndexStack) PullAll(points []float64, out PathConsumer) {
	for _, i := range s.indices[:s.end] {
		j := 2 * i
		out.LineTo(points[j], points[j+1])
	}
	s.end = 0
}
