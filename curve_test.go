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
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/vec"
)

func TestKind(t *testing.T) {
	diff(t, 4, KindLine.NumCoords())
	diff(t, 6, KindQuad.NumCoords())
	diff(t, 8, KindCubic.NumCoords())
	diff(t, "cubic", KindCubic.String())
	diff(t, "Kind(9)", Kind(9).String())

	defer func() {
		if recover() == nil {
			t.Error("NumCoords did not panic for an invalid kind")
		}
	}()
	Kind(9).NumCoords()
}

func TestCurve(t *testing.T) {
	c := NewCubic(vec.Vec2{X: 10, Y: 50}, vec.Vec2{X: 20, Y: 10}, vec.Vec2{X: 44, Y: 10}, vec.Vec2{X: 54, Y: 50})
	diff(t, []float64{10, 50, 20, 10, 44, 10, 54, 50}, c.Pts())
	diff(t, vec.Vec2{X: 10, Y: 50}, c.Start())
	diff(t, vec.Vec2{X: 54, Y: 50}, c.End())
	diff(t, vec.Vec2{X: 32, Y: 20}, c.Eval(0.5), cmpopts.EquateApprox(0, 1e-12))

	left, right := c.Split()
	diff(t, left.End(), right.Start())
	diff(t, c.Eval(0.5), left.End(), cmpopts.EquateApprox(0, 1e-12))
	diff(t, c.Eval(0.25), left.Eval(0.5), cmpopts.EquateApprox(0, 1e-12))

	left, right = c.SplitAt(0.2)
	diff(t, c.Eval(0.2), left.End(), cmpopts.EquateApprox(0, 1e-12))
	diff(t, c.End(), right.End())

	l := NewLine(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 3, Y: 4})
	diff(t, 5.0, l.Length())
	left, right = l.Split()
	diff(t, vec.Vec2{X: 1.5, Y: 2}, left.End())
	diff(t, KindLine, right.Kind)

	q := NewQuad(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 2, Y: 0})
	diff(t, 2.0, q.Length())
	diff(t, false, q.IsPoint())

	p := NewQuad(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 1, Y: 1})
	diff(t, true, p.IsPoint())
	diff(t, 0.0, p.Length())
}

func TestCurveOutcode(t *testing.T) {
	r := ClipRect{YMin: 0, YMax: 10, XMin: 0, XMax: 10}
	c := NewQuad(vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 20, Y: 5}, vec.Vec2{X: 5, Y: -1})
	diff(t, OutcodeRight|OutcodeTop, c.Outcode(r))
}

func TestLengths(t *testing.T) {
	diff(t, 7.0, fastLineLen(0, 0, 3, 4))
	diff(t, 5.0, lineLen(0, 0, 3, 4))

	// polygon 2+2, chord 2√2
	diff(t, 2+1.4142135623730951, quadLen(0, 0, 2, 0, 2, 2), cmpopts.EquateApprox(0, 1e-12))
	diff(t, 4.0, fastQuadLen(0, 0, 2, 0, 2, 2))

	// unit square path: polygon 3, chord 1
	diff(t, 2.0, curveLen(0, 0, 1, 0, 1, 1, 0, 1))
	diff(t, 3.0, fastCurveLen(0, 0, 1, 0, 1, 1, 0, 1))
	diff(t, 3.0, fastLen(KindCubic, []float64{0, 0, 1, 0, 1, 1, 0, 1}))
}

func TestIsPointCurve(t *testing.T) {
	diff(t, true, isPointCurve([]float64{1, 1, 1 + 1e-10, 1, 1, 1 - 1e-10}))
	diff(t, false, isPointCurve([]float64{1, 1, 1, 1, 1, 1.1}))
}
