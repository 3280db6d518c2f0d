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
	"maps"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/subdiv/testcases"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// recorder is a PathConsumer which remembers all calls.
type recorder struct {
	calls []string
}

func (r *recorder) LineTo(x, y float64) {
	r.calls = append(r.calls, fmt.Sprintf("L %g %g", x, y))
}

func (r *recorder) QuadTo(x1, y1, x2, y2 float64) {
	r.calls = append(r.calls, fmt.Sprintf("Q %g %g %g %g", x1, y1, x2, y2))
}

func (r *recorder) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	r.calls = append(r.calls, fmt.Sprintf("C %g %g %g %g %g %g", x1, y1, x2, y2, x3, y3))
}

// kindOf returns the curve kind matching the number of control points of a
// test case.
func kindOf(tc testcases.TestCase) Kind {
	switch tc.Degree() {
	case 1:
		return KindLine
	case 2:
		return KindQuad
	case 3:
		return KindCubic
	default:
		panic(fmt.Sprintf("test case %q has %d points", tc.Name, len(tc.Pts)))
	}
}

// allCases returns all test cases, with the category prepended to the
// name.
func allCases() []testcases.TestCase {
	var res []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			tc.Name = category + "_" + tc.Name
			res = append(res, tc)
		}
	}
	return res
}
