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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// checkParams verifies that ts is strictly increasing, with values more
// than eps apart, all within [tMin, tMax).
func checkParams(t *testing.T, name string, ts []float64) {
	t.Helper()
	for i, x := range ts {
		if x < tMin || x >= tMax || math.IsNaN(x) {
			t.Errorf("%s: parameter %g out of range", name, x)
		}
		if i > 0 && x-ts[i-1] <= eps {
			t.Errorf("%s: parameters %g and %g not separated", name, ts[i-1], x)
		}
	}
}

func TestSubdivPointsProperties(t *testing.T) {
	plain := NewPlanner()
	angle := NewPlanner()
	angle.SubdivideAngle = true

	for _, tc := range allCases() {
		kind := kindOf(tc)
		if kind == KindLine {
			continue
		}
		t.Run(tc.Name, func(t *testing.T) {
			pts := tc.Coords()

			basic := append([]float64(nil), plain.SubdivPoints(kind, pts, tc.HalfWidth)...)
			checkParams(t, "plain", basic)

			refined := angle.SubdivPoints(kind, pts, tc.HalfWidth)
			checkParams(t, "angle", refined)

			// angular refinement only adds points
		outer:
			for _, x := range basic {
				for _, y := range refined {
					if within(x, y, eps) {
						continue outer
					}
				}
				t.Errorf("%g missing after angular refinement", x)
			}
		})
	}
}

func TestSubdivPoints(t *testing.T) {
	cases := []struct {
		name string
		kind Kind
		pts  []float64
		w    float64
		want []float64
	}{
		{
			name: "arch",
			kind: KindQuad,
			pts:  []float64{10, 50, 32, 10, 54, 50},
			w:    3,
			want: []float64{0.5},
		},
		{
			// the radius of curvature at the apex is 12.1
			name: "arch_wide",
			kind: KindQuad,
			pts:  []float64{10, 50, 32, 10, 54, 50},
			w:    20,
			want: []float64{0.3265176320874255, 0.5, 0.6734823679125743},
		},
		{
			name: "s_curve",
			kind: KindCubic,
			pts:  []float64{10, 32, 30, 0, 34, 64, 54, 32},
			w:    3,
			want: []float64{(3 - math.Sqrt(3)) / 6, 0.5, (3 + math.Sqrt(3)) / 6},
		},
		{
			name: "cubic_arch",
			kind: KindCubic,
			pts:  []float64{10, 50, 20, 10, 44, 10, 54, 50},
			w:    12,
			want: []float64{0.4369614136636072, 0.5, 0.5630385863363929},
		},
		{
			name: "collinear",
			kind: KindCubic,
			pts:  []float64{10, 10, 20, 20, 40, 40, 54, 54},
			w:    3,
			want: nil,
		},
		{
			name: "point",
			kind: KindCubic,
			pts:  []float64{32, 32, 32, 32, 32, 32, 32, 32},
			w:    3,
			want: nil,
		},
	}

	p := NewPlanner()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := p.SubdivPoints(tc.kind, tc.pts, tc.w)
			diff(t, tc.want, got, cmpopts.EquateApprox(0, 1e-6), cmpopts.EquateEmpty())
		})
	}
}

func TestSubdivPointsAngle(t *testing.T) {
	cases := []struct {
		name string
		kind Kind
		pts  []float64
		w    float64
		want []float64
	}{
		{
			// a loop, where the tangent turns all the way round
			name: "loop",
			kind: KindCubic,
			pts:  []float64{0, 0, 0, 100, 100, 100, 0, 0},
			w:    5,
			want: []float64{
				0.0940135470213575, 0.18131654316265108,
				0.2619915163812323, 1.0 / 3,
				0.39209801318562204, 0.43773685758587877,
				0.47263801773530095, 0.5,
				0.522477744792152, 0.5419858661510328,
				0.5599097870772676, 0.5773502691896257,
				0.5953340002741073, 0.6150221881255568,
				0.6379857068666864, 2.0 / 3,
			},
		},
		{
			// monotonic, so all points come from the angle pass
			name: "quarter_circle",
			kind: KindCubic,
			pts:  []float64{100, 0, 100, 55.22847498307936, 55.22847498307936, 100, 0, 100},
			w:    5,
			want: []float64{
				0.12157470931640879, 0.24525475870817262,
				0.3716816951577703, 0.5,
				0.6283183048422298, 0.7547452412918274,
				0.8784252906835912,
			},
		},
		{
			name: "nearly_straight",
			kind: KindCubic,
			pts:  []float64{0, 0, 30, 1, 60, 1, 90, 0},
			w:    3,
			want: []float64{0.5},
		},
		{
			name: "collinear",
			kind: KindCubic,
			pts:  []float64{10, 10, 20, 20, 40, 40, 54, 54},
			w:    3,
			want: nil,
		},
	}

	p := NewPlanner()
	p.SubdivideAngle = true
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := p.SubdivPoints(tc.kind, tc.pts, tc.w)
			diff(t, tc.want, got, cmpopts.EquateApprox(0, 1e-6), cmpopts.EquateEmpty())
		})
	}
}

func TestSubdivPointsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SubdivPoints did not panic for a line")
		}
	}()
	NewPlanner().SubdivPoints(KindLine, []float64{0, 0, 1, 1}, 1)
}

func TestPlannerReserve(t *testing.T) {
	p := NewPlanner()
	for i := range p.ts {
		p.ts[i] = float64(i)
	}
	n := len(p.ts)
	p.reserve(n, 10)
	if len(p.ts) < n+10 {
		t.Fatalf("len(ts) = %d, want at least %d", len(p.ts), n+10)
	}
	for i := range n {
		if p.ts[i] != float64(i) {
			t.Fatalf("ts[%d] = %g, want %d", i, p.ts[i], i)
		}
	}
}

func TestClipPoints(t *testing.T) {
	clip := ClipRect{XMin: 20, YMin: 20, XMax: 236, YMax: 236}
	cases := []struct {
		name  string
		kind  Kind
		pts   []float64
		edges Outcode
	}{
		{
			name:  "line_through",
			kind:  KindLine,
			pts:   []float64{-50, 100, 300, 160},
			edges: OutcodeLeft | OutcodeRight,
		},
		{
			name:  "cubic_exit_right",
			kind:  KindCubic,
			pts:   []float64{100, 100, 200, 110, 260, 120, 300, 130},
			edges: OutcodeRight,
		},
		{
			name:  "quad_enter_corner",
			kind:  KindQuad,
			pts:   []float64{0, 10, 60, 60, 120, 120},
			edges: OutcodeLeft | OutcodeTop,
		},
		{
			name:  "inside",
			kind:  KindCubic,
			pts:   []float64{40, 200, 80, 40, 176, 40, 216, 200},
			edges: 0,
		},
	}

	p := NewPlanner()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code := clip.OutcodeOR(tc.pts)
			if code != tc.edges {
				t.Fatalf("outcode %04b, want %04b", code, tc.edges)
			}

			ts := p.ClipPoints(tc.kind, tc.pts, code, clip)

			// one crossing per flagged edge
			want := 0
			for c := code; c != 0; c &= c - 1 {
				want++
			}
			if len(ts) != want {
				t.Errorf("got %d parameters, want %d", len(ts), want)
			}
			for i := 1; i < len(ts); i++ {
				if ts[i] < ts[i-1] {
					t.Errorf("parameters not sorted: %v", ts)
				}
			}

			var s Sampler
			s.Set(tc.kind, tc.pts)
			for _, x := range ts {
				px, py := s.XAt(x), s.YAt(x)
				onEdge := math.Abs(px-clip.XMin) < 1e-9 || math.Abs(px-clip.XMax) < 1e-9 ||
					math.Abs(py-clip.YMin) < 1e-9 || math.Abs(py-clip.YMax) < 1e-9
				if !onEdge {
					t.Errorf("B(%g) = (%g, %g) is not on the clip boundary", x, px, py)
				}
			}
		})
	}
}
