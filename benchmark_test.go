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
	"image"
	"testing"

	"golang.org/x/image/vector"
)

// BenchmarkSubdivPoints measures the planner on all test curves.
func BenchmarkSubdivPoints(b *testing.B) {
	cases := allCases()

	for _, angle := range []bool{false, true} {
		b.Run(fmt.Sprintf("angle=%t", angle), func(b *testing.B) {
			p := NewPlanner()
			p.SubdivideAngle = angle

			b.ReportAllocs()
			for b.Loop() {
				for _, tc := range cases {
					kind := kindOf(tc)
					if kind == KindLine {
						continue
					}
					p.SubdivPoints(kind, tc.Coords(), tc.HalfWidth)
				}
			}
		})
	}
}

// BenchmarkCubicRootsInAB measures the three-root case.
func BenchmarkCubicRootsInAB(b *testing.B) {
	var roots [3]float64
	b.ReportAllocs()
	for b.Loop() {
		CubicRootsInAB(1, -1.5, 0.6875, -0.09375, roots[:], 0, 1)
	}
}

// BenchmarkSplitO splits the outer circle of an "O" shape for stroking,
// traces the inner circle backwards using a PolyStack, and rasterizes the
// result using x/image/vector.
func BenchmarkArrayCache(b *testing.B) {
	var c ArrayCache[float64]
	b.ReportAllocs()
	for b.Loop() {
		a := c.Get(1000)
		c.Put(a)
	}
}

func BenchmarkSplitO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			v := VectorConsumer{R: r}
			sp := NewSplitter()
			back := NewPolyStack(nil, nil)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			center := float64(size) / 2
			outer := circle(center, center, float64(size)*0.45)
			inner := circle(center, center, float64(size)*0.30)
			w := float64(size) * 0.05

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				v.MoveTo(outer[0].Coords[0], outer[0].Coords[1])
				for i := range outer {
					c := &outer[i]
					sp.SplitForStroke(v, c.Kind, c.Pts(), w)
				}
				v.Close()

				for i := range inner {
					c := &inner[i]
					back.PushCubic(c.Coords[0], c.Coords[1], c.Coords[2], c.Coords[3], c.Coords[4], c.Coords[5])
				}
				v.MoveTo(inner[0].Coords[0], inner[0].Coords[1])
				back.PopAll(v)
				v.Close()

				r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
			}
		})
	}
}

// circle approximates a circle by four cubic Bézier curves.
func circle(cx, cy, r float64) []Curve {
	const kappa = 0.5522847498307936
	k := r * kappa
	return []Curve{
		NewCubic(pt(cx+r, cy), pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r)),
		NewCubic(pt(cx, cy+r), pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy)),
		NewCubic(pt(cx-r, cy), pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r)),
		NewCubic(pt(cx, cy-r), pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy)),
	}
}
