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
	"slices"
)

// Angular refinement splits a curve until the tangent direction changes by
// at most minAngle (15 degrees, i.e. 90 degrees in 6 steps) between
// neighbouring subdivision points.
const minAngle = math.Pi / 12

var cos2MinAngle = math.Cos(minAngle) * math.Cos(minAngle)

// Planner computes the parameters at which a curve must be cut.
// The zero value is not usable; use [NewPlanner].
//
// A Planner is not safe for concurrent use.
type Planner struct {
	// SubdivideAngle enables an extra pass in [Planner.SubdivPoints] which
	// adds cuts wherever the tangent turns by more than 15 degrees between
	// two neighbouring subdivision points.
	SubdivideAngle bool

	// Curve is used to sample the input curve.
	Curve CurveSampler

	// Rotated is used to sample rotated copies of the input curve during
	// angular refinement.
	Rotated CurveSampler

	ts []float64 // parameter buffer, grown as needed and never shrunk
}

// NewPlanner returns a Planner using [Sampler] for both curve samplers,
// with angular refinement disabled.
func NewPlanner() *Planner {
	return &Planner{
		Curve:   &Sampler{},
		Rotated: &Sampler{},
		ts:      make([]float64, 32),
	}
}

// reserve makes sure that p.ts has room for extra values after the first
// used values.
func (p *Planner) reserve(used, extra int) {
	if len(p.ts) < used+extra {
		p.ts = slices.Grow(p.ts[:used], extra)
		p.ts = p.ts[:cap(p.ts)]
	}
}

// SubdivPoints finds the parameters where the quadratic or cubic Bézier
// given by kind and pts should be cut, in order to get good offset curves
// at distance w on either side.  Between two cuts the curve is monotonic in
// x and y, has no inflection points, and its radius of curvature does not
// cross w.
//
// The result is strictly increasing, the values are more than 1e-9 apart
// and lie in [1e-6, 1-1e-6).  The returned slice is only valid until the
// next call to a Planner method.
//
// SubdivPoints panics if kind is [KindLine].
func (p *Planner) SubdivPoints(kind Kind, pts []float64, w float64) []float64 {
	if kind != KindQuad && kind != KindCubic {
		panic("subdiv: unsupported curve kind " + kind.String())
	}

	c := p.Curve
	c.Set(kind, pts)

	// dx, dy roots (2+2), inflection points (2), ROC roots (4) and the
	// sentinel for angular refinement (1)
	p.reserve(0, 11)
	ts := p.ts

	// monotonic in x and y
	n := c.DxRoots(ts)
	n += c.DyRoots(ts[n:])

	// Quadratic curves can't have inflection points.
	if kind == KindCubic {
		n += c.InflectionPoints(ts[n:])
	}

	// One of the offset curves has a cusp where the radius of curvature
	// equals w.
	n += c.RootsOfROCMinusW(ts[n:], w*w, eps)

	n = filterOutNotInAB(ts[:n], tMin, tMax)
	isort(ts[:n])

	if p.SubdivideAngle {
		// include the end point, so that the last interval is checked
		ts[n] = 1
		n++

		end := n
		t1 := 0.0
		for i := 0; i < end; i++ {
			t2 := p.ts[i]
			n += p.maySplit(kind, pts, n, t1, t2)
			t1 = t2
		}
		ts = p.ts

		if n == end {
			n-- // drop the end point
		} else {
			n = filterOutNotInAB(ts[:n], tMin, tMax)
			isort(ts[:n])
		}
	}

	n = filterDuplicates(ts[:n], eps)
	return ts[:n]
}

// maySplit checks the angle between the tangents at t1 and t2.  If this is
// larger than minAngle, the parameters where the tangent direction passes
// intermediate angles are appended to p.ts, starting at index off.
// It returns the number of values appended.
func (p *Planner) maySplit(kind Kind, pts []float64, off int, t1, t2 float64) int {
	c := p.Curve
	dx1 := c.DxAt(t1)
	dy1 := c.DyAt(t1)
	dx2 := c.DxAt(t2)
	dy2 := c.DyAt(t2)

	// If the tangents are parallel, the curve is a straight line here.
	dotSq := dx1*dx2 + dy1*dy2
	dotSq *= dotSq
	l1Sq := dx1*dx1 + dy1*dy1
	l2Sq := dx2*dx2 + dy2*dy2
	if within(dotSq, l1Sq*l2Sq, 4*ulp(dotSq)) {
		return 0
	}

	// The curve is monotonic between t1 and t2, so the angle is in
	// [0, 90°] and the cosine alone is enough.
	cos2 := dotSq / (l1Sq * l2Sq)
	if cos2 >= cos2MinAngle {
		return 0
	}

	maxAngle := math.Acos(math.Sqrt(cos2))
	nSplits := 1
	step := maxAngle
	for {
		step *= 0.5
		nSplits <<= 1
		if step <= minAngle {
			break
		}
	}
	if dx1*dy2-dy1*dx2 >= 0 {
		step = -step
	}

	n := off
	for i := 1; i < nSplits; i++ {
		sin, cos := math.Sincos(step * float64(i))
		p.reserve(n, 4)
		n += p.findExtremaOfRotatedCurve(kind, pts, p.ts[n:], t1, t2, cos, sin)
	}
	return n - off
}

// findExtremaOfRotatedCurve rotates the curve by the angle with the given
// cosine and sine, and writes the parameters in [t1, t2) where the rotated
// curve has a horizontal or vertical tangent to dst.  It returns the number
// of values written (at most 4).
func (p *Planner) findExtremaOfRotatedCurve(kind Kind, pts, dst []float64, t1, t2, cos, sin float64) int {
	var rot [8]float64
	nc := kind.NumCoords()
	for i := 0; i < nc; i += 2 {
		x, y := pts[i], pts[i+1]
		rot[i] = cos*x + sin*y
		rot[i+1] = cos*y - sin*x
	}

	c := p.Rotated
	c.Set(kind, rot[:nc])

	n := c.DxRoots(dst)
	n += c.DyRoots(dst[n:])
	return filterOutNotInAB(dst[:n], t1, t2)
}

// ClipPoints finds the parameters where the curve given by kind and pts
// crosses those edges of clip which are flagged in outcodeOR.  Normally
// outcodeOR is the bitwise OR of the outcodes of all control points, see
// [ClipRect.OutcodeOR].  The parameters are returned in increasing order.
// The returned slice is only valid until the next call to a Planner method.
func (p *Planner) ClipPoints(kind Kind, pts []float64, outcodeOR Outcode, clip ClipRect) []float64 {
	c := p.Curve
	c.Set(kind, pts)

	p.reserve(0, 12)
	ts := p.ts

	n := 0
	if outcodeOR&OutcodeLeft != 0 {
		n += c.XPoints(ts[n:], clip.XMin)
	}
	if outcodeOR&OutcodeRight != 0 {
		n += c.XPoints(ts[n:], clip.XMax)
	}
	if outcodeOR&OutcodeTop != 0 {
		n += c.YPoints(ts[n:], clip.YMin)
	}
	if outcodeOR&OutcodeBottom != 0 {
		n += c.YPoints(ts[n:], clip.YMax)
	}
	isort(ts[:n])
	return ts[:n]
}
