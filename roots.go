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

import "math"

// Numerical tolerances.
const (
	// eps is used for coincidence and degeneracy checks.
	eps = 1e-9

	// tMin and tMax bound the subdivision parameters handed to the
	// splitter, so that no piece of a curve degenerates to a point.
	tMin = 1e-6
	tMax = 1 - tMin
)

// QuadraticRoots finds the real roots of a·t² + b·t + c = 0 and writes them
// to roots.  It returns the number of roots found (0, 1 or 2).  If a is zero
// the equation is solved as a linear equation.  A double root is reported
// once.  The roots are not sorted.
//
// roots must have room for at least two values.
func QuadraticRoots(a, b, c float64, roots []float64) int {
	n := 0
	if a != 0 {
		d := b*b - 4*a*c
		if d > 0 {
			d = math.Sqrt(d)
			// One root is computed as (-b ± d) / 2a and the other as
			// 2c / (-b ± d), choosing the sign so that b and d don't cancel.
			if b < 0 {
				d = -d
			}
			q := (b + d) / -2
			roots[n] = q / a
			n++
			if q != 0 {
				roots[n] = c / q
				n++
			}
		} else if d == 0 {
			roots[n] = -b / (2 * a)
			n++
		}
	} else if b != 0 {
		roots[n] = -c / b
		n++
	}
	return n
}

// CubicRootsInAB finds the real roots of d·t³ + a·t² + b·t + c = 0 which lie
// in the half-open interval [A, B), and writes them to roots.  It returns the
// number of roots written (0 to 3).  The roots are not sorted.
//
// roots must have room for at least three values.
func CubicRootsInAB(d, a, b, c float64, roots []float64, A, B float64) int {
	if d == 0 {
		n := QuadraticRoots(a, b, c, roots)
		return filterOutNotInAB(roots[:n], A, B)
	}

	// normal form: t³ + a·t² + b·t + c = 0
	a /= d
	b /= d
	c /= d

	// Substituting t = y - a/3 gives the depressed cubic y³ + P·y + Q = 0.
	// We work with p = P/3 and q = Q/2 throughout.
	sqA := a * a
	p := (1.0 / 3.0) * ((-1.0/3.0)*sqA + b)
	sub := (1.0 / 3.0) * a
	q := (1.0 / 2.0) * ((2.0/27.0)*a*sqA - sub*b + c)

	// Cardano
	cbP := p * p * p
	D := q*q + cbP

	var n int
	if within(D, 0, eps) {
		if within(q, 0, eps) {
			// one triple root
			roots[0] = -sub
			n = 1
		} else {
			// one single and one double root
			u := math.Cbrt(-q)
			roots[0] = 2*u - sub
			roots[1] = -u - sub
			n = 2
		}
	} else if D < 0 {
		// three distinct real roots, trigonometric method
		phi := (1.0 / 3.0) * math.Acos(-q/math.Sqrt(-cbP))
		t := 2 * math.Sqrt(-p)

		roots[0] = t*math.Cos(phi) - sub
		roots[1] = -t*math.Cos(phi+math.Pi/3) - sub
		roots[2] = -t*math.Cos(phi-math.Pi/3) - sub
		n = 3
	} else {
		sqrtD := math.Sqrt(D)
		u := math.Cbrt(sqrtD - q)
		v := -math.Cbrt(sqrtD + q)

		roots[0] = u + v - sub
		n = 1
	}
	return filterOutNotInAB(roots[:n], A, B)
}

// filterOutNotInAB moves all values in [a, b) to the front of nums, keeping
// their order.  It returns the number of values kept.
func filterOutNotInAB(nums []float64, a, b float64) int {
	n := 0
	for _, x := range nums {
		if x >= a && x < b {
			nums[n] = x
			n++
		}
	}
	return n
}

// filterDuplicates removes values within err of their predecessor from the
// sorted slice nums.  It returns the number of values kept.
func filterDuplicates(nums []float64, err float64) int {
	n := 0
	prev := -1.0
	for _, x := range nums {
		if !within(x, prev, err) {
			nums[n] = x
			n++
		}
		prev = x
	}
	return n
}

// isort sorts a in increasing order.  Subdivision only ever deals with a
// handful of values, where insertion sort beats the general algorithms.
func isort(a []float64) {
	for i := 1; i < len(a); i++ {
		ai := a[i]
		j := i - 1
		for ; j >= 0 && a[j] > ai; j-- {
			a[j+1] = a[j]
		}
		a[j+1] = ai
	}
}
